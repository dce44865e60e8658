// Package middlewarectx содержит HTTP middleware для определения владельца запроса.
//
// IdentityMiddleware извлекает email аккаунта из заголовка X-Account-Email
// (или из query-параметра email) и добавляет его в контекст запроса для
// дальнейшего использования в обработчиках.
//
// Если email отсутствует, возвращает HTTP 401 Unauthorized с сообщением об ошибке.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/spacedrifters/reminder-backend/internal/http/response"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// AccountEmail — ключ для email владельца в контексте.
const AccountEmail Key = "account_email"

// HeaderAccountEmail — заголовок, в котором клиент передает email аккаунта.
const HeaderAccountEmail = "X-Account-Email"

// IdentityMiddleware возвращает HTTP middleware, который извлекает email
// аккаунта из заголовка X-Account-Email или query-параметра email.
//
// Если email найден, добавляет его в контекст запроса,
// иначе возвращает ошибку с HTTP статусом 401 Unauthorized.
func IdentityMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.IdentityMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			email := strings.TrimSpace(r.Header.Get(HeaderAccountEmail))
			if email == "" {
				email = strings.TrimSpace(r.URL.Query().Get("email"))
			}
			if email == "" {
				log.Error("missing account email")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing account email"))
				return
			}

			ctx := context.WithValue(r.Context(), AccountEmail, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// EmailFromContext возвращает email владельца из контекста запроса.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(AccountEmail).(string)
	return email, ok && email != ""
}
