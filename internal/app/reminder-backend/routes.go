// Package reminderbackend предоставляет маршруты для основного приложения.
package reminderbackend

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/spacedrifters/reminder-backend/internal/http/handlers/auth/changepassword"
	"github.com/spacedrifters/reminder-backend/internal/http/handlers/auth/login"
	"github.com/spacedrifters/reminder-backend/internal/http/handlers/auth/register"
	"github.com/spacedrifters/reminder-backend/internal/http/handlers/health"
	"github.com/spacedrifters/reminder-backend/internal/http/handlers/reminder/create"
	"github.com/spacedrifters/reminder-backend/internal/http/handlers/reminder/listbydate"
	"github.com/spacedrifters/reminder-backend/internal/http/handlers/reminder/listbymonth"
	"github.com/spacedrifters/reminder-backend/internal/http/handlers/reminder/remove"
	"github.com/spacedrifters/reminder-backend/internal/http/middlewarectx"
	authservice "github.com/spacedrifters/reminder-backend/internal/services/auth"
	reminderservice "github.com/spacedrifters/reminder-backend/internal/services/reminder"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *authservice.AuthService, reminderService *reminderservice.ReminderService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)
		r.Post("/change-password", changepassword.New(logger, authService).ServeHTTP)

		// Группа с определением владельца
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.IdentityMiddleware(logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/reminders", create.New(logger, reminderService).ServeHTTP)
			r.Get("/reminders/date/{date}", listbydate.New(logger, reminderService).ServeHTTP)
			r.Get("/reminders/month/{year}/{month}", listbymonth.New(logger, reminderService).ServeHTTP)
			r.Delete("/reminders/{id}", remove.New(logger, reminderService).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
