// Package remove реализует HTTP-обработчик для удаления напоминаний.
//
// Handler извлекает email владельца из контекста и ID напоминания из URL.
// Удаление успешно только если запись существует и принадлежит владельцу;
// чужое и несуществующее напоминание дают неотличимый ответ 404.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/spacedrifters/reminder-backend/internal/http/middlewarectx"
	"github.com/spacedrifters/reminder-backend/internal/http/response"
	"github.com/spacedrifters/reminder-backend/internal/lib/sl"
	services "github.com/spacedrifters/reminder-backend/internal/services/reminder"
)

// Handler управляет HTTP-запросами на удаление напоминаний.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления напоминания.
type Service interface {
	Remove(ctx context.Context, ownerEmail, id string) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить напоминание
// @Description Удаляет напоминание по ID, если оно принадлежит текущему владельцу. Несуществующее и чужое напоминание дают одинаковый ответ.
// @Tags Reminders
// @Produce  json
// @Param id path string true "ID напоминания (UUID)"
// @Success 200 {object} response.OKResponse "Напоминание удалено"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 401 {object} response.ErrorResponse "Владелец не определен"
// @Failure 404 {object} response.ErrorResponse "Напоминание не найдено"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /reminders/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.reminder.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	email, ok := middlewarectx.EmailFromContext(r.Context())
	if !ok {
		log.Error("account email not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	if err := h.service.Remove(r.Context(), email, id); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidID):
			log.Error("invalid id format", slog.String("id", id))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid id"))
		case errors.Is(err, services.ErrNotFoundOrUnauthorized):
			log.Error("reminder not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("reminder not found"))
		default:
			log.Error("failed to delete reminder", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete reminder"))
		}
		return
	}

	log.Info("success to delete reminder", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"deleted_id": id,
	}))
}
