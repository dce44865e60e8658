// Package listbydate реализует HTTP-обработчик для выборки напоминаний на дату.
//
// Handler извлекает email владельца из контекста и дату из URL,
// валидирует дату и возвращает список напоминаний владельца на этот день.
package listbydate

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/spacedrifters/reminder-backend/internal/http/middlewarectx"
	"github.com/spacedrifters/reminder-backend/internal/http/response"
	"github.com/spacedrifters/reminder-backend/internal/lib/sl"
	"github.com/spacedrifters/reminder-backend/internal/models"
)

// Handler управляет HTTP-запросами на выборку напоминаний по дате.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики выборки напоминаний.
type Service interface {
	ListByDate(ctx context.Context, ownerEmail, date string) ([]*models.Reminder, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Получить напоминания на дату
// @Description Возвращает все напоминания текущего владельца на указанную дату в порядке добавления.
// @Tags Reminders
// @Produce  json
// @Param date path string true "Дата в формате 2006-01-02"
// @Success 200 {object} response.OKResponse "Список напоминаний"
// @Failure 401 {object} response.ErrorResponse "Владелец не определен"
// @Failure 422 {object} response.ErrorResponse "Некорректная дата"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /reminders/date/{date} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.reminder.listbydate"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	date := chi.URLParam(r, "date")
	if err := h.validate.Var(date, "required,datetime=2006-01-02"); err != nil {
		log.Error("invalid date format", slog.String("date", date))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("invalid date format, expected 2006-01-02"))
		return
	}

	email, ok := middlewarectx.EmailFromContext(r.Context())
	if !ok {
		log.Error("account email not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	res, err := h.service.ListByDate(r.Context(), email, date)
	if err != nil {
		log.Error("failed to list reminders", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list reminders"))
		return
	}

	log.Info("list reminders", "count", len(res))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"list_count": len(res),
		"reminders":  res,
	}))
}
