// Package listbymonth реализует HTTP-обработчик для выборки напоминаний за месяц.
//
// Handler извлекает email владельца из контекста, год и месяц из URL,
// и возвращает все напоминания владельца, попадающие в этот месяц.
package listbymonth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/spacedrifters/reminder-backend/internal/http/middlewarectx"
	"github.com/spacedrifters/reminder-backend/internal/http/response"
	"github.com/spacedrifters/reminder-backend/internal/lib/sl"
	"github.com/spacedrifters/reminder-backend/internal/models"
	services "github.com/spacedrifters/reminder-backend/internal/services/reminder"
)

// Handler управляет HTTP-запросами на выборку напоминаний за месяц.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики выборки напоминаний за месяц.
type Service interface {
	ListByMonth(ctx context.Context, ownerEmail string, year, monthNum int) ([]*models.Reminder, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить напоминания за месяц
// @Description Возвращает все напоминания текущего владельца, даты которых попадают в указанный месяц.
// @Tags Reminders
// @Produce  json
// @Param year path int true "Год, например 2026"
// @Param month path int true "Месяц от 1 до 12"
// @Success 200 {object} response.OKResponse "Список напоминаний"
// @Failure 401 {object} response.ErrorResponse "Владелец не определен"
// @Failure 422 {object} response.ErrorResponse "Некорректный год или месяц"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /reminders/month/{year}/{month} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.reminder.listbymonth"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		log.Error("invalid year format", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("invalid year"))
		return
	}

	monthNum, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		log.Error("invalid month format", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("invalid month"))
		return
	}

	email, ok := middlewarectx.EmailFromContext(r.Context())
	if !ok {
		log.Error("account email not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	res, err := h.service.ListByMonth(r.Context(), email, year, monthNum)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMonth) {
			log.Error("month out of range", slog.Int("month", monthNum))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("invalid month"))
			return
		}
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
