// Package create реализует HTTP-обработчик для создания новых напоминаний.
//
// Handler принимает JSON-запрос с данными напоминания, валидирует их,
// извлекает email владельца из контекста, вызывает бизнес-логику создания
// напоминания через сервис и возвращает созданную запись в JSON-формате.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/spacedrifters/reminder-backend/internal/http/middlewarectx"
	"github.com/spacedrifters/reminder-backend/internal/http/response"
	"github.com/spacedrifters/reminder-backend/internal/lib/sl"
	"github.com/spacedrifters/reminder-backend/internal/models"
	services "github.com/spacedrifters/reminder-backend/internal/services/reminder"
)

// Handler управляет HTTP-запросами на создание напоминаний.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики создания напоминания.
type Service interface {
	Add(ctx context.Context, ownerEmail string, req models.DummyReminder) (*models.Reminder, error)
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
// @Summary Создать новое напоминание
// @Description Создает напоминание для текущего владельца. Возвращает созданную запись с назначенным ID.
// @Tags Reminders
// @Accept  json
// @Produce  json
// @Param request body models.DummyReminder true "Данные нового напоминания"
// @Success 200 {object} response.OKResponse "Успешное создание напоминания"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Владелец не определен"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании напоминания"
// @Router /reminders [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.reminder.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyReminder
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	email, ok := middlewarectx.EmailFromContext(r.Context())
	if !ok {
		log.Error("account email not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	reminder, err := h.service.Add(r.Context(), email, req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			log.Error("invalid reminder date", slog.String("date", req.Date))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("invalid date format"))
			return
		}
		log.Error("failed to create reminder", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create reminder"))
		return
	}

	log.Info("success to create reminder", slog.String("id", reminder.ID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"reminder": reminder,
	}))
}
