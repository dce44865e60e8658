// Package services содержит бизнес-логику для управления напоминаниями и их кешированием.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/spacedrifters/reminder-backend/internal/lib/month"
	"github.com/spacedrifters/reminder-backend/internal/models"
	"github.com/spacedrifters/reminder-backend/internal/storage"
)

// dateLayout — внешний формат дат напоминаний.
const dateLayout = "2006-01-02"

// Ошибки бизнес-уровня.
var (
	// ErrMissingOwner — не передан email владельца.
	ErrMissingOwner = errors.New("owner email is required")
	// ErrInvalidDate — дата не в формате 2006-01-02.
	ErrInvalidDate = errors.New("invalid date format")
	// ErrInvalidID — идентификатор не является корректным UUID.
	ErrInvalidID = errors.New("invalid reminder id")
	// ErrInvalidMonth — месяц вне диапазона 1–12.
	ErrInvalidMonth = errors.New("invalid month")
	// ErrNotFoundOrUnauthorized — напоминание отсутствует либо принадлежит
	// другому владельцу. Случаи намеренно неразличимы, чтобы не раскрывать
	// существование чужих напоминаний.
	ErrNotFoundOrUnauthorized = errors.New("reminder not found")
)

// ReminderRepository определяет методы для работы с напоминаниями в хранилище.
// Каждый метод принимает email владельца как обязательный фильтр.
type ReminderRepository interface {
	// CreateReminder добавляет новое напоминание и возвращает созданную запись с ID.
	CreateReminder(ctx context.Context, reminder models.Reminder) (*models.Reminder, error)
	// ListRemindersByDate возвращает напоминания владельца на дату.
	ListRemindersByDate(ctx context.Context, ownerEmail, date string) ([]*models.Reminder, error)
	// ListRemindersByMonth возвращает напоминания владельца за интервал [start, end).
	ListRemindersByMonth(ctx context.Context, ownerEmail string, start, end time.Time) ([]*models.Reminder, error)
	// RemoveReminder удаляет напоминание по id и владельцу, возвращает дату удалённого.
	RemoveReminder(ctx context.Context, ownerEmail, id string) (string, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// ReminderService реализует бизнес-логику работы с напоминаниями, включая кеширование.
// Кеш — вспомогательный: его ошибки логируются и не влияют на результат.
type ReminderService struct {
	repo  ReminderRepository
	cache Cache
	log   *slog.Logger
}

// NewReminderService создает новый экземпляр ReminderService.
func NewReminderService(repo ReminderRepository, cache Cache, log *slog.Logger) *ReminderService {
	return &ReminderService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Add создает новое напоминание для владельца и возвращает запись с назначенным ID.
func (s *ReminderService) Add(ctx context.Context, ownerEmail string, req models.DummyReminder) (*models.Reminder, error) {
	if ownerEmail == "" {
		return nil, ErrMissingOwner
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return nil, ErrInvalidDate
	}
	if req.Title == "" {
		return nil, fmt.Errorf("title is required")
	}

	reminder := models.Reminder{
		OwnerEmail:  ownerEmail,
		Date:        req.Date,
		Title:       req.Title,
		Description: req.Description,
	}
	created, err := s.repo.CreateReminder(ctx, reminder)
	if err != nil {
		return nil, err
	}

	s.log.Info("created new reminder", slog.String("id", created.ID))

	if err := s.cache.Invalidate(s.dateKey(ownerEmail, created.Date)); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", s.dateKey(ownerEmail, created.Date)), slog.Any("err", err))
	}

	return created, nil
}

// ListByDate возвращает напоминания владельца на дату, используя кеш или репозиторий.
func (s *ReminderService) ListByDate(ctx context.Context, ownerEmail, date string) ([]*models.Reminder, error) {
	if ownerEmail == "" {
		return nil, ErrMissingOwner
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}

	cacheKey := s.dateKey(ownerEmail, date)
	var cached []*models.Reminder
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return cached, nil
	}

	result, err := s.repo.ListRemindersByDate(ctx, ownerEmail, date)
	if err != nil {
		return nil, err
	}

	if result != nil {
		if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
			s.log.Warn("failed to add to cache", slog.String("key", cacheKey), slog.Any("err", err))
		}
	}
	return result, nil
}

// ListByMonth возвращает напоминания владельца за календарный месяц.
func (s *ReminderService) ListByMonth(ctx context.Context, ownerEmail string, year, monthNum int) ([]*models.Reminder, error) {
	if ownerEmail == "" {
		return nil, ErrMissingOwner
	}
	start, end, err := month.Range(year, monthNum)
	if err != nil {
		return nil, ErrInvalidMonth
	}
	return s.repo.ListRemindersByMonth(ctx, ownerEmail, start, end)
}

// Remove удаляет напоминание по ID строго в паре с владельцем и инвалидирует кеш.
func (s *ReminderService) Remove(ctx context.Context, ownerEmail, id string) error {
	if ownerEmail == "" {
		return ErrMissingOwner
	}
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}

	date, err := s.repo.RemoveReminder(ctx, ownerEmail, id)
	if err != nil {
		if errors.Is(err, storage.ErrReminderNotFound) {
			return ErrNotFoundOrUnauthorized
		}
		return err
	}

	if err := s.cache.Invalidate(s.dateKey(ownerEmail, date)); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", s.dateKey(ownerEmail, date)), slog.Any("err", err))
	}

	s.log.Info("removed reminder", slog.String("id", id))
	return nil
}

func (s *ReminderService) dateKey(ownerEmail, date string) string {
	return fmt.Sprintf("reminders:%s:%s", ownerEmail, date)
}
