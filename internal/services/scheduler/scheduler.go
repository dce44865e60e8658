// Package services содержит планировщик, который находит напоминания
// на сегодняшнюю дату и публикует их в очередь уведомлений.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/streadway/amqp"

	"github.com/spacedrifters/reminder-backend/internal/lib/sl"
	"github.com/spacedrifters/reminder-backend/internal/models"
	"github.com/spacedrifters/reminder-backend/internal/rabbitmq"
)

// ReminderRepository описывает выборку напоминаний, наступающих в заданную дату.
type ReminderRepository interface {
	FindRemindersDueOn(ctx context.Context, date time.Time) ([]*models.ReminderInfo, error)
}

type SchedulerService struct {
	repo ReminderRepository
	log  *slog.Logger
}

// NewSchedulerService создает новый экземпляр SchedulerService.
func NewSchedulerService(repo ReminderRepository, log *slog.Logger) *SchedulerService {
	return &SchedulerService{
		repo: repo,
		log:  log,
	}
}

// FindRemindersDueToday раз в сутки публикует напоминания на текущую дату.
func (s *SchedulerService) FindRemindersDueToday(ctx context.Context, channel *amqp.Channel) {
	s.runFindRemindersDueToday(ctx, channel)

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runFindRemindersDueToday(ctx, channel)
		case <-ctx.Done():
			return
		}
	}
}

func (s *SchedulerService) runFindRemindersDueToday(ctx context.Context, channel *amqp.Channel) {
	s.log.Info("starting service to find reminders due today")
	today := time.Now().UTC().Truncate(24 * time.Hour)
	reminders, err := s.repo.FindRemindersDueOn(ctx, today)
	if err != nil {
		s.log.Error("failed to find reminders", sl.Err(err))
		return
	}
	if len(reminders) == 0 {
		s.log.Info("no due reminders found")
		return
	}
	s.log.Info("found due reminders", "count", len(reminders))
	for _, reminder := range reminders {
		err = rabbitmq.PublishMessage(channel, "notifications", "due", reminder)
		if err != nil {
			s.log.Error("failed to publish message", sl.Err(err))
		}
	}
}
