package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spacedrifters/reminder-backend/internal/models"
)

// dateLayout — формат дат напоминаний во внешнем представлении.
const dateLayout = "2006-01-02"

// CreateReminder вставляет новое напоминание и возвращает созданную запись
// вместе с назначенным идентификатором.
func (s *Storage) CreateReminder(ctx context.Context, reminder models.Reminder) (*models.Reminder, error) {
	const op = "storage.CreateReminder"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	newID := uuid.New().String()
	query := `INSERT INTO reminders (id, owner_email, date, title, description)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING created_at`
	var createdAt time.Time
	err := s.DB.QueryRowContext(ctx, query,
		newID, reminder.OwnerEmail, reminder.Date, reminder.Title, reminder.Description).Scan(&createdAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	reminder.ID = newID
	reminder.CreatedAt = createdAt
	return &reminder, nil
}

// ListRemindersByDate возвращает напоминания владельца на конкретную дату
// в порядке создания.
func (s *Storage) ListRemindersByDate(ctx context.Context, ownerEmail, date string) ([]*models.Reminder, error) {
	const op = "storage.ListRemindersByDate"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, owner_email, to_char(date, 'YYYY-MM-DD'), title, description, created_at
			  FROM reminders
			  WHERE owner_email = $1 AND date = $2::date
			  ORDER BY created_at, id`
	rows, err := s.DB.QueryContext(ctx, query, ownerEmail, date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanReminders(op, rows)
}

// ListRemindersByMonth возвращает напоминания владельца, попадающие в
// полуоткрытый интервал [start, end) календарного месяца.
func (s *Storage) ListRemindersByMonth(ctx context.Context, ownerEmail string, start, end time.Time) ([]*models.Reminder, error) {
	const op = "storage.ListRemindersByMonth"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, owner_email, to_char(date, 'YYYY-MM-DD'), title, description, created_at
			  FROM reminders
			  WHERE owner_email = $1 AND date >= $2 AND date < $3
			  ORDER BY created_at, id`
	rows, err := s.DB.QueryContext(ctx, query, ownerEmail, start, end)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanReminders(op, rows)
}

// RemoveReminder удаляет напоминание по id строго в паре с владельцем.
// Отсутствующая запись и запись чужого владельца неразличимы для вызывающего:
// обе дают ErrReminderNotFound. При гонке двух удалений выигрывает ровно одно.
// Возвращает дату удалённого напоминания для инвалидации кеша.
func (s *Storage) RemoveReminder(ctx context.Context, ownerEmail, id string) (string, error) {
	const op = "storage.RemoveReminder"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM reminders
			  WHERE id = $1 AND owner_email = $2
			  RETURNING to_char(date, 'YYYY-MM-DD')`
	var date string
	err := s.DB.QueryRowContext(ctx, query, id, ownerEmail).Scan(&date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%s: %w", op, ErrReminderNotFound)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return date, nil
}

// FindRemindersDueOn находит все напоминания на заданную дату по всем
// владельцам. Используется планировщиком уведомлений.
func (s *Storage) FindRemindersDueOn(ctx context.Context, date time.Time) ([]*models.ReminderInfo, error) {
	const op = "storage.FindRemindersDueOn"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT owner_email, title, description, to_char(date, 'YYYY-MM-DD')
			  FROM reminders
			  WHERE date = $1::date
			  ORDER BY created_at, id`
	rows, err := s.DB.QueryContext(ctx, query, date.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.ReminderInfo
	for rows.Next() {
		var info models.ReminderInfo
		if err := rows.Scan(&info.Email, &info.Title, &info.Description, &info.Date); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

func scanReminders(op string, rows *sql.Rows) ([]*models.Reminder, error) {
	var result []*models.Reminder
	for rows.Next() {
		var item models.Reminder
		if err := rows.Scan(&item.ID, &item.OwnerEmail, &item.Date, &item.Title,
			&item.Description, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
