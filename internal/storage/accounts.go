package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spacedrifters/reminder-backend/internal/models"
)

// CreateAccount сохраняет новую учетную запись. Уникальность email
// обеспечивается ограничением в базе, а не проверкой перед вставкой:
// при гонке двух регистраций вторая получает ErrAccountExists.
func (s *Storage) CreateAccount(ctx context.Context, account models.Account) error {
	const op = "storage.CreateAccount"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO accounts (email, password_hash)
			  VALUES ($1, $2)`
	if _, err := s.DB.ExecContext(ctx, query, account.Email, account.PasswordHash); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, ErrAccountExists)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetAccountByEmail возвращает учетную запись по email.
func (s *Storage) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	const op = "storage.GetAccountByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT email, password_hash, created_at
			  FROM accounts
			  WHERE email = $1`
	a := &models.Account{}
	row := s.DB.QueryRowContext(ctx, query, email)
	if err := row.Scan(&a.Email, &a.PasswordHash, &a.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrAccountNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return a, nil
}

// UpdatePasswordHash заменяет дайджест пароля одним атомарным UPDATE:
// параллельный Login видит либо старый, либо новый дайджест, но никогда
// промежуточное состояние.
func (s *Storage) UpdatePasswordHash(ctx context.Context, email, passwordHash string) error {
	const op = "storage.UpdatePasswordHash"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE accounts
			  SET password_hash = $1
			  WHERE email = $2`
	result, err := s.DB.ExecContext(ctx, query, passwordHash, email)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrAccountNotFound)
	}
	return nil
}

// isUniqueViolation определяет нарушение уникального ограничения PostgreSQL (код 23505).
func isUniqueViolation(err error) bool {
	var pge *pgconn.PgError
	if errors.As(err, &pge) {
		return pge.Code == "23505"
	}
	return false
}
