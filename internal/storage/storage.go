// Package storage реализует хранилище данных на основе PostgreSQL
// для управления учетными записями и напоминаниями. Предоставляет методы
// создания, чтения и удаления записей с обязательной фильтрацией по владельцу.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Ошибки уровня хранилища. Сервисы сопоставляют их со своими исходами.
var (
	// ErrAccountExists — вставка нарушила уникальность email (код 23505).
	ErrAccountExists = errors.New("account already exists")
	// ErrAccountNotFound — учетная запись с таким email отсутствует.
	ErrAccountNotFound = errors.New("account not found")
	// ErrReminderNotFound — напоминание отсутствует либо принадлежит другому владельцу.
	ErrReminderNotFound = errors.New("reminder not found")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL.
// Экземпляр создаётся один раз при старте процесса и передаётся
// по ссылке во все операции — ленивых глобальных подключений нет.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных.
func CheckDatabaseReady(storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'reminders'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table reminders missing or query error: %w", err)
	}
	return nil
}
