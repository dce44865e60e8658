// Package services содержит логику бизнес-уровня для работы с учетными записями.
package services

import (
	"context"
	"errors"

	"github.com/spacedrifters/reminder-backend/internal/lib/password"
	"github.com/spacedrifters/reminder-backend/internal/models"
	"github.com/spacedrifters/reminder-backend/internal/storage"
)

// Ошибки бизнес-уровня. Обработчики сопоставляют их с HTTP-ответами.
var (
	// ErrAccountExists — учетная запись с таким email уже зарегистрирована.
	ErrAccountExists = errors.New("account already exists")
	// ErrAccountNotFound — учетная запись не найдена.
	ErrAccountNotFound = errors.New("no account found")
	// ErrInvalidCredentials — пароль не совпал с сохранённым дайджестом.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmptyCredentials — email или пароль пустые.
	ErrEmptyCredentials = errors.New("email and password are required")
)

// AccountRepository описывает контракт для работы с учетными записями в базе данных.
type AccountRepository interface {
	// CreateAccount сохраняет новую учетную запись; при дубликате email
	// возвращает ошибку, оборачивающую storage.ErrAccountExists.
	CreateAccount(ctx context.Context, account models.Account) error

	// GetAccountByEmail возвращает учетную запись или ошибку, если не найдена.
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)

	// UpdatePasswordHash атомарно заменяет дайджест пароля.
	UpdatePasswordHash(ctx context.Context, email, passwordHash string) error
}

// AuthService отвечает за регистрацию, вход и смену пароля.
// Любая проверка секрета идёт через один примитив password.Verify;
// прямого сравнения строк с дайджестом нет нигде.
type AuthService struct {
	accounts AccountRepository
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(accounts AccountRepository) *AuthService {
	return &AuthService{
		accounts: accounts,
	}
}

// Register создает новую учетную запись с хэшированием пароля.
// Открытый пароль никуда не сохраняется и не логируется.
func (s *AuthService) Register(ctx context.Context, email, rawPassword string) error {
	if email == "" || rawPassword == "" {
		return ErrEmptyCredentials
	}
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return err
	}
	account := models.Account{
		Email:        email,
		PasswordHash: hashed,
	}
	if err := s.accounts.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, storage.ErrAccountExists) {
			return ErrAccountExists
		}
		return err
	}
	return nil
}

// Login проверяет пароль учетной записи. Успех означает подтверждение
// личности; токены и сессии не выпускаются, дальнейшие шаги — на вызывающем.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) error {
	if email == "" || rawPassword == "" {
		return ErrEmptyCredentials
	}
	account, err := s.accounts.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return err
	}
	if !password.Verify(account.PasswordHash, rawPassword) {
		return ErrInvalidCredentials
	}
	return nil
}

// ChangePassword проверяет текущий пароль и заменяет дайджест на новый.
// Замена — один атомарный UPDATE в хранилище: после успешного возврата
// старый пароль недействителен, окна без валидного дайджеста не существует.
func (s *AuthService) ChangePassword(ctx context.Context, email, currentPassword, newPassword string) error {
	if email == "" || currentPassword == "" || newPassword == "" {
		return ErrEmptyCredentials
	}
	account, err := s.accounts.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return err
	}
	if !password.Verify(account.PasswordHash, currentPassword) {
		return ErrInvalidCredentials
	}
	hashed, err := password.GetHash(newPassword)
	if err != nil {
		return err
	}
	if err := s.accounts.UpdatePasswordHash(ctx, email, hashed); err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return err
	}
	return nil
}
