// Package models содержит доменные модели учетной записи и напоминания,
// а также вспомогательные типы для приёма данных из JSON-запросов.
// Структуры используются в бизнес-логике и при работе с хранилищем.
package models

import "time"

// Account представляет зарегистрированную учетную запись.
// Email уникален на уровне хранилища. PasswordHash — bcrypt-дайджест,
// он никогда не логируется и не возвращается наружу.
type Account struct {
	Email        string    // Электронная почта, уникальный идентификатор
	PasswordHash string    // Дайджест пароля (bcrypt, с солью)
	CreatedAt    time.Time // Дата создания учетной записи
}
