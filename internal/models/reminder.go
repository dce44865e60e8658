package models

import "time"

// Reminder представляет собой напоминание в календаре пользователя.
// Поле Date хранится строкой в формате 2006-01-02, как оно приходит
// от клиента и уходит к нему.
type Reminder struct {
	ID          string    `json:"id"`          // Уникальный идентификатор (UUID), назначается системой
	OwnerEmail  string    `json:"owner_email"` // Email владельца, обязательный фильтр для всех операций
	Date        string    `json:"date"`        // Дата напоминания в формате 2006-01-02
	Title       string    `json:"title"`       // Заголовок, обязательное поле
	Description string    `json:"description"` // Описание, опционально
	CreatedAt   time.Time `json:"-"`           // Время создания записи
}

// DummyReminder используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в Reminder. Дата приходит строкой,
// чтобы её можно было провалидировать до обращения к хранилищу.
type DummyReminder struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"` // Дата в формате 2006-01-02
	Title       string `json:"title" validate:"required"`                    // Заголовок
	Description string `json:"description"`                                  // Описание, опционально
}

// ReminderInfo — сообщение для очереди уведомлений о наступивших напоминаниях.
type ReminderInfo struct {
	Email       string `json:"email"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}
