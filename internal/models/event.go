package models

import "time"

// Форматы даты и времени события
const (
	// DateLayout формат даты события (ISO 8601, только дата)
	DateLayout = "2006-01-02"
	// TimeLayout формат времени события (часы и минуты)
	TimeLayout = "15:04"
)

// Event представляет событие календаря
type Event struct {
	CreatedAt   time.Time `json:"created_at"`  // CreatedAt время создания (назначает сервер)
	UpdatedAt   time.Time `json:"updated_at"`  // UpdatedAt время последнего изменения
	ID          string    `json:"id"`          // ID уникальный идентификатор события (UUID)
	UserID      string    `json:"user_id"`     // UserID идентификатор владельца
	Title       string    `json:"title"`       // Title название события
	Date        string    `json:"date"`        // Date дата в формате YYYY-MM-DD
	Time        string    `json:"time"`        // Time время в формате HH:MM, пустое = весь день
	Description string    `json:"description"` // Description опциональное описание
}
