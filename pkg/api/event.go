package api

import "time"

// ConfirmDeleteAll точная фраза подтверждения для полной очистки событий
const ConfirmDeleteAll = "DELETE_ALL"

// Event представляет событие календаря
type Event struct {
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	ID          string    `json:"id"` // UUID события
	Title       string    `json:"title"`
	Date        string    `json:"date"`           // дата в формате YYYY-MM-DD
	Time        string    `json:"time,omitempty"` // время в формате HH:MM, опционально
	Description string    `json:"description,omitempty"`
}

// EventRequest представляет запрос на создание события
type EventRequest struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time,omitempty"`
	Description string `json:"description,omitempty"`
}

// EventListResponse представляет события за один день
type EventListResponse struct {
	Date   string  `json:"date"`
	Events []Event `json:"events"`
	Count  int     `json:"count"`
}

// EventRangeResponse представляет события за диапазон дат, сгруппированные
// по дате. Каждая дата диапазона присутствует в ответе, даже пустая.
type EventRangeResponse struct {
	EventsByDate map[string][]Event `json:"events_by_date"`
	StartDate    string             `json:"start_date"`
	EndDate      string             `json:"end_date"`
	Total        int                `json:"total"`
}

// SyncEventsResponse представляет события, изменённые после отметки since
type SyncEventsResponse struct {
	SyncedAt time.Time `json:"synced_at"` // серверное время выдачи, клиент передаёт его в следующий sync
	Events   []Event   `json:"events"`
	Count    int       `json:"count"`
}

// BatchEventsRequest представляет запрос на пакетное создание событий.
// Пакет валидируется целиком до первой вставки.
type BatchEventsRequest struct {
	Events []EventRequest `json:"events"`
}

// BatchEventsResponse представляет результат пакетного создания
type BatchEventsResponse struct {
	Events  []Event `json:"events"`
	Created int     `json:"created"`
}

// DeleteAllResponse представляет результат полной очистки событий
type DeleteAllResponse struct {
	Deleted int `json:"deleted"`
}

// ExportResponse представляет полный дамп данных пользователя
type ExportResponse struct {
	ExportedAt time.Time  `json:"exported_at"`
	Documents  []Document `json:"documents"`
	Events     []Event    `json:"events"`
}
