package api

import "time"

// SummaryRequest представляет запрос на AI-сводку расписания.
// Указывается либо один день (date), либо диапазон start_date..end_date.
// Пустой запрос означает сводку на сегодня.
type SummaryRequest struct {
	Date      string `json:"date,omitempty"`       // YYYY-MM-DD
	StartDate string `json:"start_date,omitempty"` // начало диапазона
	EndDate   string `json:"end_date,omitempty"`   // конец диапазона
}

// SummaryResponse представляет сгенерированную сводку
type SummaryResponse struct {
	GeneratedAt time.Time `json:"generated_at"`
	Summary     string    `json:"summary"`
	EventCount  int       `json:"event_count"` // сколько событий попало в сводку
}
