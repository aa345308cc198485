package models

// BusiestDay описывает день с наибольшим числом событий
type BusiestDay struct {
	Date  string `json:"date"`  // дата в формате YYYY-MM-DD
	Count int    `json:"count"` // число событий в этот день
}

// Stats представляет агрегаты рабочего пространства для дашборда
type Stats struct {
	BusiestDay      *BusiestDay `json:"busiest_day"`       // nil, если событий нет
	TotalDocuments  int         `json:"total_documents"`   // всего документов пользователя
	TotalEvents     int         `json:"total_events"`      // всего событий пользователя
	EventsThisMonth int         `json:"events_this_month"` // события текущего календарного месяца
}
