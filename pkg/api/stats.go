package api

// BusiestDay описывает день с наибольшим числом событий
type BusiestDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// StatsResponse представляет агрегаты для дашборда
type StatsResponse struct {
	BusiestDay      *BusiestDay `json:"busiest_day"` // null, если событий нет
	TotalDocuments  int         `json:"total_documents"`
	TotalEvents     int         `json:"total_events"`
	EventsThisMonth int         `json:"events_this_month"`
}

// HealthResponse представляет состояние сервера
type HealthResponse struct {
	Status   string `json:"status"`
	Time     string `json:"time"`
	Database string `json:"database"` // up | down
}
