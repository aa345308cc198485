package workspace

import (
	"context"

	"github.com/iudanet/pagekeeper/internal/models"
	api "github.com/iudanet/pagekeeper/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс клиентских операций рабочего пространства:
// список и удаление документов, календарь, сводки и дашборд
type Service interface {
	// ListDocuments возвращает документы пользователя, отсортированные
	// сервером по времени обновления
	ListDocuments(ctx context.Context) ([]models.Document, error)
	// DeleteDocument удаляет документ на сервере
	DeleteDocument(ctx context.Context, id string) error

	// AddEvent создает событие календаря. Время опционально,
	// пустое время означает событие на весь день
	AddEvent(ctx context.Context, title, date, eventTime, description string) (*api.Event, error)
	// EventsOn возвращает события за день. Пустая дата означает сегодня
	EventsOn(ctx context.Context, date string) (*api.EventListResponse, error)
	// Agenda возвращает события за диапазон дат, сгруппированные по дате
	Agenda(ctx context.Context, startDate, endDate string) (*api.EventRangeResponse, error)
	// DeleteEvent удаляет событие по ID
	DeleteEvent(ctx context.Context, id string) error
	// ClearEvents удаляет все события пользователя. Сервер требует
	// точную фразу подтверждения, клиент передает ее как есть
	ClearEvents(ctx context.Context, confirm string) (int, error)

	// Summary запрашивает AI сводку расписания за день или диапазон
	Summary(ctx context.Context, req api.SummaryRequest) (*api.SummaryResponse, error)
	// Stats возвращает агрегаты для дашборда
	Stats(ctx context.Context) (*api.StatsResponse, error)
	// Export возвращает полный дамп документов и событий
	Export(ctx context.Context) (*api.ExportResponse, error)
	// Health проверяет доступность сервера, работает без авторизации
	Health(ctx context.Context) (*api.HealthResponse, error)
}
