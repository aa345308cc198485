package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/pagekeeper/internal/models"
	"github.com/iudanet/pagekeeper/internal/validation"
	api "github.com/iudanet/pagekeeper/pkg/api"
)

//go:generate moq -out workspaceapi_mock.go . API

// API defines the server workspace endpoints used by the service
type API interface {
	ListDocuments(ctx context.Context) ([]models.Document, error)
	DeleteDocument(ctx context.Context, id string) error

	CreateEvent(ctx context.Context, req api.EventRequest) (*api.Event, error)
	EventsOn(ctx context.Context, date string) (*api.EventListResponse, error)
	EventRange(ctx context.Context, startDate, endDate string) (*api.EventRangeResponse, error)
	DeleteEvent(ctx context.Context, id string) error
	DeleteAllEvents(ctx context.Context, confirm string) (*api.DeleteAllResponse, error)

	Summary(ctx context.Context, req api.SummaryRequest) (*api.SummaryResponse, error)
	Stats(ctx context.Context) (*api.StatsResponse, error)
	Export(ctx context.Context) (*api.ExportResponse, error)
	Health(ctx context.Context) (*api.HealthResponse, error)
}

// service валидирует запросы на клиенте и переадресует их API
type service struct {
	apiClient API
	logger    *slog.Logger
}

// NewService создает новый сервис рабочего пространства
func NewService(apiClient API, logger *slog.Logger) Service {
	return &service{
		apiClient: apiClient,
		logger:    logger,
	}
}

// ListDocuments returns the user's documents ordered by the server
func (s *service) ListDocuments(ctx context.Context) ([]models.Document, error) {
	docs, err := s.apiClient.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

// DeleteDocument removes a document on the server
func (s *service) DeleteDocument(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("document id cannot be empty")
	}

	if err := s.apiClient.DeleteDocument(ctx, id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	s.logger.Info("document deleted", "document_id", id)
	return nil
}

// AddEvent validates fields client-side and creates a calendar event
func (s *service) AddEvent(ctx context.Context, title, date, eventTime, description string) (*api.Event, error) {
	if err := validation.ValidateTitle(title); err != nil {
		return nil, fmt.Errorf("invalid title: %w", err)
	}
	if err := validation.ValidateEventDate(date); err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}
	if err := validation.ValidateEventTime(eventTime); err != nil {
		return nil, fmt.Errorf("invalid time: %w", err)
	}

	event, err := s.apiClient.CreateEvent(ctx, api.EventRequest{
		Title:       title,
		Date:        date,
		Time:        eventTime,
		Description: description,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.logger.Info("event created", "event_id", event.ID, "date", event.Date)
	return event, nil
}

// EventsOn returns the events of a single day
func (s *service) EventsOn(ctx context.Context, date string) (*api.EventListResponse, error) {
	// Пустая дата означает сегодня
	if date == "" {
		date = time.Now().Format(models.DateLayout)
	}
	if err := validation.ValidateEventDate(date); err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	resp, err := s.apiClient.EventsOn(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return resp, nil
}

// Agenda returns events grouped by date over an inclusive date range
func (s *service) Agenda(ctx context.Context, startDate, endDate string) (*api.EventRangeResponse, error) {
	if err := validation.ValidateDateRange(startDate, endDate); err != nil {
		return nil, err
	}

	resp, err := s.apiClient.EventRange(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch agenda: %w", err)
	}
	return resp, nil
}

// DeleteEvent removes a single event by ID
func (s *service) DeleteEvent(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("event id cannot be empty")
	}

	if err := s.apiClient.DeleteEvent(ctx, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	s.logger.Info("event deleted", "event_id", id)
	return nil
}

// ClearEvents deletes every event of the user.
// Фраза подтверждения проверяется сервером, клиент шлет введенное как есть
func (s *service) ClearEvents(ctx context.Context, confirm string) (int, error) {
	resp, err := s.apiClient.DeleteAllEvents(ctx, confirm)
	if err != nil {
		return 0, fmt.Errorf("failed to clear events: %w", err)
	}

	s.logger.Info("all events deleted", "count", resp.Deleted)
	return resp.Deleted, nil
}

// Summary asks the server for an AI summary of the schedule
func (s *service) Summary(ctx context.Context, req api.SummaryRequest) (*api.SummaryResponse, error) {
	if req.Date != "" {
		if err := validation.ValidateEventDate(req.Date); err != nil {
			return nil, fmt.Errorf("invalid date: %w", err)
		}
	}
	if req.StartDate != "" || req.EndDate != "" {
		if err := validation.ValidateDateRange(req.StartDate, req.EndDate); err != nil {
			return nil, err
		}
	}

	resp, err := s.apiClient.Summary(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to generate summary: %w", err)
	}
	return resp, nil
}

// Stats returns dashboard aggregates
func (s *service) Stats(ctx context.Context) (*api.StatsResponse, error) {
	resp, err := s.apiClient.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stats: %w", err)
	}
	return resp, nil
}

// Export returns the full dump of the user's documents and events
func (s *service) Export(ctx context.Context) (*api.ExportResponse, error) {
	resp, err := s.apiClient.Export(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export data: %w", err)
	}
	return resp, nil
}

// Health checks server availability
func (s *service) Health(ctx context.Context) (*api.HealthResponse, error) {
	resp, err := s.apiClient.Health(ctx)
	if err != nil {
		return nil, fmt.Errorf("health check failed: %w", err)
	}
	return resp, nil
}
