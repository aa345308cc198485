package api

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/iudanet/pagekeeper/pkg/api"
)

// CreateEvent создает событие календаря
func (c *Client) CreateEvent(ctx context.Context, req api.EventRequest) (*api.Event, error) {
	var resp api.Event
	err := c.doRequest(ctx, "POST", "/api/v1/events", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("create event failed: %w", err)
	}
	return &resp, nil
}

// EventsOn возвращает события за один день
func (c *Client) EventsOn(ctx context.Context, date string) (*api.EventListResponse, error) {
	var resp api.EventListResponse
	query := url.Values{"date": {date}}
	err := c.doRequest(ctx, "GET", "/api/v1/events?"+query.Encode(), nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list events failed: %w", err)
	}
	return &resp, nil
}

// EventRange возвращает события за диапазон дат, сгруппированные по дате
func (c *Client) EventRange(ctx context.Context, startDate, endDate string) (*api.EventRangeResponse, error) {
	var resp api.EventRangeResponse
	query := url.Values{
		"start_date": {startDate},
		"end_date":   {endDate},
	}
	err := c.doRequest(ctx, "GET", "/api/v1/events/range?"+query.Encode(), nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("event range failed: %w", err)
	}
	return &resp, nil
}

// SyncEvents возвращает события, измененные после отметки since
func (c *Client) SyncEvents(ctx context.Context, since time.Time) (*api.SyncEventsResponse, error) {
	var resp api.SyncEventsResponse
	query := url.Values{"since": {since.UTC().Format(time.RFC3339)}}
	err := c.doRequest(ctx, "GET", "/api/v1/events/sync?"+query.Encode(), nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("sync events failed: %w", err)
	}
	return &resp, nil
}

// BatchCreateEvents создает несколько событий одним запросом
func (c *Client) BatchCreateEvents(ctx context.Context, req api.BatchEventsRequest) (*api.BatchEventsResponse, error) {
	var resp api.BatchEventsResponse
	err := c.doRequest(ctx, "POST", "/api/v1/events/batch", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("batch create events failed: %w", err)
	}
	return &resp, nil
}

// DeleteEvent удаляет событие по идентификатору
func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	err := c.doRequest(ctx, "DELETE", "/api/v1/events/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return fmt.Errorf("delete event failed: %w", err)
	}
	return nil
}

// DeleteAllEvents удаляет все события пользователя.
// Сервер требует подтверждение точной фразой confirm=DELETE_ALL.
func (c *Client) DeleteAllEvents(ctx context.Context, confirm string) (*api.DeleteAllResponse, error) {
	var resp api.DeleteAllResponse
	query := url.Values{"confirm": {confirm}}
	err := c.doRequest(ctx, "DELETE", "/api/v1/events?"+query.Encode(), nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("delete all events failed: %w", err)
	}
	return &resp, nil
}
