package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/pagekeeper/internal/models"
	"github.com/iudanet/pagekeeper/internal/server/storage"
	"github.com/iudanet/pagekeeper/pkg/api"
)

// mockEventStorage is a mock implementation of EventStorage for testing
type mockEventStorage struct {
	events      []*models.Event
	createError error
	listError   error
	deleteError error
	sinceArg    time.Time // Track the since argument passed to ListEventsSince
	batchCalls  int       // Track CreateEvents invocations
}

func (m *mockEventStorage) CreateEvent(ctx context.Context, event *models.Event) error {
	if m.createError != nil {
		return m.createError
	}
	m.events = append(m.events, event)
	return nil
}

func (m *mockEventStorage) CreateEvents(ctx context.Context, events []*models.Event) error {
	m.batchCalls++
	if m.createError != nil {
		return m.createError
	}
	m.events = append(m.events, events...)
	return nil
}

func (m *mockEventStorage) ListEventsOn(ctx context.Context, userID, date string) ([]*models.Event, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	var result []*models.Event
	for _, event := range m.events {
		if event.Date == date {
			result = append(result, event)
		}
	}
	return result, nil
}

func (m *mockEventStorage) ListEventsRange(ctx context.Context, userID, startDate, endDate string) ([]*models.Event, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	var result []*models.Event
	for _, event := range m.events {
		if event.Date >= startDate && event.Date <= endDate {
			result = append(result, event)
		}
	}
	return result, nil
}

func (m *mockEventStorage) ListEventsSince(ctx context.Context, userID string, since time.Time) ([]*models.Event, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	m.sinceArg = since
	var result []*models.Event
	for _, event := range m.events {
		if event.UpdatedAt.After(since) {
			result = append(result, event)
		}
	}
	return result, nil
}

func (m *mockEventStorage) DeleteEvent(ctx context.Context, userID, eventID string) error {
	if m.deleteError != nil {
		return m.deleteError
	}
	for i, event := range m.events {
		if event.ID == eventID {
			m.events = append(m.events[:i], m.events[i+1:]...)
			return nil
		}
	}
	return storage.ErrEventNotFound
}

func (m *mockEventStorage) DeleteAllEvents(ctx context.Context, userID string) (int, error) {
	if m.deleteError != nil {
		return 0, m.deleteError
	}
	count := len(m.events)
	m.events = nil
	return count, nil
}

func marshalBody(t *testing.T, v interface{}) []byte {
	t.Helper()
	body, err := json.Marshal(v)
	require.NoError(t, err)
	return body
}

func TestEventHandler_Create_Success(t *testing.T) {
	logger := setupTestLogger()
	eventStorage := &mockEventStorage{}
	handler := NewEventHandler(logger, eventStorage)

	body := marshalBody(t, api.EventRequest{
		Title:       "Team Standup",
		Date:        "2025-04-01",
		Time:        "09:30",
		Description: "Daily sync",
	})

	w := httptest.NewRecorder()
	handler.Create(w, authorizedRequest(http.MethodPost, "/api/v1/events", body))

	assert.Equal(t, http.StatusCreated, w.Code)

	var response api.Event
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)

	assert.NotEmpty(t, response.ID)
	assert.Equal(t, "Team Standup", response.Title)
	assert.Equal(t, "2025-04-01", response.Date)
	assert.Equal(t, "09:30", response.Time)
	assert.False(t, response.CreatedAt.IsZero())

	require.Len(t, eventStorage.events, 1)
	assert.Equal(t, "user123", eventStorage.events[0].UserID)
}

func TestEventHandler_Create_AllDayEvent(t *testing.T) {
	logger := setupTestLogger()
	eventStorage := &mockEventStorage{}
	handler := NewEventHandler(logger, eventStorage)

	// Пустое время означает событие на весь день
	body := marshalBody(t, api.EventRequest{
		Title: "Conference",
		Date:  "2025-04-01",
	})

	w := httptest.NewRecorder()
	handler.Create(w, authorizedRequest(http.MethodPost, "/api/v1/events", body))

	assert.Equal(t, http.StatusCreated, w.Code)

	var response api.Event
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)
	assert.Empty(t, response.Time)
}

func TestEventHandler_Create_InvalidRequest(t *testing.T) {
	logger := setupTestLogger()
	eventStorage := &mockEventStorage{}
	handler := NewEventHandler(logger, eventStorage)

	tests := []struct {
		name    string
		request api.EventRequest
	}{
		{
			name:    "empty title",
			request: api.EventRequest{Title: "", Date: "2025-04-01"},
		},
		{
			name:    "empty date",
			request: api.EventRequest{Title: "Meeting", Date: ""},
		},
		{
			name:    "wrong date format",
			request: api.EventRequest{Title: "Meeting", Date: "01.04.2025"},
		},
		{
			name:    "wrong time format",
			request: api.EventRequest{Title: "Meeting", Date: "2025-04-01", Time: "9am"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.Create(w, authorizedRequest(http.MethodPost, "/api/v1/events", marshalBody(t, tt.request)))

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	assert.Empty(t, eventStorage.events)
}

func TestEventHandler_Create_Unauthorized(t *testing.T) {
	logger := setupTestLogger()
	handler := NewEventHandler(logger, &mockEventStorage{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", nil)

	w := httptest.NewRecorder()
	handler.Create(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEventHandler_ListOn_Success(t *testing.T) {
	logger := setupTestLogger()
	now := time.Now()
	eventStorage := &mockEventStorage{
		events: []*models.Event{
			{ID: "ev1", UserID: "user123", Title: "Standup", Date: "2025-04-01", Time: "09:30", CreatedAt: now, UpdatedAt: now},
			{ID: "ev2", UserID: "user123", Title: "Lunch", Date: "2025-04-01", Time: "13:00", CreatedAt: now, UpdatedAt: now},
			{ID: "ev3", UserID: "user123", Title: "Other day", Date: "2025-04-02", CreatedAt: now, UpdatedAt: now},
		},
	}
	handler := NewEventHandler(logger, eventStorage)

	w := httptest.NewRecorder()
	handler.ListOn(w, authorizedRequest(http.MethodGet, "/api/v1/events?date=2025-04-01", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var response api.EventListResponse
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)

	assert.Equal(t, "2025-04-01", response.Date)
	assert.Equal(t, 2, response.Count)
	require.Len(t, response.Events, 2)
}

func TestEventHandler_ListOn_InvalidDate(t *testing.T) {
	logger := setupTestLogger()
	handler := NewEventHandler(logger, &mockEventStorage{})

	tests := []struct {
		name string
		url  string
	}{
		{"missing date", "/api/v1/events"},
		{"wrong format", "/api/v1/events?date=2025/04/01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.ListOn(w, authorizedRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestEventHandler_Range_Success(t *testing.T) {
	logger := setupTestLogger()
	now := time.Now()
	eventStorage := &mockEventStorage{
		events: []*models.Event{
			{ID: "ev1", UserID: "user123", Title: "First", Date: "2025-04-01", Time: "09:00", CreatedAt: now, UpdatedAt: now},
			{ID: "ev2", UserID: "user123", Title: "Second", Date: "2025-04-01", Time: "15:00", CreatedAt: now, UpdatedAt: now},
			{ID: "ev3", UserID: "user123", Title: "Third", Date: "2025-04-03", CreatedAt: now, UpdatedAt: now},
		},
	}
	handler := NewEventHandler(logger, eventStorage)

	w := httptest.NewRecorder()
	handler.Range(w, authorizedRequest(http.MethodGet, "/api/v1/events/range?start_date=2025-04-01&end_date=2025-04-04", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var response api.EventRangeResponse
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)

	assert.Equal(t, "2025-04-01", response.StartDate)
	assert.Equal(t, "2025-04-04", response.EndDate)
	assert.Equal(t, 3, response.Total)

	// Каждая дата диапазона присутствует, даже пустая
	require.Len(t, response.EventsByDate, 4)
	assert.Len(t, response.EventsByDate["2025-04-01"], 2)
	assert.Empty(t, response.EventsByDate["2025-04-02"])
	assert.Len(t, response.EventsByDate["2025-04-03"], 1)
	assert.Empty(t, response.EventsByDate["2025-04-04"])
}

func TestEventHandler_Range_InvalidRange(t *testing.T) {
	logger := setupTestLogger()
	handler := NewEventHandler(logger, &mockEventStorage{})

	tests := []struct {
		name string
		url  string
	}{
		{"missing start", "/api/v1/events/range?end_date=2025-04-01"},
		{"missing end", "/api/v1/events/range?start_date=2025-04-01"},
		{"start after end", "/api/v1/events/range?start_date=2025-04-05&end_date=2025-04-01"},
		{"bad format", "/api/v1/events/range?start_date=2025-4-1&end_date=2025-04-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.Range(w, authorizedRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestEventHandler_Range_WidthLimit(t *testing.T) {
	logger := setupTestLogger()
	handler := NewEventHandler(logger, &mockEventStorage{})

	tests := []struct {
		name     string
		url      string
		wantCode int
	}{
		// 2025-01-01..2025-04-02 это ровно 92 дня
		{"at the limit", "/api/v1/events/range?start_date=2025-01-01&end_date=2025-04-02", http.StatusOK},
		{"over the limit", "/api/v1/events/range?start_date=2025-01-01&end_date=2025-04-03", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.Range(w, authorizedRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestEventHandler_Sync_FullHistory(t *testing.T) {
	logger := setupTestLogger()
	now := time.Now()
	eventStorage := &mockEventStorage{
		events: []*models.Event{
			{ID: "ev1", UserID: "user123", Title: "Old", Date: "2025-01-01", CreatedAt: now.Add(-48 * time.Hour), UpdatedAt: now.Add(-48 * time.Hour)},
			{ID: "ev2", UserID: "user123", Title: "New", Date: "2025-04-01", CreatedAt: now, UpdatedAt: now},
		},
	}
	handler := NewEventHandler(logger, eventStorage)

	// Без since выгружается вся история
	w := httptest.NewRecorder()
	handler.Sync(w, authorizedRequest(http.MethodGet, "/api/v1/events/sync", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var response api.SyncEventsResponse
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)

	assert.Equal(t, 2, response.Count)
	assert.False(t, response.SyncedAt.IsZero())
	assert.True(t, eventStorage.sinceArg.IsZero())
}

func TestEventHandler_Sync_Incremental(t *testing.T) {
	logger := setupTestLogger()
	pivot := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	eventStorage := &mockEventStorage{
		events: []*models.Event{
			{ID: "ev1", UserID: "user123", Title: "Before", Date: "2025-03-01", UpdatedAt: pivot.Add(-time.Hour)},
			{ID: "ev2", UserID: "user123", Title: "After", Date: "2025-04-02", UpdatedAt: pivot.Add(time.Hour)},
		},
	}
	handler := NewEventHandler(logger, eventStorage)

	w := httptest.NewRecorder()
	handler.Sync(w, authorizedRequest(http.MethodGet, "/api/v1/events/sync?since=2025-04-01T12:00:00Z", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var response api.SyncEventsResponse
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)

	assert.Equal(t, 1, response.Count)
	require.Len(t, response.Events, 1)
	assert.Equal(t, "After", response.Events[0].Title)
	assert.True(t, eventStorage.sinceArg.Equal(pivot))
}

func TestEventHandler_Sync_InvalidSince(t *testing.T) {
	logger := setupTestLogger()
	handler := NewEventHandler(logger, &mockEventStorage{})

	w := httptest.NewRecorder()
	handler.Sync(w, authorizedRequest(http.MethodGet, "/api/v1/events/sync?since=yesterday", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEventHandler_CreateBatch_Success(t *testing.T) {
	logger := setupTestLogger()
	eventStorage := &mockEventStorage{}
	handler := NewEventHandler(logger, eventStorage)

	body := marshalBody(t, api.BatchEventsRequest{
		Events: []api.EventRequest{
			{Title: "Standup", Date: "2025-04-01", Time: "09:30"},
			{Title: "Lunch", Date: "2025-04-01", Time: "13:00"},
			{Title: "Conference", Date: "2025-04-02"},
		},
	})

	w := httptest.NewRecorder()
	handler.CreateBatch(w, authorizedRequest(http.MethodPost, "/api/v1/events/batch", body))

	assert.Equal(t, http.StatusCreated, w.Code)

	var response api.BatchEventsResponse
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)

	assert.Equal(t, 3, response.Created)
	require.Len(t, response.Events, 3)
	assert.Len(t, eventStorage.events, 3)
	assert.Equal(t, 1, eventStorage.batchCalls)
}

func TestEventHandler_CreateBatch_Empty(t *testing.T) {
	logger := setupTestLogger()
	eventStorage := &mockEventStorage{}
	handler := NewEventHandler(logger, eventStorage)

	body := marshalBody(t, api.BatchEventsRequest{})

	w := httptest.NewRecorder()
	handler.CreateBatch(w, authorizedRequest(http.MethodPost, "/api/v1/events/batch", body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, eventStorage.batchCalls)
}

func TestEventHandler_CreateBatch_InvalidItem(t *testing.T) {
	logger := setupTestLogger()
	eventStorage := &mockEventStorage{}
	handler := NewEventHandler(logger, eventStorage)

	// Второе событие невалидно, вся партия отклоняется до вставки
	body := marshalBody(t, api.BatchEventsRequest{
		Events: []api.EventRequest{
			{Title: "Valid", Date: "2025-04-01"},
			{Title: "", Date: "2025-04-01"},
		},
	})

	w := httptest.NewRecorder()
	handler.CreateBatch(w, authorizedRequest(http.MethodPost, "/api/v1/events/batch", body))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResp api.ErrorResponse
	err := json.NewDecoder(w.Body).Decode(&errResp)
	require.NoError(t, err)
	assert.Contains(t, errResp.Message, "event 1")

	assert.Equal(t, 0, eventStorage.batchCalls)
	assert.Empty(t, eventStorage.events)
}

func TestEventHandler_Delete_Success(t *testing.T) {
	logger := setupTestLogger()
	eventStorage := &mockEventStorage{
		events: []*models.Event{
			{ID: "ev1", UserID: "user123", Title: "To delete", Date: "2025-04-01"},
		},
	}
	handler := NewEventHandler(logger, eventStorage)

	req := authorizedRequest(http.MethodDelete, "/api/v1/events/ev1", nil)
	req.SetPathValue("id", "ev1")

	w := httptest.NewRecorder()
	handler.Delete(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, eventStorage.events)
}

func TestEventHandler_Delete_NotFound(t *testing.T) {
	logger := setupTestLogger()
	handler := NewEventHandler(logger, &mockEventStorage{})

	req := authorizedRequest(http.MethodDelete, "/api/v1/events/missing", nil)
	req.SetPathValue("id", "missing")

	w := httptest.NewRecorder()
	handler.Delete(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEventHandler_DeleteAll_Confirmed(t *testing.T) {
	logger := setupTestLogger()
	eventStorage := &mockEventStorage{
		events: []*models.Event{
			{ID: "ev1", UserID: "user123", Title: "One", Date: "2025-04-01"},
			{ID: "ev2", UserID: "user123", Title: "Two", Date: "2025-04-02"},
		},
	}
	handler := NewEventHandler(logger, eventStorage)

	w := httptest.NewRecorder()
	handler.DeleteAll(w, authorizedRequest(http.MethodDelete, "/api/v1/events?confirm=DELETE_ALL", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var response api.DeleteAllResponse
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)

	assert.Equal(t, 2, response.Deleted)
	assert.Empty(t, eventStorage.events)
}

func TestEventHandler_DeleteAll_WithoutConfirmation(t *testing.T) {
	logger := setupTestLogger()
	eventStorage := &mockEventStorage{
		events: []*models.Event{
			{ID: "ev1", UserID: "user123", Title: "Survivor", Date: "2025-04-01"},
		},
	}
	handler := NewEventHandler(logger, eventStorage)

	tests := []struct {
		name string
		url  string
	}{
		{"no confirm param", "/api/v1/events"},
		{"wrong phrase", "/api/v1/events?confirm=yes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.DeleteAll(w, authorizedRequest(http.MethodDelete, tt.url, nil))

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	// События не тронуты
	assert.Len(t, eventStorage.events, 1)
}

func TestEventHandler_Create_StorageError(t *testing.T) {
	logger := setupTestLogger()
	eventStorage := &mockEventStorage{createError: errors.New("database error")}
	handler := NewEventHandler(logger, eventStorage)

	body := marshalBody(t, api.EventRequest{Title: "Meeting", Date: "2025-04-01"})

	w := httptest.NewRecorder()
	handler.Create(w, authorizedRequest(http.MethodPost, "/api/v1/events", body))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
