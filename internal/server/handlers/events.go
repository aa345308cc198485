package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/pagekeeper/internal/models"
	"github.com/iudanet/pagekeeper/internal/server/storage"
	"github.com/iudanet/pagekeeper/internal/validation"
	"github.com/iudanet/pagekeeper/pkg/api"
)

// MaxRangeDays максимальная ширина диапазона дат в запросах событий
const MaxRangeDays = 92

// EventStorage определяет интерфейс хранилища событий,
// нужный этому handler'у
type EventStorage interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	CreateEvents(ctx context.Context, events []*models.Event) error
	ListEventsOn(ctx context.Context, userID, date string) ([]*models.Event, error)
	ListEventsRange(ctx context.Context, userID, startDate, endDate string) ([]*models.Event, error)
	ListEventsSince(ctx context.Context, userID string, since time.Time) ([]*models.Event, error)
	DeleteEvent(ctx context.Context, userID, eventID string) error
	DeleteAllEvents(ctx context.Context, userID string) (int, error)
}

// EventHandler обрабатывает запросы календаря
type EventHandler struct {
	logger  *slog.Logger
	storage EventStorage
}

// NewEventHandler создает новый handler для событий
func NewEventHandler(logger *slog.Logger, storage EventStorage) *EventHandler {
	return &EventHandler{
		logger:  logger,
		storage: storage,
	}
}

// Create обрабатывает POST /api/v1/events
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode event request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validateEventRequest(req); err != nil {
		h.logger.WarnContext(ctx, "invalid event", slog.Any("error", err))
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	event := newEvent(userID, req)
	if err := h.storage.CreateEvent(ctx, event); err != nil {
		h.logger.ErrorContext(ctx, "failed to create event", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "event created",
		slog.String("user_id", userID),
		slog.String("event_id", event.ID),
		slog.String("date", event.Date))

	h.sendJSON(w, eventToAPI(event), http.StatusCreated)
}

// ListOn обрабатывает GET /api/v1/events?date=YYYY-MM-DD
func (h *EventHandler) ListOn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	date := r.URL.Query().Get("date")
	if err := validation.ValidateEventDate(date); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	events, err := h.storage.ListEventsOn(ctx, userID, date)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list events", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	apiEvents := make([]api.Event, 0, len(events))
	for _, event := range events {
		apiEvents = append(apiEvents, eventToAPI(event))
	}

	resp := api.EventListResponse{
		Date:   date,
		Events: apiEvents,
		Count:  len(apiEvents),
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// Range обрабатывает GET /api/v1/events/range?start_date=&end_date=
// Каждая дата диапазона присутствует в ответе, даже без событий
func (h *EventHandler) Range(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	if err := validation.ValidateDateRange(startDate, endDate); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	start, _ := time.Parse(models.DateLayout, startDate)
	end, _ := time.Parse(models.DateLayout, endDate)
	if days := int(end.Sub(start).Hours()/24) + 1; days > MaxRangeDays {
		h.sendError(w, fmt.Sprintf("date range must not exceed %d days", MaxRangeDays), http.StatusBadRequest)
		return
	}

	events, err := h.storage.ListEventsRange(ctx, userID, startDate, endDate)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list events", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Сначала пустой список на каждую дату, потом раскладываем события
	eventsByDate := make(map[string][]api.Event)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		eventsByDate[d.Format(models.DateLayout)] = []api.Event{}
	}
	for _, event := range events {
		eventsByDate[event.Date] = append(eventsByDate[event.Date], eventToAPI(event))
	}

	resp := api.EventRangeResponse{
		EventsByDate: eventsByDate,
		StartDate:    startDate,
		EndDate:      endDate,
		Total:        len(events),
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// Sync обрабатывает GET /api/v1/events/sync?since=RFC3339
// Инкрементальная выгрузка: события, изменённые после отметки since.
// Без параметра отдается вся история.
func (h *EventHandler) Sync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var since time.Time
	if sinceStr := r.URL.Query().Get("since"); sinceStr != "" {
		parsed, err := time.Parse(time.RFC3339, sinceStr)
		if err != nil {
			h.logger.WarnContext(ctx, "invalid since parameter", slog.String("since", sinceStr), slog.Any("error", err))
			h.sendError(w, "since must be an RFC3339 timestamp", http.StatusBadRequest)
			return
		}
		since = parsed
	}

	events, err := h.storage.ListEventsSince(ctx, userID, since)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to sync events", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	apiEvents := make([]api.Event, 0, len(events))
	for _, event := range events {
		apiEvents = append(apiEvents, eventToAPI(event))
	}

	resp := api.SyncEventsResponse{
		SyncedAt: time.Now(),
		Events:   apiEvents,
		Count:    len(apiEvents),
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// CreateBatch обрабатывает POST /api/v1/events/batch
// Вся партия валидируется до первой вставки: либо создаются все
// события, либо ни одного
func (h *EventHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.BatchEventsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode batch request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if len(req.Events) == 0 {
		h.sendError(w, "events list cannot be empty", http.StatusBadRequest)
		return
	}

	for i, eventReq := range req.Events {
		if err := validateEventRequest(eventReq); err != nil {
			h.logger.WarnContext(ctx, "invalid event in batch", slog.Int("index", i), slog.Any("error", err))
			h.sendError(w, fmt.Sprintf("event %d: %v", i, err), http.StatusBadRequest)
			return
		}
	}

	events := make([]*models.Event, 0, len(req.Events))
	for _, eventReq := range req.Events {
		events = append(events, newEvent(userID, eventReq))
	}

	if err := h.storage.CreateEvents(ctx, events); err != nil {
		h.logger.ErrorContext(ctx, "failed to create events batch", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "events batch created",
		slog.String("user_id", userID),
		slog.Int("count", len(events)))

	apiEvents := make([]api.Event, 0, len(events))
	for _, event := range events {
		apiEvents = append(apiEvents, eventToAPI(event))
	}

	resp := api.BatchEventsResponse{
		Events:  apiEvents,
		Created: len(apiEvents),
	}

	h.sendJSON(w, resp, http.StatusCreated)
}

// Delete обрабатывает DELETE /api/v1/events/{id}
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	eventID := r.PathValue("id")
	if eventID == "" {
		h.sendError(w, "event id is required", http.StatusBadRequest)
		return
	}

	if err := h.storage.DeleteEvent(ctx, userID, eventID); err != nil {
		if errors.Is(err, storage.ErrEventNotFound) {
			h.sendError(w, "event not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete event", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "event deleted",
		slog.String("user_id", userID),
		slog.String("event_id", eventID))

	w.WriteHeader(http.StatusNoContent)
}

// DeleteAll обрабатывает DELETE /api/v1/events?confirm=DELETE_ALL
// Без точной фразы подтверждения запрос отклоняется
func (h *EventHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if r.URL.Query().Get("confirm") != api.ConfirmDeleteAll {
		h.sendError(w, fmt.Sprintf("confirmation required: pass confirm=%s", api.ConfirmDeleteAll), http.StatusBadRequest)
		return
	}

	deleted, err := h.storage.DeleteAllEvents(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to delete all events", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "all events deleted",
		slog.String("user_id", userID),
		slog.Int("deleted", deleted))

	h.sendJSON(w, api.DeleteAllResponse{Deleted: deleted}, http.StatusOK)
}

// validateEventRequest проверяет поля запроса на создание события
func validateEventRequest(req api.EventRequest) error {
	if err := validation.ValidateTitle(req.Title); err != nil {
		return err
	}
	if err := validation.ValidateEventDate(req.Date); err != nil {
		return err
	}
	if err := validation.ValidateEventTime(req.Time); err != nil {
		return err
	}
	return nil
}

// newEvent собирает событие из запроса, id и timestamps назначает сервер
func newEvent(userID string, req api.EventRequest) *models.Event {
	now := time.Now()
	return &models.Event{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       req.Title,
		Date:        req.Date,
		Time:        req.Time,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// eventToAPI конвертирует событие в wire-формат
func eventToAPI(event *models.Event) api.Event {
	return api.Event{
		ID:          event.ID,
		Title:       event.Title,
		Date:        event.Date,
		Time:        event.Time,
		Description: event.Description,
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
	}
}

// sendJSON отправляет JSON ответ
func (h *EventHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h *EventHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	h.sendJSON(w, resp, statusCode)
}
