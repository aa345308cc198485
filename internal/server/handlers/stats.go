package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/pagekeeper/internal/models"
	"github.com/iudanet/pagekeeper/pkg/api"
)

// StatsStorage определяет агрегатные запросы для дашборда
type StatsStorage interface {
	CountDocuments(ctx context.Context, userID string) (int, error)
	CountEvents(ctx context.Context, userID string) (int, error)
	CountEventsBetween(ctx context.Context, userID, startDate, endDate string) (int, error)
	BusiestDay(ctx context.Context, userID string) (*models.BusiestDay, error)
}

// StatsHandler обрабатывает запросы статистики рабочего пространства
type StatsHandler struct {
	logger  *slog.Logger
	storage StatsStorage
}

// NewStatsHandler создает новый handler для статистики
func NewStatsHandler(logger *slog.Logger, storage StatsStorage) *StatsHandler {
	return &StatsHandler{
		logger:  logger,
		storage: storage,
	}
}

// Stats обрабатывает GET /api/v1/stats
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	totalDocuments, err := h.storage.CountDocuments(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to count documents", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	totalEvents, err := h.storage.CountEvents(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to count events", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Границы текущего календарного месяца
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	eventsThisMonth, err := h.storage.CountEventsBetween(ctx, userID,
		monthStart.Format(models.DateLayout), monthEnd.Format(models.DateLayout))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to count month events", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	busiest, err := h.storage.BusiestDay(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get busiest day", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.StatsResponse{
		TotalDocuments:  totalDocuments,
		TotalEvents:     totalEvents,
		EventsThisMonth: eventsThisMonth,
	}
	if busiest != nil {
		resp.BusiestDay = &api.BusiestDay{
			Date:  busiest.Date,
			Count: busiest.Count,
		}
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// sendJSON отправляет JSON ответ
func (h *StatsHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h *StatsHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	h.sendJSON(w, resp, statusCode)
}
