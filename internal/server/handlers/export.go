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

// ExportStorage определяет выборки для полного дампа данных пользователя
type ExportStorage interface {
	ListDocuments(ctx context.Context, userID string) ([]*models.Document, error)
	ListAllEvents(ctx context.Context, userID string) ([]*models.Event, error)
}

// ExportHandler обрабатывает выгрузку всех данных пользователя
type ExportHandler struct {
	logger  *slog.Logger
	storage ExportStorage
}

// NewExportHandler создает новый handler для экспорта
func NewExportHandler(logger *slog.Logger, storage ExportStorage) *ExportHandler {
	return &ExportHandler{
		logger:  logger,
		storage: storage,
	}
}

// Export обрабатывает GET /api/v1/export
// Полный дамп документов и событий пользователя одним ответом
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	docs, err := h.storage.ListDocuments(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list documents", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	events, err := h.storage.ListAllEvents(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list events", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	apiDocs := make([]api.Document, 0, len(docs))
	for _, doc := range docs {
		apiDocs = append(apiDocs, documentToAPI(doc))
	}

	apiEvents := make([]api.Event, 0, len(events))
	for _, event := range events {
		apiEvents = append(apiEvents, eventToAPI(event))
	}

	h.logger.InfoContext(ctx, "export generated",
		slog.String("user_id", userID),
		slog.Int("documents", len(apiDocs)),
		slog.Int("events", len(apiEvents)))

	resp := api.ExportResponse{
		ExportedAt: time.Now(),
		Documents:  apiDocs,
		Events:     apiEvents,
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// sendJSON отправляет JSON ответ
func (h *ExportHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h *ExportHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	h.sendJSON(w, resp, statusCode)
}
