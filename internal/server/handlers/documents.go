package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/pagekeeper/internal/models"
	"github.com/iudanet/pagekeeper/internal/server/storage"
	"github.com/iudanet/pagekeeper/internal/validation"
	"github.com/iudanet/pagekeeper/pkg/api"
)

// DocumentStorage определяет интерфейс хранилища документов,
// нужный этому handler'у
type DocumentStorage interface {
	CreateDocument(ctx context.Context, userID string, doc *models.Document) error
	GetDocument(ctx context.Context, userID, docID string) (*models.Document, error)
	ListDocuments(ctx context.Context, userID string) ([]*models.Document, error)
	UpdateDocument(ctx context.Context, userID string, doc *models.Document) error
	DeleteDocument(ctx context.Context, userID, docID string) error
}

// DocumentHandler обрабатывает CRUD запросы документов
type DocumentHandler struct {
	logger  *slog.Logger
	storage DocumentStorage
}

// NewDocumentHandler создает новый handler для документов
func NewDocumentHandler(logger *slog.Logger, storage DocumentStorage) *DocumentHandler {
	return &DocumentHandler{
		logger:  logger,
		storage: storage,
	}
}

// Create обрабатывает POST /api/v1/documents
// Создание нового документа. Сервер назначает id и оба timestamp.
func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.DocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode document request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateTitle(req.Title); err != nil {
		h.logger.WarnContext(ctx, "invalid document title", slog.Any("error", err))
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Сервер хранит присланное как есть: ноль блоков тоже допустим,
	// пустой параграф материализует клиентский редактор
	now := time.Now()
	doc := &models.Document{
		ID:         uuid.New().String(),
		Title:      req.Title,
		Blocks:     blocksFromAPI(req.Content),
		Properties: req.Properties,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := h.storage.CreateDocument(ctx, userID, doc); err != nil {
		h.logger.ErrorContext(ctx, "failed to create document", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "document created",
		slog.String("user_id", userID),
		slog.String("document_id", doc.ID))

	h.sendJSON(w, documentToAPI(doc), http.StatusCreated)
}

// Get обрабатывает GET /api/v1/documents/{id}
func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	docID := r.PathValue("id")
	if docID == "" {
		h.sendError(w, "document id is required", http.StatusBadRequest)
		return
	}

	doc, err := h.storage.GetDocument(ctx, userID, docID)
	if err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			h.sendError(w, "document not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get document", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, documentToAPI(doc), http.StatusOK)
}

// List обрабатывает GET /api/v1/documents
// Документы пользователя, самые свежие по updated_at первыми
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
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

	apiDocs := make([]api.Document, 0, len(docs))
	for _, doc := range docs {
		apiDocs = append(apiDocs, documentToAPI(doc))
	}

	resp := api.DocumentListResponse{
		Documents: apiDocs,
		Count:     len(apiDocs),
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// Update обрабатывает PUT /api/v1/documents/{id}
// Полная замена документа: заголовок, блоки и свойства перезаписываются
// целиком, updated_at назначается сервером
func (h *DocumentHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	docID := r.PathValue("id")
	if docID == "" {
		h.sendError(w, "document id is required", http.StatusBadRequest)
		return
	}

	var req api.DocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode document request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateTitle(req.Title); err != nil {
		h.logger.WarnContext(ctx, "invalid document title", slog.Any("error", err))
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	doc := &models.Document{
		ID:         docID,
		Title:      req.Title,
		Blocks:     blocksFromAPI(req.Content),
		Properties: req.Properties,
		UpdatedAt:  time.Now(),
	}

	if err := h.storage.UpdateDocument(ctx, userID, doc); err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			h.sendError(w, "document not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update document", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Перечитываем, чтобы вернуть создание и прочие назначенные сервером поля
	updated, err := h.storage.GetDocument(ctx, userID, docID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to reload document", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "document updated",
		slog.String("user_id", userID),
		slog.String("document_id", docID))

	h.sendJSON(w, documentToAPI(updated), http.StatusOK)
}

// Delete обрабатывает DELETE /api/v1/documents/{id}
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	docID := r.PathValue("id")
	if docID == "" {
		h.sendError(w, "document id is required", http.StatusBadRequest)
		return
	}

	if err := h.storage.DeleteDocument(ctx, userID, docID); err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			h.sendError(w, "document not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete document", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "document deleted",
		slog.String("user_id", userID),
		slog.String("document_id", docID))

	w.WriteHeader(http.StatusNoContent)
}

// documentToAPI конвертирует документ в wire-формат
func documentToAPI(doc *models.Document) api.Document {
	return api.Document{
		ID:         doc.ID,
		Title:      doc.Title,
		Content:    blocksToAPI(doc.Blocks),
		Properties: doc.Properties,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
}

func blocksToAPI(blocks []models.Block) []api.Block {
	out := make([]api.Block, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, api.Block{
			Type:     b.Type,
			Content:  api.BlockContent{Text: b.Content.Text},
			Position: b.Position,
		})
	}
	return out
}

func blocksFromAPI(blocks []api.Block) []models.Block {
	out := make([]models.Block, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, models.Block{
			Type:     b.Type,
			Content:  models.BlockContent{Text: b.Content.Text},
			Position: b.Position,
		})
	}
	return out
}

// sendJSON отправляет JSON ответ
func (h *DocumentHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h *DocumentHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	h.sendJSON(w, resp, statusCode)
}
