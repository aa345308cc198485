package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/pagekeeper/internal/models"
	"github.com/iudanet/pagekeeper/internal/server/storage"
	"github.com/iudanet/pagekeeper/pkg/api"
)

// mockDocumentStorage is a mock implementation of DocumentStorage for testing.
// Documents are kept in a slice so list order is deterministic.
type mockDocumentStorage struct {
	docs        []*models.Document
	createError error
	getError    error
	listError   error
	updateError error
	deleteError error
}

func (m *mockDocumentStorage) find(docID string) *models.Document {
	for _, doc := range m.docs {
		if doc.ID == docID {
			return doc
		}
	}
	return nil
}

func (m *mockDocumentStorage) CreateDocument(ctx context.Context, userID string, doc *models.Document) error {
	if m.createError != nil {
		return m.createError
	}
	m.docs = append(m.docs, doc)
	return nil
}

func (m *mockDocumentStorage) GetDocument(ctx context.Context, userID, docID string) (*models.Document, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	doc := m.find(docID)
	if doc == nil {
		return nil, storage.ErrDocumentNotFound
	}
	return doc, nil
}

func (m *mockDocumentStorage) ListDocuments(ctx context.Context, userID string) ([]*models.Document, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	return m.docs, nil
}

func (m *mockDocumentStorage) UpdateDocument(ctx context.Context, userID string, doc *models.Document) error {
	if m.updateError != nil {
		return m.updateError
	}
	existing := m.find(doc.ID)
	if existing == nil {
		return storage.ErrDocumentNotFound
	}
	// created_at сохраняется, как в реальном хранилище
	existing.Title = doc.Title
	existing.Blocks = doc.Blocks
	existing.Properties = doc.Properties
	existing.UpdatedAt = doc.UpdatedAt
	return nil
}

func (m *mockDocumentStorage) DeleteDocument(ctx context.Context, userID, docID string) error {
	if m.deleteError != nil {
		return m.deleteError
	}
	for i, doc := range m.docs {
		if doc.ID == docID {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			return nil
		}
	}
	return storage.ErrDocumentNotFound
}

// authorizedRequest builds a request with a user already resolved in context
func authorizedRequest(method, target string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	ctx := context.WithValue(req.Context(), UserIDKey, "user123")
	return req.WithContext(ctx)
}

func TestDocumentHandler_Create_Success(t *testing.T) {
	logger := setupTestLogger()
	docStorage := &mockDocumentStorage{}
	handler := NewDocumentHandler(logger, docStorage)

	reqBody := api.DocumentRequest{
		Title: "Meeting Notes",
		Content: []api.Block{
			{Type: models.BlockTypeParagraph, Content: api.BlockContent{Text: "Agenda"}, Position: 0},
			{Type: models.BlockTypeParagraph, Content: api.BlockContent{Text: "Questions"}, Position: 1},
		},
		Properties: map[string]interface{}{"icon": "notebook"},
	}

	body, err := json.Marshal(reqBody)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	handler.Create(w, authorizedRequest(http.MethodPost, "/api/v1/documents", body))

	assert.Equal(t, http.StatusCreated, w.Code)

	var response api.Document
	err = json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)

	assert.NotEmpty(t, response.ID)
	assert.Equal(t, "Meeting Notes", response.Title)
	require.Len(t, response.Content, 2)
	assert.Equal(t, "Agenda", response.Content[0].Content.Text)
	assert.False(t, response.CreatedAt.IsZero())
	assert.False(t, response.UpdatedAt.IsZero())

	// Документ сохранен в хранилище
	require.Len(t, docStorage.docs, 1)
	assert.Equal(t, response.ID, docStorage.docs[0].ID)
}

func TestDocumentHandler_Create_NoBlocks(t *testing.T) {
	logger := setupTestLogger()
	docStorage := &mockDocumentStorage{}
	handler := NewDocumentHandler(logger, docStorage)

	reqBody := api.DocumentRequest{Title: "Empty Note"}

	body, err := json.Marshal(reqBody)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	handler.Create(w, authorizedRequest(http.MethodPost, "/api/v1/documents", body))

	// Документ без блоков принимается и хранится как есть
	assert.Equal(t, http.StatusCreated, w.Code)

	var response api.Document
	err = json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)
	assert.Empty(t, response.Content)

	require.Len(t, docStorage.docs, 1)
	assert.Empty(t, docStorage.docs[0].Blocks)
}

func TestDocumentHandler_Create_InvalidTitle(t *testing.T) {
	logger := setupTestLogger()
	docStorage := &mockDocumentStorage{}
	handler := NewDocumentHandler(logger, docStorage)

	tests := []struct {
		name  string
		title string
	}{
		{"empty title", ""},
		{"too long", strings.Repeat("a", 257)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := json.Marshal(api.DocumentRequest{Title: tt.title})
			require.NoError(t, err)

			w := httptest.NewRecorder()
			handler.Create(w, authorizedRequest(http.MethodPost, "/api/v1/documents", body))

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestDocumentHandler_Create_InvalidJSON(t *testing.T) {
	logger := setupTestLogger()
	docStorage := &mockDocumentStorage{}
	handler := NewDocumentHandler(logger, docStorage)

	w := httptest.NewRecorder()
	handler.Create(w, authorizedRequest(http.MethodPost, "/api/v1/documents", []byte("invalid json")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDocumentHandler_Create_Unauthorized(t *testing.T) {
	logger := setupTestLogger()
	docStorage := &mockDocumentStorage{}
	handler := NewDocumentHandler(logger, docStorage)

	body, err := json.Marshal(api.DocumentRequest{Title: "Note"})
	require.NoError(t, err)

	// Без user ID в контексте
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", bytes.NewReader(body))

	w := httptest.NewRecorder()
	handler.Create(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDocumentHandler_Create_StorageError(t *testing.T) {
	logger := setupTestLogger()
	docStorage := &mockDocumentStorage{createError: errors.New("database error")}
	handler := NewDocumentHandler(logger, docStorage)

	body, err := json.Marshal(api.DocumentRequest{Title: "Note"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	handler.Create(w, authorizedRequest(http.MethodPost, "/api/v1/documents", body))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDocumentHandler_Get_Success(t *testing.T) {
	logger := setupTestLogger()
	now := time.Now()
	docStorage := &mockDocumentStorage{
		docs: []*models.Document{
			{
				ID:    "doc1",
				Title: "Existing Note",
				Blocks: []models.Block{
					{Type: models.BlockTypeParagraph, Content: models.BlockContent{Text: "Hello"}, Position: 0},
				},
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
	}
	handler := NewDocumentHandler(logger, docStorage)

	req := authorizedRequest(http.MethodGet, "/api/v1/documents/doc1", nil)
	req.SetPathValue("id", "doc1")

	w := httptest.NewRecorder()
	handler.Get(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response api.Document
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)

	assert.Equal(t, "doc1", response.ID)
	assert.Equal(t, "Existing Note", response.Title)
	require.Len(t, response.Content, 1)
	assert.Equal(t, "Hello", response.Content[0].Content.Text)
}

func TestDocumentHandler_Get_NotFound(t *testing.T) {
	logger := setupTestLogger()
	docStorage := &mockDocumentStorage{}
	handler := NewDocumentHandler(logger, docStorage)

	req := authorizedRequest(http.MethodGet, "/api/v1/documents/missing", nil)
	req.SetPathValue("id", "missing")

	w := httptest.NewRecorder()
	handler.Get(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDocumentHandler_List_Success(t *testing.T) {
	logger := setupTestLogger()
	now := time.Now()
	docStorage := &mockDocumentStorage{
		docs: []*models.Document{
			{ID: "doc1", Title: "First", CreatedAt: now, UpdatedAt: now},
			{ID: "doc2", Title: "Second", CreatedAt: now, UpdatedAt: now},
		},
	}
	handler := NewDocumentHandler(logger, docStorage)

	w := httptest.NewRecorder()
	handler.List(w, authorizedRequest(http.MethodGet, "/api/v1/documents", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var response api.DocumentListResponse
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)

	assert.Equal(t, 2, response.Count)
	require.Len(t, response.Documents, 2)
	assert.Equal(t, "doc1", response.Documents[0].ID)
	assert.Equal(t, "doc2", response.Documents[1].ID)
}

func TestDocumentHandler_List_Empty(t *testing.T) {
	logger := setupTestLogger()
	docStorage := &mockDocumentStorage{}
	handler := NewDocumentHandler(logger, docStorage)

	w := httptest.NewRecorder()
	handler.List(w, authorizedRequest(http.MethodGet, "/api/v1/documents", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	// Пустой список сериализуется как [], не null
	assert.Contains(t, w.Body.String(), `"documents":[]`)

	var response api.DocumentListResponse
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)
	assert.Equal(t, 0, response.Count)
}

func TestDocumentHandler_Update_Success(t *testing.T) {
	logger := setupTestLogger()
	created := time.Now().Add(-48 * time.Hour)
	docStorage := &mockDocumentStorage{
		docs: []*models.Document{
			{
				ID:    "doc1",
				Title: "Old Title",
				Blocks: []models.Block{
					{Type: models.BlockTypeParagraph, Content: models.BlockContent{Text: "old"}, Position: 0},
				},
				Properties: map[string]interface{}{"icon": "old"},
				CreatedAt:  created,
				UpdatedAt:  created,
			},
		},
	}
	handler := NewDocumentHandler(logger, docStorage)

	reqBody := api.DocumentRequest{
		Title: "New Title",
		Content: []api.Block{
			{Type: models.BlockTypeParagraph, Content: api.BlockContent{Text: "new text"}, Position: 0},
		},
	}

	body, err := json.Marshal(reqBody)
	require.NoError(t, err)

	req := authorizedRequest(http.MethodPut, "/api/v1/documents/doc1", body)
	req.SetPathValue("id", "doc1")

	w := httptest.NewRecorder()
	handler.Update(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response api.Document
	err = json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)

	// Полная замена: старые блоки и свойства не сохраняются
	assert.Equal(t, "New Title", response.Title)
	require.Len(t, response.Content, 1)
	assert.Equal(t, "new text", response.Content[0].Content.Text)
	assert.Nil(t, response.Properties)

	// created_at сохранен, updated_at обновлен сервером
	assert.WithinDuration(t, created, response.CreatedAt, time.Second)
	assert.True(t, response.UpdatedAt.After(response.CreatedAt))
}

func TestDocumentHandler_Update_NotFound(t *testing.T) {
	logger := setupTestLogger()
	docStorage := &mockDocumentStorage{}
	handler := NewDocumentHandler(logger, docStorage)

	body, err := json.Marshal(api.DocumentRequest{Title: "Title"})
	require.NoError(t, err)

	req := authorizedRequest(http.MethodPut, "/api/v1/documents/missing", body)
	req.SetPathValue("id", "missing")

	w := httptest.NewRecorder()
	handler.Update(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDocumentHandler_Update_InvalidTitle(t *testing.T) {
	logger := setupTestLogger()
	docStorage := &mockDocumentStorage{
		docs: []*models.Document{{ID: "doc1", Title: "Old"}},
	}
	handler := NewDocumentHandler(logger, docStorage)

	body, err := json.Marshal(api.DocumentRequest{Title: ""})
	require.NoError(t, err)

	req := authorizedRequest(http.MethodPut, "/api/v1/documents/doc1", body)
	req.SetPathValue("id", "doc1")

	w := httptest.NewRecorder()
	handler.Update(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDocumentHandler_Delete_Success(t *testing.T) {
	logger := setupTestLogger()
	docStorage := &mockDocumentStorage{
		docs: []*models.Document{{ID: "doc1", Title: "To Delete"}},
	}
	handler := NewDocumentHandler(logger, docStorage)

	req := authorizedRequest(http.MethodDelete, "/api/v1/documents/doc1", nil)
	req.SetPathValue("id", "doc1")

	w := httptest.NewRecorder()
	handler.Delete(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, docStorage.docs)
}

func TestDocumentHandler_Delete_NotFound(t *testing.T) {
	logger := setupTestLogger()
	docStorage := &mockDocumentStorage{}
	handler := NewDocumentHandler(logger, docStorage)

	req := authorizedRequest(http.MethodDelete, "/api/v1/documents/missing", nil)
	req.SetPathValue("id", "missing")

	w := httptest.NewRecorder()
	handler.Delete(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
