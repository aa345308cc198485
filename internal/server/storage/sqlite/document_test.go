package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/pagekeeper/internal/models"
	"github.com/iudanet/pagekeeper/internal/server/storage"
)

func TestDocumentStorage_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	doc := &models.Document{
		ID:    uuid.New().String(),
		Title: "Meeting notes",
		Blocks: []models.Block{
			{Type: models.BlockTypeParagraph, Content: models.BlockContent{Text: "agenda"}, Position: 0},
			{Type: models.BlockTypeParagraph, Content: models.BlockContent{Text: "decisions"}, Position: 1},
		},
		Properties: map[string]any{"icon": "notebook"},
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}

	err := s.CreateDocument(ctx, userID, doc)
	require.NoError(t, err)

	retrieved, err := s.GetDocument(ctx, userID, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, retrieved.ID)
	assert.Equal(t, doc.Title, retrieved.Title)
	assert.Equal(t, doc.Blocks, retrieved.Blocks)
	assert.Equal(t, doc.Properties, retrieved.Properties)
}

func TestDocumentStorage_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	_, err := s.GetDocument(ctx, userID, "no-such-id")
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)
}

func TestDocumentStorage_Get_OtherUsersDocument(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	ownerID := createTestUser(t, ctx, s)
	strangerID := createTestUser(t, ctx, s)

	doc := &models.Document{
		ID:        uuid.New().String(),
		Title:     "Private",
		Blocks:    []models.Block{models.NewParagraph("secret")},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, s.CreateDocument(ctx, ownerID, doc))

	// Чужой документ неотличим от несуществующего
	_, err := s.GetDocument(ctx, strangerID, doc.ID)
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)
}

func TestDocumentStorage_NilProperties(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	doc := &models.Document{
		ID:        uuid.New().String(),
		Title:     "Bare page",
		Blocks:    []models.Block{models.NewParagraph("")},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, s.CreateDocument(ctx, userID, doc))

	retrieved, err := s.GetDocument(ctx, userID, doc.ID)
	require.NoError(t, err)
	assert.Nil(t, retrieved.Properties)
}

func TestDocumentStorage_List_OrderedByUpdatedAt(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	now := time.Now().UTC()

	// Вставляем в произвольном порядке, ждем сортировку по updated_at по убыванию
	for _, d := range []struct {
		id      string
		title   string
		updated time.Time
	}{
		{"doc-old", "Old", now.Add(-2 * time.Hour)},
		{"doc-new", "New", now},
		{"doc-mid", "Mid", now.Add(-time.Hour)},
	} {
		doc := &models.Document{
			ID:        d.id,
			Title:     d.title,
			Blocks:    []models.Block{models.NewParagraph(d.title)},
			CreatedAt: now.Add(-3 * time.Hour),
			UpdatedAt: d.updated,
		}
		require.NoError(t, s.CreateDocument(ctx, userID, doc))
	}

	docs, err := s.ListDocuments(ctx, userID)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "doc-new", docs[0].ID)
	assert.Equal(t, "doc-mid", docs[1].ID)
	assert.Equal(t, "doc-old", docs[2].ID)
}

func TestDocumentStorage_List_Empty(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	docs, err := s.ListDocuments(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestDocumentStorage_Update(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	doc := &models.Document{
		ID:        uuid.New().String(),
		Title:     "Draft",
		Blocks:    []models.Block{models.NewParagraph("first")},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, s.CreateDocument(ctx, userID, doc))

	// Полная замена: заголовок, блоки и свойства
	doc.Title = "Final"
	doc.Blocks = []models.Block{
		{Type: models.BlockTypeParagraph, Content: models.BlockContent{Text: "rewritten"}, Position: 0},
	}
	doc.Properties = map[string]any{"status": "done"}
	doc.UpdatedAt = time.Now().UTC().Add(time.Minute)

	err := s.UpdateDocument(ctx, userID, doc)
	require.NoError(t, err)

	retrieved, err := s.GetDocument(ctx, userID, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final", retrieved.Title)
	assert.Equal(t, doc.Blocks, retrieved.Blocks)
	assert.Equal(t, doc.Properties, retrieved.Properties)
}

func TestDocumentStorage_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	doc := &models.Document{
		ID:        "missing",
		Title:     "Ghost",
		Blocks:    []models.Block{models.NewParagraph("")},
		UpdatedAt: time.Now().UTC(),
	}
	err := s.UpdateDocument(ctx, userID, doc)
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)
}

func TestDocumentStorage_Delete(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	doc := &models.Document{
		ID:        uuid.New().String(),
		Title:     "Doomed",
		Blocks:    []models.Block{models.NewParagraph("")},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, s.CreateDocument(ctx, userID, doc))

	err := s.DeleteDocument(ctx, userID, doc.ID)
	require.NoError(t, err)

	_, err = s.GetDocument(ctx, userID, doc.ID)
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)

	err = s.DeleteDocument(ctx, userID, doc.ID)
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)
}

func TestDocumentStorage_Count(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID1 := createTestUser(t, ctx, s)
	userID2 := createTestUser(t, ctx, s)

	for i := 0; i < 3; i++ {
		doc := &models.Document{
			ID:        uuid.New().String(),
			Title:     "Page",
			Blocks:    []models.Block{models.NewParagraph("")},
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		}
		require.NoError(t, s.CreateDocument(ctx, userID1, doc))
	}

	count, err := s.CountDocuments(ctx, userID1)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	count, err = s.CountDocuments(ctx, userID2)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

// setupTestStorage создает in-memory хранилище с выполненными миграциями
func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// Используем in-memory database для тестов
	storage, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = storage.Close()
	}

	return storage, cleanup
}

func createTestUser(t *testing.T, ctx context.Context, s *Storage) string {
	userID := uuid.New().String()
	user := &models.User{
		ID:           userID,
		Username:     "testuser_" + userID[:8],
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	err := s.CreateUser(ctx, user)
	require.NoError(t, err)

	return userID
}
