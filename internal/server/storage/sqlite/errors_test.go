package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/pagekeeper/internal/models"
)

// Ошибки уровня драйвера, которые настоящая :memory: база не воспроизводит:
// обрывы курсора, сломанный RowsAffected, падение commit. Эти пути
// проверяются через sqlmock поверх того же Storage.

var errDriver = errors.New("driver failure")

func setupMockStorage(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	return &Storage{db: db}, mock
}

func TestListDocuments_RowsIterationError(t *testing.T) {
	ctx := context.Background()
	s, mock := setupMockStorage(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "title", "blocks", "properties", "created_at", "updated_at"}).
		AddRow("doc1", "First", "[]", nil, now, now).
		AddRow("doc2", "Second", "[]", nil, now, now).
		RowError(1, errDriver)

	mock.ExpectQuery("SELECT id, title, blocks, properties, created_at, updated_at").
		WithArgs("user123").
		WillReturnRows(rows)

	docs, err := s.ListDocuments(ctx, "user123")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rows iteration error")
	assert.Nil(t, docs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDocument_CorruptBlocksColumn(t *testing.T) {
	ctx := context.Background()
	s, mock := setupMockStorage(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "title", "blocks", "properties", "created_at", "updated_at"}).
		AddRow("doc1", "Broken", "{not json", nil, now, now)

	mock.ExpectQuery("SELECT id, title, blocks, properties, created_at, updated_at").
		WithArgs("doc1", "user123").
		WillReturnRows(rows)

	doc, err := s.GetDocument(ctx, "user123", "doc1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal blocks")
	assert.Nil(t, doc)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateDocument_RowsAffectedError(t *testing.T) {
	ctx := context.Background()
	s, mock := setupMockStorage(t)

	mock.ExpectExec("UPDATE documents").
		WillReturnResult(sqlmock.NewErrorResult(errDriver))

	now := time.Now()
	doc := &models.Document{
		ID:        "doc1",
		Title:     "Notes",
		Blocks:    []models.Block{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := s.UpdateDocument(ctx, "user123", doc)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get rows affected")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountDocuments_QueryError(t *testing.T) {
	ctx := context.Background()
	s, mock := setupMockStorage(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM documents`).
		WithArgs("user123").
		WillReturnError(errDriver)

	count, err := s.CountDocuments(ctx, "user123")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to count documents")
	assert.Zero(t, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBusiestDay_QueryError(t *testing.T) {
	ctx := context.Background()
	s, mock := setupMockStorage(t)

	mock.ExpectQuery(`SELECT date, COUNT\(\*\) AS events_count`).
		WithArgs("user123").
		WillReturnError(errDriver)

	day, err := s.BusiestDay(ctx, "user123")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query busiest day")
	assert.Nil(t, day)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEvents_BeginError(t *testing.T) {
	ctx := context.Background()
	s, mock := setupMockStorage(t)

	mock.ExpectBegin().WillReturnError(errDriver)

	events := []*models.Event{makeEvent("user123", "Standup", "2025-04-01", "09:30")}
	err := s.CreateEvents(ctx, events)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to begin transaction")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEvents_CommitError(t *testing.T) {
	ctx := context.Background()
	s, mock := setupMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectPrepare("INSERT INTO events").
		ExpectExec().
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit().WillReturnError(errDriver)
	mock.ExpectRollback()

	events := []*models.Event{makeEvent("user123", "Standup", "2025-04-01", "09:30")}
	err := s.CreateEvents(ctx, events)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to commit events")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteExpiredTokens_ExecError(t *testing.T) {
	ctx := context.Background()
	s, mock := setupMockStorage(t)

	mock.ExpectExec("DELETE FROM refresh_tokens WHERE expires_at").
		WillReturnError(errDriver)

	deleted, err := s.DeleteExpiredTokens(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete expired tokens")
	assert.Zero(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUserTokens_RowsAffectedError(t *testing.T) {
	ctx := context.Background()
	s, mock := setupMockStorage(t)

	mock.ExpectExec("DELETE FROM refresh_tokens WHERE user_id").
		WithArgs("user123").
		WillReturnResult(sqlmock.NewErrorResult(errDriver))

	deleted, err := s.DeleteUserTokens(ctx, "user123")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get rows affected")
	assert.Zero(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
