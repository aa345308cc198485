package boltdb

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/pagekeeper/internal/client/storage"
)

func TestStorage_ListRecents_Empty(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Пустое хранилище отдает пустой список без ошибки
	entries, err := store.ListRecents(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStorage_TouchRecent_OrdersByRecency(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	now := time.Now()
	for i, id := range []string{"doc-a", "doc-b", "doc-c"} {
		err := store.TouchRecent(ctx, &storage.RecentEntry{
			ID:       id,
			Title:    "Document " + id,
			OpenedAt: now.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	entries, err := store.ListRecents(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Последний открытый документ первый в списке
	assert.Equal(t, "doc-c", entries[0].ID)
	assert.Equal(t, "doc-b", entries[1].ID)
	assert.Equal(t, "doc-a", entries[2].ID)
}

func TestStorage_TouchRecent_DeduplicatesByID(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	for _, id := range []string{"doc-a", "doc-b", "doc-c"} {
		require.NoError(t, store.TouchRecent(ctx, &storage.RecentEntry{ID: id, Title: id}))
	}

	// Повторное открытие поднимает документ наверх, дубликата не появляется
	err := store.TouchRecent(ctx, &storage.RecentEntry{ID: "doc-a", Title: "doc-a renamed"})
	require.NoError(t, err)

	entries, err := store.ListRecents(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "doc-a", entries[0].ID)
	assert.Equal(t, "doc-a renamed", entries[0].Title)
	assert.Equal(t, "doc-c", entries[1].ID)
	assert.Equal(t, "doc-b", entries[2].ID)
}

func TestStorage_TouchRecent_TrimsToLimit(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Открываем больше документов, чем помещается в список
	total := storage.MaxRecents + 5
	for i := 0; i < total; i++ {
		err := store.TouchRecent(ctx, &storage.RecentEntry{
			ID:    fmt.Sprintf("doc-%d", i),
			Title: fmt.Sprintf("Document %d", i),
		})
		require.NoError(t, err)
	}

	entries, err := store.ListRecents(ctx)
	require.NoError(t, err)
	require.Len(t, entries, storage.MaxRecents)

	// Остались только самые свежие, самый старый хвост отброшен
	assert.Equal(t, fmt.Sprintf("doc-%d", total-1), entries[0].ID)
	assert.Equal(t, fmt.Sprintf("doc-%d", total-storage.MaxRecents), entries[len(entries)-1].ID)
}

func TestStorage_ClearRecents(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.TouchRecent(ctx, &storage.RecentEntry{ID: "doc-a", Title: "A"}))
	require.NoError(t, store.TouchRecent(ctx, &storage.RecentEntry{ID: "doc-b", Title: "B"}))

	err := store.ClearRecents(ctx)
	require.NoError(t, err)

	entries, err := store.ListRecents(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Повторная очистка пустого списка не ошибка
	require.NoError(t, store.ClearRecents(ctx))
}

func TestStorage_Recents_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Удаляем bucket recents напрямую
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketRecents)
	})
	require.NoError(t, err)

	err = store.TouchRecent(ctx, &storage.RecentEntry{ID: "doc-a"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "recents bucket not found")

	_, err = store.ListRecents(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "recents bucket not found")

	err = store.ClearRecents(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "recents bucket not found")
}
