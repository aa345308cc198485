package storage

import (
	"context"
	"time"
)

//go:generate moq -out recentsstorage_mock.go . RecentsStorage

// MaxRecents ограничивает длину локального списка недавних документов
const MaxRecents = 10

// RecentsStorage defines interface for the list of recently opened documents
type RecentsStorage interface {
	// TouchRecent moves the document to the top of the recents list,
	// trimming the list to MaxRecents entries
	TouchRecent(ctx context.Context, entry *RecentEntry) error

	// ListRecents returns recent documents, most recently opened first
	ListRecents(ctx context.Context) ([]*RecentEntry, error)

	// ClearRecents drops the whole recents list
	ClearRecents(ctx context.Context) error
}

// RecentEntry represents one recently opened document
type RecentEntry struct {
	OpenedAt time.Time `json:"opened_at"`
	ID       string    `json:"id"`
	Title    string    `json:"title"`
}
