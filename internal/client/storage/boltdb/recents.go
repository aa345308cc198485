package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/pagekeeper/internal/client/storage"
)

var recentsKey = []byte("list")

// TouchRecent moves the document to the top of the recents list
func (s *Storage) TouchRecent(ctx context.Context, entry *storage.RecentEntry) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRecents)
		if bucket == nil {
			return fmt.Errorf("recents bucket not found")
		}

		var entries []*storage.RecentEntry
		if data := bucket.Get(recentsKey); data != nil {
			if err := json.Unmarshal(data, &entries); err != nil {
				return fmt.Errorf("failed to unmarshal recents: %w", err)
			}
		}

		// Документ встает в начало списка, прежняя позиция убирается
		updated := make([]*storage.RecentEntry, 0, len(entries)+1)
		updated = append(updated, entry)
		for _, e := range entries {
			if e.ID != entry.ID {
				updated = append(updated, e)
			}
		}

		// Хвост за пределами лимита отбрасывается
		if len(updated) > storage.MaxRecents {
			updated = updated[:storage.MaxRecents]
		}

		data, err := json.Marshal(updated)
		if err != nil {
			return fmt.Errorf("failed to marshal recents: %w", err)
		}

		if err := bucket.Put(recentsKey, data); err != nil {
			return fmt.Errorf("failed to save recents: %w", err)
		}

		return nil
	})
}

// ListRecents returns recent documents, most recently opened first
func (s *Storage) ListRecents(ctx context.Context) ([]*storage.RecentEntry, error) {
	var entries []*storage.RecentEntry

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRecents)
		if bucket == nil {
			return fmt.Errorf("recents bucket not found")
		}

		data := bucket.Get(recentsKey)
		if data == nil {
			// Список еще не создавался
			return nil
		}

		if err := json.Unmarshal(data, &entries); err != nil {
			return fmt.Errorf("failed to unmarshal recents: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return entries, nil
}

// ClearRecents drops the whole recents list
func (s *Storage) ClearRecents(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRecents)
		if bucket == nil {
			return fmt.Errorf("recents bucket not found")
		}

		if err := bucket.Delete(recentsKey); err != nil {
			return fmt.Errorf("failed to clear recents: %w", err)
		}

		return nil
	})
}
