package storage

import (
	"context"
	"time"

	"github.com/iudanet/pagekeeper/internal/models"
)

// EventStorage defines interface for calendar event persistence.
// Events are scoped per user the same way documents are.
type EventStorage interface {
	// CreateEvent stores a new calendar event.
	// ID, CreatedAt and UpdatedAt must be set by the caller.
	CreateEvent(ctx context.Context, event *models.Event) error

	// CreateEvents stores a batch of events in a single transaction:
	// either all rows are inserted or none
	CreateEvents(ctx context.Context, events []*models.Event) error

	// ListEventsOn retrieves events on a single date (YYYY-MM-DD),
	// ordered with all-day events first, then by time ascending
	ListEventsOn(ctx context.Context, userID, date string) ([]*models.Event, error)

	// ListEventsRange retrieves events with start <= date <= end,
	// ordered by date, then all-day first, then time ascending
	ListEventsRange(ctx context.Context, userID, startDate, endDate string) ([]*models.Event, error)

	// ListEventsSince retrieves events created or updated after the
	// given instant, ordered by UpdatedAt ascending
	ListEventsSince(ctx context.Context, userID string, since time.Time) ([]*models.Event, error)

	// ListAllEvents retrieves every event the user owns, ordered by
	// date, then all-day first, then time ascending
	ListAllEvents(ctx context.Context, userID string) ([]*models.Event, error)

	// DeleteEvent deletes an event by ID
	// Returns ErrEventNotFound if event doesn't exist or belongs to another user
	DeleteEvent(ctx context.Context, userID, eventID string) error

	// DeleteAllEvents deletes every event the user owns
	// Returns number of deleted events
	DeleteAllEvents(ctx context.Context, userID string) (int, error)

	// CountEvents returns the number of events the user owns
	CountEvents(ctx context.Context, userID string) (int, error)

	// CountEventsBetween returns the number of events with start <= date <= end
	CountEventsBetween(ctx context.Context, userID, startDate, endDate string) (int, error)

	// BusiestDay returns the date with the most events and its count.
	// Ties resolve to the earliest date. Returns nil if the user has no events.
	BusiestDay(ctx context.Context, userID string) (*models.BusiestDay, error)
}
