package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/pagekeeper/internal/models"
	"github.com/iudanet/pagekeeper/internal/server/storage"
)

// scanEventRows читает все строки курсора в срез событий.
// Общий для всех выборок, колонки везде в одном порядке.
func scanEventRows(rows *sql.Rows) ([]*models.Event, error) {
	var events []*models.Event

	for rows.Next() {
		event := &models.Event{}
		if err := rows.Scan(
			&event.ID,
			&event.UserID,
			&event.Title,
			&event.Date,
			&event.Time,
			&event.Description,
			&event.CreatedAt,
			&event.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return events, nil
}

// CreateEvent stores a new calendar event
func (s *Storage) CreateEvent(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (id, user_id, title, date, time, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		event.ID,
		event.UserID,
		event.Title,
		event.Date,
		event.Time,
		event.Description,
		event.CreatedAt,
		event.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	return nil
}

// CreateEvents stores a batch of events in a single transaction
func (s *Storage) CreateEvents(ctx context.Context, events []*models.Event) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	// Rollback после Commit безвреден
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO events (id, user_id, title, date, time, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for _, event := range events {
		if _, err := stmt.ExecContext(ctx,
			event.ID,
			event.UserID,
			event.Title,
			event.Date,
			event.Time,
			event.Description,
			event.CreatedAt,
			event.UpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to insert event %s: %w", event.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit events: %w", err)
	}

	return nil
}

// ListEventsOn retrieves events on a single date.
// Пустое время сортируется раньше любого "HH:MM", события на весь день идут первыми.
func (s *Storage) ListEventsOn(ctx context.Context, userID, date string) ([]*models.Event, error) {
	query := `
		SELECT id, user_id, title, date, time, description, created_at, updated_at
		FROM events
		WHERE user_id = ? AND date = ?
		ORDER BY time ASC, created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanEventRows(rows)
}

// ListEventsRange retrieves events with startDate <= date <= endDate
func (s *Storage) ListEventsRange(ctx context.Context, userID, startDate, endDate string) ([]*models.Event, error) {
	query := `
		SELECT id, user_id, title, date, time, description, created_at, updated_at
		FROM events
		WHERE user_id = ? AND date >= ? AND date <= ?
		ORDER BY date ASC, time ASC, created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanEventRows(rows)
}

// ListEventsSince retrieves events created or updated after the given instant
func (s *Storage) ListEventsSince(ctx context.Context, userID string, since time.Time) ([]*models.Event, error) {
	query := `
		SELECT id, user_id, title, date, time, description, created_at, updated_at
		FROM events
		WHERE user_id = ? AND updated_at > ?
		ORDER BY updated_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanEventRows(rows)
}

// ListAllEvents retrieves every event the user owns
func (s *Storage) ListAllEvents(ctx context.Context, userID string) ([]*models.Event, error) {
	query := `
		SELECT id, user_id, title, date, time, description, created_at, updated_at
		FROM events
		WHERE user_id = ?
		ORDER BY date ASC, time ASC, created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanEventRows(rows)
}

// DeleteEvent deletes an event by ID
func (s *Storage) DeleteEvent(ctx context.Context, userID, eventID string) error {
	query := `DELETE FROM events WHERE id = ? AND user_id = ?`

	result, err := s.db.ExecContext(ctx, query, eventID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}

// DeleteAllEvents deletes every event the user owns
func (s *Storage) DeleteAllEvents(ctx context.Context, userID string) (int, error) {
	query := `DELETE FROM events WHERE user_id = ?`

	result, err := s.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete events: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rows), nil
}

// CountEvents returns the number of events the user owns
func (s *Storage) CountEvents(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM events WHERE user_id = ?`

	var count int
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}

	return count, nil
}

// CountEventsBetween returns the number of events with startDate <= date <= endDate
func (s *Storage) CountEventsBetween(ctx context.Context, userID, startDate, endDate string) (int, error) {
	query := `SELECT COUNT(*) FROM events WHERE user_id = ? AND date >= ? AND date <= ?`

	var count int
	if err := s.db.QueryRowContext(ctx, query, userID, startDate, endDate).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}

	return count, nil
}

// BusiestDay returns the date with the most events.
// При равенстве побеждает более ранняя дата. nil без ошибки, если событий нет.
func (s *Storage) BusiestDay(ctx context.Context, userID string) (*models.BusiestDay, error) {
	query := `
		SELECT date, COUNT(*) AS events_count
		FROM events
		WHERE user_id = ?
		GROUP BY date
		ORDER BY events_count DESC, date ASC
		LIMIT 1
	`

	day := &models.BusiestDay{}

	err := s.db.QueryRowContext(ctx, query, userID).Scan(&day.Date, &day.Count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query busiest day: %w", err)
	}

	return day, nil
}
