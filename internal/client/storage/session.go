package storage

import (
	"context"
)

//go:generate moq -out sessionstorage_mock.go . SessionStorage

// SessionStorage defines interface for storing the login session on client.
// Tokens are stored as received from the server; the database file itself
// is created with 0600 permissions.
type SessionStorage interface {
	// SaveSession stores the current login session, replacing any previous one
	SaveSession(ctx context.Context, session *SessionData) error

	// GetSession retrieves the stored login session
	// Returns ErrSessionNotFound if no session exists
	GetSession(ctx context.Context) (*SessionData, error)

	// DeleteSession removes the stored login session (logout)
	DeleteSession(ctx context.Context) error

	// IsAuthenticated checks if a non-expired session exists
	IsAuthenticated(ctx context.Context) (bool, error)
}

// SessionData represents the persisted login session
type SessionData struct {
	Username     string `json:"username"`
	UserID       string `json:"user_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
}
