package storage

import (
	"context"

	"github.com/iudanet/pagekeeper/internal/models"
)

// DocumentStorage defines interface for workspace document persistence.
// Documents are scoped per user: every method takes the owner's userID
// and never returns another user's rows.
type DocumentStorage interface {
	// CreateDocument stores a new document for the user.
	// ID, CreatedAt and UpdatedAt must be set by the caller.
	CreateDocument(ctx context.Context, userID string, doc *models.Document) error

	// GetDocument retrieves a document by ID
	// Returns ErrDocumentNotFound if document doesn't exist or belongs to another user
	GetDocument(ctx context.Context, userID, docID string) (*models.Document, error)

	// ListDocuments retrieves all documents for a user ordered by UpdatedAt descending
	// Returns empty slice if no documents found
	ListDocuments(ctx context.Context, userID string) ([]*models.Document, error)

	// UpdateDocument replaces the stored document state with doc.
	// The whole row is overwritten: title, blocks and properties.
	// Returns ErrDocumentNotFound if document doesn't exist or belongs to another user
	UpdateDocument(ctx context.Context, userID string, doc *models.Document) error

	// DeleteDocument deletes a document by ID
	// Returns ErrDocumentNotFound if document doesn't exist or belongs to another user
	DeleteDocument(ctx context.Context, userID, docID string) error

	// CountDocuments returns the number of documents the user owns
	CountDocuments(ctx context.Context, userID string) (int, error)
}
