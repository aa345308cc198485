package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/pagekeeper/internal/models"
	"github.com/iudanet/pagekeeper/internal/server/storage"
)

// encodeDocumentBody сериализует блоки и свойства документа в JSON-колонки.
// Properties хранятся как NULL, когда их нет, чтобы отличать пустой мешок от отсутствующего.
func encodeDocumentBody(doc *models.Document) (string, sql.NullString, error) {
	rawBlocks, err := json.Marshal(doc.Blocks)
	if err != nil {
		return "", sql.NullString{}, fmt.Errorf("failed to marshal blocks: %w", err)
	}

	var properties sql.NullString
	if doc.Properties != nil {
		rawProps, err := json.Marshal(doc.Properties)
		if err != nil {
			return "", sql.NullString{}, fmt.Errorf("failed to marshal properties: %w", err)
		}
		properties = sql.NullString{String: string(rawProps), Valid: true}
	}

	return string(rawBlocks), properties, nil
}

// decodeDocumentBody восстанавливает блоки и свойства из JSON-колонок
func decodeDocumentBody(doc *models.Document, blocks string, properties sql.NullString) error {
	if err := json.Unmarshal([]byte(blocks), &doc.Blocks); err != nil {
		return fmt.Errorf("failed to unmarshal blocks: %w", err)
	}

	if properties.Valid {
		if err := json.Unmarshal([]byte(properties.String), &doc.Properties); err != nil {
			return fmt.Errorf("failed to unmarshal properties: %w", err)
		}
	}

	return nil
}

// CreateDocument stores a new document for the user
func (s *Storage) CreateDocument(ctx context.Context, userID string, doc *models.Document) error {
	blocks, properties, err := encodeDocumentBody(doc)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO documents (id, user_id, title, blocks, properties, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		doc.ID,
		userID,
		doc.Title,
		blocks,
		properties,
		doc.CreatedAt,
		doc.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}

	return nil
}

// GetDocument retrieves a document by ID
func (s *Storage) GetDocument(ctx context.Context, userID, docID string) (*models.Document, error) {
	query := `
		SELECT id, title, blocks, properties, created_at, updated_at
		FROM documents
		WHERE id = ? AND user_id = ?
	`

	doc := &models.Document{}
	var blocks string
	var properties sql.NullString

	err := s.db.QueryRowContext(ctx, query, docID, userID).Scan(
		&doc.ID,
		&doc.Title,
		&blocks,
		&properties,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	if err := decodeDocumentBody(doc, blocks, properties); err != nil {
		return nil, err
	}

	return doc, nil
}

// ListDocuments retrieves all documents for a user ordered by last save, newest first
func (s *Storage) ListDocuments(ctx context.Context, userID string) ([]*models.Document, error) {
	query := `
		SELECT id, title, blocks, properties, created_at, updated_at
		FROM documents
		WHERE user_id = ?
		ORDER BY updated_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var docs []*models.Document

	for rows.Next() {
		doc := &models.Document{}
		var blocks string
		var properties sql.NullString

		if err := rows.Scan(
			&doc.ID,
			&doc.Title,
			&blocks,
			&properties,
			&doc.CreatedAt,
			&doc.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}

		if err := decodeDocumentBody(doc, blocks, properties); err != nil {
			return nil, err
		}

		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return docs, nil
}

// UpdateDocument replaces the stored document state with doc
func (s *Storage) UpdateDocument(ctx context.Context, userID string, doc *models.Document) error {
	blocks, properties, err := encodeDocumentBody(doc)
	if err != nil {
		return err
	}

	query := `
		UPDATE documents
		SET title = ?, blocks = ?, properties = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		doc.Title,
		blocks,
		properties,
		doc.UpdatedAt,
		doc.ID,
		userID,
	)

	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrDocumentNotFound
	}

	return nil
}

// DeleteDocument deletes a document by ID
func (s *Storage) DeleteDocument(ctx context.Context, userID, docID string) error {
	query := `DELETE FROM documents WHERE id = ? AND user_id = ?`

	result, err := s.db.ExecContext(ctx, query, docID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrDocumentNotFound
	}

	return nil
}

// CountDocuments returns the number of documents the user owns
func (s *Storage) CountDocuments(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM documents WHERE user_id = ?`

	var count int
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}

	return count, nil
}
