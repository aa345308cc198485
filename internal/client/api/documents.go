package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/iudanet/pagekeeper/internal/models"
	"github.com/iudanet/pagekeeper/pkg/api"
)

// FetchDocument загружает документ по идентификатору.
// Возвращает ErrNotFound, если сервер не знает такой id.
func (c *Client) FetchDocument(ctx context.Context, id string) (*models.Document, error) {
	var resp api.Document
	err := c.doRequest(ctx, "GET", "/api/v1/documents/"+url.PathEscape(id), nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("fetch document failed: %w", err)
	}
	return documentFromAPI(&resp), nil
}

// CreateDocument создает документ; id и таймстемпы назначает сервер
func (c *Client) CreateDocument(ctx context.Context, doc *models.Document) (*models.Document, error) {
	var resp api.Document
	err := c.doRequest(ctx, "POST", "/api/v1/documents", documentToRequest(doc), &resp)
	if err != nil {
		return nil, fmt.Errorf("create document failed: %w", err)
	}
	return documentFromAPI(&resp), nil
}

// UpdateDocument заменяет документ целиком и возвращает авторитетное
// представление сервера со свежим updated_at
func (c *Client) UpdateDocument(ctx context.Context, id string, doc *models.Document) (*models.Document, error) {
	var resp api.Document
	err := c.doRequest(ctx, "PUT", "/api/v1/documents/"+url.PathEscape(id), documentToRequest(doc), &resp)
	if err != nil {
		return nil, fmt.Errorf("update document failed: %w", err)
	}
	return documentFromAPI(&resp), nil
}

// ListDocuments возвращает документы пользователя, свежие сверху
func (c *Client) ListDocuments(ctx context.Context) ([]models.Document, error) {
	var resp api.DocumentListResponse
	err := c.doRequest(ctx, "GET", "/api/v1/documents", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list documents failed: %w", err)
	}

	docs := make([]models.Document, len(resp.Documents))
	for i := range resp.Documents {
		docs[i] = *documentFromAPI(&resp.Documents[i])
	}
	return docs, nil
}

// DeleteDocument удаляет документ по идентификатору
func (c *Client) DeleteDocument(ctx context.Context, id string) error {
	err := c.doRequest(ctx, "DELETE", "/api/v1/documents/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return fmt.Errorf("delete document failed: %w", err)
	}
	return nil
}

// documentToRequest собирает wire-представление буфера для create/update
func documentToRequest(doc *models.Document) api.DocumentRequest {
	blocks := make([]api.Block, len(doc.Blocks))
	for i, b := range doc.Blocks {
		blocks[i] = api.Block{
			Type:     b.Type,
			Content:  api.BlockContent{Text: b.Content.Text},
			Position: b.Position,
		}
	}
	return api.DocumentRequest{
		Title:      doc.Title,
		Content:    blocks,
		Properties: doc.Properties,
	}
}

// documentFromAPI переводит wire-представление в доменную модель
func documentFromAPI(doc *api.Document) *models.Document {
	blocks := make([]models.Block, len(doc.Content))
	for i, b := range doc.Content {
		blocks[i] = models.Block{
			Type:     b.Type,
			Content:  models.BlockContent{Text: b.Content.Text},
			Position: b.Position,
		}
	}
	return &models.Document{
		ID:         doc.ID,
		Title:      doc.Title,
		Blocks:     blocks,
		Properties: doc.Properties,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
}
