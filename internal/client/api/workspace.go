package api

import (
	"context"
	"fmt"

	"github.com/iudanet/pagekeeper/pkg/api"
)

// Summary запрашивает AI-сводку расписания за день или диапазон
func (c *Client) Summary(ctx context.Context, req api.SummaryRequest) (*api.SummaryResponse, error) {
	var resp api.SummaryResponse
	err := c.doRequest(ctx, "POST", "/api/v1/ai/summary", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("summary request failed: %w", err)
	}
	return &resp, nil
}

// Stats возвращает агрегаты рабочего пространства
func (c *Client) Stats(ctx context.Context) (*api.StatsResponse, error) {
	var resp api.StatsResponse
	err := c.doRequest(ctx, "GET", "/api/v1/stats", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("stats request failed: %w", err)
	}
	return &resp, nil
}

// Export возвращает полный дамп документов и событий пользователя
func (c *Client) Export(ctx context.Context) (*api.ExportResponse, error) {
	var resp api.ExportResponse
	err := c.doRequest(ctx, "GET", "/api/v1/export", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("export request failed: %w", err)
	}
	return &resp, nil
}

// Health проверяет доступность сервера, не требует авторизации
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var resp api.HealthResponse
	err := c.doRequest(ctx, "GET", "/api/v1/health", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("health request failed: %w", err)
	}
	return &resp, nil
}
