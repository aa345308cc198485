// Package ai содержит клиент Gemini generateContent REST API
// для генерации сводок расписания.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// ErrNotConfigured означает, что API key не задан и сводки недоступны
var ErrNotConfigured = errors.New("gemini api key is not configured")

const (
	// DefaultModel модель по умолчанию
	DefaultModel = "gemini-1.5-flash-latest"
	// DefaultBaseURL базовый адрес Gemini REST API
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// requestTimeout таймаут одного запроса генерации
	requestTimeout = 30 * time.Second
)

// Config содержит настройки клиента Gemini
type Config struct {
	APIKey  string // пустой ключ означает, что сводки выключены
	Model   string // пустое значение заменяется DefaultModel
	BaseURL string // переопределяется в тестах
}

// Client вызывает Gemini generateContent.
// Потокобезопасен, один экземпляр живет весь срок работы сервера.
type Client struct {
	logger     *slog.Logger
	httpClient *http.Client
	config     Config
}

// NewClient создает клиент Gemini
func NewClient(logger *slog.Logger, config Config) *Client {
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}

	return &Client{
		logger:     logger,
		httpClient: &http.Client{Timeout: requestTimeout},
		config:     config,
	}
}

// Wire-типы generateContent. Только используемые поля.
type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
	SafetySettings   []safetySetting  `json:"safetySettings"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

var defaultSafetySettings = []safetySetting{
	{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
}

// Summarize отправляет prompt модели и возвращает сгенерированный текст.
// Возвращает ErrNotConfigured, если API key не задан.
func (c *Client) Summarize(ctx context.Context, prompt string) (string, error) {
	if c.config.APIKey == "" {
		return "", ErrNotConfigured
	}

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     0.7,
			TopK:            1,
			TopP:            1,
			MaxOutputTokens: 200,
		},
		SafetySettings: defaultSafetySettings,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.config.BaseURL, c.config.Model, c.config.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read gemini response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("gemini returned an error",
			slog.Int("status", resp.StatusCode),
			slog.String("model", c.config.Model))
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode gemini response: %w", err)
	}

	// Модель может не вернуть кандидатов, например из-за safety-фильтра
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "Unable to generate summary at this time.", nil
	}

	return strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text), nil
}
