package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/iudanet/pagekeeper/internal/models"
	"github.com/iudanet/pagekeeper/internal/server/ai"
	"github.com/iudanet/pagekeeper/internal/validation"
	"github.com/iudanet/pagekeeper/pkg/api"
)

// Summarizer генерирует текст по подготовленному prompt
type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}

// SummaryEventStorage определяет доступ к событиям для сводки
type SummaryEventStorage interface {
	ListEventsRange(ctx context.Context, userID, startDate, endDate string) ([]*models.Event, error)
}

// SummaryHandler обрабатывает запросы AI-сводки расписания
type SummaryHandler struct {
	logger     *slog.Logger
	events     SummaryEventStorage
	summarizer Summarizer
}

// NewSummaryHandler создает новый handler для AI-сводки
func NewSummaryHandler(logger *slog.Logger, events SummaryEventStorage, summarizer Summarizer) *SummaryHandler {
	return &SummaryHandler{
		logger:     logger,
		events:     events,
		summarizer: summarizer,
	}
}

// Summarize обрабатывает POST /api/v1/ai/summary
// Собирает события за день или диапазон и просит модель составить сводку
func (h *SummaryHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode summary request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	startDate, endDate, err := resolveSummarySpan(req)
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	events, err := h.events.ListEventsRange(ctx, userID, startDate, endDate)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list events for summary", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	prompt := buildSummaryPrompt(startDate, endDate, events)

	summary, err := h.summarizer.Summarize(ctx, prompt)
	if err != nil {
		if errors.Is(err, ai.ErrNotConfigured) {
			h.sendError(w, "AI summary is not configured", http.StatusServiceUnavailable)
			return
		}
		h.logger.ErrorContext(ctx, "failed to generate summary", slog.Any("error", err))
		h.sendError(w, "failed to generate summary", http.StatusBadGateway)
		return
	}

	h.logger.InfoContext(ctx, "summary generated",
		slog.String("user_id", userID),
		slog.String("start_date", startDate),
		slog.String("end_date", endDate),
		slog.Int("event_count", len(events)))

	resp := api.SummaryResponse{
		GeneratedAt: time.Now(),
		Summary:     summary,
		EventCount:  len(events),
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// resolveSummarySpan выбирает границы сводки из запроса.
// Диапазон и одиночная дата взаимоисключающие, пустой запрос означает сегодня.
func resolveSummarySpan(req api.SummaryRequest) (string, string, error) {
	if req.StartDate != "" || req.EndDate != "" {
		if req.Date != "" {
			return "", "", fmt.Errorf("specify either date or start_date/end_date, not both")
		}
		if err := validation.ValidateDateRange(req.StartDate, req.EndDate); err != nil {
			return "", "", err
		}

		start, _ := time.Parse(models.DateLayout, req.StartDate)
		end, _ := time.Parse(models.DateLayout, req.EndDate)
		if days := int(end.Sub(start).Hours()/24) + 1; days > MaxRangeDays {
			return "", "", fmt.Errorf("date range must not exceed %d days", MaxRangeDays)
		}

		return req.StartDate, req.EndDate, nil
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format(models.DateLayout)
	}
	if err := validation.ValidateEventDate(date); err != nil {
		return "", "", err
	}

	return date, date, nil
}

// buildSummaryPrompt собирает prompt для модели.
// Пустое расписание тоже уходит в модель, она отвечает мотивацией на свободный день.
func buildSummaryPrompt(startDate, endDate string, events []*models.Event) string {
	span := startDate
	if startDate != endDate {
		span = startDate + " to " + endDate
	}

	if len(events) == 0 {
		return fmt.Sprintf(
			"My schedule for %s is empty. "+
				"Please provide a brief, motivational message about making the most of free time. "+
				"Keep it concise and positive (2-3 sentences).", span)
	}

	var lines []string
	for _, event := range events {
		line := "- " + event.Title
		if startDate != endDate {
			line = "- " + event.Date + ": " + event.Title
		}
		if event.Time != "" {
			line += " at " + event.Time
		}
		if event.Description != "" {
			line += " (" + event.Description + ")"
		}
		lines = append(lines, line)
	}

	return fmt.Sprintf(
		"I'm planning my schedule for %s. Here are my events:\n\n%s\n\n"+
			"Please provide a concise, helpful overview that includes:\n"+
			"1. A brief summary of the schedule\n"+
			"2. Any suggestions for time management or preparation\n"+
			"3. A motivational note\n\n"+
			"Keep the response conversational and under 150 words.",
		span, strings.Join(lines, "\n"))
}

// sendJSON отправляет JSON ответ
func (h *SummaryHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h *SummaryHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	h.sendJSON(w, resp, statusCode)
}
