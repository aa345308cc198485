package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/iudanet/pagekeeper/pkg/api"
)

func (c *Cli) runSummary(ctx context.Context, args []string) error {
	if err := c.ensureAuth(ctx); err != nil {
		return err
	}

	// Формы: без аргументов (сегодня), одна дата, диапазон start end
	var req api.SummaryRequest
	switch len(args) {
	case 0:
	case 1:
		req.Date = args[0]
	case 2:
		req.StartDate, req.EndDate = args[0], args[1]
	default:
		return fmt.Errorf("too many arguments. Usage: pagekeeper summary [date | start end]")
	}

	c.io.Println("Generating summary...")
	c.io.Println()

	resp, err := c.workspace.Summary(ctx, req)
	if err != nil {
		return err
	}

	c.io.Println("=== Schedule Summary ===")
	c.io.Println()
	c.io.Println(resp.Summary)
	c.io.Println()
	c.io.Printf("Events covered: %d\n", resp.EventCount)
	c.io.Printf("Generated at:   %s\n", resp.GeneratedAt.Format(time.RFC3339))

	return nil
}

func (c *Cli) runStats(ctx context.Context) error {
	if err := c.ensureAuth(ctx); err != nil {
		return err
	}

	stats, err := c.workspace.Stats(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Workspace Statistics ===")
	c.io.Println()
	c.io.Printf("Documents:         %d\n", stats.TotalDocuments)
	c.io.Printf("Events:            %d\n", stats.TotalEvents)
	c.io.Printf("Events this month: %d\n", stats.EventsThisMonth)

	if stats.BusiestDay != nil {
		c.io.Printf("Busiest day:       %s (%d event(s))\n", stats.BusiestDay.Date, stats.BusiestDay.Count)
	}

	return nil
}

// runExport пишет дамп в stdout как JSON, чтобы его можно было направить
// в файл или в pipe
func (c *Cli) runExport(ctx context.Context) error {
	if err := c.ensureAuth(ctx); err != nil {
		return err
	}

	dump, err := c.workspace.Export(ctx)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	data = append(data, '\n')

	if _, err := c.io.Write(data); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	return nil
}

// runHealth не требует авторизации: проверка доступна до логина
func (c *Cli) runHealth(ctx context.Context) error {
	health, err := c.workspace.Health(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Server Health ===")
	c.io.Println()
	c.io.Printf("Status:   %s\n", health.Status)
	c.io.Printf("Database: %s\n", health.Database)
	c.io.Printf("Time:     %s\n", health.Time)

	return nil
}
