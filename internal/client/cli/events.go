package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/iudanet/pagekeeper/internal/models"
	"github.com/iudanet/pagekeeper/pkg/api"
)

func (c *Cli) runEvents(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: pagekeeper events <add|list|today|rm|clear>")
	}

	sub, rest := args[0], args[1:]

	switch sub {
	case "add":
		return c.runEventAdd(ctx)
	case "list":
		return c.runEventList(ctx, rest)
	case "today":
		return c.runEventList(ctx, nil)
	case "rm":
		return c.runEventRemove(ctx, rest)
	case "clear":
		return c.runEventClear(ctx)
	default:
		return fmt.Errorf("unknown events subcommand: %s", sub)
	}
}

func (c *Cli) runEventAdd(ctx context.Context) error {
	if err := c.ensureAuth(ctx); err != nil {
		return err
	}

	c.io.Println("=== New Event ===")
	c.io.Println()

	title, err := c.io.ReadInput("Title: ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}

	date, err := c.io.ReadInput("Date (YYYY-MM-DD): ")
	if err != nil {
		return fmt.Errorf("failed to read date: %w", err)
	}

	eventTime, err := c.io.ReadInput("Time (HH:MM, optional): ")
	if err != nil {
		return fmt.Errorf("failed to read time: %w", err)
	}

	description, err := c.io.ReadInput("Description (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}

	event, err := c.workspace.AddEvent(ctx, title, date, eventTime, description)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Event created!")
	c.io.Printf("ID:   %s\n", event.ID)
	if event.Time != "" {
		c.io.Printf("When: %s %s\n", event.Date, event.Time)
	} else {
		c.io.Printf("When: %s (all day)\n", event.Date)
	}

	return nil
}

func (c *Cli) runEventList(ctx context.Context, args []string) error {
	if err := c.ensureAuth(ctx); err != nil {
		return err
	}

	// Пустая дата означает сегодня, подставит сервис
	var date string
	if len(args) > 0 {
		date = args[0]
	}

	resp, err := c.workspace.EventsOn(ctx, date)
	if err != nil {
		return err
	}

	c.io.Printf("=== Events on %s ===\n", resp.Date)
	c.io.Println()

	if len(resp.Events) == 0 {
		c.io.Println("No events.")
		return nil
	}

	for _, event := range resp.Events {
		c.printEvent(event)
	}

	c.io.Println()
	c.io.Printf("Total: %d event(s)\n", resp.Count)

	return nil
}

func (c *Cli) runEventRemove(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing event ID. Usage: pagekeeper events rm <id>")
	}

	if err := c.ensureAuth(ctx); err != nil {
		return err
	}

	if err := c.workspace.DeleteEvent(ctx, args[0]); err != nil {
		return err
	}

	c.io.Println("✓ Event deleted successfully!")

	return nil
}

func (c *Cli) runEventClear(ctx context.Context) error {
	if err := c.ensureAuth(ctx); err != nil {
		return err
	}

	c.io.Println("⚠️  This will delete ALL events in your calendar.")
	c.io.Println()

	confirm, err := c.io.ReadInput(fmt.Sprintf("Type %s to confirm: ", api.ConfirmDeleteAll))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if confirm != api.ConfirmDeleteAll {
		c.io.Println()
		c.io.Println("Deletion cancelled.")
		return nil
	}

	deleted, err := c.workspace.ClearEvents(ctx, confirm)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("✓ Deleted %d event(s)\n", deleted)

	return nil
}

func (c *Cli) runAgenda(ctx context.Context, args []string) error {
	if err := c.ensureAuth(ctx); err != nil {
		return err
	}

	var startDate, endDate string
	switch len(args) {
	case 0:
		// Неделя вперед, начиная с сегодняшнего дня
		now := time.Now()
		startDate = now.Format(models.DateLayout)
		endDate = now.AddDate(0, 0, 6).Format(models.DateLayout)
	case 2:
		startDate, endDate = args[0], args[1]
	default:
		return fmt.Errorf("agenda takes no dates or both. Usage: pagekeeper agenda [start end]")
	}

	resp, err := c.workspace.Agenda(ctx, startDate, endDate)
	if err != nil {
		return err
	}

	c.io.Printf("=== Agenda %s .. %s ===\n", resp.StartDate, resp.EndDate)
	c.io.Println()

	// Ответ группирует события по дате, ключи печатаем по порядку
	dates := make([]string, 0, len(resp.EventsByDate))
	for date := range resp.EventsByDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	for _, date := range dates {
		label := date
		if d, parseErr := time.Parse(models.DateLayout, date); parseErr == nil {
			label = fmt.Sprintf("%s (%s)", date, d.Weekday())
		}
		c.io.Printf("%s\n", label)

		events := resp.EventsByDate[date]
		if len(events) == 0 {
			c.io.Println("  (no events)")
		}
		for _, event := range events {
			c.printEvent(event)
		}
	}

	c.io.Println()
	c.io.Printf("Total: %d event(s)\n", resp.Total)

	return nil
}

func (c *Cli) printEvent(event api.Event) {
	when := "all day"
	if event.Time != "" {
		when = event.Time
	}

	c.io.Printf("  %-7s  %s\n", when, event.Title)
	if event.Description != "" {
		c.io.Printf("           %s\n", event.Description)
	}
	c.io.Printf("           ID: %s\n", event.ID)
}
