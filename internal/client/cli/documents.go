package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/pagekeeper/internal/client/editor"
	"github.com/iudanet/pagekeeper/internal/client/iocli"
	"github.com/iudanet/pagekeeper/internal/client/storage"
	"github.com/iudanet/pagekeeper/internal/models"
	"github.com/iudanet/pagekeeper/internal/validation"
)

func (c *Cli) runList(ctx context.Context) error {
	if err := c.ensureAuth(ctx); err != nil {
		return err
	}

	docs, err := c.workspace.ListDocuments(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Documents ===")
	c.io.Println()

	if len(docs) == 0 {
		c.io.Println("No documents found.")
		c.io.Println("Create one with 'pagekeeper new <title>'.")
		return nil
	}

	for i, doc := range docs {
		c.io.Printf("%d. %s\n", i+1, doc.Title)
		c.io.Printf("   ID: %s  Updated: %s\n", doc.ID, doc.UpdatedAt.Format("2006-01-02 15:04"))
	}

	c.io.Println()
	c.io.Printf("Total: %d document(s)\n", len(docs))

	return nil
}

// runRecent работает только с локальным состоянием, авторизация не нужна
func (c *Cli) runRecent(ctx context.Context) error {
	entries, err := c.recents.ListRecents(ctx)
	if err != nil {
		return fmt.Errorf("failed to read recent documents: %w", err)
	}

	c.io.Println("=== Recent Documents ===")
	c.io.Println()

	if len(entries) == 0 {
		c.io.Println("No recently opened documents.")
		return nil
	}

	for i, entry := range entries {
		c.io.Printf("%d. %s\n", i+1, entry.Title)
		c.io.Printf("   ID: %s  Opened: %s\n", entry.ID, entry.OpenedAt.Format("2006-01-02 15:04"))
	}

	return nil
}

func (c *Cli) runNew(ctx context.Context, args []string) error {
	if err := c.ensureAuth(ctx); err != nil {
		return err
	}

	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		input, err := c.io.ReadInput("Title: ")
		if err != nil {
			return fmt.Errorf("failed to read title: %w", err)
		}
		title = input
	}

	if err := validation.ValidateTitle(title); err != nil {
		return err
	}

	session := editor.New(c.store, &editorPrinter{io: c.io}, c.logger, c.editorOpts)
	if err := session.Create(ctx, title); err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	doc := session.Document()
	c.io.Printf("✓ Created document %s\n", doc.ID)
	c.touchRecent(ctx, doc)

	return c.editLoop(ctx, session)
}

func (c *Cli) runOpen(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing document ID. Usage: pagekeeper open <id>")
	}

	if err := c.ensureAuth(ctx); err != nil {
		return err
	}

	doc, err := c.store.FetchDocument(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}

	printDocument(c.io, doc)
	c.touchRecent(ctx, doc)

	return nil
}

func (c *Cli) runRemove(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing document ID. Usage: pagekeeper rm <id>")
	}

	if err := c.ensureAuth(ctx); err != nil {
		return err
	}

	documentID := args[0]

	// Сначала показываем, что именно будет удалено
	doc, err := c.store.FetchDocument(ctx, documentID)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	c.io.Println("About to delete:")
	c.io.Printf("  Title: %s\n", doc.Title)
	c.io.Printf("  ID:    %s\n", doc.ID)
	c.io.Println()

	confirm, err := c.io.ReadInput("Are you sure you want to delete this document? (yes/no): ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if confirm != "yes" && confirm != "y" {
		c.io.Println()
		c.io.Println("Deletion cancelled.")
		return nil
	}

	if err := c.workspace.DeleteDocument(ctx, documentID); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Document deleted successfully!")

	return nil
}

// printDocument печатает страницу целиком: заголовок, метаданные и блоки
// с их индексами, как их ожидает команда редактора "<n> <text>".
// Функция, а не метод: ее разделяют команды и editorPrinter.
func printDocument(out iocli.IO, doc *models.Document) {
	out.Printf("=== %s ===\n", doc.Title)
	out.Printf("ID:      %s\n", doc.ID)
	if !doc.UpdatedAt.IsZero() {
		out.Printf("Updated: %s\n", doc.UpdatedAt.Format(time.RFC3339))
	}
	out.Println()

	for i, block := range doc.Blocks {
		out.Printf("[%d] %s\n", i, block.Content.Text)
	}
}

// touchRecent обновляет локальный список недавних документов.
// Сбой здесь не роняет команду: список живет только для удобства.
func (c *Cli) touchRecent(ctx context.Context, doc *models.Document) {
	entry := &storage.RecentEntry{
		ID:       doc.ID,
		Title:    doc.Title,
		OpenedAt: time.Now(),
	}
	if err := c.recents.TouchRecent(ctx, entry); err != nil {
		c.logger.Warn("failed to update recent documents", "document_id", doc.ID, "error", err)
	}
}
