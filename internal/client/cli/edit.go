package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/pagekeeper/internal/client/editor"
	"github.com/iudanet/pagekeeper/internal/client/iocli"
	"github.com/iudanet/pagekeeper/internal/models"
	"github.com/iudanet/pagekeeper/internal/validation"
)

func (c *Cli) runEdit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing document ID. Usage: pagekeeper edit <id>")
	}

	if err := c.ensureAuth(ctx); err != nil {
		return err
	}

	session := editor.New(c.store, &editorPrinter{io: c.io}, c.logger, c.editorOpts)
	if err := session.Load(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}

	c.touchRecent(ctx, session.Document())

	return c.editLoop(ctx, session)
}

// editLoop крутит интерактивный редактор до команды выхода или EOF.
// Каждая правка блока взводит автосохранение; на выходе сессия
// закрывается и дозаписывает несохраненные правки.
func (c *Cli) editLoop(ctx context.Context, session *editor.Session) error {
	c.io.Println()
	c.io.Println("Editor commands:")
	c.io.Println("  <n> <text>     Replace the text of block n")
	c.io.Println("  :add           Append an empty block")
	c.io.Println("  :title <text>  Rename the page")
	c.io.Println("  :save          Save immediately")
	c.io.Println("  :q             Save and exit")
	c.io.Println()

	for {
		line, err := c.io.ReadInput("> ")
		if err != nil {
			// EOF равнозначен :q, терминал закрыли
			if errors.Is(err, io.EOF) {
				break
			}
			// Цикл больше читать не сможет, но несохраненные правки
			// еще можно дописать
			if closeErr := session.Close(ctx); closeErr != nil {
				c.io.Printf("⚠️  Failed to save on exit: %v\n", closeErr)
			}
			return fmt.Errorf("failed to read command: %w", err)
		}

		quit, err := c.handleEditCommand(ctx, session, line)
		if err != nil {
			c.io.Printf("Error: %v\n", err)
			continue
		}
		if quit {
			break
		}
	}

	if err := session.Close(ctx); err != nil {
		return fmt.Errorf("failed to save on exit: %w", err)
	}

	c.io.Println("✓ Editor closed.")

	return nil
}

// handleEditCommand разбирает одну строку редактора.
// Возвращает true, когда пора выходить из цикла.
func (c *Cli) handleEditCommand(ctx context.Context, session *editor.Session, line string) (bool, error) {
	line = strings.TrimSpace(line)

	switch {
	case line == "":
		return false, nil

	case line == ":q":
		return true, nil

	case line == ":save":
		if err := session.Persist(ctx); err != nil {
			return false, err
		}
		return false, nil

	case line == ":add":
		index, err := session.AddBlock()
		if err != nil {
			return false, err
		}
		c.io.Printf("[%d]\n", index)
		return false, nil

	case strings.HasPrefix(line, ":title"):
		title := strings.TrimSpace(strings.TrimPrefix(line, ":title"))
		if err := validation.ValidateTitle(title); err != nil {
			return false, err
		}
		return false, session.SetTitle(title)

	case strings.HasPrefix(line, ":"):
		return false, fmt.Errorf("unknown editor command: %s", line)
	}

	index, text, ok := splitBlockEdit(line)
	if !ok {
		return false, fmt.Errorf("expected '<n> <text>' or an editor command, got: %s", line)
	}

	return false, session.Edit(index, text)
}

// splitBlockEdit разбирает строку "<n> <text>" на индекс блока и новый
// текст. Текст может быть пустым: "3" очищает третий блок.
func splitBlockEdit(line string) (int, string, bool) {
	head, tail, _ := strings.Cut(line, " ")

	index, err := strconv.Atoi(head)
	if err != nil {
		return 0, "", false
	}

	return index, tail, true
}

// editorPrinter показывает события сессии редактора в терминале.
// Сессия не пробрасывает ошибки автосохранения наружу, поэтому результат
// фонового сохранения виден только через эти уведомления.
type editorPrinter struct {
	io iocli.IO
}

func (p *editorPrinter) DocumentLoaded(doc *models.Document) {
	printDocument(p.io, doc)
}

func (p *editorPrinter) SaveSucceeded(doc *models.Document) {
	p.io.Printf("✓ Saved at %s\n", doc.UpdatedAt.Format(time.DateTime))
}

func (p *editorPrinter) SaveFailed(err error) {
	p.io.Printf("⚠️  Save failed: %v\n", err)
	p.io.Println("Your changes are kept in the buffer and will be sent with the next save.")
}
