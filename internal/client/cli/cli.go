package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/pagekeeper/internal/client/auth"
	"github.com/iudanet/pagekeeper/internal/client/editor"
	"github.com/iudanet/pagekeeper/internal/client/iocli"
	"github.com/iudanet/pagekeeper/internal/client/storage"
	"github.com/iudanet/pagekeeper/internal/client/workspace"
)

// Cli связывает команды терминала с клиентскими сервисами
type Cli struct {
	io          iocli.IO
	authService auth.Service
	workspace   workspace.Service
	store       editor.Store
	recents     storage.RecentsStorage
	logger      *slog.Logger
	editorOpts  editor.Options
}

func New(
	io iocli.IO,
	authService auth.Service,
	workspaceService workspace.Service,
	store editor.Store,
	recents storage.RecentsStorage,
	logger *slog.Logger,
	editorOpts editor.Options,
) *Cli {
	return &Cli{
		io:          io,
		authService: authService,
		workspace:   workspaceService,
		store:       store,
		recents:     recents,
		logger:      logger,
		editorOpts:  editorOpts,
	}
}

// Run исполняет одну команду CLI
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "list":
		return c.runList(ctx)
	case "recent":
		return c.runRecent(ctx)
	case "new":
		return c.runNew(ctx, args)
	case "open":
		return c.runOpen(ctx, args)
	case "edit":
		return c.runEdit(ctx, args)
	case "rm":
		return c.runRemove(ctx, args)
	case "events":
		return c.runEvents(ctx, args)
	case "agenda":
		return c.runAgenda(ctx, args)
	case "summary":
		return c.runSummary(ctx, args)
	case "stats":
		return c.runStats(ctx)
	case "export":
		return c.runExport(ctx)
	case "health":
		return c.runHealth(ctx)
	case "help":
		c.PrintUsage()
		return nil
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// ensureAuth взводит свежий access token перед запросами к API
func (c *Cli) ensureAuth(ctx context.Context) error {
	if err := c.authService.EnsureTokenValid(ctx); err != nil {
		if errors.Is(err, auth.ErrNotAuthenticated) {
			return fmt.Errorf("not authenticated. Please run 'pagekeeper login' first")
		}
		return err
	}
	return nil
}

func (c *Cli) PrintUsage() {
	c.io.Println("PageKeeper Client")
	c.io.Println()
	c.io.Println("Usage:")
	c.io.Println("  pagekeeper [OPTIONS] COMMAND [ARGS]")
	c.io.Println()
	c.io.Println("Options:")
	c.io.Println("  -version          Show version information")
	c.io.Println("  -server URL       Server URL (default: http://localhost:8080)")
	c.io.Println("  -db PATH          Path to local state file (default: pagekeeper-client.db)")
	c.io.Println("  -quiet DURATION   Autosave quiet interval (default: 1s)")
	c.io.Println()
	c.io.Println("Commands:")
	c.io.Println("  register                    Register new user")
	c.io.Println("  login                       Login to server")
	c.io.Println("  logout                      Delete local session")
	c.io.Println("  status                      Show authentication status")
	c.io.Println("  list                        List documents")
	c.io.Println("  recent                      Show recently opened documents")
	c.io.Println("  new [title]                 Create a page and open the editor")
	c.io.Println("  open <id>                   Print a page")
	c.io.Println("  edit <id>                   Edit a page interactively (autosave)")
	c.io.Println("  rm <id>                     Delete a page")
	c.io.Println("  events add                  Add a calendar event")
	c.io.Println("  events list [date]          List events for a date (default: today)")
	c.io.Println("  events today                List today's events")
	c.io.Println("  events rm <id>              Delete an event")
	c.io.Println("  events clear                Delete ALL events")
	c.io.Println("  agenda [start end]          Events for a date range (default: next 7 days)")
	c.io.Println("  summary [date | start end]  AI summary of the schedule")
	c.io.Println("  stats                       Workspace statistics")
	c.io.Println("  export                      Dump documents and events as JSON")
	c.io.Println("  health                      Check server availability")
	c.io.Println("  help                        Show this help")
	c.io.Println()
	c.io.Println("Examples:")
	c.io.Println("  pagekeeper register")
	c.io.Println("  pagekeeper new Meeting notes")
	c.io.Println("  pagekeeper edit b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5")
	c.io.Println("  pagekeeper events add")
	c.io.Println("  pagekeeper agenda 2025-04-01 2025-04-07")
	c.io.Println("  pagekeeper -server https://example.com login")
}
