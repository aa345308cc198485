package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/iudanet/pagekeeper/internal/client/api"
	"github.com/iudanet/pagekeeper/internal/client/auth"
	"github.com/iudanet/pagekeeper/internal/client/cli"
	"github.com/iudanet/pagekeeper/internal/client/editor"
	"github.com/iudanet/pagekeeper/internal/client/iocli"
	"github.com/iudanet/pagekeeper/internal/client/storage/boltdb"
	"github.com/iudanet/pagekeeper/internal/client/workspace"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// .env подхватывается до разбора флагов, его значения служат дефолтами
	_ = godotenv.Load()

	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", envOrDefault("PAGEKEEPER_SERVER", "http://localhost:8080"), "Server URL")
	dbPath := flag.String("db", envOrDefault("PAGEKEEPER_DB", "pagekeeper-client.db"), "Path to local state file")
	quiet := flag.Duration("quiet", editor.DefaultQuietInterval, "Autosave quiet interval")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Логи клиента уходят в stderr, чтобы не мешаться с выводом команд
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	// Создаем контекст
	ctx := context.Background()

	// Открываем локальное состояние (сессия + недавние документы)
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open state file: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close state file", "error", err)
		}
	}()

	// Создаем API клиент и сервисы
	apiClient := api.NewClient(*serverURL)
	authService := auth.NewService(apiClient, boltStorage, logger)
	workspaceService := workspace.NewService(apiClient, logger)

	c := cli.New(
		iocli.NewStdio(),
		authService,
		workspaceService,
		apiClient,
		boltStorage,
		logger,
		editor.Options{QuietInterval: *quiet},
	)

	args := flag.Args()
	if len(args) == 0 {
		c.PrintUsage()
		os.Exit(1)
	}

	if err := c.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func printVersion() {
	fmt.Printf("PageKeeper Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
