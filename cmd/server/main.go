package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/iudanet/pagekeeper/internal/server/ai"
	"github.com/iudanet/pagekeeper/internal/server/handlers"
	"github.com/iudanet/pagekeeper/internal/server/router"
	"github.com/iudanet/pagekeeper/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 720 * time.Hour

	shutdownTimeout = 10 * time.Second

	// Просроченные refresh токены вычищаются фоном с этим интервалом
	tokenCleanupInterval = 1 * time.Hour
)

type config struct {
	address      string
	databasePath string
	jwtSecret    string
	geminiAPIKey string
	geminiModel  string
	rateLimit    int
	authRate     int
}

func main() {
	// .env загружается до разбора флагов: его значения служат дефолтами
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables from OS")
	}

	showVersion := flag.Bool("version", false, "Show version information")
	address := flag.String("address", envOrDefault("ADDRESS", ":8080"), "HTTP listen address")
	databasePath := flag.String("database", envOrDefault("DATABASE_PATH", "pagekeeper.db"), "Path to SQLite database")
	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	cfg := config{
		address:      *address,
		databasePath: *databasePath,
		jwtSecret:    os.Getenv("JWT_SECRET"),
		geminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		geminiModel:  os.Getenv("GEMINI_MODEL"),
		rateLimit:    envOrDefaultInt("RATE_LIMIT_RPS", 100),
		authRate:     envOrDefaultInt("AUTH_RATE_LIMIT_RPS", 10),
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Сервер без секрета выпускал бы подделываемые токены
	if cfg.jwtSecret == "" {
		return errors.New("JWT_SECRET environment variable is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, cfg.databasePath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()

	gemini := ai.NewClient(logger.With("component", "gemini"), ai.Config{
		APIKey: cfg.geminiAPIKey,
		Model:  cfg.geminiModel,
	})
	if cfg.geminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY is not set, AI summary endpoint will answer 503")
	}

	handler := router.Setup(logger, store, gemini, router.Config{
		JWT: handlers.JWTConfig{
			Secret:          []byte(cfg.jwtSecret),
			AccessTokenTTL:  accessTokenTTL,
			RefreshTokenTTL: refreshTokenTTL,
		},
		DefaultRate:   cfg.rateLimit,
		DefaultWindow: time.Minute,
		AuthRate:      cfg.authRate,
		AuthWindow:    time.Minute,
	})

	srv := &http.Server{
		Addr:              cfg.address,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go tokenCleanupLoop(ctx, logger, store)

	errC := make(chan error, 1)
	go func() {
		logger.Info("PageKeeper server listening",
			"address", cfg.address,
			"database", cfg.databasePath,
			"version", Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()

	select {
	case err := <-errC:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// tokenCleanupLoop периодически удаляет просроченные refresh токены,
// иначе таблица растет с каждым login
func tokenCleanupLoop(ctx context.Context, logger *slog.Logger, store *sqlite.Storage) {
	ticker := time.NewTicker(tokenCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := store.DeleteExpiredTokens(ctx)
			if err != nil {
				logger.Error("failed to delete expired tokens", "error", err)
				continue
			}
			if deleted > 0 {
				logger.Info("expired refresh tokens deleted", "count", deleted)
			}
		}
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrDefaultInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v)
		return fallback
	}
	return n
}

func printVersion() {
	fmt.Printf("PageKeeper Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
