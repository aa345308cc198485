package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/pagekeeper/internal/server/ai"
	"github.com/iudanet/pagekeeper/internal/server/handlers"
	"github.com/iudanet/pagekeeper/internal/server/middleware"
	"github.com/iudanet/pagekeeper/internal/server/storage/sqlite"
)

// Config задает параметры HTTP слоя: JWT и лимиты запросов.
type Config struct {
	JWT handlers.JWTConfig

	// Лимит по умолчанию для всех маршрутов (запросов на окно с одного IP)
	DefaultRate   int
	DefaultWindow time.Duration

	// Жесткий лимит для login/register (argon2 дорогой)
	AuthRate   int
	AuthWindow time.Duration
}

// Setup собирает все handlers и middleware в один http.Handler.
// Цепочка middleware снаружи внутрь: recovery -> logging -> rate limit -> auth.
// Auth оборачивает каждый защищенный маршрут отдельно, публичные
// (register, login, refresh, health) подключаются напрямую.
func Setup(logger *slog.Logger, store *sqlite.Storage, gemini *ai.Client, cfg Config) http.Handler {
	if cfg.DefaultRate <= 0 {
		cfg.DefaultRate = 100
	}
	if cfg.DefaultWindow <= 0 {
		cfg.DefaultWindow = time.Minute
	}
	if cfg.AuthRate <= 0 {
		cfg.AuthRate = 10
	}
	if cfg.AuthWindow <= 0 {
		cfg.AuthWindow = time.Minute
	}

	mux := http.NewServeMux()

	authHandler := handlers.NewAuthHandler(logger, store, store, cfg.JWT)
	docHandler := handlers.NewDocumentHandler(logger, store)
	eventHandler := handlers.NewEventHandler(logger, store)
	summaryHandler := handlers.NewSummaryHandler(logger, store, gemini)
	statsHandler := handlers.NewStatsHandler(logger, store)
	exportHandler := handlers.NewExportHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, store)

	auth := middleware.AuthMiddleware(logger, cfg.JWT)

	// Публичные маршруты
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/v1/auth/refresh", authHandler.Refresh)
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)

	// Защищенные маршруты
	mux.Handle("POST /api/v1/auth/logout", auth(http.HandlerFunc(authHandler.Logout)))

	mux.Handle("POST /api/v1/documents", auth(http.HandlerFunc(docHandler.Create)))
	mux.Handle("GET /api/v1/documents", auth(http.HandlerFunc(docHandler.List)))
	mux.Handle("GET /api/v1/documents/{id}", auth(http.HandlerFunc(docHandler.Get)))
	mux.Handle("PUT /api/v1/documents/{id}", auth(http.HandlerFunc(docHandler.Update)))
	mux.Handle("DELETE /api/v1/documents/{id}", auth(http.HandlerFunc(docHandler.Delete)))

	mux.Handle("POST /api/v1/events", auth(http.HandlerFunc(eventHandler.Create)))
	mux.Handle("GET /api/v1/events", auth(http.HandlerFunc(eventHandler.ListOn)))
	mux.Handle("GET /api/v1/events/range", auth(http.HandlerFunc(eventHandler.Range)))
	mux.Handle("GET /api/v1/events/sync", auth(http.HandlerFunc(eventHandler.Sync)))
	mux.Handle("POST /api/v1/events/batch", auth(http.HandlerFunc(eventHandler.CreateBatch)))
	mux.Handle("DELETE /api/v1/events/{id}", auth(http.HandlerFunc(eventHandler.Delete)))
	mux.Handle("DELETE /api/v1/events", auth(http.HandlerFunc(eventHandler.DeleteAll)))

	mux.Handle("GET /api/v1/export", auth(http.HandlerFunc(exportHandler.Export)))
	mux.Handle("POST /api/v1/ai/summary", auth(http.HandlerFunc(summaryHandler.Summarize)))
	mux.Handle("GET /api/v1/stats", auth(http.HandlerFunc(statsHandler.Stats)))

	authLimits := []middleware.PathRateLimit{
		{Path: "/api/v1/auth/login", Rate: cfg.AuthRate, Window: cfg.AuthWindow},
		{Path: "/api/v1/auth/register", Rate: cfg.AuthRate, Window: cfg.AuthWindow},
	}

	var handler http.Handler = mux
	handler = middleware.RateLimitByPathMiddleware(authLimits, cfg.DefaultRate, cfg.DefaultWindow, logger)(handler)
	handler = middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	return handler
}
