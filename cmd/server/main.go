package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	openapi "github.com/catalog14/catalog/api"
	"github.com/catalog14/catalog/internal/api"
	"github.com/catalog14/catalog/internal/auth"
	"github.com/catalog14/catalog/internal/catalog"
	"github.com/catalog14/catalog/internal/config"
	"github.com/catalog14/catalog/internal/database"
	"github.com/catalog14/catalog/internal/docstore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	ctx := context.Background()

	deps, cleanup, err := buildStore(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize store backend", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	decoder := auth.NewDecoder()
	if cfg.JWTSecret != "" {
		decoder = auth.NewVerifyingDecoder([]byte(cfg.JWTSecret))
	}

	deps.AuthService = auth.NewService(decoder)
	deps.ExemptPaths = cfg.AuthExemptPaths
	deps.Version = cfg.Version
	deps.OpenAPISpec = openapi.OpenAPISpec

	router := api.NewRouter(*deps)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting catalog server",
			"port", cfg.Port,
			"version", cfg.Version,
			"backend", cfg.StoreBackend,
			"tokenVerification", decoder.Verifying(),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

// buildStore constructs the selected storage adapter pair. The choice is
// made exactly once here; nothing downstream branches on the backend.
func buildStore(ctx context.Context, cfg *config.Config) (*api.RouterDeps, func(), error) {
	deps := &api.RouterDeps{Backend: cfg.StoreBackend}

	switch cfg.StoreBackend {
	case config.BackendPostgres:
		db, err := database.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		deps.Pinger = db
		deps.Products = catalog.NewPostgresRepository(db.Pool(), catalog.ProductMapping())
		deps.Categories = catalog.NewPostgresRepository(db.Pool(), catalog.CategoryMapping())
		return deps, db.Close, nil

	case config.BackendRedis:
		store, err := docstore.New(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		deps.Pinger = store
		deps.Products = catalog.NewRedisRepository(store.Client(), catalog.DefaultCollection,
			catalog.TypeProduct, func() *catalog.Product { return &catalog.Product{} })
		deps.Categories = catalog.NewRedisRepository(store.Client(), catalog.DefaultCollection,
			catalog.TypeCategory, func() *catalog.Category { return &catalog.Category{} })
		return deps, func() { _ = store.Close() }, nil
	}

	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
