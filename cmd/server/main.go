package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"example.com/diet-planner/backend/internal/catalog"
	"example.com/diet-planner/backend/internal/config"
	"example.com/diet-planner/backend/internal/database"
	"example.com/diet-planner/backend/internal/planner"
	"example.com/diet-planner/backend/internal/repository"
	"example.com/diet-planner/backend/internal/server"
	"example.com/diet-planner/backend/internal/share"
)

func main() {
	ensureEnvFile()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	foods, err := loadCatalog(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to load food catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("food catalog loaded",
		slog.String("source", cfg.Catalog.Source),
		slog.Int("items", foods.Len()),
	)

	service := planner.New(foods,
		planner.WithStrictValidation(cfg.Planner.StrictValidation),
		planner.WithLogger(logger),
	)
	tokens := share.NewTokenManager(cfg.Share.Secret, cfg.Share.Issuer, cfg.Share.TokenTTL)

	e := server.New(cfg, logger, service, tokens)
	httpServer := server.NewHTTPServer(cfg.Server, e)

	go func() {
		if err := e.StartServer(httpServer); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", slog.String("error", err.Error()))
		}
	}()

	shutdownSignal := make(chan os.Signal, 1)
	signal.Notify(shutdownSignal, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownSignal

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.String("error", err.Error()))
	}
}

// loadCatalog читает каталог блюд из настроенного источника один раз при старте.
func loadCatalog(ctx context.Context, cfg config.Config, logger *slog.Logger) (*catalog.Catalog, error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourceFile:
		return catalog.LoadFile(cfg.Catalog.FilePath)
	case config.CatalogSourcePostgres:
		loadCtx, cancel := context.WithTimeout(ctx, cfg.Database.LoadTimeout)
		defer cancel()

		db, err := database.Open(loadCtx, cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()

		return catalog.FromLister(loadCtx, repository.NewFoodRepository(db))
	default:
		return catalog.Default(), nil
	}
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func ensureEnvFile() {
	if os.Getenv("ENV_FILE") != "" {
		return
	}

	if _, err := os.Stat(".env"); err == nil {
		_ = os.Setenv("ENV_FILE", ".env")
		return
	}

	if _, err := os.Stat("../.env"); err == nil {
		_ = os.Setenv("ENV_FILE", "../.env")
	}
}
