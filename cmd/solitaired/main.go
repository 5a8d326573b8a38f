package main

import (
	"context"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"

	"github.com/labstack/echo/v4"

	"github.com/samsmithnz/CardGames-sub000/internal/adapters/catalog"
	httpadapter "github.com/samsmithnz/CardGames-sub000/internal/adapters/http"
	"github.com/samsmithnz/CardGames-sub000/internal/adapters/sessions"
	"github.com/samsmithnz/CardGames-sub000/internal/app"
	"github.com/samsmithnz/CardGames-sub000/internal/config"
)

// stdRNG delegates to math/rand (auto-seeded).
type stdRNG struct{}

func (stdRNG) Intn(n int) int { return rand.Intn(n) }

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	store := catalog.NewEmbeddedStore()
	if cfg.CatalogPath != "" {
		store = catalog.NewFileStore(cfg.CatalogPath)
	}
	cat, err := store.Catalog()
	if err != nil {
		logger.Error("failed to load catalog", "path", cfg.CatalogPath, "error", err)
		os.Exit(1)
	}
	if _, ok := cat.FindGame(cfg.DefaultGame); !ok {
		logger.Error("default game not in catalog", "game", cfg.DefaultGame, "games", cat.Names())
		os.Exit(1)
	}

	svc := app.NewGameService(store, sessions.NewMemoryRepo(), stdRNG{}, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))

	handler := httpadapter.NewHandler(svc, cfg.DefaultGame)
	handler.Register(e)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr, "games", cat.Names())
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
