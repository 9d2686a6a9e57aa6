package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/templui/lenscard"
	"github.com/templui/lenscard/internal/app"
	"github.com/templui/lenscard/internal/config"
	"github.com/templui/lenscard/internal/logger"
	"github.com/templui/lenscard/internal/routes"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.IsDevelopment(), cfg.SentryDSN, cfg.AppEnv)

	os.Exit(exitCode(run(cfg)))
}

// exitCode logs err and flushes Sentry. os.Exit skips deferred calls, so this runs first.
func exitCode(err error) int {
	defer logger.Flush()
	if err != nil {
		slog.Error("server stopped", "error", err)
		return 1
	}
	return 0
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	content, err := fs.Sub(lenscard.ContentFS, "content")
	if err != nil {
		return fmt.Errorf("open embedded content: %w", err)
	}

	app, err := app.New(ctx, cfg, content)
	if err != nil {
		return fmt.Errorf("initialize app: %w", err)
	}
	defer func() {
		closeErr := app.Close()
		if closeErr != nil {
			slog.Error("failed to close app", "error", closeErr)
		}
	}()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.SetupRoutes(app),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.LensTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv, "url", cfg.AppURL,
			"snapshots", app.SnapshotService.Enabled())
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = srv.Shutdown(shutdownCtx)
	if err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}

	select {
	case err := <-serveErr:
		return fmt.Errorf("serve: %w", err)
	default:
		return nil
	}
}
