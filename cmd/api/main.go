package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"transparency-ai/internal/bootstrap"
	"transparency-ai/internal/shared/config"
	"transparency-ai/internal/shared/server"
	"transparency-ai/internal/shared/telemetry"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	telemetry.Configure(cfg.LogLevel, cfg.Debug)

	app, err := bootstrap.Build(cfg)
	if err != nil {
		telemetry.Error("bootstrap.failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              server.Addr(cfg.Port),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		telemetry.Info("server.start", map[string]any{
			"addr":       srv.Addr,
			"env":        cfg.Env,
			"debug":      cfg.Debug,
			"ai_enabled": app.AI.Enabled(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			telemetry.Error("server.failed", map[string]any{"error": err.Error()})
			stop()
		}
	}()

	<-ctx.Done()
	telemetry.Info("server.shutdown", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		telemetry.Error("server.shutdown_failed", map[string]any{"error": err.Error()})
	}
}
