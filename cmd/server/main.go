package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/kbostats/kbo-stats-service/internal/config"
	"github.com/kbostats/kbo-stats-service/internal/logging"
	"github.com/kbostats/kbo-stats-service/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	dotEnvErr := config.LoadDotEnv()
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Service:    cfg.Metrics.ServiceName,
		Version:    appVersion,
	})
	if dotEnvErr != nil {
		logger.Warn("failed to load .env", "error", dotEnvErr)
	}
	logger.Info("config loaded",
		slog.String(logging.FieldProvider, cfg.Provider),
		slog.String("backend_url", cfg.Backend.BaseURL),
		slog.String("cache_backend", cfg.Cache.Backend),
		slog.Bool("warm_enabled", cfg.Warm.Enabled),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
