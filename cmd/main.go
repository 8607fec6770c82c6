package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"namegen/internal/application"
	"namegen/internal/config"
	"namegen/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logx.New(os.Stderr, "error", false).Error("config load", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}

	log := logx.New(os.Stdout, cfg.App.LogLevel, cfg.App.NoColor)
	slog.SetDefault(log)

	if err = application.Run(ctx, cfg, log); err != nil {
		log.Error("application failed", logx.Error(err))
		cancel()
		os.Exit(1)
	}

	log.Info("application stopped")
}
