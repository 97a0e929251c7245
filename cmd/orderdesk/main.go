package main

import (
	"context"
	"os"

	"orderdesk/pkg/app"
	"orderdesk/pkg/config"
	"orderdesk/pkg/console"
	"orderdesk/pkg/logger"
	"orderdesk/pkg/otel"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		logger.New(os.Stderr, logger.LevelInfo, "orderdesk", nil).Error(context.Background(), "load config", "error", err)
		os.Exit(1)
	}
	// Stdout belongs to the operator; logs go to stderr.
	log := logger.New(os.Stderr, cfg.LogLevel, "orderdesk", otel.GetTraceID)
	defer log.Sync()

	ctx := context.Background()
	_, shutdown, err := otel.InitTracing(log, otel.Config{ServiceName: "orderdesk", Host: cfg.OtelHost, Probability: cfg.OtelProbability})
	if err != nil {
		log.Error(ctx, "init tracing", "error", err)
		os.Exit(1)
	}
	defer shutdown(context.Background())

	a, err := app.Build(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "startup", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	if err := console.New(a.Desk, a.Store, os.Stdin, os.Stdout).Run(ctx); err != nil {
		log.Error(ctx, "save catalog", "error", err)
		os.Exit(1)
	}
}
