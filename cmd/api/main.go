package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orderdesk/pkg/app"
	"orderdesk/pkg/config"
	"orderdesk/pkg/httpapi"
	"orderdesk/pkg/logger"
	"orderdesk/pkg/otel"
)

// @title Order Desk API
// @version 1.0
// @description Restaurant catalog and FIFO order desk
// @host localhost:8443
// @BasePath /
func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		logger.New(os.Stderr, logger.LevelInfo, "orderdesk-api", nil).Error(context.Background(), "load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(os.Stdout, cfg.LogLevel, "orderdesk-api", otel.GetTraceID)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp, shutdown, err := otel.InitTracing(log, otel.Config{ServiceName: "orderdesk-api", Host: cfg.OtelHost, Probability: cfg.OtelProbability})
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

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.New(a.Desk, log, tp.Tracer("orderdesk-api")).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info(ctx, "listening", "addr", cfg.HTTPAddr, "tls", cfg.TLSCert != "")
		if cfg.TLSCert != "" && cfg.TLSKey != "" {
			errc <- srv.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			errc <- srv.ListenAndServe()
		}
	}()

	select {
	case <-ctx.Done():
		log.Info(context.Background(), "shutting down")
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error(context.Background(), "server closed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "server shutdown", "error", err)
	}
	if err := a.Save(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "save catalog", "error", err)
	}
}
