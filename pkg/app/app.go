// Package app assembles a desk from configuration: directory, catalog store,
// order log sinks and the archives enabled by the environment.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"orderdesk/pkg/catalog"
	"orderdesk/pkg/catalog/textfile"
	"orderdesk/pkg/config"
	"orderdesk/pkg/desk"
	"orderdesk/pkg/logger"
	"orderdesk/pkg/order"
	"orderdesk/pkg/order/file"
	"orderdesk/pkg/order/memory"
	"orderdesk/pkg/order/postgres"
	"orderdesk/pkg/order/redis"
)

// App is a ready-to-use desk with its catalog store.
type App struct {
	Desk  *desk.Desk
	Store *textfile.Store

	closers []io.Closer
}

// Build loads the catalog and wires the order sinks described by cfg.
// A malformed catalog is logged and the partial catalog is kept.
func Build(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	a := &App{Store: textfile.New(cfg.CatalogFile, log)}

	dir := catalog.New(cfg.BucketCount)
	if _, err := a.Store.Load(ctx, dir); err != nil {
		if !errors.Is(err, textfile.ErrMalformed) {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		log.Warn(ctx, "using partial catalog", "error", err)
	}

	rec, err := a.recorders(ctx, cfg, log)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Desk = desk.New(dir, rec, log)
	return a, nil
}

func (a *App) recorders(ctx context.Context, cfg *config.Config, log *logger.Logger) (order.Recorder, error) {
	var recs order.MultiRecorder
	switch cfg.OrderSink {
	case config.SinkMemory:
		recs = append(recs, memory.New())
	default:
		recs = append(recs, file.New(cfg.OrderLogFile))
	}

	if cfg.DatabaseURL != "" {
		pg, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("order archive: %w", err)
		}
		a.closers = append(a.closers, pg)
		recs = append(recs, pg)
		log.Info(ctx, "archiving processed orders to postgres")
	}
	if cfg.RedisAddr != "" {
		rd := redis.New(cfg.RedisAddr, cfg.RedisList)
		a.closers = append(a.closers, rd)
		recs = append(recs, rd)
		log.Info(ctx, "archiving processed orders to redis", "addr", cfg.RedisAddr, "list", cfg.RedisList)
	}

	if len(recs) == 1 {
		return recs[0], nil
	}
	return recs, nil
}

// Save writes the catalog file.
func (a *App) Save(ctx context.Context) error {
	return a.Store.Save(ctx, a.Desk.Directory())
}

// Close releases archive connections.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
