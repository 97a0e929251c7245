// Package config reads orderdesk settings from the environment, optionally
// seeded from .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"orderdesk/pkg/catalog"
	"orderdesk/pkg/logger"
	"orderdesk/pkg/order/redis"
)

// Order sinks selectable with ORDER_SINK.
const (
	SinkFile   = "file"
	SinkMemory = "memory"
)

// Config holds all runtime settings.
type Config struct {
	CatalogFile  string
	OrderLogFile string
	OrderSink    string
	BucketCount  int
	LogLevel     logger.Level

	DatabaseURL string
	RedisAddr   string
	RedisList   string

	OtelHost        string
	OtelProbability float64

	HTTPAddr string
	TLSCert  string
	TLSKey   string
}

// Load reads the given .env files, skipping missing ones, then the environment.
// Variables already set in the environment win over .env values.
func Load(files ...string) (*Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{
		CatalogFile:  getEnv("CATALOG_FILE", "restaurants.txt"),
		OrderLogFile: getEnv("ORDER_LOG_FILE", "orders.txt"),
		OrderSink:    getEnv("ORDER_SINK", SinkFile),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		RedisList:    getEnv("REDIS_LIST", redis.DefaultList),
		OtelHost:     os.Getenv("OTEL_HOST"),
		HTTPAddr:     getEnv("HTTP_ADDR", ":8443"),
		TLSCert:      os.Getenv("TLS_CERT"),
		TLSKey:       os.Getenv("TLS_KEY"),
	}

	var err error
	if cfg.BucketCount, err = strconv.Atoi(getEnv("BUCKET_COUNT", strconv.Itoa(catalog.DefaultBuckets))); err != nil {
		return nil, fmt.Errorf("invalid BUCKET_COUNT: %w", err)
	}
	if cfg.BucketCount <= 0 {
		return nil, fmt.Errorf("invalid BUCKET_COUNT: %d must be positive", cfg.BucketCount)
	}
	if cfg.OtelProbability, err = strconv.ParseFloat(getEnv("OTEL_PROBABILITY", "1"), 64); err != nil {
		return nil, fmt.Errorf("invalid OTEL_PROBABILITY: %w", err)
	}
	if cfg.LogLevel, err = logger.ParseLevel(getEnv("LOG_LEVEL", "info")); err != nil {
		return nil, err
	}
	switch cfg.OrderSink {
	case SinkFile, SinkMemory:
	default:
		return nil, fmt.Errorf("unknown ORDER_SINK %q", cfg.OrderSink)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
