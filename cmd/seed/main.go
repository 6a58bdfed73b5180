package main

import (
	"context"

	"customer-service/internal/config"
	"customer-service/internal/db"
	"customer-service/internal/logging"
	"customer-service/internal/seed"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Must("seed", "info").Fatal("load config", zap.Error(err))
	}
	logger := logging.Must("seed", cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	store, err := db.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("open store", zap.Error(err))
	}
	defer func() { _ = store.Close(context.Background()) }()

	inserted, err := seed.Apply(ctx, store.Customers, logger)
	if err != nil {
		logger.Fatal("seed apply", zap.Error(err))
	}

	logger.Info("seed applied", zap.Int("inserted", inserted))
}
