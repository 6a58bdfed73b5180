package main

import (
	"context"
	"flag"

	"customer-service/internal/config"
	"customer-service/internal/db"
	"customer-service/internal/logging"
	"customer-service/internal/migrate"
	"go.uber.org/zap"
)

func main() {
	var down bool
	flag.BoolVar(&down, "down", false, "Roll back all migrations instead of applying them")
	flag.Parse()

	cfg := config.FromEnv()
	logger := logging.Must("migrate", cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatal("connect db", zap.Error(err))
	}
	defer pool.Close()

	if down {
		if err := migrate.Rollback(ctx, pool); err != nil {
			logger.Fatal("roll back migrations", zap.Error(err))
		}
		logger.Info("migrations rolled back")
		return
	}

	if err := migrate.Apply(ctx, pool); err != nil {
		logger.Fatal("apply migrations", zap.Error(err))
	}

	version, dirty, err := migrate.Version(ctx, pool)
	if err != nil {
		logger.Fatal("read migration version", zap.Error(err))
	}
	logger.Info("migrations applied", zap.Uint("version", version), zap.Bool("dirty", dirty))
}
