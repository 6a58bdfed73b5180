package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"customer-service/internal/config"
	"customer-service/internal/db"
	"customer-service/internal/importer"
	"customer-service/internal/logging"
	"go.uber.org/zap"
)

func main() {
	var (
		filePath  string
		batchSize int
	)
	flag.StringVar(&filePath, "file", "", "Path to customer CSV (header: name,email,phone,address)")
	flag.IntVar(&batchSize, "batch", importer.DefaultBatchSize, "Rows inserted per batch")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Must("importer", "info").Fatal("load config", zap.Error(err))
	}
	logger := logging.Must("importer", cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	store, err := db.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("open store", zap.Error(err))
	}
	defer func() { _ = store.Close(context.Background()) }()

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatal("open file", zap.Error(err))
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, store.Customers).WithBatchSize(batchSize)

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		logger.Fatal("import failed", zap.Int("imported", count), zap.Error(err))
	}

	fmt.Printf("Imported %d customers into %s store in %s\n", count, store.Driver, time.Since(start).Truncate(time.Millisecond))
}
