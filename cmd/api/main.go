package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"customer-service/internal/config"
	"customer-service/internal/db"
	"customer-service/internal/httpserver"
	"customer-service/internal/logging"
	"customer-service/internal/seed"
	customersvc "customer-service/internal/service/customer"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Must("api", "info").Fatal("load config", zap.Error(err))
	}
	logger := logging.Must("api", cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	store, err := db.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("open store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}

	// Seeding finishes before the listener starts so no request can race it.
	if cfg.SeedOnStartup {
		if _, err := seed.Apply(ctx, store.Customers, logger.Named("seed")); err != nil {
			logger.Error("seed customers", zap.Error(err))
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv, err := httpserver.New(cfg.HTTPAddr, logger.Named("http"), httpserver.Deps{
		CustomerSvc:    customersvc.New(store.Customers, logger.Named("customers")),
		Store:          store,
		Registry:       registry,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	if err != nil {
		logger.Fatal("init server", zap.Error(err))
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting http server", zap.String("addr", cfg.HTTPAddr), zap.String("store", store.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	} else {
		logger.Info("server stopped")
	}

	if err := store.Close(shutdownCtx); err != nil {
		logger.Error("close store", zap.Error(err))
	} else {
		logger.Info("store closed")
	}
}
