package db

import (
	"context"
	"fmt"

	"customer-service/internal/config"
	"customer-service/internal/migrate"
	customerrepo "customer-service/internal/repository/customer"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Store is the process-wide handle on the configured backend. It is opened
// once at startup and passed to everything that needs persistence.
type Store struct {
	Driver    string
	Customers customerrepo.Repository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// Ping checks the backend is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Close releases the backend connection, flushing pending operations.
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// NewStore wraps an existing repository. Used for the memory driver and in tests.
func NewStore(driver string, repo customerrepo.Repository) *Store {
	return &Store{Driver: driver, Customers: repo}
}

// Open connects to the backend selected by cfg.StoreDriver. For postgres the
// embedded migrations are applied before the store is returned.
func Open(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch cfg.StoreDriver {
	case config.DriverMongo:
		logger.Info("connecting to mongo", zap.String("uri", cfg.MongoURI()), zap.String("database", cfg.MongoDatabase))
		client, err := ConnectMongo(ctx, cfg.MongoURI())
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		return &Store{
			Driver:    cfg.StoreDriver,
			Customers: customerrepo.NewMongo(client.Database(cfg.MongoDatabase), logger),
			ping: func(ctx context.Context) error {
				return client.Ping(ctx, readpref.Primary())
			},
			close: client.Disconnect,
		}, nil

	case config.DriverPostgres:
		logger.Info("connecting to postgres")
		pool, err := Connect(ctx, cfg.DBConnString)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := migrate.Apply(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("apply migrations: %w", err)
		}
		return &Store{
			Driver:    cfg.StoreDriver,
			Customers: customerrepo.NewPostgres(pool, logger),
			ping:      pool.Ping,
			close: func(context.Context) error {
				pool.Close()
				return nil
			},
		}, nil

	case config.DriverMemory:
		logger.Warn("using in-memory store; records are lost on exit")
		return NewStore(cfg.StoreDriver, customerrepo.NewMemory()), nil
	}

	return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
}
