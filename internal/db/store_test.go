package db

import (
	"context"
	"testing"

	"customer-service/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Memory(t *testing.T) {
	cfg := config.FromEnv()
	cfg.StoreDriver = config.DriverMemory

	store, err := Open(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, config.DriverMemory, store.Driver)
	assert.NoError(t, store.Ping(context.Background()))

	n, err := store.Customers.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, store.Close(context.Background()))
}

func TestOpen_UnknownDriver(t *testing.T) {
	cfg := config.FromEnv()
	cfg.StoreDriver = "redis"

	_, err := Open(context.Background(), cfg, nil)
	assert.Error(t, err)
}
