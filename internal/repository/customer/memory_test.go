package customer

import (
	"context"
	"sync"
	"testing"

	"customer-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_Contract(t *testing.T) {
	exerciseRepository(t, NewMemory())
}

func TestMemory_FindAllKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()
	for _, name := range []string{"c", "a", "b"} {
		_, err := repo.Save(ctx, domain.Customer{Name: name})
		require.NoError(t, err)
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{all[0].Name, all[1].Name, all[2].Name})
}

func TestMemory_ConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Save(ctx, domain.Customer{Name: "concurrent"})
		}()
	}
	wg.Wait()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(50), n)
}
