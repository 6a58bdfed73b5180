package customer

import (
	"context"
	"errors"
	"testing"

	"customer-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// exerciseRepository runs the same behavioural checks against every backend.
// repo must be empty on entry.
func exerciseRepository(t *testing.T, repo Repository) {
	t.Helper()
	ctx := context.Background()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n, "repository must start empty")

	t.Run("insert assigns id", func(t *testing.T) {
		in := domain.Customer{Name: "John Doe", Email: "john.doe@example.com", Phone: "555-123-4567", Address: "123 Main St"}

		saved, err := repo.Save(ctx, in)
		require.NoError(t, err)
		require.True(t, saved.HasID())

		got, err := repo.FindByID(ctx, saved.StringID())
		require.NoError(t, err)
		assert.Equal(t, *saved, *got)
	})

	t.Run("save with id overwrites", func(t *testing.T) {
		saved, err := repo.Save(ctx, domain.Customer{Name: "Jane Smith", Email: "jane.smith@example.com"})
		require.NoError(t, err)

		saved.Phone = "555-000-0000"
		saved.Address = "456 Oak Ave"
		updated, err := repo.Save(ctx, *saved)
		require.NoError(t, err)
		assert.Equal(t, saved.ID, updated.ID)

		got, err := repo.FindByID(ctx, saved.StringID())
		require.NoError(t, err)
		assert.Equal(t, "555-000-0000", got.Phone)
		assert.Equal(t, "456 Oak Ave", got.Address)
	})

	t.Run("lookups", func(t *testing.T) {
		_, err := repo.FindByID(ctx, "nope")
		assert.True(t, errors.Is(err, domain.ErrInvalidID))

		_, err = repo.FindByID(ctx, primitive.NewObjectID().Hex())
		assert.True(t, errors.Is(err, domain.ErrNotFound))

		c, err := repo.FindByEmail(ctx, "jane.smith@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Jane Smith", c.Name)

		_, err = repo.FindByEmail(ctx, "nobody@example.com")
		assert.True(t, errors.Is(err, domain.ErrNotFound))

		exists, err := repo.ExistsByEmail(ctx, "john.doe@example.com")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("name search is case insensitive substring", func(t *testing.T) {
		found, err := repo.FindByNameContainingIgnoreCase(ctx, "john")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "John Doe", found[0].Name)

		found, err = repo.FindByNameContainingIgnoreCase(ctx, "MIT")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Jane Smith", found[0].Name)

		found, err = repo.FindByNameContainingIgnoreCase(ctx, ".*")
		require.NoError(t, err)
		assert.Empty(t, found, "input is matched literally")
	})

	t.Run("save all and delete", func(t *testing.T) {
		batch, err := repo.SaveAll(ctx, []domain.Customer{
			{ID: primitive.NewObjectID(), Name: "Emily Davis"},
			{Name: "Michael Wilson"},
		})
		require.NoError(t, err)
		require.Len(t, batch, 2)
		for _, c := range batch {
			assert.True(t, c.HasID())
		}

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 4)

		require.NoError(t, repo.DeleteByID(ctx, batch[0].StringID()))
		_, err = repo.FindByID(ctx, batch[0].StringID())
		assert.True(t, errors.Is(err, domain.ErrNotFound))

		require.NoError(t, repo.DeleteByID(ctx, batch[0].StringID()), "deleting an absent id is a no-op")
		assert.True(t, errors.Is(repo.DeleteByID(ctx, "bad"), domain.ErrInvalidID))

		n, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	t.Run("delete all", func(t *testing.T) {
		require.NoError(t, repo.DeleteAll(ctx))
		n, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})
}
