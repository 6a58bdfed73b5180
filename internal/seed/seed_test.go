package seed

import (
	"context"
	"errors"
	"testing"

	"customer-service/internal/domain"
	custrepo "customer-service/internal/repository/customer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_SeedsEmptyStore(t *testing.T) {
	ctx := context.Background()
	repo := custrepo.NewMemory()

	inserted, err := Apply(ctx, repo, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, inserted)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(all))
	for _, c := range all {
		assert.True(t, c.HasID())
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"John Doe", "Jane Smith", "Robert Johnson", "Emily Davis", "Michael Wilson"}, names)
}

func TestApply_SkipsNonEmptyStore(t *testing.T) {
	ctx := context.Background()
	repo := custrepo.NewMemory()
	_, err := repo.Save(ctx, domain.Customer{Name: "Existing"})
	require.NoError(t, err)

	inserted, err := Apply(ctx, repo, nil)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestApply_RunsOnce(t *testing.T) {
	ctx := context.Background()
	repo := custrepo.NewMemory()

	_, err := Apply(ctx, repo, nil)
	require.NoError(t, err)
	inserted, err := Apply(ctx, repo, nil)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
}

type failingCountRepo struct {
	custrepo.Repository
}

func (failingCountRepo) Count(context.Context) (int64, error) {
	return 0, errors.New("store down")
}

func TestApply_PropagatesCountError(t *testing.T) {
	_, err := Apply(context.Background(), failingCountRepo{Repository: custrepo.NewMemory()}, nil)
	assert.ErrorContains(t, err, "store down")
}
