package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phenrril/vitrina/internal/domain"
)

func TestCatalogRepoSeedsIDs(t *testing.T) {
	repo := NewSeededCatalogRepo()
	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, list)
	for _, p := range list {
		assert.True(t, domain.WellFormedItemID(p.ID), "product %q has id %q", p.Title, p.ID)
	}
}

func TestCatalogRepoFindByID(t *testing.T) {
	repo := NewSeededCatalogRepo()
	id := domain.DeriveItemID("Chevron Flap", "Crossbody Bag")

	p, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Chevron Flap", p.Title)
	require.NotNil(t, p.Discount)

	_, err = repo.FindByID(context.Background(), "item-00000000000000000000000000000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
