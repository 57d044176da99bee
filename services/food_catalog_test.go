package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoodCatalogSearch(t *testing.T) {
	c := NewFoodCatalog()

	hits := c.Search("pollo")
	require.NotEmpty(t, hits)
	assert.Equal(t, "pechuga-pollo", hits[0].ID)

	// case-insensitive substring
	assert.NotEmpty(t, c.Search("POLLO"))
	assert.Empty(t, c.Search("sushi"))
}

func TestFoodCatalogSearchEmptyReturnsAll(t *testing.T) {
	c := NewFoodCatalog()
	assert.Len(t, c.Search(""), len(catalogItems))
	assert.Len(t, c.Search("   "), len(catalogItems))
}

func TestFoodCatalogGet(t *testing.T) {
	c := NewFoodCatalog()

	item, err := c.Get("avena")
	require.NoError(t, err)
	assert.Equal(t, "Copos de avena", item.Name)
	assert.InDelta(t, 389, item.Kcal, 1e-9)

	_, err = c.Get("no-such-food")
	assert.Error(t, err)
}
