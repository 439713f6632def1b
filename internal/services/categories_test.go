package services

import (
	"context"
	"testing"

	"github.com/localnerve/enxovaldb/internal/models"
	"github.com/localnerve/enxovaldb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryServiceLifecycle(t *testing.T) {
	docs := newDocs(t)
	categories := NewCategoryService(docs)
	items := NewItemService(docs, discardLog())
	ctx := context.Background()

	bedding, err := categories.Add(ctx, models.Category{Name: "Bedding"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), bedding.ID)

	item, err := items.Add(ctx, models.Item{Name: "Blanket", Category: models.CategoryRef{ID: bedding.ID, Name: bedding.Name}})
	require.NoError(t, err)

	bedding.Name = "Bed linen"
	_, err = categories.Update(ctx, bedding)
	require.NoError(t, err)

	got, err := categories.Get(ctx, bedding.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bed linen", got.Name)

	stored, err := items.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bedding", stored.Category.Name, "items keep their category snapshot")

	_, err = categories.Update(ctx, models.Category{ID: 42, Name: "Ghost"})
	assert.ErrorIs(t, err, types.ErrNotFound)

	require.NoError(t, categories.Remove(ctx, bedding.ID))
	all, err := categories.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
