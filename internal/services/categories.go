package services

import (
	"context"

	"github.com/localnerve/enxovaldb/internal/models"
	"github.com/localnerve/enxovaldb/internal/store"
)

// CategoryService manages the categories document. Categories are keyed by id.
type CategoryService struct {
	registry[models.Category]
}

// NewCategoryService returns a service over the categories document of docs.
func NewCategoryService(docs store.DocumentStore) *CategoryService {
	return &CategoryService{registry: newRegistry[models.Category](docs, store.Categories, "category")}
}

// Add stores a new category under the next free id.
func (s *CategoryService) Add(ctx context.Context, draft models.Category) (models.Category, error) {
	return s.add(ctx, draft, nil)
}

// Update replaces the category with category.ID.
//
// Items keep the category snapshot they were written with; renaming a category
// here does not rewrite them.
func (s *CategoryService) Update(ctx context.Context, category models.Category) (models.Category, error) {
	return s.replace(ctx,
		func(c models.Category) bool { return c.ID == category.ID },
		func(models.Category) (models.Category, error) { return category, nil },
		category.ID,
	)
}
