package catalog

import (
	"context"
	"fmt"

	"example.com/diet-planner/backend/internal/models"
)

type Lister interface {
	List(ctx context.Context) ([]models.FoodItem, error)
}

// FromLister загружает каталог один раз из внешнего источника, например из PostgreSQL.
func FromLister(ctx context.Context, source Lister) (*Catalog, error) {
	items, err := source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}

	return New(items)
}
