package catalog

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"example.com/diet-planner/backend/internal/models"
)

var (
	ErrInvalidItem = errors.New("invalid food item")
	ErrEmpty       = errors.New("catalog is empty")
)

// Catalog is an immutable ordered table of food items.
type Catalog struct {
	items []models.FoodItem
}

// New проверяет позиции и создает неизменяемый каталог с сохранением порядка.
func New(items []models.FoodItem) (*Catalog, error) {
	if len(items) == 0 {
		return nil, ErrEmpty
	}

	copied := make([]models.FoodItem, 0, len(items))
	for i, item := range items {
		normalized, err := normalizeItem(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		copied = append(copied, normalized)
	}

	return &Catalog{items: copied}, nil
}

// Items возвращает копию всех позиций каталога.
func (c *Catalog) Items() []models.FoodItem {
	out := make([]models.FoodItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len возвращает количество позиций.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Filter возвращает позиции, для которых keep вернул true, в порядке каталога.
func (c *Catalog) Filter(keep func(models.FoodItem) bool) []models.FoodItem {
	out := make([]models.FoodItem, 0, len(c.items))
	for _, item := range c.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func normalizeItem(item models.FoodItem) (models.FoodItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return item, fmt.Errorf("%w: name is required", ErrInvalidItem)
	}

	fields := []struct {
		name  string
		value float64
	}{
		{"calories", item.Calories},
		{"protein_g", item.ProteinG},
		{"carbs_g", item.CarbsG},
		{"fat_g", item.FatG},
	}
	for _, field := range fields {
		if field.value < 0 || math.IsNaN(field.value) || math.IsInf(field.value, 0) {
			return item, fmt.Errorf("%w: %s must be a non-negative number", ErrInvalidItem, field.name)
		}
	}

	mealType, ok := models.ParseMealType(string(item.MealType))
	if !ok {
		return item, fmt.Errorf("%w: unknown meal type %q", ErrInvalidItem, item.MealType)
	}

	dietType, ok := models.ParseDietType(string(item.DietType))
	if !ok {
		return item, fmt.Errorf("%w: unknown diet type %q", ErrInvalidItem, item.DietType)
	}

	item.MealType = mealType
	item.DietType = dietType
	return item, nil
}
