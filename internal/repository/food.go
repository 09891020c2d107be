package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/diet-planner/backend/internal/catalog"
	"example.com/diet-planner/backend/internal/models"
)

var _ catalog.Lister = (*FoodRepository)(nil)

type FoodRepository struct {
	db *pgxpool.Pool
}

// NewFoodRepository создает репозиторий каталога блюд.
func NewFoodRepository(db *pgxpool.Pool) *FoodRepository {
	return &FoodRepository{db: db}
}

// List возвращает все блюда в порядке sort_order, затем id.
func (r *FoodRepository) List(ctx context.Context) ([]models.FoodItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT name, calories, protein_g, carbs_g, fat_g, meal_type, diet_type
		 FROM foods
		 ORDER BY sort_order, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.FoodItem, 0)
	for rows.Next() {
		var item models.FoodItem
		var mealType, dietType string
		if err := rows.Scan(&item.Name, &item.Calories, &item.ProteinG, &item.CarbsG, &item.FatG, &mealType, &dietType); err != nil {
			return nil, err
		}
		item.MealType = models.MealType(mealType)
		item.DietType = models.DietType(dietType)
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, ErrNotFound
	}

	return items, nil
}
