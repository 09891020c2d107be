package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"example.com/diet-planner/backend/internal/catalog"
	"example.com/diet-planner/backend/internal/models"
)

type FoodHandler struct {
	Catalog *catalog.Catalog
}

// NewFoodHandler создает обработчик просмотра каталога блюд.
func NewFoodHandler(c *catalog.Catalog) *FoodHandler {
	return &FoodHandler{Catalog: c}
}

// List возвращает блюда каталога с необязательными фильтрами meal_type и diet_type.
func (h *FoodHandler) List(c echo.Context) error {
	var (
		mealType models.MealType
		dietType models.DietType
	)

	if raw := strings.TrimSpace(c.QueryParam("meal_type")); raw != "" {
		parsed, ok := models.ParseMealType(raw)
		if !ok {
			return badRequest(c, "invalid meal_type")
		}
		mealType = parsed
	}

	if raw := strings.TrimSpace(c.QueryParam("diet_type")); raw != "" {
		parsed, ok := models.ParseDietType(raw)
		if !ok {
			return badRequest(c, "invalid diet_type")
		}
		dietType = parsed
	}

	foods := h.Catalog.Filter(func(item models.FoodItem) bool {
		if mealType != "" && item.MealType != mealType {
			return false
		}
		if dietType != "" && item.DietType != dietType {
			return false
		}
		return true
	})
	if foods == nil {
		foods = []models.FoodItem{}
	}

	return c.JSON(http.StatusOK, map[string][]models.FoodItem{"foods": foods})
}
