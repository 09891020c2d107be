package planner

import (
	"math"
	"strings"

	"example.com/diet-planner/backend/internal/catalog"
	"example.com/diet-planner/backend/internal/models"
)

const (
	mainMealCount        = 3
	defaultMealFrequency = 3
)

var noAllergyValues = map[string]struct{}{
	"":             {},
	"none":         {},
	"no allergies": {},
}

var mainMeals = []models.MealType{models.MealTypeBreakfast, models.MealTypeLunch, models.MealTypeDinner}

type MealSelection struct {
	Slot models.MealType `json:"slot"`
	Food models.FoodItem `json:"food"`
}

// MealPlan holds at most one selection per slot in breakfast, lunch, dinner, snack order.
type MealPlan []MealSelection

type MealTotals struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// SelectMeals подбирает по одному блюду на прием пищи, ближайшему к бюджету калорий.
func SelectMeals(c *catalog.Catalog, targetCalories int, pref models.DietPreference, mealFrequency int, allergyText string) MealPlan {
	if mealFrequency <= 0 {
		mealFrequency = defaultMealFrequency
	}

	keywords := AllergyKeywords(allergyText)
	available := c.Filter(func(item models.FoodItem) bool {
		return pref.Matches(item.DietType) && !containsAny(item.Name, keywords)
	})

	plan := make(MealPlan, 0, len(models.MealSlots))
	perMeal := float64(targetCalories) / float64(mealFrequency)

	for _, slot := range mainMeals {
		if food, ok := nearest(available, slot, perMeal); ok {
			plan = append(plan, MealSelection{Slot: slot, Food: food})
		}
	}

	// Extra meals beyond three collapse into a single snack slot.
	if mealFrequency > mainMealCount {
		remaining := float64(targetCalories) - plan.Totals().Calories
		snackBudget := remaining / float64(mealFrequency-mainMealCount)
		if food, ok := nearest(available, models.MealTypeSnack, snackBudget); ok {
			plan = append(plan, MealSelection{Slot: models.MealTypeSnack, Food: food})
		}
	}

	return plan
}

// AllergyKeywords разбирает текст аллергий в список ключевых слов в нижнем регистре.
func AllergyKeywords(allergyText string) []string {
	text := strings.ToLower(strings.TrimSpace(allergyText))
	if _, ok := noAllergyValues[text]; ok {
		return nil
	}

	parts := strings.Split(text, ",")
	keywords := make([]string, 0, len(parts))
	for _, part := range parts {
		keyword := strings.TrimSpace(part)
		if keyword == "" {
			continue
		}
		keywords = append(keywords, keyword)
	}
	return keywords
}

// Lookup возвращает блюдо для слота, если оно выбрано.
func (p MealPlan) Lookup(slot models.MealType) (models.FoodItem, bool) {
	for _, selection := range p {
		if selection.Slot == slot {
			return selection.Food, true
		}
	}
	return models.FoodItem{}, false
}

// Totals суммирует пищевую ценность выбранных блюд.
func (p MealPlan) Totals() MealTotals {
	var totals MealTotals
	for _, selection := range p {
		totals.Calories += selection.Food.Calories
		totals.ProteinG += selection.Food.ProteinG
		totals.CarbsG += selection.Food.CarbsG
		totals.FatG += selection.Food.FatG
	}
	return totals
}

// MissingSlots возвращает ожидаемые слоты, для которых не нашлось блюд.
func (p MealPlan) MissingSlots(mealFrequency int) []models.MealType {
	expected := mainMeals
	if mealFrequency > mainMealCount {
		expected = models.MealSlots
	}

	missing := make([]models.MealType, 0)
	for _, slot := range expected {
		if _, ok := p.Lookup(slot); !ok {
			missing = append(missing, slot)
		}
	}
	return missing
}

// nearest is a stable linear scan: the first item with the minimal difference wins.
func nearest(items []models.FoodItem, slot models.MealType, budget float64) (models.FoodItem, bool) {
	var best models.FoodItem
	bestDiff := math.Inf(1)
	found := false

	for _, item := range items {
		if item.MealType != slot {
			continue
		}
		diff := math.Abs(item.Calories - budget)
		if !found || diff < bestDiff {
			best = item
			bestDiff = diff
			found = true
		}
	}

	return best, found
}

func containsAny(name string, keywords []string) bool {
	lowered := strings.ToLower(name)
	for _, keyword := range keywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}
