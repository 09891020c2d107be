package models

import "strings"

type MealType string

type DietType string

type Gender string

type ActivityLevel string

type Goal string

type DietPreference string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"

	DietTypeVegetarian    DietType = "vegetarian"
	DietTypeNonVegetarian DietType = "non-vegetarian"
	DietTypeVegan         DietType = "vegan"

	GenderMale   Gender = "male"
	GenderFemale Gender = "female"

	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly active"
	ActivityModeratelyActive ActivityLevel = "moderately active"
	ActivityVeryActive       ActivityLevel = "very active"
	ActivityExtremelyActive  ActivityLevel = "extremely active"
	// ActivityUnknown использует множитель умеренной активности.
	ActivityUnknown ActivityLevel = "unknown"

	GoalWeightLoss    Goal = "weight loss"
	GoalWeightGain    Goal = "weight gain"
	GoalMuscleGain    Goal = "muscle gain"
	GoalMaintenance   Goal = "maintenance"
	GoalGeneralHealth Goal = "general health"
	// GoalUnspecified ведет себя как поддержание веса.
	GoalUnspecified Goal = "unspecified"

	DietNoPreference  DietPreference = "no preference"
	DietVegetarian    DietPreference = "vegetarian"
	DietNonVegetarian DietPreference = "non-vegetarian"
	DietVegan         DietPreference = "vegan"
)

// MealSlots задает порядок приемов пищи в плане.
var MealSlots = []MealType{MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack}

type FoodItem struct {
	Name     string   `json:"name"`
	Calories float64  `json:"calories"`
	ProteinG float64  `json:"protein_g"`
	CarbsG   float64  `json:"carbs_g"`
	FatG     float64  `json:"fat_g"`
	MealType MealType `json:"meal_type"`
	DietType DietType `json:"diet_type"`
}

// ParseMealType возвращает тип приема пищи по строке.
func ParseMealType(value string) (MealType, bool) {
	switch MealType(normalize(value)) {
	case MealTypeBreakfast:
		return MealTypeBreakfast, true
	case MealTypeLunch:
		return MealTypeLunch, true
	case MealTypeDinner:
		return MealTypeDinner, true
	case MealTypeSnack:
		return MealTypeSnack, true
	default:
		return "", false
	}
}

// ParseDietType возвращает тип диеты блюда по строке.
func ParseDietType(value string) (DietType, bool) {
	switch normalize(value) {
	case "vegetarian":
		return DietTypeVegetarian, true
	case "non vegetarian", "nonvegetarian":
		return DietTypeNonVegetarian, true
	case "vegan":
		return DietTypeVegan, true
	default:
		return "", false
	}
}

// ParseGender возвращает пол; все, кроме male, считается female.
func ParseGender(value string) (Gender, bool) {
	switch normalize(value) {
	case "male":
		return GenderMale, true
	case "female":
		return GenderFemale, true
	default:
		return GenderFemale, false
	}
}

// ParseActivityLevel возвращает уровень активности или ActivityUnknown.
func ParseActivityLevel(value string) ActivityLevel {
	switch ActivityLevel(normalize(value)) {
	case ActivitySedentary:
		return ActivitySedentary
	case ActivityLightlyActive:
		return ActivityLightlyActive
	case ActivityModeratelyActive:
		return ActivityModeratelyActive
	case ActivityVeryActive:
		return ActivityVeryActive
	case ActivityExtremelyActive:
		return ActivityExtremelyActive
	default:
		return ActivityUnknown
	}
}

// ParseGoal сначала ищет точное совпадение, затем ключевую фразу внутри текста.
func ParseGoal(value string) Goal {
	text := normalize(value)
	for _, goal := range []Goal{GoalWeightLoss, GoalWeightGain, GoalMuscleGain, GoalMaintenance, GoalGeneralHealth} {
		if text == string(goal) {
			return goal
		}
	}

	for _, goal := range []Goal{GoalWeightLoss, GoalMuscleGain, GoalWeightGain, GoalMaintenance, GoalGeneralHealth} {
		if strings.Contains(text, string(goal)) {
			return goal
		}
	}

	return GoalUnspecified
}

// ParseDietPreference возвращает предпочтение по диете; неизвестное значение не фильтрует каталог.
func ParseDietPreference(value string) DietPreference {
	switch normalize(value) {
	case "vegetarian":
		return DietVegetarian
	case "non vegetarian", "nonvegetarian":
		return DietNonVegetarian
	case "vegan":
		return DietVegan
	default:
		return DietNoPreference
	}
}

// Matches сообщает, подходит ли блюдо с данным типом диеты под предпочтение.
func (p DietPreference) Matches(diet DietType) bool {
	switch p {
	case DietVegetarian:
		return diet == DietTypeVegetarian
	case DietNonVegetarian:
		return diet == DietTypeNonVegetarian
	case DietVegan:
		return diet == DietTypeVegan
	default:
		return true
	}
}

func normalize(value string) string {
	lowered := strings.ToLower(strings.TrimSpace(value))
	lowered = strings.NewReplacer("_", " ", "-", " ").Replace(lowered)
	return strings.Join(strings.Fields(lowered), " ")
}
