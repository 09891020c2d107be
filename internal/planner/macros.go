package planner

import "example.com/diet-planner/backend/internal/models"

// Atwater factors, kcal per gram.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

type MacroRatios struct {
	Protein float64
	Carbs   float64
	Fat     float64
}

type MacroTargets struct {
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
}

type MacroCalories struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// RatiosFor возвращает доли белков, углеводов и жиров для цели.
func RatiosFor(goal models.Goal) MacroRatios {
	switch models.ParseGoal(string(goal)) {
	case models.GoalMuscleGain:
		return MacroRatios{Protein: 0.25, Carbs: 0.45, Fat: 0.30}
	case models.GoalWeightLoss:
		return MacroRatios{Protein: 0.30, Carbs: 0.35, Fat: 0.35}
	default:
		return MacroRatios{Protein: 0.20, Carbs: 0.50, Fat: 0.30}
	}
}

// Allocate делит калории на граммы макронутриентов с отбрасыванием дробной части.
// weightKG пока не влияет на результат.
func Allocate(targetCalories int, goal models.Goal, weightKG float64) MacroTargets {
	ratios := RatiosFor(goal)
	calories := float64(targetCalories)

	return MacroTargets{
		ProteinG: int(calories * ratios.Protein / kcalPerGramProtein),
		CarbsG:   int(calories * ratios.Carbs / kcalPerGramCarbs),
		FatG:     int(calories * ratios.Fat / kcalPerGramFat),
	}
}

// Calories переводит граммы обратно в килокалории.
func (m MacroTargets) Calories() MacroCalories {
	return MacroCalories{
		Protein: m.ProteinG * kcalPerGramProtein,
		Carbs:   m.CarbsG * kcalPerGramCarbs,
		Fat:     m.FatG * kcalPerGramFat,
	}
}

// Total возвращает сумму калорий по всем макронутриентам.
func (m MacroCalories) Total() int {
	return m.Protein + m.Carbs + m.Fat
}
