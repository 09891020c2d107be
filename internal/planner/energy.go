package planner

import "example.com/diet-planner/backend/internal/models"

const (
	defaultActivityMultiplier = 1.55
	weightLossDeficit         = 500
	surplusCalories           = 300
)

var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary:        1.2,
	models.ActivityLightlyActive:    1.375,
	models.ActivityModeratelyActive: 1.55,
	models.ActivityVeryActive:       1.725,
	models.ActivityExtremelyActive:  1.9,
}

type EnergyPlan struct {
	BMR            int     `json:"bmr"`
	TDEE           float64 `json:"-"`
	TargetCalories int     `json:"target_calories"`
}

// Estimate считает BMR по Mifflin-St Jeor, TDEE и целевую калорийность.
// Пол, активность и цель сравниваются без учета регистра.
func Estimate(p Profile) EnergyPlan {
	gender, _ := models.ParseGender(string(p.Gender))
	bmr := basalMetabolicRate(gender, p.Age, p.HeightCM, p.WeightKG)
	tdee := bmr * ActivityMultiplier(p.Activity)

	target := tdee
	switch models.ParseGoal(string(p.Goal)) {
	case models.GoalWeightLoss:
		target = tdee - weightLossDeficit
	case models.GoalWeightGain, models.GoalMuscleGain:
		target = tdee + surplusCalories
	}

	return EnergyPlan{
		BMR:            int(bmr),
		TDEE:           tdee,
		TargetCalories: int(target),
	}
}

// ActivityMultiplier возвращает множитель TDEE; для неизвестного уровня 1.55.
func ActivityMultiplier(level models.ActivityLevel) float64 {
	if multiplier, ok := activityMultipliers[models.ParseActivityLevel(string(level))]; ok {
		return multiplier
	}
	return defaultActivityMultiplier
}

func basalMetabolicRate(gender models.Gender, age int, heightCM, weightKG float64) float64 {
	base := 10*weightKG + 6.25*heightCM - 5*float64(age)
	if gender == models.GenderMale {
		return base + 5
	}
	return base - 161
}
