package planner

import (
	"testing"

	"example.com/diet-planner/backend/internal/models"
)

func baseProfile() Profile {
	return Profile{
		Age:            25,
		Gender:         models.GenderMale,
		HeightCM:       170,
		WeightKG:       70,
		Activity:       models.ActivityModeratelyActive,
		Goal:           models.GoalWeightLoss,
		DietPreference: models.DietNoPreference,
		MealFrequency:  4,
	}
}

// TestEstimateWeightLoss проверяет эталонный пример: BMR 1642.5 -> 1642, цель 2045.
func TestEstimateWeightLoss(t *testing.T) {
	energy := Estimate(baseProfile())

	if energy.BMR != 1642 {
		t.Fatalf("expected bmr 1642, got %d", energy.BMR)
	}
	if energy.TargetCalories != 2045 {
		t.Fatalf("expected target 2045, got %d", energy.TargetCalories)
	}
}

// TestEstimateSurplus проверяет профицит для набора массы.
func TestEstimateSurplus(t *testing.T) {
	profile := baseProfile()
	profile.Goal = models.GoalMuscleGain

	if got := Estimate(profile).TargetCalories; got != 2845 {
		t.Fatalf("expected target 2845, got %d", got)
	}

	profile.Goal = models.GoalWeightGain
	if got := Estimate(profile).TargetCalories; got != 2845 {
		t.Fatalf("expected target 2845 for weight gain, got %d", got)
	}
}

// TestEstimateFemaleMaintenance проверяет формулу для женщин и отсутствие корректировки.
func TestEstimateFemaleMaintenance(t *testing.T) {
	profile := Profile{
		Age:      30,
		Gender:   models.GenderFemale,
		HeightCM: 160,
		WeightKG: 60,
		Activity: models.ActivitySedentary,
		Goal:     models.GoalGeneralHealth,
	}

	energy := Estimate(profile)
	if energy.BMR != 1289 {
		t.Fatalf("expected bmr 1289, got %d", energy.BMR)
	}
	if energy.TargetCalories != 1546 {
		t.Fatalf("expected target 1546, got %d", energy.TargetCalories)
	}
}

// TestEstimateUnknownActivity проверяет fallback на множитель 1.55.
func TestEstimateUnknownActivity(t *testing.T) {
	profile := Profile{
		Age:      30,
		Gender:   models.GenderFemale,
		HeightCM: 160,
		WeightKG: 60,
		Activity: models.ActivityUnknown,
		Goal:     models.GoalUnspecified,
	}

	if got := Estimate(profile).TargetCalories; got != 1997 {
		t.Fatalf("expected target 1997, got %d", got)
	}
	if ActivityMultiplier("") != 1.55 {
		t.Fatal("expected default multiplier 1.55")
	}
}

// TestEstimateBMRMatchesFormula проверяет BMR на сетке допустимых профилей.
func TestEstimateBMRMatchesFormula(t *testing.T) {
	for age := 16; age <= 80; age += 8 {
		for height := 140.0; height <= 220; height += 20 {
			for weight := 40.0; weight <= 150; weight += 22 {
				for _, gender := range []models.Gender{models.GenderMale, models.GenderFemale} {
					profile := Profile{Age: age, Gender: gender, HeightCM: height, WeightKG: weight, Activity: models.ActivitySedentary}
					offset := -161.0
					if gender == models.GenderMale {
						offset = 5
					}
					want := int(10*weight + 6.25*height - 5*float64(age) + offset)
					if got := Estimate(profile).BMR; got != want {
						t.Fatalf("profile %+v: expected bmr %d, got %d", profile, want, got)
					}
				}
			}
		}
	}
}

// TestEstimateMixedCaseText проверяет разбор активности и цели без учета регистра.
func TestEstimateMixedCaseText(t *testing.T) {
	profile := baseProfile()
	profile.Gender = "Male"
	profile.Activity = "Moderately Active"
	profile.Goal = "Weight Loss"

	got := Estimate(profile)
	if got.BMR != 1642 || got.TargetCalories != 2045 {
		t.Fatalf("expected 1642/2045, got %+v", got)
	}
	if got != Estimate(baseProfile()) {
		t.Fatalf("expected the same result as canonical values, got %+v", got)
	}
}
