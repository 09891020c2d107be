package planner

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"example.com/diet-planner/backend/internal/catalog"
	"example.com/diet-planner/backend/internal/models"
)

const (
	defaultTargetLossKG = 5
	weeksPerLossKG      = 2
)

type BMIStatus string

const (
	BMIUnderweight BMIStatus = "Underweight"
	BMINormal      BMIStatus = "Normal"
	BMIOverweight  BMIStatus = "Overweight"
)

type Outlook struct {
	Summary        string `json:"summary"`
	EstimatedWeeks int    `json:"estimated_weeks,omitempty"`
}

type Plan struct {
	ID            uuid.UUID         `json:"id"`
	GeneratedAt   time.Time         `json:"generated_at"`
	Profile       Profile           `json:"profile"`
	Energy        EnergyPlan        `json:"energy"`
	Macros        MacroTargets      `json:"macros"`
	MacroCalories MacroCalories     `json:"macro_calories"`
	Meals         MealPlan          `json:"meals"`
	MealTotals    MealTotals        `json:"meal_totals"`
	MissingSlots  []models.MealType `json:"missing_slots"`
	Groceries     []string          `json:"groceries"`
	Workout       WorkoutPlan       `json:"workout"`
	BMI           float64           `json:"bmi"`
	BMIStatus     BMIStatus         `json:"bmi_status"`
	Outlook       Outlook           `json:"outlook"`
}

type Service struct {
	catalog *catalog.Catalog
	strict  bool
	logger  *slog.Logger
}

type Option func(*Service)

// WithStrictValidation включает проверку диапазонов профиля перед расчетом.
func WithStrictValidation(strict bool) Option {
	return func(s *Service) {
		s.strict = strict
	}
}

// WithLogger задает логгер сервиса.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New создает сервис планирования поверх неизменяемого каталога.
func New(c *catalog.Catalog, opts ...Option) *Service {
	s := &Service{
		catalog: c,
		strict:  true,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog возвращает каталог, с которым работает сервис.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Generate рассчитывает полный план питания и тренировок для профиля.
func (s *Service) Generate(ctx context.Context, profile Profile) (Plan, error) {
	profile = Normalize(profile)

	if s.strict {
		if err := profile.Validate(); err != nil {
			return Plan{}, err
		}
	}

	if err := ctx.Err(); err != nil {
		return Plan{}, fmt.Errorf("generate plan: %w", err)
	}

	energy := Estimate(profile)
	macros := Allocate(energy.TargetCalories, profile.Goal, profile.WeightKG)
	meals := SelectMeals(s.catalog, energy.TargetCalories, profile.DietPreference, profile.MealFrequency, profile.Allergies)
	bmi := BodyMassIndex(profile.WeightKG, profile.HeightCM)

	plan := Plan{
		ID:            uuid.New(),
		GeneratedAt:   time.Now().UTC(),
		Profile:       profile,
		Energy:        energy,
		Macros:        macros,
		MacroCalories: macros.Calories(),
		Meals:         meals,
		MealTotals:    meals.Totals(),
		MissingSlots:  meals.MissingSlots(profile.MealFrequency),
		Groceries:     ExtractGroceries(meals),
		Workout:       PickWorkout(profile.Goal),
		BMI:           math.Round(bmi*10) / 10,
		BMIStatus:     ClassifyBMI(bmi),
		Outlook:       BuildOutlook(profile.Goal, profile.TargetLossKG),
	}

	s.logger.LogAttrs(ctx, slog.LevelDebug, "plan generated",
		slog.String("plan_id", plan.ID.String()),
		slog.String("goal", string(profile.Goal)),
		slog.Int("target_calories", energy.TargetCalories),
		slog.Int("meals", len(meals)),
		slog.Int("missing_slots", len(plan.MissingSlots)),
	)

	return plan, nil
}

// Normalize приводит строковые значения профиля к известным enum-значениям.
func Normalize(p Profile) Profile {
	if gender, ok := models.ParseGender(string(p.Gender)); ok {
		p.Gender = gender
	} else {
		p.Gender = models.Gender(strings.ToLower(strings.TrimSpace(string(p.Gender))))
	}
	p.Activity = models.ParseActivityLevel(string(p.Activity))
	p.Goal = models.ParseGoal(string(p.Goal))
	p.DietPreference = models.ParseDietPreference(string(p.DietPreference))
	p.Allergies = strings.TrimSpace(p.Allergies)
	return p
}

// BodyMassIndex возвращает ИМТ: вес в кг на квадрат роста в метрах.
func BodyMassIndex(weightKG, heightCM float64) float64 {
	if heightCM <= 0 {
		return 0
	}
	meters := heightCM / 100
	return weightKG / (meters * meters)
}

// ClassifyBMI возвращает категорию ИМТ.
func ClassifyBMI(bmi float64) BMIStatus {
	switch {
	case bmi >= 18.5 && bmi <= 24.9:
		return BMINormal
	case bmi > 24.9:
		return BMIOverweight
	default:
		return BMIUnderweight
	}
}

// BuildOutlook описывает ожидаемые сроки результата для цели.
func BuildOutlook(goal models.Goal, targetLossKG float64) Outlook {
	switch goal {
	case models.GoalWeightLoss:
		if targetLossKG <= 0 {
			targetLossKG = defaultTargetLossKG
		}
		return Outlook{
			Summary:        "Healthy weight loss: 0.5kg/week",
			EstimatedWeeks: int(math.Ceil(targetLossKG * weeksPerLossKG)),
		}
	case models.GoalMuscleGain:
		return Outlook{Summary: "Visible changes: 4-6 weeks; significant gains: 12-16 weeks"}
	default:
		return Outlook{Summary: "Follow the plan for 4 weeks to see results", EstimatedWeeks: 4}
	}
}
