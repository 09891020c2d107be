package planner

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"example.com/diet-planner/backend/internal/models"
)

var ErrInvalidInput = errors.New("invalid input")

type Profile struct {
	Age            int                   `json:"age" validate:"gte=16,lte=80"`
	Gender         models.Gender         `json:"gender" validate:"oneof=male female"`
	HeightCM       float64               `json:"height_cm" validate:"gte=140,lte=220"`
	WeightKG       float64               `json:"weight_kg" validate:"gte=40,lte=150"`
	Activity       models.ActivityLevel  `json:"activity_level"`
	Goal           models.Goal           `json:"goal"`
	DietPreference models.DietPreference `json:"diet_preference"`
	MealFrequency  int                   `json:"meal_frequency" validate:"gte=3,lte=6"`
	Allergies      string                `json:"allergies,omitempty" validate:"max=500"`
	// TargetLossKG учитывается только в прогнозе для снижения веса.
	TargetLossKG float64 `json:"target_loss_kg,omitempty" validate:"gte=0,lte=20"`
}

var profileValidator = newProfileValidator()

func newProfileValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate проверяет диапазоны полей профиля и возвращает ошибку с перечнем полей.
func (p Profile) Validate() error {
	err := profileValidator.Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		problems = append(problems, describeFieldError(fieldErr))
	}

	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(problems, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s is too long", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
