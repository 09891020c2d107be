package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"example.com/diet-planner/backend/internal/models"
	"example.com/diet-planner/backend/internal/planner"
	"example.com/diet-planner/backend/internal/share"
)

const defaultMealFrequency = 4

type PlanHandler struct {
	Planner *planner.Service
	Tokens  *share.TokenManager
	Logger  *slog.Logger
}

// NewPlanHandler создает обработчик генерации планов.
func NewPlanHandler(service *planner.Service, tokens *share.TokenManager, logger *slog.Logger) *PlanHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlanHandler{Planner: service, Tokens: tokens, Logger: logger}
}

type PlanRequest struct {
	Age            int     `json:"age" validate:"required"`
	Gender         string  `json:"gender" validate:"required,max=20"`
	HeightCM       float64 `json:"height_cm" validate:"required"`
	WeightKG       float64 `json:"weight_kg" validate:"required"`
	ActivityLevel  string  `json:"activity_level" validate:"max=50"`
	Goal           string  `json:"goal" validate:"max=100"`
	DietPreference string  `json:"diet_preference" validate:"max=50"`
	MealFrequency  *int    `json:"meal_frequency"`
	Allergies      string  `json:"allergies" validate:"max=500"`
	TargetLossKG   float64 `json:"target_loss_kg"`
}

type PlanResponse struct {
	planner.Plan
	ShareToken     string     `json:"share_token"`
	ShareExpiresAt *time.Time `json:"share_expires_at,omitempty"`
}

// Create рассчитывает новый план по профилю пользователя.
func (h *PlanHandler) Create(c echo.Context) error {
	var req PlanRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	plan, err := h.Planner.Generate(c.Request().Context(), req.toProfile())
	if err != nil {
		return h.planError(c, err)
	}

	token, expiresAt, err := h.Tokens.Issue(plan.Profile)
	if err != nil {
		h.Logger.Error("failed to issue share token", slog.String("error", err.Error()))
		return serverError(c)
	}

	h.Logger.Info("plan created",
		slog.String("plan_id", plan.ID.String()),
		slog.String("goal", string(plan.Profile.Goal)),
		slog.Int("target_calories", plan.Energy.TargetCalories),
	)

	return c.JSON(http.StatusCreated, PlanResponse{Plan: plan, ShareToken: token, ShareExpiresAt: &expiresAt})
}

// GetShared пересчитывает план по профилю из ссылки.
func (h *PlanHandler) GetShared(c echo.Context) error {
	token := strings.TrimSpace(c.Param("token"))

	plan, err := h.planFromToken(c, token)
	if err != nil {
		return h.planError(c, err)
	}

	return c.JSON(http.StatusOK, PlanResponse{Plan: plan, ShareToken: token})
}

func (h *PlanHandler) planFromToken(c echo.Context, token string) (planner.Plan, error) {
	profile, err := h.Tokens.Parse(token)
	if err != nil {
		return planner.Plan{}, err
	}

	return h.Planner.Generate(c.Request().Context(), profile)
}

func (h *PlanHandler) planError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, share.ErrInvalidToken):
		return notFound(c, "shared plan not found or expired")
	case errors.Is(err, planner.ErrInvalidInput):
		return badRequest(c, err.Error())
	default:
		h.Logger.Error("failed to generate plan", slog.String("error", err.Error()))
		return serverError(c)
	}
}

func (r PlanRequest) toProfile() planner.Profile {
	frequency := defaultMealFrequency
	if r.MealFrequency != nil {
		frequency = *r.MealFrequency
	}

	return planner.Profile{
		Age:            r.Age,
		Gender:         models.Gender(r.Gender),
		HeightCM:       r.HeightCM,
		WeightKG:       r.WeightKG,
		Activity:       models.ActivityLevel(r.ActivityLevel),
		Goal:           models.Goal(r.Goal),
		DietPreference: models.DietPreference(r.DietPreference),
		MealFrequency:  frequency,
		Allergies:      r.Allergies,
		TargetLossKG:   r.TargetLossKG,
	}
}
