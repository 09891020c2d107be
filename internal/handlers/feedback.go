package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type FeedbackHandler struct {
	Logger *slog.Logger
}

// NewFeedbackHandler создает обработчик отзывов о плане.
func NewFeedbackHandler(logger *slog.Logger) *FeedbackHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FeedbackHandler{Logger: logger}
}

type FeedbackRequest struct {
	Rating  int    `json:"rating" validate:"gte=1,lte=10"`
	Comment string `json:"comment" validate:"max=2000"`
	PlanID  string `json:"plan_id" validate:"omitempty,uuid"`
}

type FeedbackResponse struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

// Create принимает отзыв и пишет его в журнал; отзывы не сохраняются.
func (h *FeedbackHandler) Create(c echo.Context) error {
	var req FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	id := uuid.New()
	h.Logger.Info("feedback received",
		slog.String("feedback_id", id.String()),
		slog.String("plan_id", req.PlanID),
		slog.Int("rating", req.Rating),
		slog.Int("comment_length", len(req.Comment)),
	)

	return c.JSON(http.StatusAccepted, FeedbackResponse{ID: id, Status: "accepted"})
}
