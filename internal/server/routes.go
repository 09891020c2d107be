package server

import (
	"github.com/labstack/echo/v4"

	"example.com/diet-planner/backend/internal/handlers"
)

func registerRoutes(
	e *echo.Echo,
	health echo.HandlerFunc,
	planHandler *handlers.PlanHandler,
	foodHandler *handlers.FoodHandler,
	feedbackHandler *handlers.FeedbackHandler,
	planRateLimiter echo.MiddlewareFunc,
) {
	e.GET("/health", health)

	api := e.Group("/api/v1")

	plans := api.Group("/plans")
	plans.POST("", planHandler.Create, planRateLimiter)
	plans.GET("/shared/:token", planHandler.GetShared)
	plans.GET("/shared/:token/export/csv", planHandler.ExportCSV)

	api.GET("/foods", foodHandler.List)
	api.POST("/feedback", feedbackHandler.Create)
}
