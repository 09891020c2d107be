package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/diet-planner/backend/internal/catalog"
)

type HealthResponse struct {
	Status       string `json:"status"`
	CatalogItems int    `json:"catalog_items"`
}

// Health возвращает статус сервиса и размер загруженного каталога.
func Health(c *catalog.Catalog) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, HealthResponse{Status: "ok", CatalogItems: c.Len()})
	}
}
