package handlers

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"example.com/diet-planner/backend/internal/planner"
)

const (
	exportTypeMeals     = "meals"
	exportTypeGroceries = "groceries"
	exportTypeWorkout   = "workout"
)

// ExportCSV выгружает часть плана из ссылки в CSV-файл.
func (h *PlanHandler) ExportCSV(c echo.Context) error {
	exportType := strings.ToLower(strings.TrimSpace(c.QueryParam("type")))
	if exportType == "" {
		exportType = exportTypeMeals
	}

	var write func(*csv.Writer, planner.Plan) error
	switch exportType {
	case exportTypeMeals:
		write = writeMealsCSV
	case exportTypeGroceries:
		write = writeGroceriesCSV
	case exportTypeWorkout:
		write = writeWorkoutCSV
	default:
		return badRequest(c, "invalid export type")
	}

	plan, err := h.planFromToken(c, strings.TrimSpace(c.Param("token")))
	if err != nil {
		return h.planError(c, err)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := write(writer, plan); err != nil {
		return serverError(c)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return serverError(c)
	}

	filename := "plan-" + plan.ID.String() + "-" + exportType + ".csv"
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+filename+"\"")
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func writeMealsCSV(writer *csv.Writer, plan planner.Plan) error {
	header := []string{
		"meal_type",
		"name",
		"calories",
		"protein_g",
		"carbs_g",
		"fat_g",
		"diet_type",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, selection := range plan.Meals {
		record := []string{
			string(selection.Slot),
			selection.Food.Name,
			formatFloat(selection.Food.Calories),
			formatFloat(selection.Food.ProteinG),
			formatFloat(selection.Food.CarbsG),
			formatFloat(selection.Food.FatG),
			string(selection.Food.DietType),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}

func writeGroceriesCSV(writer *csv.Writer, plan planner.Plan) error {
	if err := writer.Write([]string{"item"}); err != nil {
		return err
	}

	for _, item := range plan.Groceries {
		if err := writer.Write([]string{item}); err != nil {
			return err
		}
	}

	return nil
}

func writeWorkoutCSV(writer *csv.Writer, plan planner.Plan) error {
	if err := writer.Write([]string{"day", "exercise"}); err != nil {
		return err
	}

	for _, day := range plan.Workout {
		if err := writer.Write([]string{day.Day, day.Exercise}); err != nil {
			return err
		}
	}

	return nil
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
