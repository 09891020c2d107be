package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"example.com/diet-planner/backend/internal/models"
)

var csvHeader = []string{"name", "calories", "protein_g", "carbs_g", "fat_g", "meal_type", "diet_type"}

// LoadFile читает каталог из CSV-файла.
func LoadFile(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file %s: %w", path, err)
	}
	defer file.Close()

	return ReadCSV(file)
}

// ReadCSV разбирает CSV со схемой name,calories,protein_g,carbs_g,fat_g,meal_type,diet_type.
func ReadCSV(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = len(csvHeader)

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("read catalog header: %w", err)
	}

	columns, err := indexHeader(header)
	if err != nil {
		return nil, err
	}

	items := make([]models.FoodItem, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog row: %w", err)
		}

		line, _ := reader.FieldPos(0)
		item, err := parseRecord(record, columns)
		if err != nil {
			return nil, fmt.Errorf("catalog line %d: %w", line, err)
		}
		items = append(items, item)
	}

	return New(items)
}

func indexHeader(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, name := range csvHeader {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("catalog header is missing column %q", name)
		}
	}

	return columns, nil
}

func parseRecord(record []string, columns map[string]int) (models.FoodItem, error) {
	numbers := make(map[string]float64, 4)
	for _, name := range []string{"calories", "protein_g", "carbs_g", "fat_g"} {
		raw := strings.TrimSpace(record[columns[name]])
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.FoodItem{}, fmt.Errorf("%w: %s must be a number", ErrInvalidItem, name)
		}
		numbers[name] = value
	}

	return models.FoodItem{
		Name:     record[columns["name"]],
		Calories: numbers["calories"],
		ProteinG: numbers["protein_g"],
		CarbsG:   numbers["carbs_g"],
		FatG:     numbers["fat_g"],
		MealType: models.MealType(record[columns["meal_type"]]),
		DietType: models.DietType(record[columns["diet_type"]]),
	}, nil
}
