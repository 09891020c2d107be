package planner

import (
	"sort"
	"strings"
)

type groceryRule struct {
	keywords []string
	label    string
}

// Keyword matching on dish names is a heuristic: "Daliya" also matches "dal".
var groceryRules = []groceryRule{
	{keywords: []string{"rice"}, label: "Rice"},
	{keywords: []string{"dal"}, label: "Dal/Lentils"},
	{keywords: []string{"chicken"}, label: "Chicken"},
	{keywords: []string{"eggs"}, label: "Eggs"},
	{keywords: []string{"oats"}, label: "Oats"},
	{keywords: []string{"milk"}, label: "Milk"},
	{keywords: []string{"yogurt"}, label: "Yogurt"},
	{keywords: []string{"vegetables", "sabzi"}, label: "Mixed Vegetables"},
	{keywords: []string{"nuts", "almonds"}, label: "Nuts/Almonds"},
	{keywords: []string{"fish", "salmon"}, label: "Fish"},
	{keywords: []string{"paneer"}, label: "Paneer"},
	{keywords: []string{"fruit", "apple", "banana"}, label: "Fresh Fruits"},
}

// ExtractGroceries строит список покупок по названиям блюд, без повторов и по алфавиту.
func ExtractGroceries(plan MealPlan) []string {
	seen := make(map[string]struct{})
	for _, selection := range plan {
		name := strings.ToLower(selection.Food.Name)
		for _, rule := range groceryRules {
			if containsAny(name, rule.keywords) {
				seen[rule.label] = struct{}{}
			}
		}
	}

	groceries := make([]string, 0, len(seen))
	for label := range seen {
		groceries = append(groceries, label)
	}
	sort.Strings(groceries)
	return groceries
}
