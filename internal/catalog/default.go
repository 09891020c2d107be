package catalog

import "example.com/diet-planner/backend/internal/models"

// Default возвращает встроенный каталог из 40 блюд, по 10 на каждый прием пищи.
func Default() *Catalog {
	c, err := New(defaultItems())
	if err != nil {
		panic(err)
	}
	return c
}

func defaultItems() []models.FoodItem {
	return []models.FoodItem{
		// breakfast
		{Name: "Oats with milk", Calories: 350, ProteinG: 15, CarbsG: 45, FatG: 12, MealType: models.MealTypeBreakfast, DietType: models.DietTypeVegetarian},
		{Name: "Scrambled eggs", Calories: 200, ProteinG: 12, CarbsG: 2, FatG: 15, MealType: models.MealTypeBreakfast, DietType: models.DietTypeNonVegetarian},
		{Name: "Greek yogurt with berries", Calories: 150, ProteinG: 15, CarbsG: 15, FatG: 5, MealType: models.MealTypeBreakfast, DietType: models.DietTypeVegetarian},
		{Name: "Whole grain toast", Calories: 80, ProteinG: 3, CarbsG: 15, FatG: 1, MealType: models.MealTypeBreakfast, DietType: models.DietTypeVegan},
		{Name: "Banana smoothie", Calories: 250, ProteinG: 10, CarbsG: 35, FatG: 8, MealType: models.MealTypeBreakfast, DietType: models.DietTypeVegetarian},
		{Name: "Poha", Calories: 300, ProteinG: 8, CarbsG: 50, FatG: 8, MealType: models.MealTypeBreakfast, DietType: models.DietTypeVegan},
		{Name: "Upma", Calories: 200, ProteinG: 6, CarbsG: 35, FatG: 4, MealType: models.MealTypeBreakfast, DietType: models.DietTypeVegan},
		{Name: "Idli with sambar", Calories: 250, ProteinG: 8, CarbsG: 40, FatG: 6, MealType: models.MealTypeBreakfast, DietType: models.DietTypeVegetarian},
		{Name: "Paratha with curd", Calories: 400, ProteinG: 12, CarbsG: 45, FatG: 15, MealType: models.MealTypeBreakfast, DietType: models.DietTypeVegetarian},
		{Name: "Daliya porridge", Calories: 180, ProteinG: 6, CarbsG: 30, FatG: 3, MealType: models.MealTypeBreakfast, DietType: models.DietTypeVegan},

		// lunch
		{Name: "Brown rice with dal", Calories: 450, ProteinG: 20, CarbsG: 60, FatG: 8, MealType: models.MealTypeLunch, DietType: models.DietTypeVegetarian},
		{Name: "Chicken breast grilled", Calories: 300, ProteinG: 35, CarbsG: 0, FatG: 8, MealType: models.MealTypeLunch, DietType: models.DietTypeNonVegetarian},
		{Name: "Quinoa salad", Calories: 350, ProteinG: 15, CarbsG: 45, FatG: 12, MealType: models.MealTypeLunch, DietType: models.DietTypeVegan},
		{Name: "Vegetable curry", Calories: 200, ProteinG: 8, CarbsG: 25, FatG: 8, MealType: models.MealTypeLunch, DietType: models.DietTypeVegan},
		{Name: "Fish curry", Calories: 350, ProteinG: 25, CarbsG: 10, FatG: 15, MealType: models.MealTypeLunch, DietType: models.DietTypeNonVegetarian},
		{Name: "Roti with sabzi", Calories: 350, ProteinG: 12, CarbsG: 50, FatG: 10, MealType: models.MealTypeLunch, DietType: models.DietTypeVegetarian},
		{Name: "Rajma chawal", Calories: 400, ProteinG: 15, CarbsG: 55, FatG: 8, MealType: models.MealTypeLunch, DietType: models.DietTypeVegetarian},
		{Name: "Chole with rice", Calories: 450, ProteinG: 18, CarbsG: 60, FatG: 12, MealType: models.MealTypeLunch, DietType: models.DietTypeVegetarian},
		{Name: "Paneer curry", Calories: 300, ProteinG: 20, CarbsG: 15, FatG: 15, MealType: models.MealTypeLunch, DietType: models.DietTypeVegetarian},
		{Name: "Mixed dal", Calories: 250, ProteinG: 18, CarbsG: 35, FatG: 5, MealType: models.MealTypeLunch, DietType: models.DietTypeVegetarian},

		// dinner
		{Name: "Grilled salmon", Calories: 400, ProteinG: 35, CarbsG: 5, FatG: 20, MealType: models.MealTypeDinner, DietType: models.DietTypeNonVegetarian},
		{Name: "Vegetable stir fry", Calories: 150, ProteinG: 5, CarbsG: 20, FatG: 8, MealType: models.MealTypeDinner, DietType: models.DietTypeVegan},
		{Name: "Soup with bread", Calories: 200, ProteinG: 8, CarbsG: 25, FatG: 6, MealType: models.MealTypeDinner, DietType: models.DietTypeVegetarian},
		{Name: "Salad with nuts", Calories: 250, ProteinG: 8, CarbsG: 15, FatG: 18, MealType: models.MealTypeDinner, DietType: models.DietTypeVegan},
		{Name: "Steamed vegetables", Calories: 180, ProteinG: 4, CarbsG: 25, FatG: 8, MealType: models.MealTypeDinner, DietType: models.DietTypeVegan},
		{Name: "Light khichdi", Calories: 300, ProteinG: 8, CarbsG: 50, FatG: 6, MealType: models.MealTypeDinner, DietType: models.DietTypeVegetarian},
		{Name: "Vegetable soup", Calories: 120, ProteinG: 4, CarbsG: 20, FatG: 2, MealType: models.MealTypeDinner, DietType: models.DietTypeVegan},
		{Name: "Grilled chicken", Calories: 350, ProteinG: 30, CarbsG: 0, FatG: 15, MealType: models.MealTypeDinner, DietType: models.DietTypeNonVegetarian},
		{Name: "Dal with roti", Calories: 280, ProteinG: 12, CarbsG: 40, FatG: 8, MealType: models.MealTypeDinner, DietType: models.DietTypeVegetarian},
		{Name: "Paneer tikka", Calories: 200, ProteinG: 25, CarbsG: 8, FatG: 8, MealType: models.MealTypeDinner, DietType: models.DietTypeVegetarian},

		// snack
		{Name: "Apple with almonds", Calories: 200, ProteinG: 8, CarbsG: 20, FatG: 15, MealType: models.MealTypeSnack, DietType: models.DietTypeVegan},
		{Name: "Green tea", Calories: 0, ProteinG: 0, CarbsG: 0, FatG: 0, MealType: models.MealTypeSnack, DietType: models.DietTypeVegan},
		{Name: "Protein shake", Calories: 150, ProteinG: 25, CarbsG: 5, FatG: 3, MealType: models.MealTypeSnack, DietType: models.DietTypeVegetarian},
		{Name: "Mixed nuts", Calories: 200, ProteinG: 8, CarbsG: 8, FatG: 18, MealType: models.MealTypeSnack, DietType: models.DietTypeVegan},
		{Name: "Roasted chana", Calories: 100, ProteinG: 6, CarbsG: 15, FatG: 2, MealType: models.MealTypeSnack, DietType: models.DietTypeVegan},
		{Name: "Sprouts chat", Calories: 120, ProteinG: 8, CarbsG: 20, FatG: 2, MealType: models.MealTypeSnack, DietType: models.DietTypeVegan},
		{Name: "Buttermilk", Calories: 50, ProteinG: 2, CarbsG: 6, FatG: 0, MealType: models.MealTypeSnack, DietType: models.DietTypeVegetarian},
		{Name: "Coconut water", Calories: 25, ProteinG: 0, CarbsG: 6, FatG: 0, MealType: models.MealTypeSnack, DietType: models.DietTypeVegan},
		{Name: "Fruit salad", Calories: 150, ProteinG: 2, CarbsG: 35, FatG: 2, MealType: models.MealTypeSnack, DietType: models.DietTypeVegan},
		{Name: "Low-fat yogurt", Calories: 80, ProteinG: 8, CarbsG: 12, FatG: 0, MealType: models.MealTypeSnack, DietType: models.DietTypeVegetarian},
	}
}
