package services

import (
	"context"
	"errors"
	"fmt"

	"trimspire/models"

	"gorm.io/gorm"
)

// SeedRecipes is the starter catalog: one recipe per meal type.
var SeedRecipes = []CreateRecipeInput{
	{
		Title:        "Oatmeal with berries and walnuts",
		Description:  "A healthy breakfast that keeps you going all day. Start the morning right with this simple dish.",
		MealType:     models.Breakfast,
		Instructions: "1. Pour water or milk over the oat flakes...",
		ImageURL:     "/images/recipe.jpg",
		Calories:     350,
		Proteins:     10,
		Fats:         12,
		Carbs:        50,
		CookingTime:  10,
		Tags:         []string{"Quick", "Vegetarian", "Classic"},
		Ingredients: []IngredientInput{
			{Name: "Oat flakes", Category: "Grocery", Quantity: 50, Unit: "g"},
			{Name: "Mixed berries", Category: "Fruits and berries", Quantity: 70, Unit: "g"},
			{Name: "Walnuts", Category: "Nuts", Quantity: 20, Unit: "g"},
		},
	},
	{
		Title:        "Baked salmon with asparagus",
		Description:  "A simple, elegant and very healthy dinner. Almost no effort, ideal for a weeknight.",
		MealType:     models.Dinner,
		Instructions: "1. Preheat the oven to 200°C...",
		ImageURL:     "/images/recipe.jpg",
		Calories:     480,
		Proteins:     40,
		Fats:         30,
		Carbs:        10,
		CookingTime:  20,
		Tags:         []string{"Simple", "Gluten free"},
		Ingredients: []IngredientInput{
			{Name: "Salmon fillet", Category: "Fish and seafood", Quantity: 200, Unit: "g"},
			{Name: "Asparagus", Category: "Vegetables and greens", Quantity: 150, Unit: "g"},
			{Name: "Olive oil", Category: "Oils and sauces", Quantity: 15, Unit: "ml"},
		},
	},
	{
		Title:        "Chicken breast with broccoli and rice",
		Description:  "A balanced lunch for those watching their figure. A great source of protein.",
		MealType:     models.Lunch,
		Instructions: "1. Boil the rice according to the package instructions...",
		ImageURL:     "/images/recipe.jpg",
		Calories:     450,
		Proteins:     50,
		Fats:         10,
		Carbs:        40,
		CookingTime:  25,
		Tags:         []string{"Simple", "Gluten free"},
		Ingredients: []IngredientInput{
			{Name: "Chicken breast", Category: "Meat and poultry", Quantity: 180, Unit: "g"},
			{Name: "Broccoli", Category: "Vegetables and greens", Quantity: 150, Unit: "g"},
			{Name: "Basmati rice", Category: "Grocery", Quantity: 50, Unit: "g"},
		},
	},
}

// Seed inserts the starter catalog, skipping recipes whose title already exists.
// It returns the number of recipes created.
func (s *RecipeService) Seed(ctx context.Context, recipes []CreateRecipeInput) (int, error) {
	created := 0
	for _, in := range recipes {
		var existing models.Recipe
		err := s.db.WithContext(ctx).Where("title = ?", in.Title).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, fmt.Errorf("check recipe %q: %w", in.Title, err)
		}
		if _, err := s.Create(ctx, in); err != nil {
			return created, fmt.Errorf("seed recipe %q: %w", in.Title, err)
		}
		created++
	}
	return created, nil
}
