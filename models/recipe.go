package models

type MealType string

const (
	Breakfast MealType = "BREAKFAST"
	Lunch     MealType = "LUNCH"
	Dinner    MealType = "DINNER"
)

func (m MealType) Valid() bool {
	switch m {
	case Breakfast, Lunch, Dinner:
		return true
	}
	return false
}

type Recipe struct {
	Base
	Title        string   `gorm:"not null" json:"title"`
	Description  string   `gorm:"type:text" json:"description"`
	MealType     MealType `gorm:"index;size:16;not null" json:"mealType"`
	Instructions string   `gorm:"type:text" json:"instructions"`
	ImageURL     string   `json:"imageUrl"`
	Calories     int      `json:"calories"`
	Proteins     int      `json:"proteins"`
	Fats         int      `json:"fats"`
	Carbs        int      `json:"carbs"`
	CookingTime  int      `json:"cookingTime"` // minutes

	Tags        []Tag              `gorm:"many2many:recipe_tags" json:"tags,omitempty"`
	Ingredients []RecipeIngredient `gorm:"constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
}

type Tag struct {
	Base
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

type Ingredient struct {
	Base
	Name     string `gorm:"uniqueIndex;not null" json:"name"`
	Category string `json:"category"`
}

// RecipeIngredient is the join record carrying the amount of an ingredient in a recipe.
type RecipeIngredient struct {
	RecipeID     string     `gorm:"primaryKey;size:36" json:"-"`
	IngredientID string     `gorm:"primaryKey;size:36" json:"-"`
	Quantity     float64    `json:"quantity"`
	Unit         string     `gorm:"size:16" json:"unit"`
	Ingredient   Ingredient `json:"ingredient"`
}
