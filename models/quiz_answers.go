package models

// QuizAnswers holds the typed answers of the onboarding quiz, one row per user.
type QuizAnswers struct {
	Base
	UserID string `gorm:"uniqueIndex;not null;size:36" json:"userId"`

	Goal              string   `json:"goal"`
	AgeRange          string   `json:"ageRange"`
	CurrentWeight     *float64 `json:"currentWeight"` // kg
	GoalWeight        *float64 `json:"goalWeight"`    // kg
	Height            *float64 `json:"height"`        // cm
	ActivityLevel     string   `json:"activityLevel"`
	DietaryExclusions string   `json:"dietaryExclusions"` // comma-joined
	IsVegetarian      bool     `json:"isVegetarian"`
	HasAllergies      bool     `json:"hasAllergies"`
	MealsPerDay       *int     `json:"mealsPerDay"`
}

func (QuizAnswers) TableName() string {
	return "quiz_answers"
}
