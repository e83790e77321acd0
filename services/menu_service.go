package services

import (
	"context"
	"fmt"
	"math/rand/v2"

	"trimspire/models"
	"trimspire/utils"

	"gorm.io/gorm"
)

var WeekDays = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

type DayPlan struct {
	Day   string          `json:"day"`
	Meals []models.Recipe `json:"meals"` // breakfast, lunch, dinner
}

// Picker returns a uniformly random index in [0, n). *rand.Rand satisfies it.
type Picker interface {
	IntN(n int) int
}

type globalPicker struct{}

func (globalPicker) IntN(n int) int { return rand.IntN(n) }

// GenerateWeekPlan draws one recipe per meal slot for each day of the week, with
// replacement. It fails when any meal-type pool is empty.
func GenerateWeekPlan(recipes []models.Recipe, pick Picker) ([]DayPlan, error) {
	if pick == nil {
		pick = globalPicker{}
	}

	slots := [3]models.MealType{models.Breakfast, models.Lunch, models.Dinner}
	pools := make(map[models.MealType][]models.Recipe, len(slots))
	for _, r := range recipes {
		pools[r.MealType] = append(pools[r.MealType], r)
	}
	for _, slot := range slots {
		if len(pools[slot]) == 0 {
			return nil, fmt.Errorf("%w: no %s recipes", ErrInsufficientRecipes, slot)
		}
	}

	plan := make([]DayPlan, 0, len(WeekDays))
	for _, day := range WeekDays {
		meals := make([]models.Recipe, 0, len(slots))
		for _, slot := range slots {
			pool := pools[slot]
			meals = append(meals, pool[pick.IntN(len(pool))])
		}
		plan = append(plan, DayPlan{Day: day, Meals: meals})
	}
	return plan, nil
}

type UserData struct {
	CurrentWeight *float64 `json:"currentWeight"`
	GoalWeight    *float64 `json:"goalWeight"`
}

type MenuResponse struct {
	WeekPlan          []DayPlan               `json:"weekPlan"`
	UserData          UserData                `json:"userData"`
	RecommendedMacros utils.RecommendedMacros `json:"recommendedMacros"`
}

type MenuService struct {
	db   *gorm.DB
	pick Picker
}

// NewMenuService builds the service; a nil picker uses the global random source.
func NewMenuService(db *gorm.DB, pick Picker) *MenuService {
	return &MenuService{db: db, pick: pick}
}

// Generate builds a fresh weekly plan and the macro targets for a user.
func (s *MenuService) Generate(ctx context.Context, userID string) (*MenuResponse, error) {
	answers, err := findAnswers(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}

	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("load recipes: %w", err)
	}

	plan, err := GenerateWeekPlan(recipes, s.pick)
	if err != nil {
		return nil, err
	}

	return &MenuResponse{
		WeekPlan: plan,
		UserData: UserData{
			CurrentWeight: answers.CurrentWeight,
			GoalWeight:    answers.GoalWeight,
		},
		RecommendedMacros: utils.CalculateMacros(MacroInputFrom(answers)),
	}, nil
}

func MacroInputFrom(a *models.QuizAnswers) utils.MacroInput {
	return utils.MacroInput{
		CurrentWeight: a.CurrentWeight,
		Height:        a.Height,
		AgeRange:      a.AgeRange,
		ActivityLevel: utils.ActivityLevel(a.ActivityLevel),
		Goal:          utils.Goal(a.Goal),
	}
}
