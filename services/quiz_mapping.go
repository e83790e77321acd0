package services

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"trimspire/models"
)

// QuestionID identifies a quiz question in the payload sent by the frontend.
type QuestionID string

const (
	QuestionGoal              QuestionID = "goal"
	QuestionAge               QuestionID = "age"
	QuestionCurrentWeight     QuestionID = "current-weight"
	QuestionGoalWeight        QuestionID = "goal-weight"
	QuestionHeight            QuestionID = "height"
	QuestionActivityLevel     QuestionID = "activity-level"
	QuestionDietaryExclusions QuestionID = "diet-exclusions"
	QuestionVegetarian        QuestionID = "vegetarian"
	QuestionAllergies         QuestionID = "allergies"
	QuestionMealsPerDay       QuestionID = "meals-per-day"
)

type assignFunc func(a *models.QuizAnswers, raw any) error

// questions maps every known question to its field and parse rule.
var questions = map[QuestionID]assignFunc{
	QuestionGoal:              asText(func(a *models.QuizAnswers, v string) { a.Goal = v }),
	QuestionAge:               asText(func(a *models.QuizAnswers, v string) { a.AgeRange = v }),
	QuestionCurrentWeight:     asNumber(func(a *models.QuizAnswers, v *float64) { a.CurrentWeight = v }),
	QuestionGoalWeight:        asNumber(func(a *models.QuizAnswers, v *float64) { a.GoalWeight = v }),
	QuestionHeight:            asNumber(func(a *models.QuizAnswers, v *float64) { a.Height = v }),
	QuestionActivityLevel:     asText(func(a *models.QuizAnswers, v string) { a.ActivityLevel = v }),
	QuestionDietaryExclusions: asList(func(a *models.QuizAnswers, v string) { a.DietaryExclusions = v }),
	QuestionVegetarian:        asBool(func(a *models.QuizAnswers, v bool) { a.IsVegetarian = v }),
	QuestionAllergies:         asBool(func(a *models.QuizAnswers, v bool) { a.HasAllergies = v }),
	QuestionMealsPerDay: asNumber(func(a *models.QuizAnswers, v *float64) {
		if v == nil {
			a.MealsPerDay = nil
			return
		}
		n := int(*v)
		a.MealsPerDay = &n
	}),
}

// MapAnswers converts raw quiz answers into typed fields. Unknown question ids are
// returned so the caller can log them.
func MapAnswers(raw map[string]any) (models.QuizAnswers, []string, error) {
	var (
		answers models.QuizAnswers
		unknown []string
	)
	// Sorted so the first invalid question reported is stable.
	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		assign, ok := questions[QuestionID(id)]
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		if err := assign(&answers, raw[id]); err != nil {
			return models.QuizAnswers{}, nil, fmt.Errorf("%w: question %q: %v", ErrInvalidInput, id, err)
		}
	}
	return answers, unknown, nil
}

func asText(set func(*models.QuizAnswers, string)) assignFunc {
	return func(a *models.QuizAnswers, raw any) error {
		s, err := parseText(raw)
		if err != nil {
			return err
		}
		set(a, s)
		return nil
	}
}

func asNumber(set func(*models.QuizAnswers, *float64)) assignFunc {
	return func(a *models.QuizAnswers, raw any) error {
		f, err := parseNumber(raw)
		if err != nil {
			return err
		}
		set(a, f)
		return nil
	}
}

func asBool(set func(*models.QuizAnswers, bool)) assignFunc {
	return func(a *models.QuizAnswers, raw any) error {
		b, err := parseYes(raw)
		if err != nil {
			return err
		}
		set(a, b)
		return nil
	}
}

func asList(set func(*models.QuizAnswers, string)) assignFunc {
	return func(a *models.QuizAnswers, raw any) error {
		items, ok := raw.([]any)
		if !ok {
			return asText(set)(a, raw)
		}
		parts := make([]string, 0, len(items))
		for _, it := range items {
			s, err := parseText(it)
			if err != nil {
				return err
			}
			if s != "" {
				parts = append(parts, s)
			}
		}
		set(a, strings.Join(parts, ", "))
		return nil
	}
}

func parseText(raw any) (string, error) {
	switch v := raw.(type) {
	case nil:
		return "", nil
	case string:
		return strings.TrimSpace(v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case json.Number:
		return v.String(), nil
	default:
		return "", fmt.Errorf("expected text, got %T", raw)
	}
}

// parseNumber accepts JSON numbers and strings with either "." or "," as the
// decimal separator. Empty values are reported as nil.
func parseNumber(raw any) (*float64, error) {
	var f float64
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case float64:
		f = v
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return nil, err
		}
		f = n
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil, nil
		}
		n, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", v)
		}
		f = n
	default:
		return nil, fmt.Errorf("expected number, got %T", raw)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return nil, fmt.Errorf("out of range: %v", f)
	}
	return &f, nil
}

func parseYes(raw any) (bool, error) {
	switch v := raw.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "yes", "y", "да", "true":
			return true, nil
		}
		return false, nil
	default:
		return false, fmt.Errorf("expected yes/no, got %T", raw)
	}
}
