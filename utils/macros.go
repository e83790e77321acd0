package utils

import (
	"math"
	"strconv"
	"strings"
)

type ActivityLevel string

const (
	Sedentary        ActivityLevel = "Sedentary"
	LightlyActive    ActivityLevel = "Lightly active"
	ModeratelyActive ActivityLevel = "Moderately active"
	VeryActive       ActivityLevel = "Very active"
)

type Goal string

const (
	LoseWeight   Goal = "Lose weight"
	GetStronger  Goal = "Get stronger"
	MaintainGoal Goal = "Maintain results"
)

// MacroInput is the subset of quiz answers the calculator needs. Nil or zero numbers
// and empty strings count as missing.
type MacroInput struct {
	CurrentWeight *float64 // kg
	Height        *float64 // cm
	AgeRange      string
	ActivityLevel ActivityLevel
	Goal          Goal
}

type RecommendedMacros struct {
	Calories int `json:"calories"`
	Proteins int `json:"proteins"`
	Fats     int `json:"fats"`
	Carbs    int `json:"carbs"`
}

// DefaultMacros is returned when the answers are incomplete.
var DefaultMacros = RecommendedMacros{Calories: 2000, Proteins: 150, Fats: 67, Carbs: 200}

const defaultAge = 30

var activityMultipliers = map[ActivityLevel]float64{
	Sedentary:        1.2,
	LightlyActive:    1.375,
	ModeratelyActive: 1.55,
	VeryActive:       1.725,
}

var goalFactors = map[Goal]float64{
	LoseWeight:  0.8,
	GetStronger: 1.1,
}

// MacroRatios are the shares of daily calories for each macro nutrient.
type MacroRatios struct {
	Protein, Fat, Carb float64
}

var (
	MaintainRatios = MacroRatios{Protein: 0.25, Fat: 0.25, Carb: 0.5}
	goalRatios     = map[Goal]MacroRatios{
		LoseWeight:  {Protein: 0.30, Fat: 0.25, Carb: 0.45},
		GetStronger: {Protein: 0.35, Fat: 0.20, Carb: 0.45},
	}
)

// CalculateMacros derives the daily calorie and macro targets from the Mifflin-St Jeor
// (female) BMR, an activity multiplier and a goal adjustment.
func CalculateMacros(in MacroInput) RecommendedMacros {
	if !positive(in.CurrentWeight) || !positive(in.Height) ||
		in.AgeRange == "" || in.ActivityLevel == "" || in.Goal == "" {
		return DefaultMacros
	}

	weight, height, age := *in.CurrentWeight, *in.Height, AverageAge(in.AgeRange)
	bmr := 10*weight + 6.25*height - 5*age - 161

	calories := bmr * ActivityMultiplier(in.ActivityLevel)
	if f, ok := goalFactors[in.Goal]; ok {
		calories *= f
	}

	rounded := roundHalfUp(calories/10) * 10
	if rounded < 0 {
		rounded = 0
	}

	r := RatiosFor(in.Goal)
	return RecommendedMacros{
		Calories: int(rounded),
		Proteins: int(roundHalfUp(rounded * r.Protein / 4)),
		Fats:     int(roundHalfUp(rounded * r.Fat / 9)),
		Carbs:    int(roundHalfUp(rounded * r.Carb / 4)),
	}
}

// AverageAge turns "25-34" into 29.5. A single value or a prefix like "61+" yields its
// leading integer; anything else yields 30.
func AverageAge(ageRange string) float64 {
	ageRange = strings.TrimSpace(ageRange)
	if ageRange == "" {
		return defaultAge
	}
	if parts := strings.Split(ageRange, "-"); len(parts) == 2 {
		lo, errLo := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		hi, errHi := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if errLo == nil && errHi == nil {
			return (lo + hi) / 2
		}
	}
	if n := leadingInt(ageRange); n != 0 {
		return float64(n)
	}
	return defaultAge
}

func ActivityMultiplier(level ActivityLevel) float64 {
	if m, ok := activityMultipliers[level]; ok {
		return m
	}
	return activityMultipliers[Sedentary]
}

// RatiosFor returns the macro split for a goal; unknown goals get the maintenance split.
func RatiosFor(goal Goal) MacroRatios {
	if r, ok := goalRatios[goal]; ok {
		return r
	}
	return MaintainRatios
}

func positive(f *float64) bool {
	return f != nil && *f > 0
}

// roundHalfUp rounds .5 toward positive infinity.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

func leadingInt(s string) int {
	sign, i := 1, 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		if s[i] == '-' {
			sign = -1
		}
		i++
	}
	j := i
	for j < len(s) && j-i < 9 && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	n, err := strconv.Atoi(s[i:j])
	if err != nil {
		return 0
	}
	return sign * n
}
