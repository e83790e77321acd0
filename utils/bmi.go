package utils

import (
	"errors"
	"math"
)

var ErrImplausibleBody = errors.New("height/weight out of plausible range")

// CalculateBMI expects height in centimeters and weight in kilograms. The result is
// rounded to one decimal.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, ErrImplausibleBody
	}
	h := heightCm / 100
	return math.Round(weightKg/(h*h)*10) / 10, nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}

// BodyStats summarises the quiz measurements shown on the dashboard.
type BodyStats struct {
	BMI         float64 `json:"bmi,omitempty"`
	Category    string  `json:"category,omitempty"`
	ToGoalKg    float64 `json:"toGoalKg,omitempty"` // negative when weight has to be lost
	HasBMI      bool    `json:"-"`
	HasGoalDiff bool    `json:"-"`
}

func NewBodyStats(heightCm, weightKg, goalKg *float64) BodyStats {
	var s BodyStats
	if heightCm != nil && weightKg != nil {
		if bmi, err := CalculateBMI(*heightCm, *weightKg); err == nil {
			s.BMI, s.Category, s.HasBMI = bmi, BMICategory(bmi), true
		}
	}
	if weightKg != nil && goalKg != nil && *goalKg > 0 {
		s.ToGoalKg = math.Round((*goalKg-*weightKg)*10) / 10
		s.HasGoalDiff = true
	}
	return s
}
