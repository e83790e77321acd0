package utils

import (
	"errors"
	"testing"
)

func TestCalculateBMI(t *testing.T) {
	tests := []struct {
		height, weight float64
		want           float64
		category       string
	}{
		{175, 70, 22.9, "Normal weight"},
		{165, 50, 18.4, "Underweight"},
		{180, 90, 27.8, "Overweight"},
		{160, 90, 35.2, "Obese"},
	}
	for _, test := range tests {
		got, err := CalculateBMI(test.height, test.weight)
		if err != nil {
			t.Errorf("CalculateBMI(%v, %v): %v", test.height, test.weight, err)
			continue
		}
		if got != test.want {
			t.Errorf("CalculateBMI(%v, %v) = %v, want %v", test.height, test.weight, got, test.want)
		}
		if cat := BMICategory(got); cat != test.category {
			t.Errorf("BMICategory(%v) = %q, want %q", got, cat, test.category)
		}
	}

	if _, err := CalculateBMI(20, 70); !errors.Is(err, ErrImplausibleBody) {
		t.Errorf("want ErrImplausibleBody, got %v", err)
	}
}

func TestNewBodyStats(t *testing.T) {
	s := NewBodyStats(f64(175), f64(70), f64(65))
	if !s.HasBMI || s.BMI != 22.9 {
		t.Errorf("bmi = %v (%v), want 22.9", s.BMI, s.HasBMI)
	}
	if !s.HasGoalDiff || s.ToGoalKg != -5 {
		t.Errorf("to goal = %v (%v), want -5", s.ToGoalKg, s.HasGoalDiff)
	}

	empty := NewBodyStats(nil, f64(70), nil)
	if empty.HasBMI || empty.HasGoalDiff {
		t.Errorf("expected no stats, got %+v", empty)
	}
}
