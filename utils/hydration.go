package utils

import "errors"

// RecommendedIntakeML expects weight in kilograms and returns a daily water
// target using the common 35 ml/kg guideline, clamped to a sane range.
func RecommendedIntakeML(weightKg float64) (float64, error) {
	if weightKg <= 0 {
		return 0, errors.New("weight must be positive")
	}
	if weightKg < 10 || weightKg > 400 {
		return 0, errors.New("weight out of plausible range")
	}

	ml := weightKg * 35.0
	if ml < 1500 {
		ml = 1500
	}
	if ml > 4000 {
		ml = 4000
	}
	return ml, nil
}

// HydrationCategory buckets goal completion (0..1+) for display.
func HydrationCategory(percent float64) string {
	switch {
	case percent < 0.25:
		return "Dehydrated"
	case percent < 0.5:
		return "Low"
	case percent < 0.75:
		return "On track"
	case percent < 1.0:
		return "Almost there"
	default:
		return "Goal reached"
	}
}
