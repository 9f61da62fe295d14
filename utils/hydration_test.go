package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendedIntakeML(t *testing.T) {
	ml, err := RecommendedIntakeML(70)
	require.NoError(t, err)
	assert.Equal(t, 2450.0, ml)
}

func TestRecommendedIntakeMLClamps(t *testing.T) {
	ml, err := RecommendedIntakeML(30)
	require.NoError(t, err)
	assert.Equal(t, 1500.0, ml, "light weights clamp to the floor")

	ml, err = RecommendedIntakeML(150)
	require.NoError(t, err)
	assert.Equal(t, 4000.0, ml, "heavy weights clamp to the ceiling")
}

func TestRecommendedIntakeMLRejectsBadWeight(t *testing.T) {
	for _, w := range []float64{0, -5, 5, 500} {
		_, err := RecommendedIntakeML(w)
		assert.Error(t, err, "weight %v", w)
	}
}

func TestHydrationCategory(t *testing.T) {
	cases := []struct {
		percent float64
		want    string
	}{
		{0, "Dehydrated"},
		{0.24, "Dehydrated"},
		{0.25, "Low"},
		{0.5, "On track"},
		{0.75, "Almost there"},
		{1.0, "Goal reached"},
		{1.5, "Goal reached"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, HydrationCategory(c.percent), "percent %v", c.percent)
	}
}

func TestAssessIntakeQuiet(t *testing.T) {
	assert.Empty(t, AssessIntake(500, 1200, 2000))
}

func TestAssessIntakeLargeEntry(t *testing.T) {
	out := AssessIntake(2000, 2000, 0)
	require.Len(t, out, 1)
	assert.Equal(t, "LARGE_ENTRY", out[0].Code)
	assert.Equal(t, Caution, out[0].Severity)
}

func TestAssessIntakeGoalCrossing(t *testing.T) {
	// entry that crosses the goal line
	out := AssessIntake(600, 2100, 2000)
	require.Len(t, out, 1)
	assert.Equal(t, "GOAL_REACHED", out[0].Code)

	// goal was already met before this entry
	assert.Empty(t, AssessIntake(200, 2300, 2000))
}

func TestAssessIntakeExcessiveDaily(t *testing.T) {
	out := AssessIntake(500, 6200, 2000)
	require.Len(t, out, 1)
	assert.Equal(t, "EXCESSIVE_DAILY", out[0].Code)
	assert.Equal(t, High, out[0].Severity)
}
