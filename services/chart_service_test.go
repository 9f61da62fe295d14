package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDailyTotalsChart(t *testing.T) {
	c := DailyTotalsChart([]PeriodSummary{
		{Period: "2026-03-01", TotalML: 1800},
		{Period: "2026-03-02", TotalML: 1200},
	})
	assert.Equal(t, "bar", c.Type)
	assert.Equal(t, "ml", c.Unit)
	assert.Equal(t, []string{"2026-03-01", "2026-03-02"}, c.Labels)
	assert.Equal(t, []float64{1800, 1200}, c.Values)
}

func TestLineChartFromTrendPoints(t *testing.T) {
	c := DayOfWeekChart([]TrendPoint{
		{Label: "Monday", AvgML: 500},
		{Label: "Tuesday", AvgML: 0},
	})
	assert.Equal(t, "line", c.Type)
	assert.Equal(t, []string{"Monday", "Tuesday"}, c.Labels)
	assert.Equal(t, []float64{500, 0}, c.Values)
}

func TestChartMaxValue(t *testing.T) {
	c := Chart{Values: []float64{300, 1200, 700}}
	assert.Equal(t, 1200.0, c.MaxValue())

	assert.Zero(t, Chart{}.MaxValue())
}

func TestBarHeights(t *testing.T) {
	c := Chart{Values: []float64{500, 1000, 250}}
	assert.Equal(t, []int{50, 100, 25}, c.BarHeights())
}

func TestBarHeightsAllZero(t *testing.T) {
	c := Chart{Values: []float64{0, 0}}
	assert.Equal(t, []int{0, 0}, c.BarHeights())
}
