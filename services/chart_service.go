// services/chart_service.go
package services

// Chart is a renderable description of an aggregated series. It carries no
// state; the dashboard template and API clients draw from it directly.
type Chart struct {
	Type   string    `json:"type"` // "bar" | "line"
	Title  string    `json:"title"`
	Unit   string    `json:"unit"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

func BarChart(title, unit string, summaries []PeriodSummary) Chart {
	c := Chart{Type: "bar", Title: title, Unit: unit}
	for _, s := range summaries {
		c.Labels = append(c.Labels, s.Period)
		c.Values = append(c.Values, s.TotalML)
	}
	return c
}

func LineChart(title, unit string, points []TrendPoint) Chart {
	c := Chart{Type: "line", Title: title, Unit: unit}
	for _, p := range points {
		c.Labels = append(c.Labels, p.Label)
		c.Values = append(c.Values, p.AvgML)
	}
	return c
}

func DailyTotalsChart(summaries []PeriodSummary) Chart {
	return BarChart("Daily Intake", "ml", summaries)
}

func WeeklyTotalsChart(summaries []PeriodSummary) Chart {
	return BarChart("Weekly Intake", "ml", summaries)
}

func DayOfWeekChart(points []TrendPoint) Chart {
	return LineChart("Average Intake by Day of Week", "ml", points)
}

func HourlyChart(points []TrendPoint) Chart {
	return LineChart("Average Intake by Hour of Day", "ml", points)
}

// MaxValue is used by the server-rendered dashboard to scale bars.
func (c Chart) MaxValue() float64 {
	var max float64
	for _, v := range c.Values {
		if v > max {
			max = v
		}
	}
	return max
}

// BarHeights returns each value as a 0-100 percentage of the chart maximum.
func (c Chart) BarHeights() []int {
	max := c.MaxValue()
	out := make([]int, len(c.Values))
	if max <= 0 {
		return out
	}
	for i, v := range c.Values {
		out[i] = int(v / max * 100)
	}
	return out
}
