package utils

import "fmt"

// WarningSeverity categorizes how serious the flag is.
type WarningSeverity string

const (
	Info    WarningSeverity = "info"
	Caution WarningSeverity = "caution"
	High    WarningSeverity = "high"
)

// Warning is a structured finding you can show in your API / UI.
type Warning struct {
	Code     string          `json:"code"`
	Severity WarningSeverity `json:"severity"`
	Message  string          `json:"message"`
}

const (
	// single entries at or above this size get flagged
	LargeEntryML = 2000.0
	// daily totals at or above this are unusually high
	ExcessiveDailyML = 6000.0
)

// AssessIntake inspects a newly logged entry against the running daily total
// and the user's goal. dailyTotalML includes the new entry.
func AssessIntake(volumeML, dailyTotalML, goalML float64) []Warning {
	var out []Warning

	if volumeML >= LargeEntryML {
		out = append(out, Warning{
			Code:     "LARGE_ENTRY",
			Severity: Caution,
			Message:  fmt.Sprintf("Single entry of %.0f ml is unusually large. Spread intake across the day.", volumeML),
		})
	}

	if dailyTotalML >= ExcessiveDailyML {
		out = append(out, Warning{
			Code:     "EXCESSIVE_DAILY",
			Severity: High,
			Message:  fmt.Sprintf("Daily total of %.0f ml is very high. Check with a professional if this is typical.", dailyTotalML),
		})
	} else if goalML > 0 && dailyTotalML >= goalML && dailyTotalML-volumeML < goalML {
		// the new entry is the one that crossed the goal
		out = append(out, Warning{
			Code:     "GOAL_REACHED",
			Severity: Info,
			Message:  fmt.Sprintf("Daily goal of %.0f ml reached. Nice work!", goalML),
		})
	}

	return out
}
