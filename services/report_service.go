// services/report_service.go
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/bhavesharora02/Euron-Water-Supply/models"
	"github.com/bhavesharora02/Euron-Water-Supply/utils"
)

// ComposeWeeklyReport renders the plain-text body of the weekly hydration
// e-mail from the last seven daily summaries.
func ComposeWeeklyReport(user *models.User, days []PeriodSummary, goalML float64) string {
	var sb strings.Builder

	name := user.FullName
	if name == "" {
		name = user.Email
	}
	sb.WriteString(fmt.Sprintf("Hi %s,\n\nHere is your hydration summary for the last 7 days.\n\n", name))

	var total float64
	daysMet := 0
	for _, d := range days {
		marker := " "
		if goalML > 0 && d.TotalML >= goalML {
			marker = "*"
			daysMet++
		}
		sb.WriteString(fmt.Sprintf("%s %s: %.0f ml (%d entries)\n", marker, d.Period, d.TotalML, d.Count))
		total += d.TotalML
	}

	if len(days) == 0 {
		sb.WriteString("No intake was logged this week.\n")
	} else {
		sb.WriteString(fmt.Sprintf("\nTotal: %.0f ml, average %.0f ml/day.", total, total/float64(len(days))))
		if goalML > 0 {
			sb.WriteString(fmt.Sprintf(" Goal of %.0f ml met on %d of %d days.", goalML, daysMet, len(days)))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\nStay hydrated!\n")
	return sb.String()
}

// EmailWeeklyReport mails the user their last-7-days summary.
func EmailWeeklyReport(ctx context.Context, analytics *AnalyticsService, user *models.User) error {
	days, err := analytics.LastNDays(ctx, user.ID, 7)
	if err != nil {
		return err
	}
	report := ComposeWeeklyReport(user, days, GoalTargetML(user.ID))
	return utils.SendWeeklyReportEmail(user.Email, report)
}
