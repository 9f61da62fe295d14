package services

import (
	"strings"
	"testing"

	"github.com/bhavesharora02/Euron-Water-Supply/models"

	"github.com/stretchr/testify/assert"
)

func TestComposeWeeklyReport(t *testing.T) {
	user := &models.User{Email: "alice@example.com", FullName: "Alice"}
	days := []PeriodSummary{
		{Period: "2026-03-01", TotalML: 2200, Count: 4},
		{Period: "2026-03-02", TotalML: 1200, Count: 2},
	}

	body := ComposeWeeklyReport(user, days, 2000)

	assert.Contains(t, body, "Hi Alice,")
	assert.Contains(t, body, "* 2026-03-01: 2200 ml (4 entries)")
	assert.Contains(t, body, "  2026-03-02: 1200 ml (2 entries)")
	assert.Contains(t, body, "Total: 3400 ml, average 1700 ml/day.")
	assert.Contains(t, body, "Goal of 2000 ml met on 1 of 2 days.")
}

func TestComposeWeeklyReportFallsBackToEmail(t *testing.T) {
	user := &models.User{Email: "alice@example.com"}
	body := ComposeWeeklyReport(user, nil, 2000)
	assert.Contains(t, body, "Hi alice@example.com,")
	assert.Contains(t, body, "No intake was logged this week.")
	assert.False(t, strings.Contains(body, "Total:"))
}
