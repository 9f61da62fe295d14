// controllers/dashboard_controller.go
package controllers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bhavesharora02/Euron-Water-Supply/models"
	"github.com/bhavesharora02/Euron-Water-Supply/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Intake    *services.IntakeService
	Analytics *services.AnalyticsService
	Advisor   *services.AdvisorService
}

func NewDashboardController(in *services.IntakeService, an *services.AnalyticsService, adv *services.AdvisorService) *DashboardController {
	return &DashboardController{Intake: in, Analytics: an, Advisor: adv}
}

type historyRow struct {
	ID       uint
	Date     string
	Time     string
	VolumeML float64
	Note     string
}

type dashboardData struct {
	UserHandle string
	Today      *services.TodayProgress
	PercentInt int

	Recent  []historyRow
	History []historyRow
	Stats   *services.RangeStats
	From    string
	To      string

	DailyChart     services.Chart
	DayOfWeekChart services.Chart

	Feedback string
	Logged   bool
	Error    string
}

func toRows(recs []models.IntakeRecord) []historyRow {
	rows := make([]historyRow, 0, len(recs))
	for _, r := range recs {
		t := r.Timestamp.In(time.Local)
		rows = append(rows, historyRow{
			ID:       r.ID,
			Date:     t.Format("2006-01-02"),
			Time:     t.Format("15:04"),
			VolumeML: r.VolumeML,
			Note:     r.Note,
		})
	}
	return rows
}

// GET /dashboard re-reads storage and re-aggregates on every load. The
// free-text `user` query param selects (or lazily creates) the account.
func (h *DashboardController) Show(c *gin.Context) {
	user, err := services.FindOrCreateDashboardUser(c.Query("user"))
	if err != nil {
		c.String(http.StatusInternalServerError, "something went wrong, try again")
		return
	}
	ctx := c.Request.Context()

	data := dashboardData{
		UserHandle: user.Email,
		Logged:     c.Query("logged") == "1",
		Error:      c.Query("err"),
	}

	data.Today, err = h.Analytics.Today(ctx, user.ID)
	if err != nil {
		c.String(http.StatusInternalServerError, "something went wrong, try again")
		return
	}
	data.PercentInt = int(data.Today.Percent * 100)

	recent, err := h.Intake.Recent(user.ID, 5)
	if err == nil {
		data.Recent = toRows(recent)
	}

	// history panel defaults to the last 7 days
	now := time.Now()
	defTo := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).Add(24 * time.Hour)
	defFrom := defTo.AddDate(0, 0, -7)
	from, to, err := parseDateRange(c, defFrom, defTo)
	if err != nil {
		from, to = defFrom, defTo
	}
	data.From = from.Format("2006-01-02")
	data.To = to.AddDate(0, 0, -1).Format("2006-01-02")

	history, err := h.Intake.ListRange(user.ID, from, to)
	if err == nil {
		data.History = toRows(history)
	}
	if stats, err := h.Analytics.Stats(ctx, user.ID, from, to); err == nil {
		data.Stats = stats
	}

	week, err := h.Analytics.LastNDays(ctx, user.ID, 7)
	if err == nil {
		data.DailyChart = services.DailyTotalsChart(week)
	}
	if byDay, err := h.Analytics.DayOfWeekAverages(ctx, user.ID); err == nil {
		data.DayOfWeekChart = services.DayOfWeekChart(byDay)
	}

	// AI feedback only on demand, so an external call isn't made per page load
	if c.Query("feedback") == "1" {
		data.Feedback = h.Advisor.Feedback(ctx, data.Today, week)
	}

	c.HTML(http.StatusOK, "dashboard.html", data)
}

// POST /dashboard/log: form submit, then redirect back to the page.
func (h *DashboardController) LogIntake(c *gin.Context) {
	handle := c.PostForm("user")
	user, err := services.FindOrCreateDashboardUser(handle)
	if err != nil {
		c.String(http.StatusInternalServerError, "something went wrong, try again")
		return
	}

	back := func(q url.Values) {
		q.Set("user", user.Email)
		c.Redirect(http.StatusSeeOther, "/dashboard?"+q.Encode())
	}

	volume, err := strconv.ParseFloat(c.PostForm("volume_ml"), 64)
	if err != nil {
		back(url.Values{"err": {"enter a numeric amount in ml"}})
		return
	}

	_, err = h.Intake.Log(user.ID, volume, time.Time{}, c.PostForm("note"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidVolume) {
			back(url.Values{"err": {"amount must be greater than zero"}})
			return
		}
		back(url.Values{"err": {"could not save intake, try again"}})
		return
	}

	back(url.Values{"logged": {"1"}})
}

// GET /: landing redirect.
func (h *DashboardController) Home(c *gin.Context) {
	c.Redirect(http.StatusFound, "/dashboard")
}
