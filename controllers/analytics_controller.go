// controllers/analytics_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/bhavesharora02/Euron-Water-Supply/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Svc *services.AnalyticsService
}

func NewAnalyticsController(svc *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Svc: svc}
}

// GET /analytics/summary?from=&to=&granularity=day|week
func (h *AnalyticsController) GetSummary(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	now := time.Now()
	defTo := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).Add(24 * time.Hour)
	defFrom := defTo.AddDate(0, 0, -7)

	from, to, err := parseDateRange(c, defFrom, defTo)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "`to` must be on/after `from`"})
		return
	}

	g := services.Granularity(c.DefaultQuery("granularity", "day"))
	if g != services.GranularityDay && g != services.GranularityWeek {
		c.JSON(http.StatusBadRequest, gin.H{"error": "granularity must be day or week"})
		return
	}

	out, err := h.Svc.Summarize(c.Request.Context(), userID, from, to, g)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	stats, err := h.Svc.Stats(c.Request.Context(), userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"range": gin.H{
			"from": from.Format("2006-01-02"),
			"to":   to.AddDate(0, 0, -1).Format("2006-01-02"),
		},
		"granularity": g,
		"summaries":   out,
		"stats":       stats,
	})
}

// GET /analytics/today
func (h *AnalyticsController) GetToday(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	out, err := h.Svc.Today(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /analytics/trends
func (h *AnalyticsController) GetTrends(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	byDay, err := h.Svc.DayOfWeekAverages(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	byHour, err := h.Svc.HourlyAverages(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"day_of_week": byDay,
		"hourly":      byHour,
	})
}

// GET /analytics/charts: renderable chart descriptors for the dashboard.
func (h *AnalyticsController) GetCharts(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	ctx := c.Request.Context()

	daily, err := h.Svc.LastNDays(ctx, userID, 7)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	weekly, err := h.Svc.Summarize(ctx, userID, now.AddDate(0, 0, -28), now, services.GranularityWeek)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	byDay, err := h.Svc.DayOfWeekAverages(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	byHour, err := h.Svc.HourlyAverages(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"daily":       services.DailyTotalsChart(daily),
		"weekly":      services.WeeklyTotalsChart(weekly),
		"day_of_week": services.DayOfWeekChart(byDay),
		"hourly":      services.HourlyChart(byHour),
	})
}
