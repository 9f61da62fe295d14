package controllers

import (
	"net/http"

	"github.com/bhavesharora02/Euron-Water-Supply/config"
	"github.com/bhavesharora02/Euron-Water-Supply/services"

	"github.com/gin-gonic/gin"
)

// GET /advisor/feedback: on-demand AI commentary. Always answers 200; a
// failed model call degrades to a canned message.
func GetFeedback(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	ctx := c.Request.Context()

	analytics := services.NewAnalyticsService(config.DB)
	today, err := analytics.Today(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	week, err := analytics.LastNDays(ctx, userID, 7)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	advisor := services.NewAdvisorService(services.NewHFGenerator())
	feedback := advisor.Feedback(ctx, today, week)

	c.JSON(http.StatusOK, gin.H{
		"feedback":       feedback,
		"today_total_ml": today.ConsumedML,
		"goal_ml":        today.GoalML,
	})
}
