package controllers

import (
	"net/http"
	"strconv"

	"github.com/bhavesharora02/Euron-Water-Supply/services"

	"github.com/gin-gonic/gin"
)

// GET /alerts?limit=20
func ListAlerts(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	alerts, err := services.ListAlerts(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alerts)
}
