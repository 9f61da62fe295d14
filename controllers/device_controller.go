package controllers

import (
	"net/http"

	"github.com/bhavesharora02/Euron-Water-Supply/config"
	"github.com/bhavesharora02/Euron-Water-Supply/services"

	"github.com/gin-gonic/gin"
)

type DeviceController struct {
	Push *services.PushService
}

func NewDeviceController(ps *services.PushService) *DeviceController {
	return &DeviceController{Push: ps}
}

// POST /devices: register a device for hydration reminders.
func (dc *DeviceController) Register(c *gin.Context) {
	uid := c.GetUint("userID")

	var req services.RegisterDeviceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dev, err := dc.Push.RegisterDevice(uid, req.Platform, req.Token)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"endpoint_arn": dev.EndpointARN})
}

// POST /devices/remind: trigger a hydration reminder push for this user.
func (dc *DeviceController) Remind(c *gin.Context) {
	uid := c.GetUint("userID")

	// remaining amount is best-effort; the reminder still goes out without it
	remaining := 0.0
	analytics := services.NewAnalyticsService(config.DB)
	if today, err := analytics.Today(c.Request.Context(), uid); err == nil {
		remaining = today.RemainingML
	}

	dc.Push.SendHydrationReminder(uid, remaining)
	c.JSON(http.StatusOK, gin.H{"message": "reminder sent"})
}
