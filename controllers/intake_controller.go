// controllers/intake_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/bhavesharora02/Euron-Water-Supply/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type IntakeController struct {
	Svc *services.IntakeService
}

func NewIntakeController(svc *services.IntakeService) *IntakeController {
	return &IntakeController{Svc: svc}
}

type LogIntakeRequest struct {
	VolumeML  float64 `json:"volume_ml" binding:"required"`
	Timestamp string  `json:"timestamp"` // RFC3339 or "2006-01-02 15:04", optional
	Note      string  `json:"note"`
}

func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02 15:04", s, time.Local)
}

// POST /intake
func (h *IntakeController) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req LogIntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ts, err := parseTimestamp(req.Timestamp)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid timestamp format"})
		return
	}

	rec, err := h.Svc.Log(userID, req.VolumeML, ts, req.Note)
	if err != nil {
		if errors.Is(err, services.ErrInvalidVolume) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save intake, try again"})
		return
	}

	c.JSON(http.StatusCreated, rec)
}

// GET /intake?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *IntakeController) List(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if c.Query("from") == "" && c.Query("to") == "" {
		recs, err := h.Svc.List(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, recs)
		return
	}

	// open ends default to a wide window
	from, to, err := parseDateRange(c,
		time.Date(2000, 1, 1, 0, 0, 0, 0, time.Local),
		time.Now().AddDate(1, 0, 0),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	recs, err := h.Svc.ListRange(userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recs)
}

// GET /intake/recent?limit=5
func (h *IntakeController) Recent(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	recs, err := h.Svc.Recent(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recs)
}

// DELETE /intake/:id
func (h *IntakeController) Delete(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.Svc.Delete(userID, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
