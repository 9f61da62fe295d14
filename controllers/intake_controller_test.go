package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bhavesharora02/Euron-Water-Supply/config"
	"github.com/bhavesharora02/Euron-Water-Supply/models"
	"github.com/bhavesharora02/Euron-Water-Supply/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupIntakeRouter(t *testing.T) (*gin.Engine, *models.User) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.IntakeRecord{}, &models.DailyGoal{},
		&models.Alert{}, &models.UserDevice{},
	))

	prev := config.DB
	config.DB = db
	services.InitAlertDeps(db, nil, nil)
	t.Cleanup(func() {
		config.DB = prev
		services.InitAlertDeps(prev, nil, nil)
	})

	user := &models.User{Email: "alice@example.com", Password: "x"}
	require.NoError(t, db.Create(user).Error)

	ctrl := NewIntakeController(services.NewIntakeService(db))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", user.ID)
		c.Set("email", user.Email)
	})
	r.POST("/intake", ctrl.Create)
	r.GET("/intake", ctrl.List)
	r.GET("/intake/recent", ctrl.Recent)
	r.DELETE("/intake/:id", ctrl.Delete)
	return r, user
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateIntake(t *testing.T) {
	r, user := setupIntakeRouter(t)

	w := doJSON(t, r, "POST", "/intake", gin.H{
		"volume_ml": 500,
		"timestamp": "2026-03-02 08:00",
		"note":      "morning glass",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var rec models.IntakeRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, user.ID, rec.UserID)
	assert.Equal(t, 500.0, rec.VolumeML)
	assert.Equal(t, "morning glass", rec.Note)
	assert.NotZero(t, rec.ID)
}

func TestCreateIntakeRejectsNonPositiveVolume(t *testing.T) {
	r, _ := setupIntakeRouter(t)

	w := doJSON(t, r, "POST", "/intake", gin.H{"volume_ml": -250})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "volume_ml")
}

func TestCreateIntakeRejectsBadTimestamp(t *testing.T) {
	r, _ := setupIntakeRouter(t)

	w := doJSON(t, r, "POST", "/intake", gin.H{"volume_ml": 500, "timestamp": "yesterday"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "timestamp")
}

func TestListIntakeByRange(t *testing.T) {
	r, _ := setupIntakeRouter(t)

	for _, e := range []gin.H{
		{"volume_ml": 500, "timestamp": "2026-03-02 08:00"},
		{"volume_ml": 700, "timestamp": "2026-03-02 18:00"},
		{"volume_ml": 300, "timestamp": "2026-03-10 10:00"},
	} {
		require.Equal(t, http.StatusCreated, doJSON(t, r, "POST", "/intake", e).Code)
	}

	w := doJSON(t, r, "GET", "/intake?from=2026-03-01&to=2026-03-05", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var recs []models.IntakeRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recs))
	require.Len(t, recs, 2)
	assert.Equal(t, 500.0, recs[0].VolumeML)
	assert.Equal(t, 700.0, recs[1].VolumeML)
}

func TestListIntakeBadDate(t *testing.T) {
	r, _ := setupIntakeRouter(t)
	w := doJSON(t, r, "GET", "/intake?from=03-01-2026", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecentIntake(t *testing.T) {
	r, _ := setupIntakeRouter(t)

	for i := 0; i < 7; i++ {
		body := gin.H{"volume_ml": 100, "timestamp": fmt.Sprintf("2026-03-02 %02d:00", 8+i)}
		require.Equal(t, http.StatusCreated, doJSON(t, r, "POST", "/intake", body).Code)
	}

	w := doJSON(t, r, "GET", "/intake/recent", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var recs []models.IntakeRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recs))
	assert.Len(t, recs, 5)
}

func TestDeleteIntake(t *testing.T) {
	r, _ := setupIntakeRouter(t)

	w := doJSON(t, r, "POST", "/intake", gin.H{"volume_ml": 500})
	require.Equal(t, http.StatusCreated, w.Code)
	var rec models.IntakeRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))

	w = doJSON(t, r, "DELETE", fmt.Sprintf("/intake/%d", rec.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, "DELETE", fmt.Sprintf("/intake/%d", rec.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
