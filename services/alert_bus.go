package services

import (
	"fmt"
	"time"

	"github.com/bhavesharora02/Euron-Water-Supply/models"

	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_alert = alertDeps{db: db, rt: rt, ps: ps}
}

// EmitAlert persists a hydration alert and fans it out to websocket clients
// and push devices. Safe to call anywhere, including before init.
func EmitAlert(userID uint, typ, message string) {
	if _alert.db == nil {
		return
	}
	a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.Broadcast(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	if _alert.ps != nil {
		_alert.ps.PushToUser(userID, "Hydration Alert", message, map[string]string{
			"type": typ, "alertId": fmt.Sprintf("%d", a.ID),
		})
	}
}

// EmitIntakeLogged notifies connected dashboards that a new entry landed so
// they can refresh without polling.
func EmitIntakeLogged(userID uint, rec *models.IntakeRecord) {
	if _alert.rt == nil {
		return
	}
	_alert.rt.Broadcast(userID, map[string]any{
		"kind":   "intake.logged",
		"record": rec,
	})
}

func ListAlerts(userID uint, limit int) ([]models.Alert, error) {
	if limit <= 0 {
		limit = 20
	}
	var alerts []models.Alert
	err := _alert.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&alerts).Error
	return alerts, err
}
