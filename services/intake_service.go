// services/intake_service.go
package services

import (
	"errors"
	"time"

	"github.com/bhavesharora02/Euron-Water-Supply/models"
	"github.com/bhavesharora02/Euron-Water-Supply/utils"

	"gorm.io/gorm"
)

// ErrInvalidVolume rejects non-positive amounts at the service boundary.
var ErrInvalidVolume = errors.New("volume_ml must be positive")

type IntakeService struct {
	db *gorm.DB
}

func NewIntakeService(db *gorm.DB) *IntakeService { return &IntakeService{db: db} }

func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// Log records one intake event. A zero timestamp means "now".
func (s *IntakeService) Log(userID uint, volumeML float64, ts time.Time, note string) (*models.IntakeRecord, error) {
	if volumeML <= 0 {
		return nil, ErrInvalidVolume
	}
	if ts.IsZero() {
		ts = time.Now()
	}

	rec := &models.IntakeRecord{
		UserID:    userID,
		VolumeML:  volumeML,
		Timestamp: ts,
		Note:      note,
	}
	if err := s.db.Create(rec).Error; err != nil {
		return nil, err
	}

	s.afterLog(rec)
	return rec, nil
}

// afterLog fans out realtime events and alerts. Best-effort only; a failure
// here must not fail the write.
func (s *IntakeService) afterLog(rec *models.IntakeRecord) {
	EmitIntakeLogged(rec.UserID, rec)

	total, _, err := s.TotalForDay(rec.UserID, rec.Timestamp)
	if err != nil {
		return
	}
	goal := GoalTargetML(rec.UserID)
	for _, w := range utils.AssessIntake(rec.VolumeML, total, goal) {
		typ := "info"
		if w.Severity != utils.Info {
			typ = "warning"
		}
		EmitAlert(rec.UserID, typ, w.Message)
	}
}

func (s *IntakeService) List(userID uint) ([]models.IntakeRecord, error) {
	var recs []models.IntakeRecord
	err := s.db.
		Where("user_id = ?", userID).
		Order("timestamp ASC").
		Find(&recs).Error
	return recs, err
}

// ListRange returns records with from <= timestamp < to, oldest first.
// An empty range yields an empty slice, not an error.
func (s *IntakeService) ListRange(userID uint, from, to time.Time) ([]models.IntakeRecord, error) {
	var recs []models.IntakeRecord
	err := s.db.
		Where("user_id = ? AND timestamp >= ? AND timestamp < ?", userID, from, to).
		Order("timestamp ASC").
		Find(&recs).Error
	return recs, err
}

func (s *IntakeService) Recent(userID uint, limit int) ([]models.IntakeRecord, error) {
	if limit <= 0 {
		limit = 5
	}
	var recs []models.IntakeRecord
	err := s.db.
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&recs).Error
	return recs, err
}

// Delete removes one record owned by the user. Returns
// gorm.ErrRecordNotFound for a missing or foreign id.
func (s *IntakeService) Delete(userID, id uint) error {
	var rec models.IntakeRecord
	if err := s.db.
		Where("id = ? AND user_id = ?", id, userID).
		First(&rec).Error; err != nil {
		return err
	}
	return s.db.Delete(&rec).Error
}

func (s *IntakeService) Get(userID, id uint) (*models.IntakeRecord, error) {
	var rec models.IntakeRecord
	err := s.db.
		Where("id = ? AND user_id = ?", id, userID).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// TotalForDay sums intake for the calendar day containing t.
func (s *IntakeService) TotalForDay(userID uint, t time.Time) (float64, int, error) {
	start := dayStartLocal(t)
	end := start.Add(24 * time.Hour)

	var row struct {
		Total float64
		N     int
	}
	err := s.db.
		Model(&models.IntakeRecord{}).
		Select("COALESCE(SUM(volume_ml),0) AS total, COUNT(*) AS n").
		Where("user_id = ? AND timestamp >= ? AND timestamp < ?", userID, start, end).
		Scan(&row).Error
	return row.Total, row.N, err
}

func (s *IntakeService) TodayTotal(userID uint) (float64, int, error) {
	return s.TotalForDay(userID, time.Now())
}
