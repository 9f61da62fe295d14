package models

import (
	"time"

	"gorm.io/gorm"
)

// One logged water-consumption event. Rows are append-mostly; deletes only
// happen through an explicit user action.
type IntakeRecord struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null"`
	VolumeML  float64   `gorm:"not null"` // always > 0, enforced by the service
	Timestamp time.Time `gorm:"index;not null"`
	Note      string
}

func (IntakeRecord) TableName() string { return "water_intake" }
