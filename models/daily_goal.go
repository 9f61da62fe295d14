package models

import (
	"gorm.io/gorm"
)

// DailyGoal holds each user’s daily water-intake target.
type DailyGoal struct {
	gorm.Model
	UserID   uint    `gorm:"index;not null"`
	TargetML float64 // e.g. 2000 ml
}
