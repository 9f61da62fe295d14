package models

import "time"

// Alert is a hydration notification shown in the app and pushed to devices,
// e.g. "daily goal reached" or "unusually high intake".
type Alert struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index"`
	Type      string    `gorm:"size:20"` // "warning" | "info"
	Message   string    `gorm:"type:text"`
	CreatedAt time.Time
}
