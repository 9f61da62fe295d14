package config

import (
	"log"
	"os"
	"strconv"

	"github.com/bhavesharora02/Euron-Water-Supply/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

var DB *gorm.DB

// FallbackGoalML matches the default goal the dashboard was built around.
const FallbackGoalML = 2000

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	path := os.Getenv("WATER_DB_PATH")
	if path == "" {
		path = "water_tracker.db"
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open database %s: %v", path, err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.IntakeRecord{},
		&models.DailyGoal{},
		&models.Alert{},
		&models.UserDevice{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

// DefaultGoalML returns the configured daily goal used when a user has no
// goal row and no weight on file.
func DefaultGoalML() float64 {
	if v := os.Getenv("DEFAULT_GOAL_ML"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
	}
	return FallbackGoalML
}
