// services/goal_service.go
package services

import (
	"errors"

	"github.com/bhavesharora02/Euron-Water-Supply/config"
	"github.com/bhavesharora02/Euron-Water-Supply/models"
	"github.com/bhavesharora02/Euron-Water-Supply/utils"

	"gorm.io/gorm"
)

var ErrInvalidGoal = errors.New("target_ml must be positive")

// GetGoal returns the user's goal row, or nil when none is set.
func GetGoal(userID uint) (*models.DailyGoal, error) {
	var goal models.DailyGoal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &goal, nil
}

func UpsertGoal(userID uint, targetML float64) (*models.DailyGoal, error) {
	if targetML <= 0 {
		return nil, ErrInvalidGoal
	}

	var goal models.DailyGoal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.DailyGoal{UserID: userID, TargetML: targetML}
		if err := config.DB.Create(&goal).Error; err != nil {
			return nil, err
		}
		return &goal, nil
	}
	if err != nil {
		return nil, err
	}

	goal.TargetML = targetML
	if err := config.DB.Save(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// GoalTargetML resolves the effective daily target: explicit goal row, else a
// weight-derived recommendation, else the configured default.
func GoalTargetML(userID uint) float64 {
	if config.DB == nil {
		return config.DefaultGoalML()
	}

	goal, err := GetGoal(userID)
	if err == nil && goal != nil && goal.TargetML > 0 {
		return goal.TargetML
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err == nil && user.WeightKg > 0 {
		if ml, err := utils.RecommendedIntakeML(user.WeightKg); err == nil {
			return ml
		}
	}

	return config.DefaultGoalML()
}
