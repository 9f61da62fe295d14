package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bhavesharora02/Euron-Water-Supply/config"
	"github.com/bhavesharora02/Euron-Water-Supply/models"
	"github.com/bhavesharora02/Euron-Water-Supply/utils"

	"gorm.io/gorm"
)

type ProfileInput struct {
	FullName   string   `json:"full_name"`
	WeightKg   *float64 `json:"weight_kg"`
	MFAEnabled *bool    `json:"mfa_enabled"`
}

func GetUserProfile(email string) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	profile := map[string]interface{}{
		"email":       user.Email,
		"full_name":   user.FullName,
		"weight_kg":   user.WeightKg,
		"mfa_enabled": user.MFAEnabled,
		"goal_ml":     GoalTargetML(user.ID),
	}
	if user.WeightKg > 0 {
		if ml, err := utils.RecommendedIntakeML(user.WeightKg); err == nil {
			profile["recommended_ml"] = ml
		}
	}
	return profile, nil
}

func UpdateUserProfile(email string, input ProfileInput) error {
	var user models.User
	if err := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user).Error; err != nil {
		return errors.New("user not found or disabled")
	}

	if name := strings.TrimSpace(input.FullName); name != "" {
		user.FullName = name
	}
	if input.WeightKg != nil {
		if *input.WeightKg < 0 {
			return fmt.Errorf("weight_kg must not be negative")
		}
		user.WeightKg = *input.WeightKg
	}
	if input.MFAEnabled != nil {
		user.MFAEnabled = *input.MFAEnabled
	}

	return config.DB.Save(&user).Error
}

// FindOrCreateDashboardUser backs the dashboard's free-text user box: the
// handle doubles as a passwordless account so the page works without a login.
func FindOrCreateDashboardUser(handle string) (*models.User, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		handle = "user123"
	}

	var user models.User
	err := config.DB.Where("email = ?", handle).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = models.User{Email: handle, Password: "", FullName: handle}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
