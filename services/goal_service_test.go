package services

import (
	"testing"

	"github.com/bhavesharora02/Euron-Water-Supply/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertGoalRejectsNonPositive(t *testing.T) {
	newTestDB(t)
	_, err := UpsertGoal(1, 0)
	assert.ErrorIs(t, err, ErrInvalidGoal)
}

func TestUpsertGoalCreatesThenUpdates(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "alice@example.com")

	g, err := UpsertGoal(user.ID, 2500)
	require.NoError(t, err)
	assert.Equal(t, 2500.0, g.TargetML)

	g, err = UpsertGoal(user.ID, 3000)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, g.TargetML)

	var n int64
	require.NoError(t, db.Model(&models.DailyGoal{}).Where("user_id = ?", user.ID).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestGoalTargetMLResolution(t *testing.T) {
	db := newTestDB(t)

	// no row, no weight: configured default
	plain := newTestUser(t, db, "plain@example.com")
	assert.Equal(t, 2000.0, GoalTargetML(plain.ID))

	// weight set: 35 ml/kg recommendation
	heavy := &models.User{Email: "heavy@example.com", Password: "x", WeightKg: 80}
	require.NoError(t, db.Create(heavy).Error)
	assert.Equal(t, 2800.0, GoalTargetML(heavy.ID))

	// explicit goal wins over everything
	_, err := UpsertGoal(heavy.ID, 3200)
	require.NoError(t, err)
	assert.Equal(t, 3200.0, GoalTargetML(heavy.ID))
}
