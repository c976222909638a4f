package services

import (
	"errors"
	"math"
	"time"

	"github.com/bipan-sh/weight-tracker/config"
	"github.com/bipan-sh/weight-tracker/models"

	"gorm.io/gorm"
)

var (
	ErrGoalNotFound     = errors.New("goal not found")
	ErrActiveGoalExists = errors.New("an active goal already exists")
)

// GoalUpdate carries the optional fields of a partial goal update; nil
// fields are left unchanged.
type GoalUpdate struct {
	TargetWeight *float64
	TargetDate   *time.Time
	Achieved     *bool
}

func CreateGoal(userID uint, startWeight, targetWeight float64, targetDate time.Time) (*models.Goal, error) {
	goal := models.Goal{
		UserID:       userID,
		StartWeight:  startWeight,
		TargetWeight: targetWeight,
		TargetDate:   targetDate,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Goal
		err := tx.Where("user_id = ? AND achieved = ?", userID, false).First(&existing).Error
		if err == nil {
			return ErrActiveGoalExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&goal).Error
	})
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func GetGoal(userID, goalID uint) (*models.Goal, error) {
	var goal models.Goal
	err := config.DB.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return &goal, nil
}

func UpdateGoal(userID, goalID uint, upd GoalUpdate) (*models.Goal, error) {
	goal, err := GetGoal(userID, goalID)
	if err != nil {
		return nil, err
	}

	if upd.TargetWeight != nil {
		goal.TargetWeight = *upd.TargetWeight
	}
	if upd.TargetDate != nil {
		goal.TargetDate = *upd.TargetDate
	}
	if upd.Achieved != nil {
		goal.Achieved = *upd.Achieved
	}

	if err := config.DB.Save(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

func DeleteGoal(userID, goalID uint) error {
	goal, err := GetGoal(userID, goalID)
	if err != nil {
		return err
	}
	return config.DB.Unscoped().Delete(goal).Error
}

func ListGoals(userID uint) ([]models.Goal, error) {
	var goals []models.Goal
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&goals).Error
	return goals, err
}

// GoalProgress returns how far current has moved from start towards target,
// as a whole percentage clamped to [0, 100]. A goal whose start equals its
// target is complete only when current sits exactly on it.
func GoalProgress(current, start, target float64) int {
	if start == target {
		if current == target {
			return 100
		}
		return 0
	}

	p := math.Round((current - start) / (target - start) * 100)
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return int(p)
}
