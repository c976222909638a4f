package services

import (
	"errors"
	"time"

	"github.com/bipan-sh/weight-tracker/config"
	"github.com/bipan-sh/weight-tracker/models"

	"gorm.io/gorm"
)

var (
	ErrWeightNotFound = errors.New("weight entry not found")
	ErrDuplicateDay   = errors.New("weight already recorded for this day")
)

// dayStartLocal truncates t to local midnight. Every weight entry is stored
// at its day's local midnight so that entries compare equal exactly when
// they fall on the same calendar day.
func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

func CreateWeight(userID uint, value float64, date time.Time) (*models.Weight, error) {
	day := dayStartLocal(date)

	weight := models.Weight{
		UserID: userID,
		Date:   day,
		Value:  value,
	}

	// Check-and-insert in one transaction; the (user_id, date) unique index
	// backstops concurrent creates that race past the check.
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Weight
		err := tx.Where("user_id = ? AND date = ?", userID, day).First(&existing).Error
		if err == nil {
			return ErrDuplicateDay
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&weight).Error
	})
	if err != nil {
		return nil, err
	}
	return &weight, nil
}

func UpdateWeight(userID, weightID uint, value float64, date time.Time) (*models.Weight, error) {
	day := dayStartLocal(date)

	var weight models.Weight
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", weightID, userID).First(&weight).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrWeightNotFound
			}
			return err
		}

		var conflicting models.Weight
		err := tx.Where("user_id = ? AND date = ? AND id <> ?", userID, day, weightID).First(&conflicting).Error
		if err == nil {
			return ErrDuplicateDay
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		weight.Value = value
		weight.Date = day
		return tx.Save(&weight).Error
	})
	if err != nil {
		return nil, err
	}
	return &weight, nil
}

func DeleteWeight(userID, weightID uint) error {
	var weight models.Weight
	err := config.DB.Where("id = ? AND user_id = ?", weightID, userID).First(&weight).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWeightNotFound
		}
		return err
	}

	// Hard delete so the day slot can be reused
	return config.DB.Unscoped().Delete(&weight).Error
}

func ListWeights(userID uint) ([]models.Weight, error) {
	var weights []models.Weight
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&weights).Error
	return weights, err
}

// LatestWeight returns the most recent entry, or nil when the user has none.
func LatestWeight(userID uint) (*models.Weight, error) {
	var weight models.Weight
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date desc").
		First(&weight).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &weight, nil
}
