package services

import (
	"errors"
	"strings"

	"github.com/bipan-sh/weight-tracker/config"
	"github.com/bipan-sh/weight-tracker/models"
	"github.com/bipan-sh/weight-tracker/utils"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("user with this email already exists")
)

type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RegisterUser creates the user together with its default privacy settings
// in one transaction. The email uniqueness check is backstopped by the
// unique index on users.email.
func RegisterUser(name, email, password string) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         name,
		Email:        email,
		Password:     hashedPassword,
		IsFirstLogin: true,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.Where("email = ?", email).First(&existing).Error
		if err == nil {
			return ErrEmailTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.PrivacySettings{UserID: user.ID}).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := config.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func GetUser(userID uint) (*models.User, error) {
	var user models.User
	err := config.DB.First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func SetFirstLogin(userID uint, isFirstLogin bool) (*models.User, error) {
	user, err := GetUser(userID)
	if err != nil {
		return nil, err
	}

	user.IsFirstLogin = isFirstLogin
	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// SearchUsers matches name or email case-insensitively, excluding the
// caller. Results are capped at 10.
func SearchUsers(userID uint, query string) ([]UserSummary, error) {
	users := []UserSummary{}
	if strings.TrimSpace(query) == "" {
		return users, nil
	}

	pattern := "%" + strings.ToLower(query) + "%"
	err := config.DB.
		Model(&models.User{}).
		Where("(LOWER(name) LIKE ? OR LOWER(email) LIKE ?) AND id <> ?", pattern, pattern, userID).
		Limit(10).
		Find(&users).Error
	return users, err
}

// AvailableUsers lists users the caller could send a partner request to:
// everyone except the caller and anyone already linked to them by a
// partnership in any status.
func AvailableUsers(userID uint) ([]UserSummary, error) {
	var partnerships []models.Partnership
	err := config.DB.
		Where("user_id = ? OR partner_id = ?", userID, userID).
		Find(&partnerships).Error
	if err != nil {
		return nil, err
	}

	excluded := []uint{userID}
	for _, p := range partnerships {
		excluded = append(excluded, p.UserID, p.PartnerID)
	}

	users := []UserSummary{}
	err = config.DB.
		Model(&models.User{}).
		Where("id NOT IN ?", excluded).
		Order("name asc").
		Find(&users).Error
	return users, err
}

// PrivacyUpdate carries the optional fields of a privacy settings update.
type PrivacyUpdate struct {
	ShareWeight   *bool
	ShareGoals    *bool
	ShareProgress *bool
	PublicProfile *bool
}

func GetPrivacySettings(userID uint) (*models.PrivacySettings, error) {
	settings := models.PrivacySettings{UserID: userID}
	err := config.DB.
		Where("user_id = ?", userID).
		FirstOrCreate(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func UpdatePrivacySettings(userID uint, upd PrivacyUpdate) (*models.PrivacySettings, error) {
	settings, err := GetPrivacySettings(userID)
	if err != nil {
		return nil, err
	}

	if upd.ShareWeight != nil {
		settings.ShareWeight = *upd.ShareWeight
	}
	if upd.ShareGoals != nil {
		settings.ShareGoals = *upd.ShareGoals
	}
	if upd.ShareProgress != nil {
		settings.ShareProgress = *upd.ShareProgress
	}
	if upd.PublicProfile != nil {
		settings.PublicProfile = *upd.PublicProfile
	}

	if err := config.DB.Save(settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}
