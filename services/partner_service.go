package services

import (
	"errors"

	"github.com/bipan-sh/weight-tracker/config"
	"github.com/bipan-sh/weight-tracker/models"

	"gorm.io/gorm"
)

var (
	ErrPartnershipNotFound = errors.New("partnership not found")
	ErrPartnershipExists   = errors.New("partnership already exists")
	ErrPartnerNotFound     = errors.New("partner user not found")
	ErrSelfPartnership     = errors.New("cannot partner with yourself")
)

// PartnerSummary is an accepted partnership seen from one side: the
// partnership id plus the other party's identity.
type PartnerSummary struct {
	ID        uint   `json:"id"`
	PartnerID uint   `json:"partnerId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

type PartnerWeightEntry struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type PartnerWeights struct {
	PartnerID   uint                 `json:"partnerId"`
	PartnerName string               `json:"partnerName"`
	Weights     []PartnerWeightEntry `json:"weights"`
}

func RequestPartnership(userID, partnerID uint) (*models.Partnership, error) {
	if partnerID == userID {
		return nil, ErrSelfPartnership
	}

	partnership := models.Partnership{
		UserID:    userID,
		PartnerID: partnerID,
		Status:    models.PartnershipPending,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var recipient models.User
		if err := tx.First(&recipient, partnerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPartnerNotFound
			}
			return err
		}

		// One record per unordered pair, regardless of direction or status
		var existing models.Partnership
		err := tx.Where(
			"(user_id = ? AND partner_id = ?) OR (user_id = ? AND partner_id = ?)",
			userID, partnerID, partnerID, userID,
		).First(&existing).Error
		if err == nil {
			return ErrPartnershipExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Create(&partnership).Error
	})
	if err != nil {
		return nil, err
	}
	return &partnership, nil
}

// AcceptPartnership transitions a pending request to ACCEPTED. Only the
// recipient may accept; anyone else gets not-found, same as a missing row.
func AcceptPartnership(partnershipID, userID uint) (*models.Partnership, error) {
	var partnership models.Partnership
	err := config.DB.
		Where("id = ? AND partner_id = ? AND status = ?", partnershipID, userID, models.PartnershipPending).
		First(&partnership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartnershipNotFound
		}
		return nil, err
	}

	partnership.Status = models.PartnershipAccepted
	if err := config.DB.Save(&partnership).Error; err != nil {
		return nil, err
	}
	return &partnership, nil
}

// RejectPartnership deletes a pending request. Recipient only.
func RejectPartnership(partnershipID, userID uint) error {
	var partnership models.Partnership
	err := config.DB.
		Where("id = ? AND partner_id = ? AND status = ?", partnershipID, userID, models.PartnershipPending).
		First(&partnership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPartnershipNotFound
		}
		return err
	}

	return config.DB.Unscoped().Delete(&partnership).Error
}

// RemovePartnership deletes an accepted partnership. Either party may remove.
func RemovePartnership(partnershipID, userID uint) error {
	var partnership models.Partnership
	err := config.DB.
		Where("id = ? AND (user_id = ? OR partner_id = ?) AND status = ?",
			partnershipID, userID, userID, models.PartnershipAccepted).
		First(&partnership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPartnershipNotFound
		}
		return err
	}

	return config.DB.Unscoped().Delete(&partnership).Error
}

// ListPartners returns the accepted partnerships for a user, normalized so
// the other party is exposed regardless of which side sent the request.
func ListPartners(userID uint) ([]PartnerSummary, error) {
	var partnerships []models.Partnership
	err := config.DB.
		Where("(user_id = ? OR partner_id = ?) AND status = ?", userID, userID, models.PartnershipAccepted).
		Preload("User").
		Preload("Partner").
		Find(&partnerships).Error
	if err != nil {
		return nil, err
	}

	partners := make([]PartnerSummary, 0, len(partnerships))
	for _, p := range partnerships {
		other := p.Partner
		if p.PartnerID == userID {
			other = p.User
		}
		partners = append(partners, PartnerSummary{
			ID:        p.ID,
			PartnerID: other.ID,
			Name:      other.Name,
			Email:     other.Email,
		})
	}
	return partners, nil
}

// ListPendingRequests returns requests awaiting the user's decision, each
// carrying the requester's identity.
func ListPendingRequests(userID uint) ([]models.Partnership, error) {
	var requests []models.Partnership
	err := config.DB.
		Where("partner_id = ? AND status = ?", userID, models.PartnershipPending).
		Preload("User").
		Find(&requests).Error
	return requests, err
}

// GetPartnerWeights composes each accepted partner's full weight history
// for the comparison chart. Accepting a partner shares your history; the
// privacy settings record does not gate this view.
func GetPartnerWeights(userID uint) ([]PartnerWeights, error) {
	partners, err := ListPartners(userID)
	if err != nil {
		return nil, err
	}

	result := make([]PartnerWeights, 0, len(partners))
	for _, partner := range partners {
		weights, err := ListWeights(partner.PartnerID)
		if err != nil {
			return nil, err
		}

		entries := make([]PartnerWeightEntry, 0, len(weights))
		for _, w := range weights {
			entries = append(entries, PartnerWeightEntry{
				Date:  w.Date.Format("2006-01-02"),
				Value: w.Value,
			})
		}

		name := partner.Name
		if name == "" {
			name = "Unknown"
		}
		result = append(result, PartnerWeights{
			PartnerID:   partner.PartnerID,
			PartnerName: name,
			Weights:     entries,
		})
	}
	return result, nil
}
