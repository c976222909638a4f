package models

import (
    "gorm.io/gorm"
)

// PrivacySettings is created with every signup, all flags off.
type PrivacySettings struct {
    gorm.Model
    UserID        uint `json:"userId" gorm:"uniqueIndex;not null"`
    ShareWeight   bool `json:"shareWeight" gorm:"default:false"`
    ShareGoals    bool `json:"shareGoals" gorm:"default:false"`
    ShareProgress bool `json:"shareProgress" gorm:"default:false"`
    PublicProfile bool `json:"publicProfile" gorm:"default:false"`
}
