package models

import (
    "time"

    "gorm.io/gorm"
)

// Weight is a single daily weigh-in. Date is normalized to local midnight
// before persisting, so the unique index doubles as the one-entry-per-day
// rule at the store level.
type Weight struct {
    gorm.Model
    UserID uint      `json:"userId" gorm:"index;not null;uniqueIndex:idx_weight_user_day"`
    Date   time.Time `json:"date" gorm:"not null;uniqueIndex:idx_weight_user_day"`
    Value  float64   `json:"value" gorm:"not null"`
}
