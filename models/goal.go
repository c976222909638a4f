package models

import (
    "time"

    "gorm.io/gorm"
)

type Goal struct {
    gorm.Model
    UserID       uint      `json:"userId" gorm:"index;not null"`
    StartWeight  float64   `json:"startWeight" gorm:"not null"`
    TargetWeight float64   `json:"targetWeight" gorm:"not null"`
    TargetDate   time.Time `json:"targetDate" gorm:"not null"`
    Achieved     bool      `json:"achieved" gorm:"default:false"`
}
