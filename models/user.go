package models

import (
    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    Name         string `json:"name"`
    Email        string `json:"email" gorm:"uniqueIndex;not null"`
    Password     string `json:"-" gorm:"not null"`
    IsFirstLogin bool   `json:"isFirstLogin" gorm:"default:true"`

    Weights []Weight `json:"-"`
    Goals   []Goal   `json:"-"`
}
