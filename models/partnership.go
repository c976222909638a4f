package models

import (
    "gorm.io/gorm"
)

const (
    PartnershipPending  = "PENDING"
    PartnershipAccepted = "ACCEPTED"
)

// Partnership links a requester (UserID) to a recipient (PartnerID).
// Rejecting a pending request or removing an accepted partnership deletes
// the row; only PENDING and ACCEPTED are ever stored.
type Partnership struct {
    gorm.Model
    UserID    uint   `json:"userId" gorm:"index;not null"`
    PartnerID uint   `json:"partnerId" gorm:"index;not null"`
    Status    string `json:"status" gorm:"not null;default:'PENDING'"`

    User    User `json:"user" gorm:"foreignKey:UserID"`
    Partner User `json:"partner" gorm:"foreignKey:PartnerID"`
}
