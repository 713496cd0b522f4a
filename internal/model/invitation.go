package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
)

type Invitation struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	Email            string         `json:"email" gorm:"not null;index"`
	OrganizationID   uint           `json:"organization_id" gorm:"not null;index"`
	OrganizationName string         `json:"organization_name"`
	InvitedBy        string         `json:"invited_by"`
	Token            string         `json:"token" gorm:"not null;uniqueIndex"`
	Status           string         `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
