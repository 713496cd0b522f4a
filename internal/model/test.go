package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	DifficultyFacile    = "facile"
	DifficultyMoyen     = "moyen"
	DifficultyDifficile = "difficile"
)

// Test is a published set of multiple-choice questions. Once a test has
// collected submissions its questions are never mutated in place; admins can
// only toggle IsActive or duplicate it into a fresh, inactive copy.
type Test struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	OrganizationID uint           `json:"organization_id" gorm:"not null;index"`
	Title          string         `json:"title" gorm:"not null"`
	Description    string         `json:"description,omitempty"`
	Topic          string         `json:"topic,omitempty"`
	Difficulty     string         `json:"difficulty" gorm:"not null;default:'moyen'"`
	Category       *string        `json:"category,omitempty"`
	UniqueLink     string         `json:"unique_link" gorm:"not null;uniqueIndex"`
	IsActive       bool           `json:"is_active" gorm:"not null;default:true"`
	TimeLimit      *int           `json:"time_limit,omitempty"` // minutes
	CreatedBy      string         `json:"created_by"`
	Questions      []Question     `json:"questions,omitempty" gorm:"foreignKey:TestID"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
