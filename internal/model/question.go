package model

import (
	"time"

	"gorm.io/gorm"
)

// OptionsPerQuestion is enforced at creation time only; stored questions are
// trusted afterwards.
const OptionsPerQuestion = 4

type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	TestID        uint           `json:"test_id" gorm:"not null;index"`
	Position      int            `json:"position" gorm:"not null"`
	Prompt        string         `json:"prompt" gorm:"type:text;not null"`
	Options       []string       `json:"options" gorm:"serializer:json;type:jsonb;not null"`
	CorrectAnswer int            `json:"correct_answer" gorm:"not null"` // zero-based index into Options
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
