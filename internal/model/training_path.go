package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	PathStatusActive    = "active"
	PathStatusCompleted = "completed"
	PathStatusCancelled = "cancelled"

	PlannedStatusPending   = "pending"
	PlannedStatusCompleted = "completed"
)

// TrainingPath schedules a candidate's planned attempts (typically a
// positionnement followed by an evaluation) against one test. Only the
// session engine mutates it once created; candidates never touch it directly.
type TrainingPath struct {
	ID             uint             `gorm:"primarykey" json:"id"`
	OrganizationID uint             `json:"organization_id" gorm:"not null;index"`
	TestID         uint             `json:"test_id" gorm:"not null;index"`
	TestTitle      string           `json:"test_title"`
	CandidateName  string           `json:"candidate_name" gorm:"not null"`
	CandidateEmail string           `json:"candidate_email" gorm:"not null;index"` // stored lower-cased
	Sessions       []PlannedSession `json:"sessions,omitempty" gorm:"foreignKey:TrainingPathID"`
	Status         string           `json:"status" gorm:"not null;default:'active'"`
	ShareToken     string           `json:"share_token" gorm:"uniqueIndex"`
	CreatedBy      string           `json:"created_by"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	DeletedAt      gorm.DeletedAt   `gorm:"index" json:"-"`
}

// PlannedSession is one scheduled slot within a training path, pending until
// satisfied by a submission of the matching session type.
type PlannedSession struct {
	ID             uint       `gorm:"primarykey" json:"id"`
	TrainingPathID uint       `json:"training_path_id" gorm:"not null;index"`
	Position       int        `json:"position" gorm:"not null"`
	Type           string     `json:"type" gorm:"not null"`
	ScheduledDate  time.Time  `json:"scheduled_date"`
	Status         string     `json:"status" gorm:"not null;default:'pending'"`
	SubmissionID   *uint      `json:"submission_id,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
