package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	SessionTypePositionnement = "positionnement"
	SessionTypeEvaluation     = "evaluation"
	SessionTypeLibre          = "libre"
)

// Submission is one candidate's scored attempt at a test. Created exactly once
// per completed session, never updated or deleted through normal flow.
// Answers is parallel to the test's question list; -1 marks a question left
// unanswered, which is only possible via the timed auto-submit path.
type Submission struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	OrganizationID uint           `json:"organization_id" gorm:"not null;index"`
	TestID         uint           `json:"test_id" gorm:"not null;index"`
	TestTitle      string         `json:"test_title"`
	CandidateName  string         `json:"candidate_name" gorm:"not null"`
	CandidateEmail string         `json:"candidate_email" gorm:"not null"`
	Answers        []int          `json:"answers" gorm:"serializer:json;type:jsonb;not null"`
	Score          int            `json:"score" gorm:"not null"`
	TotalQuestions int            `json:"total_questions" gorm:"not null"`
	SessionType    string         `json:"session_type" gorm:"not null;default:'libre'"`
	TrainingPathID *uint          `json:"training_path_id,omitempty" gorm:"index"`
	CompletedAt    time.Time      `json:"completed_at"`
	CreatedAt      time.Time      `json:"created_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
