package dto

import "time"

// --- AI generation ---

type GenerateQuestionsDTO struct {
	Topic             string `json:"topic" binding:"required"`
	NumberOfQuestions int    `json:"number_of_questions" binding:"omitempty,min=1,max=50"`
	Difficulty        string `json:"difficulty" binding:"omitempty,oneof=facile moyen difficile"`
}

type GeneratedQuestionDTO struct {
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
}

type GenerateQuestionsResponseDTO struct {
	Questions []GeneratedQuestionDTO `json:"questions"`
}

// --- Tests ---

type QuestionCreateDTO struct {
	Prompt        string   `json:"prompt" binding:"required"`
	Options       []string `json:"options" binding:"required,len=4,dive,required"`
	CorrectAnswer *int     `json:"correct_answer" binding:"required,min=0,max=3"`
}

type TestCreateDTO struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	Topic       string              `json:"topic"`
	Difficulty  string              `json:"difficulty" binding:"omitempty,oneof=facile moyen difficile"`
	Category    *string             `json:"category"`
	TimeLimit   *int                `json:"time_limit" binding:"omitempty,min=1,max=240"`
	CreatedBy   string              `json:"created_by"`
	Questions   []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

type QuestionResponseDTO struct {
	ID            uint     `json:"id"`
	Position      int      `json:"position"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
}

type TestResponseDTO struct {
	ID          uint                  `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Topic       string                `json:"topic,omitempty"`
	Difficulty  string                `json:"difficulty"`
	Category    *string               `json:"category,omitempty"`
	UniqueLink  string                `json:"unique_link"`
	IsActive    bool                  `json:"is_active"`
	TimeLimit   *int                  `json:"time_limit,omitempty"`
	Questions   []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

type TestSummaryDTO struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Difficulty      string    `json:"difficulty"`
	Category        *string   `json:"category,omitempty"`
	UniqueLink      string    `json:"unique_link"`
	IsActive        bool      `json:"is_active"`
	TimeLimit       *int      `json:"time_limit,omitempty"`
	SubmissionCount int       `json:"submission_count"`
	CreatedAt       time.Time `json:"created_at"`
}

type ToggleActiveDTO struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// --- Submissions ---

type SubmissionSummaryDTO struct {
	ID             uint      `json:"id"`
	TestID         uint      `json:"test_id"`
	TestTitle      string    `json:"test_title"`
	CandidateName  string    `json:"candidate_name"`
	CandidateEmail string    `json:"candidate_email"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Percent        int       `json:"percent"`
	SessionType    string    `json:"session_type"`
	CompletedAt    time.Time `json:"completed_at"`
}

type SubmissionDetailDTO struct {
	SubmissionSummaryDTO
	Answers   []int                 `json:"answers"`
	Questions []QuestionResponseDTO `json:"questions,omitempty"`
}

// --- Training paths ---

type TrainingPathCreateDTO struct {
	TestID             uint      `json:"test_id" binding:"required"`
	CandidateName      string    `json:"candidate_name" binding:"required"`
	CandidateEmail     string    `json:"candidate_email" binding:"required,email"`
	PositionnementDate time.Time `json:"positionnement_date" binding:"required"`
	EvaluationDate     time.Time `json:"evaluation_date" binding:"required"`
	CreatedBy          string    `json:"created_by"`
}

type PlannedSessionDTO struct {
	Position      int        `json:"position"`
	Type          string     `json:"type"`
	ScheduledDate time.Time  `json:"scheduled_date"`
	Status        string     `json:"status"`
	SubmissionID  *uint      `json:"submission_id,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

type TrainingPathResponseDTO struct {
	ID             uint                `json:"id"`
	TestID         uint                `json:"test_id"`
	TestTitle      string              `json:"test_title"`
	CandidateName  string              `json:"candidate_name"`
	CandidateEmail string              `json:"candidate_email"`
	Sessions       []PlannedSessionDTO `json:"sessions"`
	Status         string              `json:"status"`
	ShareToken     string              `json:"share_token"`
	CreatedAt      time.Time           `json:"created_at"`
}

// --- Invitations ---

type InvitationCreateDTO struct {
	Email     string `json:"email" binding:"required,email"`
	InvitedBy string `json:"invited_by"`
}

type InvitationResponseDTO struct {
	ID         uint      `json:"id"`
	Email      string    `json:"email"`
	Status     string    `json:"status"`
	InviteLink string    `json:"invite_link"`
	CreatedAt  time.Time `json:"created_at"`
}

// --- Billing ---

type CheckoutCreateDTO struct {
	UserEmail string `json:"user_email" binding:"required,email"`
}

type CheckoutResponseDTO struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

type PortalResponseDTO struct {
	URL string `json:"url"`
}
