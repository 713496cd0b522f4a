package dto

// Public DTOs never expose correct answers: candidates only ever see
// prompts and options.

type PublicQuestionDTO struct {
	Position int      `json:"position"`
	Prompt   string   `json:"prompt"`
	Options  []string `json:"options"`
}

type PublicTestDTO struct {
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Difficulty    string `json:"difficulty"`
	QuestionCount int    `json:"question_count"`
	TimeLimit     *int   `json:"time_limit,omitempty"`
}

type SessionStartDTO struct {
	CandidateName  string `json:"candidate_name" binding:"required"`
	CandidateEmail string `json:"candidate_email" binding:"required"`
}

type SessionAnswerDTO struct {
	Option *int `json:"option" binding:"required"`
}

type SessionJumpDTO struct {
	Index *int `json:"index" binding:"required"`
}

// SessionStateDTO is returned after every session operation so a client can
// re-render from scratch. RemainingSeconds is nil for untimed tests.
type SessionStateDTO struct {
	Token            string             `json:"token"`
	Phase            string             `json:"phase"`
	Cursor           int                `json:"cursor"`
	QuestionCount    int                `json:"question_count"`
	Question         *PublicQuestionDTO `json:"question,omitempty"`
	Answers          []int              `json:"answers"`
	RemainingSeconds *int               `json:"remaining_seconds,omitempty"`
	SessionType      string             `json:"session_type"`
}

type SessionResultDTO struct {
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	Percent        int    `json:"percent"`
	SessionType    string `json:"session_type"`
}

type AcceptInvitationDTO struct {
	DisplayName string `json:"display_name" binding:"required"`
}
