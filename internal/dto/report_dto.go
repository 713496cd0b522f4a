package dto

import "github.com/imilab/chartme/internal/report"

// ReportDTO is the public progress report resolved by share token. When
// either attempt is still missing, Comparison is nil and AwaitingCompletion
// is true; the comparator is never invoked with a missing submission.
type ReportDTO struct {
	TestTitle          string                `json:"test_title"`
	CandidateName      string                `json:"candidate_name"`
	CandidateEmail     string                `json:"candidate_email"`
	Status             string                `json:"status"`
	Sessions           []PlannedSessionDTO   `json:"sessions"`
	Positionnement     *SubmissionSummaryDTO `json:"positionnement,omitempty"`
	Evaluation         *SubmissionSummaryDTO `json:"evaluation,omitempty"`
	Comparison         *report.Comparison    `json:"comparison,omitempty"`
	AwaitingCompletion bool                  `json:"awaiting_completion"`
}
