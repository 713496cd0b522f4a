// Package report computes the read-only progress comparison between a
// candidate's positionnement and evaluation attempts at the same test.
package report

import (
	"fmt"

	"github.com/imilab/chartme/internal/model"
	"github.com/imilab/chartme/internal/session"
)

const (
	Improved  = "improved"
	Regressed = "regressed"
	Same      = "same"
)

// QuestionComparison classifies one question across the two attempts.
type QuestionComparison struct {
	QuestionIndex         int    `json:"question_index"`
	QuestionText          string `json:"question_text"`
	PositionnementAnswer  int    `json:"positionnement_answer"`
	EvaluationAnswer      int    `json:"evaluation_answer"`
	CorrectAnswer         int    `json:"correct_answer"`
	PositionnementCorrect bool   `json:"positionnement_correct"`
	EvaluationCorrect     bool   `json:"evaluation_correct"`
	Improvement           string `json:"improvement"`
}

// Comparison is the full report: one row per question plus aggregates.
// Delta is the percentage-point difference between the two attempts' rounded
// overall scores and may be negative.
type Comparison struct {
	Questions             []QuestionComparison `json:"questions"`
	ImprovedCount         int                  `json:"improved_count"`
	RegressedCount        int                  `json:"regressed_count"`
	SameCount             int                  `json:"same_count"`
	PositionnementPercent int                  `json:"positionnement_percent"`
	EvaluationPercent     int                  `json:"evaluation_percent"`
	Delta                 int                  `json:"delta"`
}

// Compare builds the per-question classification and aggregates for two
// completed submissions against the same question list. Pure and stateless;
// callers must only invoke it when both submissions exist.
func Compare(questions []model.Question, positionnement, evaluation *model.Submission) (*Comparison, error) {
	if positionnement == nil || evaluation == nil {
		return nil, fmt.Errorf("both submissions are required")
	}
	if len(positionnement.Answers) != len(questions) || len(evaluation.Answers) != len(questions) {
		return nil, fmt.Errorf("answer count mismatch: %d questions, %d/%d answers",
			len(questions), len(positionnement.Answers), len(evaluation.Answers))
	}

	cmp := &Comparison{
		Questions:             make([]QuestionComparison, 0, len(questions)),
		PositionnementPercent: session.Percent(positionnement.Score, positionnement.TotalQuestions),
		EvaluationPercent:     session.Percent(evaluation.Score, evaluation.TotalQuestions),
	}
	cmp.Delta = cmp.EvaluationPercent - cmp.PositionnementPercent

	for i, q := range questions {
		posAnswer := positionnement.Answers[i]
		evalAnswer := evaluation.Answers[i]
		posCorrect := posAnswer == q.CorrectAnswer
		evalCorrect := evalAnswer == q.CorrectAnswer

		improvement := Same
		switch {
		case !posCorrect && evalCorrect:
			improvement = Improved
			cmp.ImprovedCount++
		case posCorrect && !evalCorrect:
			improvement = Regressed
			cmp.RegressedCount++
		default:
			cmp.SameCount++
		}

		cmp.Questions = append(cmp.Questions, QuestionComparison{
			QuestionIndex:         i,
			QuestionText:          q.Prompt,
			PositionnementAnswer:  posAnswer,
			EvaluationAnswer:      evalAnswer,
			CorrectAnswer:         q.CorrectAnswer,
			PositionnementCorrect: posCorrect,
			EvaluationCorrect:     evalCorrect,
			Improvement:           improvement,
		})
	}
	return cmp, nil
}
