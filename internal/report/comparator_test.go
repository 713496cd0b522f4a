package report

import (
	"testing"

	"github.com/imilab/chartme/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questions(correct ...int) []model.Question {
	qs := make([]model.Question, len(correct))
	for i, c := range correct {
		qs[i] = model.Question{
			Position:      i,
			Prompt:        "q",
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: c,
		}
	}
	return qs
}

func submission(answers []int, score int) *model.Submission {
	return &model.Submission{
		Answers:        answers,
		Score:          score,
		TotalQuestions: len(answers),
	}
}

func TestCompare_Classification(t *testing.T) {
	qs := questions(0, 1, 2, 3)
	// q0: wrong -> right (improved), q1: right -> wrong (regressed),
	// q2: right both (same), q3: wrong both (same).
	pos := submission([]int{1, 1, 2, 0}, 2)
	eval := submission([]int{0, 0, 2, 1}, 2)

	cmp, err := Compare(qs, pos, eval)
	require.NoError(t, err)

	assert.Equal(t, Improved, cmp.Questions[0].Improvement)
	assert.Equal(t, Regressed, cmp.Questions[1].Improvement)
	assert.Equal(t, Same, cmp.Questions[2].Improvement)
	assert.Equal(t, Same, cmp.Questions[3].Improvement, "incorrect both times counts as same")

	assert.Equal(t, 1, cmp.ImprovedCount)
	assert.Equal(t, 1, cmp.RegressedCount)
	assert.Equal(t, 2, cmp.SameCount)
	assert.Equal(t, len(qs), cmp.ImprovedCount+cmp.RegressedCount+cmp.SameCount)
	assert.Equal(t, 0, cmp.Delta)
}

func TestCompare_ImprovedImpliesCorrectnessFlip(t *testing.T) {
	qs := questions(0, 1, 2)
	pos := submission([]int{1, 1, 0}, 1)
	eval := submission([]int{0, 1, 2}, 3)

	cmp, err := Compare(qs, pos, eval)
	require.NoError(t, err)

	for _, q := range cmp.Questions {
		switch q.Improvement {
		case Improved:
			assert.False(t, q.PositionnementCorrect)
			assert.True(t, q.EvaluationCorrect)
		case Regressed:
			assert.True(t, q.PositionnementCorrect)
			assert.False(t, q.EvaluationCorrect)
		case Same:
			assert.Equal(t, q.PositionnementCorrect, q.EvaluationCorrect)
		}
	}
}

func TestCompare_DeltaIsDifferenceOfRoundedPercents(t *testing.T) {
	qs := questions(0, 1, 2)
	pos := submission([]int{0, 0, 0}, 1)  // 1/3 -> 33%
	eval := submission([]int{0, 1, 0}, 2) // 2/3 -> 67%

	cmp, err := Compare(qs, pos, eval)
	require.NoError(t, err)
	assert.Equal(t, 33, cmp.PositionnementPercent)
	assert.Equal(t, 67, cmp.EvaluationPercent)
	assert.Equal(t, 34, cmp.Delta)
}

func TestCompare_NegativeDelta(t *testing.T) {
	qs := questions(0, 1)
	pos := submission([]int{0, 1}, 2)
	eval := submission([]int{1, 0}, 0)

	cmp, err := Compare(qs, pos, eval)
	require.NoError(t, err)
	assert.Equal(t, -100, cmp.Delta)
}

func TestCompare_SentinelAnswersAreIncorrect(t *testing.T) {
	qs := questions(0, 1)
	pos := submission([]int{-1, -1}, 0) // timed out without answering
	eval := submission([]int{0, 1}, 2)

	cmp, err := Compare(qs, pos, eval)
	require.NoError(t, err)
	assert.Equal(t, 2, cmp.ImprovedCount)
}

func TestCompare_InputGuards(t *testing.T) {
	qs := questions(0, 1)

	_, err := Compare(qs, nil, submission([]int{0, 1}, 2))
	assert.Error(t, err)

	_, err = Compare(qs, submission([]int{0}, 1), submission([]int{0, 1}, 2))
	assert.Error(t, err)
}
