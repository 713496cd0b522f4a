package session

import (
	"testing"

	"github.com/imilab/chartme/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMachine(correct []int, timeLimit *int) *Machine {
	counts := make([]int, len(correct))
	for i := range counts {
		counts[i] = model.OptionsPerQuestion
	}
	return New(Snapshot{
		TestID:         1,
		OrganizationID: 1,
		TestTitle:      "Go basics",
		CorrectAnswers: correct,
		OptionCounts:   counts,
		TimeLimit:      timeLimit,
	})
}

func started(t *testing.T, correct []int, timeLimit *int) *Machine {
	t.Helper()
	m := newMachine(correct, timeLimit)
	require.NoError(t, m.Start("Jean Dupont", "jean@example.com"))
	return m
}

func TestStart_IntakeGuards(t *testing.T) {
	cases := []struct {
		name, candidate, email string
	}{
		{"empty name", "", "jean@example.com"},
		{"empty email", "Jean", ""},
		{"email without at", "Jean", "jean.example.com"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newMachine([]int{0, 1}, nil)
			err := m.Start(tc.candidate, tc.email)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, PhaseIntake, m.Phase(), "rejected intake must not mutate state")
		})
	}
}

func TestStart_LowercasesEmailAndInitsBudget(t *testing.T) {
	limit := 2
	m := newMachine([]int{0, 1, 2}, &limit)
	require.NoError(t, m.Start("Jean", "Jean.Dupont@Example.COM"))

	assert.Equal(t, PhaseInProgress, m.Phase())
	assert.Equal(t, "jean.dupont@example.com", m.CandidateEmail())
	assert.Equal(t, 120, m.Remaining())
	assert.True(t, m.Timed())
}

func TestStart_UntimedHasNoBudget(t *testing.T) {
	m := started(t, []int{0}, nil)
	assert.False(t, m.Timed())
	assert.False(t, m.Tick(), "tick on untimed session is a no-op")
}

func TestStart_Twice(t *testing.T) {
	m := started(t, []int{0}, nil)
	assert.ErrorIs(t, m.Start("Jean", "jean@example.com"), ErrAlreadyStarted)
}

func TestSelectAnswer_OverwritesWithoutAdvancing(t *testing.T) {
	m := started(t, []int{0, 1}, nil)

	require.NoError(t, m.SelectAnswer(2))
	require.NoError(t, m.SelectAnswer(0))
	assert.Equal(t, 0, m.Cursor())
	assert.Equal(t, []int{0, Unanswered}, m.Answers())
}

func TestSelectAnswer_OptionRange(t *testing.T) {
	m := started(t, []int{0}, nil)
	var verr *ValidationError
	assert.ErrorAs(t, m.SelectAnswer(4), &verr)
	assert.ErrorAs(t, m.SelectAnswer(-1), &verr)
}

func TestAdvance_Guards(t *testing.T) {
	m := started(t, []int{0, 1}, nil)

	assert.ErrorIs(t, m.Advance(), ErrNoAnswer)
	require.NoError(t, m.SelectAnswer(1))
	require.NoError(t, m.Advance())
	assert.Equal(t, 1, m.Cursor())

	require.NoError(t, m.SelectAnswer(1))
	assert.ErrorIs(t, m.Advance(), ErrLastQuestion)
}

func TestRetreat_Guards(t *testing.T) {
	m := started(t, []int{0, 1}, nil)

	assert.ErrorIs(t, m.Retreat(), ErrFirstQuestion)
	require.NoError(t, m.SelectAnswer(0))
	require.NoError(t, m.Advance())
	require.NoError(t, m.Retreat())
	assert.Equal(t, 0, m.Cursor())
}

func TestJump_IgnoresAnswerState(t *testing.T) {
	m := started(t, []int{0, 1, 2}, nil)

	require.NoError(t, m.Jump(2), "jump to an unanswered question is always permitted")
	assert.Equal(t, 2, m.Cursor())

	var verr *ValidationError
	assert.ErrorAs(t, m.Jump(3), &verr)
	assert.ErrorAs(t, m.Jump(-1), &verr)
}

func TestSubmit_RejectsWithMissingCount(t *testing.T) {
	m := started(t, []int{0, 1, 2}, nil)
	require.NoError(t, m.SelectAnswer(0))

	_, err := m.Submit()
	var inc *IncompleteError
	require.ErrorAs(t, err, &inc)
	assert.Equal(t, 2, inc.Missing)
	assert.Equal(t, PhaseInProgress, m.Phase(), "rejected submit must not change state")
}

func TestSubmit_ScoresAndRounds(t *testing.T) {
	// Correct answers [0,1,2], candidate answers [0,1,0] -> 2/3 -> 67%.
	m := started(t, []int{0, 1, 2}, nil)
	require.NoError(t, m.SelectAnswer(0))
	require.NoError(t, m.Advance())
	require.NoError(t, m.SelectAnswer(1))
	require.NoError(t, m.Advance())
	require.NoError(t, m.SelectAnswer(0))

	res, err := m.Submit()
	require.NoError(t, err)
	assert.Equal(t, 2, res.Score)
	assert.Equal(t, 3, res.TotalQuestions)
	assert.Equal(t, []int{0, 1, 0}, res.Answers)
	assert.Equal(t, 67, Percent(res.Score, res.TotalQuestions))
	assert.Equal(t, PhaseSubmitted, m.Phase())
}

func TestSubmit_Idempotent(t *testing.T) {
	m := started(t, []int{0}, nil)
	require.NoError(t, m.SelectAnswer(0))

	first, err := m.Submit()
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := m.Submit()
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.Nil(t, second)

	third, err := m.ForceSubmit()
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.Nil(t, third)

	assert.False(t, m.Tick(), "stale tick after submit must be inert")
}

func TestForceSubmit_SentinelsScoreAsIncorrect(t *testing.T) {
	limit := 1
	m := started(t, []int{0, 1, 2}, &limit)
	require.NoError(t, m.SelectAnswer(0)) // only question 1 answered, correctly

	// Drain the one-minute budget.
	expired := false
	for i := 0; i < 60; i++ {
		expired = m.Tick()
	}
	require.True(t, expired)
	assert.Equal(t, 0, m.Remaining())

	res, err := m.ForceSubmit()
	require.NoError(t, err)
	assert.Equal(t, []int{0, Unanswered, Unanswered}, res.Answers)
	assert.Equal(t, 1, res.Score)
	assert.Equal(t, 3, res.TotalQuestions)
}

func TestTick_FiresExactlyOnce(t *testing.T) {
	limit := 1
	m := started(t, []int{0}, &limit)

	fired := 0
	for i := 0; i < 120; i++ {
		if m.Tick() {
			fired++
		}
	}
	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, m.Remaining())
}

func TestAttachTrainingPath(t *testing.T) {
	m := newMachine([]int{0}, nil)
	assert.Equal(t, model.SessionTypeLibre, m.SessionType(), "defaults to libre with no plan")

	m.AttachTrainingPath(7, model.SessionTypePositionnement)
	require.NoError(t, m.Start("Jean", "jean@example.com"))
	require.NoError(t, m.SelectAnswer(0))

	res, err := m.Submit()
	require.NoError(t, err)
	assert.Equal(t, model.SessionTypePositionnement, res.SessionType)
	require.NotNil(t, res.TrainingPathID)
	assert.Equal(t, uint(7), *res.TrainingPathID)
}

func TestPercent_RoundHalfUp(t *testing.T) {
	assert.Equal(t, 67, Percent(2, 3)) // 66.66… rounds up
	assert.Equal(t, 33, Percent(1, 3))
	assert.Equal(t, 50, Percent(1, 2))
	assert.Equal(t, 100, Percent(3, 3))
	assert.Equal(t, 0, Percent(0, 3))
	assert.Equal(t, 0, Percent(0, 0))
	assert.Equal(t, 13, Percent(1, 8)) // 12.5 rounds half up
}
