package session

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/imilab/chartme/internal/model"
)

// Unanswered is the sentinel stored in an answer slot until the candidate
// picks an option. It survives into the persisted submission only through the
// timed auto-submit path, where it scores as incorrect.
const Unanswered = -1

type Phase int

const (
	PhaseIntake Phase = iota
	PhaseInProgress
	PhaseSubmitted
)

func (p Phase) String() string {
	switch p {
	case PhaseIntake:
		return "intake"
	case PhaseInProgress:
		return "in_progress"
	case PhaseSubmitted:
		return "submitted"
	}
	return "unknown"
}

var (
	ErrNotInProgress    = errors.New("session is not in progress")
	ErrAlreadySubmitted = errors.New("session already submitted")
	ErrAlreadyStarted   = errors.New("session already started")
	ErrNoAnswer         = errors.New("current question has no answer yet")
	ErrFirstQuestion    = errors.New("already on the first question")
	ErrLastQuestion     = errors.New("already on the last question")
)

// ValidationError reports a rejected intake or answer input. The machine's
// state is unchanged whenever one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IncompleteError rejects a manual submit while answer slots remain at the
// Unanswered sentinel.
type IncompleteError struct {
	Missing int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%d question(s) unanswered", e.Missing)
}

// Snapshot is the immutable view of a test the machine needs to drive and
// score one attempt. Slices are indexed by question position.
type Snapshot struct {
	TestID         uint
	OrganizationID uint
	TestTitle      string
	TestCreatedBy  string
	CorrectAnswers []int
	OptionCounts   []int
	TimeLimit      *int // minutes; nil means untimed
}

// Machine drives one candidate through one attempt at a test:
// intake -> in_progress -> submitted. The submitted phase is terminal and is
// entered exactly once; every guarded operation leaves state untouched when
// it rejects. The machine itself is not goroutine-safe; the session store
// serializes access to it.
type Machine struct {
	snap Snapshot

	phase          Phase
	candidateName  string
	candidateEmail string
	sessionType    string
	trainingPathID *uint

	cursor    int
	answers   []int
	remaining int // seconds; <0 when untimed
}

func New(snap Snapshot) *Machine {
	answers := make([]int, len(snap.CorrectAnswers))
	for i := range answers {
		answers[i] = Unanswered
	}
	return &Machine{
		snap:        snap,
		phase:       PhaseIntake,
		sessionType: model.SessionTypeLibre,
		answers:     answers,
		remaining:   -1,
	}
}

// Start validates the candidate's intake fields and moves to in_progress.
// The email check is deliberately minimal: presence of '@' only.
func (m *Machine) Start(name, email string) error {
	if m.phase != PhaseIntake {
		return ErrAlreadyStarted
	}
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return &ValidationError{Field: "candidate_name", Reason: "must not be empty"}
	}
	if email == "" {
		return &ValidationError{Field: "candidate_email", Reason: "must not be empty"}
	}
	if !strings.Contains(email, "@") {
		return &ValidationError{Field: "candidate_email", Reason: "must contain '@'"}
	}

	m.candidateName = name
	m.candidateEmail = strings.ToLower(email)
	if m.snap.TimeLimit != nil {
		m.remaining = *m.snap.TimeLimit * 60
	}
	m.phase = PhaseInProgress
	return nil
}

// AttachTrainingPath records which training path this attempt satisfies and
// the session type taken from that path's first pending planned session.
// Called by the service after the active-path lookup at intake.
func (m *Machine) AttachTrainingPath(pathID uint, sessionType string) {
	id := pathID
	m.trainingPathID = &id
	m.sessionType = sessionType
}

// SelectAnswer records an option for the current question without advancing.
// Re-selecting overwrites the previous choice.
func (m *Machine) SelectAnswer(option int) error {
	if m.phase != PhaseInProgress {
		return ErrNotInProgress
	}
	if option < 0 || option >= m.snap.OptionCounts[m.cursor] {
		return &ValidationError{Field: "option", Reason: fmt.Sprintf("index %d out of range", option)}
	}
	m.answers[m.cursor] = option
	return nil
}

// Advance moves to the next question. Rejected while the current question is
// unanswered, and on the last question.
func (m *Machine) Advance() error {
	if m.phase != PhaseInProgress {
		return ErrNotInProgress
	}
	if m.answers[m.cursor] == Unanswered {
		return ErrNoAnswer
	}
	if m.cursor >= len(m.answers)-1 {
		return ErrLastQuestion
	}
	m.cursor++
	return nil
}

func (m *Machine) Retreat() error {
	if m.phase != PhaseInProgress {
		return ErrNotInProgress
	}
	if m.cursor == 0 {
		return ErrFirstQuestion
	}
	m.cursor--
	return nil
}

// Jump moves directly to any valid question index, regardless of the answer
// state at the target. Used by the question-overview picker.
func (m *Machine) Jump(index int) error {
	if m.phase != PhaseInProgress {
		return ErrNotInProgress
	}
	if index < 0 || index >= len(m.answers) {
		return &ValidationError{Field: "index", Reason: fmt.Sprintf("question index %d out of range", index)}
	}
	m.cursor = index
	return nil
}

// Submit finalizes the attempt. Every slot must be answered; otherwise the
// call is rejected with the count of missing answers and no state change.
func (m *Machine) Submit() (*Result, error) {
	if m.phase == PhaseSubmitted {
		return nil, ErrAlreadySubmitted
	}
	if m.phase != PhaseInProgress {
		return nil, ErrNotInProgress
	}
	missing := 0
	for _, a := range m.answers {
		if a == Unanswered {
			missing++
		}
	}
	if missing > 0 {
		return nil, &IncompleteError{Missing: missing}
	}
	return m.finalize(), nil
}

// ForceSubmit is the timeout path: it skips the completeness guard, leaving
// unanswered slots at the sentinel so they score as incorrect. It shares
// Submit's single-use guard, so a stale tick after a manual submit is a no-op.
func (m *Machine) ForceSubmit() (*Result, error) {
	if m.phase == PhaseSubmitted {
		return nil, ErrAlreadySubmitted
	}
	if m.phase != PhaseInProgress {
		return nil, ErrNotInProgress
	}
	return m.finalize(), nil
}

func (m *Machine) finalize() *Result {
	score := 0
	for i, a := range m.answers {
		if a == m.snap.CorrectAnswers[i] {
			score++
		}
	}
	m.phase = PhaseSubmitted

	answers := make([]int, len(m.answers))
	copy(answers, m.answers)
	return &Result{
		Answers:        answers,
		Score:          score,
		TotalQuestions: len(answers),
		SessionType:    m.sessionType,
		TrainingPathID: m.trainingPathID,
		CandidateName:  m.candidateName,
		CandidateEmail: m.candidateEmail,
		CompletedAt:    time.Now(),
	}
}

// Tick decrements the remaining time budget by one second and reports whether
// it just reached zero. Purely advisory until then; the caller triggers
// ForceSubmit on true. Ticks outside in_progress, or on untimed sessions,
// do nothing.
func (m *Machine) Tick() bool {
	if m.phase != PhaseInProgress || m.remaining < 0 {
		return false
	}
	if m.remaining == 0 {
		return false
	}
	m.remaining--
	return m.remaining == 0
}

func (m *Machine) Phase() Phase           { return m.phase }
func (m *Machine) Cursor() int            { return m.cursor }
func (m *Machine) Timed() bool            { return m.remaining >= 0 }
func (m *Machine) Remaining() int         { return m.remaining }
func (m *Machine) SessionType() string    { return m.sessionType }
func (m *Machine) CandidateEmail() string { return m.candidateEmail }
func (m *Machine) Snapshot() Snapshot     { return m.snap }

// Answers returns a copy of the current answer slots.
func (m *Machine) Answers() []int {
	out := make([]int, len(m.answers))
	copy(out, m.answers)
	return out
}

// Result is the finalized outcome of one attempt. Score and total are the
// raw pair; percentages are always derived on demand, never stored.
type Result struct {
	Answers        []int
	Score          int
	TotalQuestions int
	SessionType    string
	TrainingPathID *uint
	CandidateName  string
	CandidateEmail string
	CompletedAt    time.Time
}

// Percent converts a raw score/total pair to a whole percentage using
// round-half-up, e.g. 2/3 -> 67.
func Percent(score, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}
