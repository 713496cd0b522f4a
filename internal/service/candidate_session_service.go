package service

import (
	"github.com/rs/zerolog/log"

	"github.com/imilab/chartme/internal/dto"
	"github.com/imilab/chartme/internal/model"
	"github.com/imilab/chartme/internal/repository"
	"github.com/imilab/chartme/internal/session"
)

// CandidateSessionService drives the public test-taking flow: resolving a
// test by its link, running the session state machine, and persisting the
// submission once, whether the candidate submits or the clock does.
type CandidateSessionService interface {
	GetPublicTest(link string) (*dto.PublicTestDTO, error)
	StartSession(link string, req *dto.SessionStartDTO) (*dto.SessionStateDTO, error)
	GetState(token string) (*dto.SessionStateDTO, error)
	Answer(token string, option int) (*dto.SessionStateDTO, error)
	Advance(token string) (*dto.SessionStateDTO, error)
	Retreat(token string) (*dto.SessionStateDTO, error)
	Jump(token string, index int) (*dto.SessionStateDTO, error)
	Submit(token string) (*dto.SessionResultDTO, error)
}

type candidateSessionService struct {
	tests  repository.TestRepository
	subs   repository.SubmissionRepository
	paths  repository.TrainingPathRepository
	store  *session.Store
	mailer Mailer
}

func NewCandidateSessionService(
	tests repository.TestRepository,
	subs repository.SubmissionRepository,
	paths repository.TrainingPathRepository,
	store *session.Store,
	mailer Mailer,
) CandidateSessionService {
	return &candidateSessionService{
		tests:  tests,
		subs:   subs,
		paths:  paths,
		store:  store,
		mailer: mailer,
	}
}

func (s *candidateSessionService) GetPublicTest(link string) (*dto.PublicTestDTO, error) {
	test, err := s.tests.FindActiveByUniqueLink(link)
	if err != nil {
		return nil, err
	}
	return &dto.PublicTestDTO{
		Title:         test.Title,
		Description:   test.Description,
		Difficulty:    test.Difficulty,
		QuestionCount: len(test.Questions),
		TimeLimit:     test.TimeLimit,
	}, nil
}

func (s *candidateSessionService) StartSession(link string, req *dto.SessionStartDTO) (*dto.SessionStateDTO, error) {
	test, err := s.tests.FindActiveByUniqueLink(link)
	if err != nil {
		return nil, err
	}

	snap := session.Snapshot{
		TestID:         test.ID,
		OrganizationID: test.OrganizationID,
		TestTitle:      test.Title,
		TestCreatedBy:  test.CreatedBy,
		CorrectAnswers: make([]int, len(test.Questions)),
		OptionCounts:   make([]int, len(test.Questions)),
		TimeLimit:      test.TimeLimit,
	}
	for i, q := range test.Questions {
		snap.CorrectAnswers[i] = q.CorrectAnswer
		snap.OptionCounts[i] = len(q.Options)
	}

	m := session.New(snap)
	if err := m.Start(req.CandidateName, req.CandidateEmail); err != nil {
		return nil, err
	}

	// An active training path for this candidate and test claims the attempt:
	// its first pending slot decides the session type. No path means a free
	// (libre) attempt.
	path, err := s.paths.FindActiveByTestAndEmail(test.ID, m.CandidateEmail())
	if err == nil {
		if planned := firstPendingSession(path); planned != nil {
			m.AttachTrainingPath(path.ID, planned.Type)
		}
	}

	token, err := s.store.Put(m)
	if err != nil {
		return nil, err
	}
	if test.TimeLimit != nil {
		s.store.StartTimer(token, s.onExpire)
	}

	log.Info().Str("session", token).Uint("test_id", test.ID).
		Str("session_type", m.SessionType()).Msg("Session started")
	return s.renderState(token, captureView(m))
}

func (s *candidateSessionService) GetState(token string) (*dto.SessionStateDTO, error) {
	return s.run(token, func(m *session.Machine) error { return nil })
}

func (s *candidateSessionService) Answer(token string, option int) (*dto.SessionStateDTO, error) {
	return s.run(token, func(m *session.Machine) error { return m.SelectAnswer(option) })
}

func (s *candidateSessionService) Advance(token string) (*dto.SessionStateDTO, error) {
	return s.run(token, func(m *session.Machine) error { return m.Advance() })
}

func (s *candidateSessionService) Retreat(token string) (*dto.SessionStateDTO, error) {
	return s.run(token, func(m *session.Machine) error { return m.Retreat() })
}

func (s *candidateSessionService) Jump(token string, index int) (*dto.SessionStateDTO, error) {
	return s.run(token, func(m *session.Machine) error { return m.Jump(index) })
}

func (s *candidateSessionService) Submit(token string) (*dto.SessionResultDTO, error) {
	var result *session.Result
	err := s.store.With(token, func(m *session.Machine) error {
		r, err := m.Submit()
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.store.StopTimer(token)

	sub := s.persistResult(token, result)
	return &dto.SessionResultDTO{
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		Percent:        session.Percent(result.Score, result.TotalQuestions),
		SessionType:    sub.SessionType,
	}, nil
}

// onExpire runs inside the store's timer tick, under the session lock.
// Persistence is pushed to a goroutine so the lock is never held across the
// database.
func (s *candidateSessionService) onExpire(token string, m *session.Machine) {
	result, err := m.ForceSubmit()
	if err != nil {
		// A manual submit won the race; nothing to do.
		return
	}
	go s.persistResult(token, result)
}

// persistResult writes the submission and, when the attempt belongs to a
// training path, marks the matching planned slot completed. Path bookkeeping
// and notification failures are logged, never surfaced: the submission is
// already durable.
func (s *candidateSessionService) persistResult(token string, result *session.Result) *model.Submission {
	var snap session.Snapshot
	if err := s.store.With(token, func(m *session.Machine) error {
		snap = m.Snapshot()
		return nil
	}); err != nil {
		log.Error().Err(err).Str("session", token).Msg("Session vanished before persistence")
		return &model.Submission{SessionType: result.SessionType}
	}

	sub := &model.Submission{
		OrganizationID: snap.OrganizationID,
		TestID:         snap.TestID,
		TestTitle:      snap.TestTitle,
		CandidateName:  result.CandidateName,
		CandidateEmail: result.CandidateEmail,
		Answers:        result.Answers,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		SessionType:    result.SessionType,
		TrainingPathID: result.TrainingPathID,
		CompletedAt:    result.CompletedAt,
	}
	if err := s.subs.Create(sub); err != nil {
		log.Error().Err(err).Str("session", token).Msg("Failed to persist submission")
		return sub
	}
	log.Info().Str("session", token).Uint("submission_id", sub.ID).
		Int("score", sub.Score).Int("total", sub.TotalQuestions).Msg("Submission persisted")

	if result.TrainingPathID != nil {
		s.completePlannedSession(*result.TrainingPathID, sub, result)
	}
	s.notify(snap, sub)
	return sub
}

func (s *candidateSessionService) completePlannedSession(pathID uint, sub *model.Submission, result *session.Result) {
	path, err := s.paths.FindByID(pathID)
	if err != nil {
		log.Error().Err(err).Uint("path_id", pathID).Msg("Training path lookup failed after submit")
		return
	}
	if !session.ApplyCompletion(path, result.SessionType, sub.ID, result.CompletedAt) {
		log.Warn().Uint("path_id", pathID).Str("session_type", result.SessionType).
			Msg("No pending planned session matched the submission")
		return
	}
	if err := s.paths.ReplaceSessions(path); err != nil {
		log.Error().Err(err).Uint("path_id", pathID).Msg("Failed to persist training path progress")
	}
}

func (s *candidateSessionService) notify(snap session.Snapshot, sub *model.Submission) {
	percent := session.Percent(sub.Score, sub.TotalQuestions)
	go func() {
		if snap.TestCreatedBy != "" {
			if err := s.mailer.SendSubmissionNotification(snap.TestCreatedBy, sub.CandidateName,
				snap.TestTitle, sub.Score, sub.TotalQuestions, percent); err != nil {
				log.Error().Err(err).Msg("Failed to send submission notification")
			}
		}
		if err := s.mailer.SendCandidateConfirmation(sub.CandidateEmail, sub.CandidateName,
			snap.TestTitle, sub.Score, sub.TotalQuestions, percent); err != nil {
			log.Error().Err(err).Msg("Failed to send candidate confirmation")
		}
	}()
}

// machineView is what a state response needs, captured under the session lock
// so question content can be loaded without holding it.
type machineView struct {
	testID      uint
	phase       session.Phase
	cursor      int
	answers     []int
	remaining   int
	timed       bool
	sessionType string
}

func captureView(m *session.Machine) machineView {
	return machineView{
		testID:      m.Snapshot().TestID,
		phase:       m.Phase(),
		cursor:      m.Cursor(),
		answers:     m.Answers(),
		remaining:   m.Remaining(),
		timed:       m.Timed(),
		sessionType: m.SessionType(),
	}
}

func (s *candidateSessionService) run(token string, op func(*session.Machine) error) (*dto.SessionStateDTO, error) {
	var view machineView
	err := s.store.With(token, func(m *session.Machine) error {
		if err := op(m); err != nil {
			return err
		}
		view = captureView(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.renderState(token, view)
}

func (s *candidateSessionService) renderState(token string, view machineView) (*dto.SessionStateDTO, error) {
	state := &dto.SessionStateDTO{
		Token:         token,
		Phase:         view.phase.String(),
		Cursor:        view.cursor,
		QuestionCount: len(view.answers),
		Answers:       view.answers,
		SessionType:   view.sessionType,
	}
	if view.timed {
		remaining := view.remaining
		state.RemainingSeconds = &remaining
	}

	if view.phase == session.PhaseInProgress {
		test, err := s.tests.FindByIDWithQuestions(view.testID)
		if err != nil {
			return nil, err
		}
		if view.cursor < len(test.Questions) {
			q := test.Questions[view.cursor]
			state.Question = &dto.PublicQuestionDTO{
				Position: q.Position,
				Prompt:   q.Prompt,
				Options:  q.Options,
			}
		}
	}
	return state, nil
}

// firstPendingSession returns the path's first pending slot in list order,
// or nil when every slot is already completed.
func firstPendingSession(path *model.TrainingPath) *model.PlannedSession {
	for i := range path.Sessions {
		if path.Sessions[i].Status == model.PlannedStatusPending {
			return &path.Sessions[i]
		}
	}
	return nil
}
