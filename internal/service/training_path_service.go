package service

import (
	"errors"
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/imilab/chartme/config"
	"github.com/imilab/chartme/internal/dto"
	"github.com/imilab/chartme/internal/model"
	"github.com/imilab/chartme/internal/repository"
)

const shareTokenLength = 24

// ErrPathAlreadyActive rejects a second active path for the same candidate
// and test; the session engine could not tell their attempts apart.
var ErrPathAlreadyActive = errors.New("an active training path already exists for this candidate and test")

type TrainingPathService interface {
	CreatePath(orgID uint, req *dto.TrainingPathCreateDTO) (*dto.TrainingPathResponseDTO, error)
	GetPath(orgID, pathID uint) (*dto.TrainingPathResponseDTO, error)
	ListPaths(orgID uint) ([]dto.TrainingPathResponseDTO, error)
	CancelPath(orgID, pathID uint) (*dto.TrainingPathResponseDTO, error)
}

type trainingPathService struct {
	cfg    *config.Config
	paths  repository.TrainingPathRepository
	tests  repository.TestRepository
	mailer Mailer
}

func NewTrainingPathService(
	cfg *config.Config,
	paths repository.TrainingPathRepository,
	tests repository.TestRepository,
	mailer Mailer,
) TrainingPathService {
	return &trainingPathService{cfg: cfg, paths: paths, tests: tests, mailer: mailer}
}

// CreatePath schedules a positionnement then an evaluation for one candidate
// on one test, and emails the candidate their schedule and test link.
func (s *trainingPathService) CreatePath(orgID uint, req *dto.TrainingPathCreateDTO) (*dto.TrainingPathResponseDTO, error) {
	test, err := s.tests.FindByID(req.TestID)
	if err != nil {
		return nil, err
	}
	if test.OrganizationID != orgID {
		return nil, gorm.ErrRecordNotFound
	}
	if !req.EvaluationDate.After(req.PositionnementDate) {
		return nil, fmt.Errorf("evaluation date must come after the positionnement date")
	}

	email := strings.ToLower(strings.TrimSpace(req.CandidateEmail))
	if existing, err := s.paths.FindActiveByTestAndEmail(test.ID, email); err == nil && existing != nil {
		return nil, ErrPathAlreadyActive
	}

	shareToken, err := gonanoid.New(shareTokenLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate share token: %w", err)
	}

	path := &model.TrainingPath{
		OrganizationID: orgID,
		TestID:         test.ID,
		TestTitle:      test.Title,
		CandidateName:  strings.TrimSpace(req.CandidateName),
		CandidateEmail: email,
		Status:         model.PathStatusActive,
		ShareToken:     shareToken,
		CreatedBy:      req.CreatedBy,
		Sessions: []model.PlannedSession{
			{
				Position:      0,
				Type:          model.SessionTypePositionnement,
				ScheduledDate: req.PositionnementDate,
				Status:        model.PlannedStatusPending,
			},
			{
				Position:      1,
				Type:          model.SessionTypeEvaluation,
				ScheduledDate: req.EvaluationDate,
				Status:        model.PlannedStatusPending,
			},
		},
	}
	if err := s.paths.Create(path); err != nil {
		return nil, err
	}
	log.Info().Uint("path_id", path.ID).Uint("test_id", test.ID).
		Str("candidate", email).Msg("Training path created")

	testURL := fmt.Sprintf("%s/t/%s", s.cfg.App.BaseURL, test.UniqueLink)
	go func() {
		if err := s.mailer.SendTrainingPathSchedule(email, path.CandidateName, test.Title,
			testURL, req.PositionnementDate, req.EvaluationDate); err != nil {
			log.Error().Err(err).Uint("path_id", path.ID).Msg("Failed to send training path schedule")
		}
	}()

	return toTrainingPathResponse(path), nil
}

func (s *trainingPathService) GetPath(orgID, pathID uint) (*dto.TrainingPathResponseDTO, error) {
	path, err := s.findOwnedPath(orgID, pathID)
	if err != nil {
		return nil, err
	}
	return toTrainingPathResponse(path), nil
}

func (s *trainingPathService) ListPaths(orgID uint) ([]dto.TrainingPathResponseDTO, error) {
	paths, err := s.paths.FindAllByOrganization(orgID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TrainingPathResponseDTO, 0, len(paths))
	for i := range paths {
		out = append(out, *toTrainingPathResponse(&paths[i]))
	}
	return out, nil
}

// CancelPath takes the path out of the active lookup, so later attempts by
// the candidate fall back to free sessions. Already-written submissions and
// completed slots keep their history.
func (s *trainingPathService) CancelPath(orgID, pathID uint) (*dto.TrainingPathResponseDTO, error) {
	path, err := s.findOwnedPath(orgID, pathID)
	if err != nil {
		return nil, err
	}
	if path.Status == model.PathStatusActive {
		if err := s.paths.SetStatus(path.ID, model.PathStatusCancelled); err != nil {
			return nil, err
		}
		path.Status = model.PathStatusCancelled
		log.Info().Uint("path_id", path.ID).Msg("Training path cancelled")
	}
	return toTrainingPathResponse(path), nil
}

func (s *trainingPathService) findOwnedPath(orgID, pathID uint) (*model.TrainingPath, error) {
	path, err := s.paths.FindByID(pathID)
	if err != nil {
		return nil, err
	}
	if path.OrganizationID != orgID {
		return nil, gorm.ErrRecordNotFound
	}
	return path, nil
}

func toTrainingPathResponse(path *model.TrainingPath) *dto.TrainingPathResponseDTO {
	resp := &dto.TrainingPathResponseDTO{
		ID:             path.ID,
		TestID:         path.TestID,
		TestTitle:      path.TestTitle,
		CandidateName:  path.CandidateName,
		CandidateEmail: path.CandidateEmail,
		Status:         path.Status,
		ShareToken:     path.ShareToken,
		CreatedAt:      path.CreatedAt,
	}
	resp.Sessions = toPlannedSessionDTOs(path.Sessions)
	return resp
}

func toPlannedSessionDTOs(sessions []model.PlannedSession) []dto.PlannedSessionDTO {
	out := make([]dto.PlannedSessionDTO, 0, len(sessions))
	for _, sess := range sessions {
		out = append(out, dto.PlannedSessionDTO{
			Position:      sess.Position,
			Type:          sess.Type,
			ScheduledDate: sess.ScheduledDate,
			Status:        sess.Status,
			SubmissionID:  sess.SubmissionID,
			CompletedAt:   sess.CompletedAt,
		})
	}
	return out
}
