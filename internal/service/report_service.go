package service

import (
	"github.com/rs/zerolog/log"

	"github.com/imilab/chartme/internal/dto"
	"github.com/imilab/chartme/internal/model"
	"github.com/imilab/chartme/internal/report"
	"github.com/imilab/chartme/internal/repository"
)

// ReportService resolves the public progress report behind a training path's
// share token. Until both attempts are in, the report carries the schedule
// and whatever submission exists; the question-level comparison appears only
// once positionnement and evaluation are both complete.
type ReportService interface {
	GetByShareToken(token string) (*dto.ReportDTO, error)
}

type reportService struct {
	paths repository.TrainingPathRepository
	tests repository.TestRepository
	subs  repository.SubmissionRepository
}

func NewReportService(
	paths repository.TrainingPathRepository,
	tests repository.TestRepository,
	subs repository.SubmissionRepository,
) ReportService {
	return &reportService{paths: paths, tests: tests, subs: subs}
}

func (s *reportService) GetByShareToken(token string) (*dto.ReportDTO, error) {
	path, err := s.paths.FindByShareToken(token)
	if err != nil {
		return nil, err
	}

	out := &dto.ReportDTO{
		TestTitle:      path.TestTitle,
		CandidateName:  path.CandidateName,
		CandidateEmail: path.CandidateEmail,
		Status:         path.Status,
		Sessions:       toPlannedSessionDTOs(path.Sessions),
	}

	subs, err := s.subs.FindAllByTrainingPath(path.ID)
	if err != nil {
		return nil, err
	}
	var positionnement, evaluation *model.Submission
	for i := range subs {
		switch subs[i].SessionType {
		case model.SessionTypePositionnement:
			if positionnement == nil {
				positionnement = &subs[i]
			}
		case model.SessionTypeEvaluation:
			if evaluation == nil {
				evaluation = &subs[i]
			}
		}
	}
	if positionnement != nil {
		summary := toSubmissionSummary(positionnement)
		out.Positionnement = &summary
	}
	if evaluation != nil {
		summary := toSubmissionSummary(evaluation)
		out.Evaluation = &summary
	}

	if positionnement == nil || evaluation == nil {
		out.AwaitingCompletion = true
		return out, nil
	}

	test, err := s.tests.FindByIDWithQuestions(path.TestID)
	if err != nil {
		return nil, err
	}
	comparison, err := report.Compare(test.Questions, positionnement, evaluation)
	if err != nil {
		// Both attempts exist but cannot be compared (e.g. the test changed
		// length through a migration). Degrade to the summary view.
		log.Error().Err(err).Uint("path_id", path.ID).Msg("Comparison failed, serving summary only")
		out.AwaitingCompletion = false
		return out, nil
	}
	out.Comparison = comparison
	return out, nil
}
