package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/imilab/chartme/internal/dto"
	"github.com/imilab/chartme/internal/model"
	"github.com/imilab/chartme/internal/repository"
	"github.com/imilab/chartme/internal/session"
)

const uniqueLinkLength = 10

// ErrTestLimitReached is returned when a free-plan organization tries to
// create (or duplicate) a test beyond its quota. Maps to 402 at the edge.
var ErrTestLimitReached = errors.New("test limit reached for the current plan")

// AdminTestService covers everything an organization admin does with tests:
// creation under plan limits, listing, activation toggling, duplication and
// reading submissions. Every operation is scoped to the caller's organization;
// a test of another organization behaves exactly like a missing one.
type AdminTestService interface {
	CreateTest(orgID uint, req *dto.TestCreateDTO) (*dto.TestResponseDTO, error)
	GetTest(orgID, testID uint) (*dto.TestResponseDTO, error)
	ListTests(orgID uint) ([]dto.TestSummaryDTO, error)
	SetActive(orgID, testID uint, active bool) (*dto.TestResponseDTO, error)
	DuplicateTest(orgID, testID uint) (*dto.TestResponseDTO, error)
	ListSubmissions(orgID, testID uint) ([]dto.SubmissionSummaryDTO, error)
	GetSubmission(orgID, submissionID uint) (*dto.SubmissionDetailDTO, error)
}

type adminTestService struct {
	db    *gorm.DB
	tests repository.TestRepository
	subs  repository.SubmissionRepository
	orgs  repository.OrganizationRepository
}

func NewAdminTestService(
	db *gorm.DB,
	tests repository.TestRepository,
	subs repository.SubmissionRepository,
	orgs repository.OrganizationRepository,
) AdminTestService {
	return &adminTestService{db: db, tests: tests, subs: subs, orgs: orgs}
}

func (s *adminTestService) CreateTest(orgID uint, req *dto.TestCreateDTO) (*dto.TestResponseDTO, error) {
	org, err := s.orgs.FindByID(orgID)
	if err != nil {
		return nil, err
	}
	if !org.CanCreateTest() {
		return nil, ErrTestLimitReached
	}

	link, err := gonanoid.New(uniqueLinkLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate test link: %w", err)
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = model.DifficultyMoyen
	}
	test := &model.Test{
		OrganizationID: orgID,
		Title:          req.Title,
		Description:    req.Description,
		Topic:          req.Topic,
		Difficulty:     difficulty,
		Category:       req.Category,
		UniqueLink:     link,
		IsActive:       true,
		TimeLimit:      req.TimeLimit,
		CreatedBy:      req.CreatedBy,
	}
	for i, q := range req.Questions {
		test.Questions = append(test.Questions, model.Question{
			Position:      i,
			Prompt:        q.Prompt,
			Options:       q.Options,
			CorrectAnswer: *q.CorrectAnswer,
		})
	}

	// The insert and the organization's counter move together, or not at all.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(test).Error; err != nil {
			return err
		}
		return s.orgs.IncrementTestCount(tx, orgID)
	})
	if err != nil {
		return nil, err
	}

	log.Info().Uint("test_id", test.ID).Uint("org_id", orgID).Str("link", link).Msg("Test created")
	return toTestResponse(test), nil
}

func (s *adminTestService) GetTest(orgID, testID uint) (*dto.TestResponseDTO, error) {
	test, err := s.findOwnedTest(orgID, testID)
	if err != nil {
		return nil, err
	}
	return toTestResponse(test), nil
}

func (s *adminTestService) ListTests(orgID uint) ([]dto.TestSummaryDTO, error) {
	rows, err := s.tests.FindAllByOrganization(orgID)
	if err != nil {
		return nil, err
	}
	summaries := make([]dto.TestSummaryDTO, 0, len(rows))
	for _, row := range rows {
		var summary dto.TestSummaryDTO
		if err := copier.Copy(&summary, &row.Test); err != nil {
			return nil, err
		}
		summary.SubmissionCount = row.SubmissionCount
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *adminTestService) SetActive(orgID, testID uint, active bool) (*dto.TestResponseDTO, error) {
	test, err := s.findOwnedTest(orgID, testID)
	if err != nil {
		return nil, err
	}
	if err := s.tests.SetActive(test.ID, active); err != nil {
		return nil, err
	}
	test.IsActive = active
	log.Info().Uint("test_id", test.ID).Bool("active", active).Msg("Test activation toggled")
	return toTestResponse(test), nil
}

// DuplicateTest copies a test into a fresh inactive draft with its own link.
// The copy counts against the plan limit like any other new test.
func (s *adminTestService) DuplicateTest(orgID, testID uint) (*dto.TestResponseDTO, error) {
	src, err := s.findOwnedTest(orgID, testID)
	if err != nil {
		return nil, err
	}
	org, err := s.orgs.FindByID(orgID)
	if err != nil {
		return nil, err
	}
	if !org.CanCreateTest() {
		return nil, ErrTestLimitReached
	}

	link, err := gonanoid.New(uniqueLinkLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate test link: %w", err)
	}

	dup := &model.Test{
		OrganizationID: orgID,
		Title:          src.Title + " (copie)",
		Description:    src.Description,
		Topic:          src.Topic,
		Difficulty:     src.Difficulty,
		Category:       src.Category,
		UniqueLink:     link,
		IsActive:       false,
		TimeLimit:      src.TimeLimit,
		CreatedBy:      src.CreatedBy,
	}
	for _, q := range src.Questions {
		options := make([]string, len(q.Options))
		copy(options, q.Options)
		dup.Questions = append(dup.Questions, model.Question{
			Position:      q.Position,
			Prompt:        q.Prompt,
			Options:       options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(dup).Error; err != nil {
			return err
		}
		return s.orgs.IncrementTestCount(tx, orgID)
	})
	if err != nil {
		return nil, err
	}

	log.Info().Uint("source_id", src.ID).Uint("test_id", dup.ID).Msg("Test duplicated")
	return toTestResponse(dup), nil
}

func (s *adminTestService) ListSubmissions(orgID, testID uint) ([]dto.SubmissionSummaryDTO, error) {
	if _, err := s.findOwnedTest(orgID, testID); err != nil {
		return nil, err
	}
	subs, err := s.subs.FindAllByTest(testID)
	if err != nil {
		return nil, err
	}
	summaries := make([]dto.SubmissionSummaryDTO, 0, len(subs))
	for i := range subs {
		summaries = append(summaries, toSubmissionSummary(&subs[i]))
	}
	return summaries, nil
}

func (s *adminTestService) GetSubmission(orgID, submissionID uint) (*dto.SubmissionDetailDTO, error) {
	sub, err := s.subs.FindByID(submissionID)
	if err != nil {
		return nil, err
	}
	if sub.OrganizationID != orgID {
		return nil, gorm.ErrRecordNotFound
	}

	detail := &dto.SubmissionDetailDTO{
		SubmissionSummaryDTO: toSubmissionSummary(sub),
		Answers:              sub.Answers,
	}
	// The test may have been soft-deleted since; the submission still stands.
	if test, err := s.tests.FindByIDWithQuestions(sub.TestID); err == nil {
		detail.Questions = toQuestionResponses(test.Questions)
	}
	return detail, nil
}

func (s *adminTestService) findOwnedTest(orgID, testID uint) (*model.Test, error) {
	test, err := s.tests.FindByIDWithQuestions(testID)
	if err != nil {
		return nil, err
	}
	if test.OrganizationID != orgID {
		return nil, gorm.ErrRecordNotFound
	}
	return test, nil
}

func toTestResponse(test *model.Test) *dto.TestResponseDTO {
	resp := &dto.TestResponseDTO{}
	if err := copier.Copy(resp, test); err != nil {
		log.Error().Err(err).Uint("test_id", test.ID).Msg("Failed to map test to response")
	}
	resp.Questions = toQuestionResponses(test.Questions)
	return resp
}

func toQuestionResponses(questions []model.Question) []dto.QuestionResponseDTO {
	out := make([]dto.QuestionResponseDTO, 0, len(questions))
	for _, q := range questions {
		out = append(out, dto.QuestionResponseDTO{
			ID:            q.ID,
			Position:      q.Position,
			Prompt:        q.Prompt,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	return out
}

func toSubmissionSummary(sub *model.Submission) dto.SubmissionSummaryDTO {
	return dto.SubmissionSummaryDTO{
		ID:             sub.ID,
		TestID:         sub.TestID,
		TestTitle:      sub.TestTitle,
		CandidateName:  sub.CandidateName,
		CandidateEmail: sub.CandidateEmail,
		Score:          sub.Score,
		TotalQuestions: sub.TotalQuestions,
		Percent:        session.Percent(sub.Score, sub.TotalQuestions),
		SessionType:    sub.SessionType,
		CompletedAt:    sub.CompletedAt,
	}
}
