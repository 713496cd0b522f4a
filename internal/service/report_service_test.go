package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/imilab/chartme/internal/model"
	"github.com/imilab/chartme/internal/repository"
)

type fakePathRepo struct {
	byToken map[string]*model.TrainingPath
}

func (r *fakePathRepo) Create(path *model.TrainingPath) error { return nil }
func (r *fakePathRepo) FindByID(id uint) (*model.TrainingPath, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *fakePathRepo) FindActiveByTestAndEmail(testID uint, email string) (*model.TrainingPath, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *fakePathRepo) FindByShareToken(token string) (*model.TrainingPath, error) {
	path, ok := r.byToken[token]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return path, nil
}
func (r *fakePathRepo) FindAllByOrganization(orgID uint) ([]model.TrainingPath, error) {
	return nil, nil
}
func (r *fakePathRepo) ReplaceSessions(path *model.TrainingPath) error { return nil }
func (r *fakePathRepo) SetStatus(id uint, status string) error         { return nil }

type fakeTestRepo struct {
	tests map[uint]*model.Test
}

func (r *fakeTestRepo) Create(test *model.Test) error { return nil }
func (r *fakeTestRepo) FindByID(id uint) (*model.Test, error) {
	return r.FindByIDWithQuestions(id)
}
func (r *fakeTestRepo) FindByIDWithQuestions(id uint) (*model.Test, error) {
	test, ok := r.tests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return test, nil
}
func (r *fakeTestRepo) FindActiveByUniqueLink(link string) (*model.Test, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *fakeTestRepo) FindAllByOrganization(orgID uint) ([]repository.TestWithSubmissionCount, error) {
	return nil, nil
}
func (r *fakeTestRepo) SetActive(id uint, active bool) error { return nil }

type fakeSubmissionRepo struct {
	byPath map[uint][]model.Submission
}

func (r *fakeSubmissionRepo) Create(sub *model.Submission) error { return nil }
func (r *fakeSubmissionRepo) FindByID(id uint) (*model.Submission, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *fakeSubmissionRepo) FindAllByTest(testID uint) ([]model.Submission, error) {
	return nil, nil
}
func (r *fakeSubmissionRepo) FindAllByTrainingPath(pathID uint) ([]model.Submission, error) {
	return r.byPath[pathID], nil
}

func reportFixture() (*reportService, *fakeSubmissionRepo) {
	path := &model.TrainingPath{
		ID:             3,
		TestID:         11,
		TestTitle:      "Algèbre",
		CandidateName:  "Jeanne",
		CandidateEmail: "jeanne@example.com",
		Status:         model.PathStatusActive,
		ShareToken:     "share-token",
		Sessions: []model.PlannedSession{
			{Position: 0, Type: model.SessionTypePositionnement, Status: model.PlannedStatusPending},
			{Position: 1, Type: model.SessionTypeEvaluation, Status: model.PlannedStatusPending},
		},
	}
	test := &model.Test{
		ID: 11,
		Questions: []model.Question{
			{Position: 0, Prompt: "q0", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 0},
			{Position: 1, Prompt: "q1", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 1},
			{Position: 2, Prompt: "q2", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 2},
		},
	}
	subs := &fakeSubmissionRepo{byPath: map[uint][]model.Submission{}}
	svc := &reportService{
		paths: &fakePathRepo{byToken: map[string]*model.TrainingPath{"share-token": path}},
		tests: &fakeTestRepo{tests: map[uint]*model.Test{11: test}},
		subs:  subs,
	}
	return svc, subs
}

func TestReportUnknownShareToken(t *testing.T) {
	svc, _ := reportFixture()
	_, err := svc.GetByShareToken("nope")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestReportAwaitingBeforeAnyAttempt(t *testing.T) {
	svc, _ := reportFixture()

	out, err := svc.GetByShareToken("share-token")
	require.NoError(t, err)
	assert.True(t, out.AwaitingCompletion)
	assert.Nil(t, out.Comparison)
	assert.Nil(t, out.Positionnement)
	assert.Nil(t, out.Evaluation)
	assert.Len(t, out.Sessions, 2)
	assert.Equal(t, "Algèbre", out.TestTitle)
}

func TestReportAwaitingAfterPositionnementOnly(t *testing.T) {
	svc, subs := reportFixture()
	subs.byPath[3] = []model.Submission{
		{ID: 21, SessionType: model.SessionTypePositionnement, Answers: []int{0, 0, 0}, Score: 1, TotalQuestions: 3, CompletedAt: time.Now()},
	}

	out, err := svc.GetByShareToken("share-token")
	require.NoError(t, err)
	assert.True(t, out.AwaitingCompletion)
	assert.Nil(t, out.Comparison)
	require.NotNil(t, out.Positionnement)
	assert.Equal(t, 33, out.Positionnement.Percent)
	assert.Nil(t, out.Evaluation)
}

func TestReportComparisonOnceBothAttemptsExist(t *testing.T) {
	svc, subs := reportFixture()
	subs.byPath[3] = []model.Submission{
		{ID: 21, SessionType: model.SessionTypePositionnement, Answers: []int{0, 0, 0}, Score: 1, TotalQuestions: 3},
		{ID: 22, SessionType: model.SessionTypeEvaluation, Answers: []int{0, 1, 0}, Score: 2, TotalQuestions: 3},
	}

	out, err := svc.GetByShareToken("share-token")
	require.NoError(t, err)
	assert.False(t, out.AwaitingCompletion)
	require.NotNil(t, out.Comparison)
	assert.Equal(t, 1, out.Comparison.ImprovedCount)
	assert.Equal(t, 33, out.Comparison.PositionnementPercent)
	assert.Equal(t, 67, out.Comparison.EvaluationPercent)
	assert.Equal(t, 34, out.Comparison.Delta)
}

func TestReportUsesFirstSubmissionPerType(t *testing.T) {
	svc, subs := reportFixture()
	subs.byPath[3] = []model.Submission{
		{ID: 21, SessionType: model.SessionTypePositionnement, Answers: []int{0, 0, 0}, Score: 1, TotalQuestions: 3},
		{ID: 25, SessionType: model.SessionTypePositionnement, Answers: []int{0, 1, 2}, Score: 3, TotalQuestions: 3},
	}

	out, err := svc.GetByShareToken("share-token")
	require.NoError(t, err)
	require.NotNil(t, out.Positionnement)
	assert.Equal(t, uint(21), out.Positionnement.ID)
}
