package session

import (
	"testing"
	"time"

	"github.com/imilab/chartme/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoSessionPath() *model.TrainingPath {
	return &model.TrainingPath{
		ID:     1,
		Status: model.PathStatusActive,
		Sessions: []model.PlannedSession{
			{Position: 0, Type: model.SessionTypePositionnement, Status: model.PlannedStatusPending},
			{Position: 1, Type: model.SessionTypeEvaluation, Status: model.PlannedStatusPending},
		},
	}
}

func TestApplyCompletion_TwoSessionLifecycle(t *testing.T) {
	path := twoSessionPath()
	now := time.Now()

	require.True(t, ApplyCompletion(path, model.SessionTypePositionnement, 41, now))
	assert.Equal(t, model.PlannedStatusCompleted, path.Sessions[0].Status)
	require.NotNil(t, path.Sessions[0].SubmissionID)
	assert.Equal(t, uint(41), *path.Sessions[0].SubmissionID)
	require.NotNil(t, path.Sessions[0].CompletedAt)
	assert.Equal(t, model.PathStatusActive, path.Status, "one of two done keeps the path active")

	require.True(t, ApplyCompletion(path, model.SessionTypeEvaluation, 42, now))
	assert.Equal(t, model.PlannedStatusCompleted, path.Sessions[1].Status)
	assert.Equal(t, model.PathStatusCompleted, path.Status)
}

func TestApplyCompletion_NoMatchIsSilentNoOp(t *testing.T) {
	path := twoSessionPath()
	before := *path

	assert.False(t, ApplyCompletion(path, model.SessionTypeLibre, 9, time.Now()))
	assert.Equal(t, before.Status, path.Status)
	assert.Equal(t, model.PlannedStatusPending, path.Sessions[0].Status)
	assert.Equal(t, model.PlannedStatusPending, path.Sessions[1].Status)
}

func TestApplyCompletion_NilPath(t *testing.T) {
	assert.False(t, ApplyCompletion(nil, model.SessionTypeLibre, 1, time.Now()))
}

func TestApplyCompletion_AlreadyCompletedTypeIsNoOp(t *testing.T) {
	path := twoSessionPath()
	now := time.Now()
	require.True(t, ApplyCompletion(path, model.SessionTypePositionnement, 41, now))

	// A second positionnement attempt has no pending slot left to satisfy.
	assert.False(t, ApplyCompletion(path, model.SessionTypePositionnement, 43, now))
	assert.Equal(t, uint(41), *path.Sessions[0].SubmissionID)
}

func TestApplyCompletion_DuplicateTypesFirstPendingWins(t *testing.T) {
	path := &model.TrainingPath{
		Status: model.PathStatusActive,
		Sessions: []model.PlannedSession{
			{Position: 0, Type: model.SessionTypeLibre, Status: model.PlannedStatusPending},
			{Position: 1, Type: model.SessionTypeLibre, Status: model.PlannedStatusPending},
		},
	}

	require.True(t, ApplyCompletion(path, model.SessionTypeLibre, 1, time.Now()))
	assert.Equal(t, model.PlannedStatusCompleted, path.Sessions[0].Status)
	assert.Equal(t, model.PlannedStatusPending, path.Sessions[1].Status)
	assert.Equal(t, model.PathStatusActive, path.Status)

	require.True(t, ApplyCompletion(path, model.SessionTypeLibre, 2, time.Now()))
	assert.Equal(t, model.PathStatusCompleted, path.Status)
}
