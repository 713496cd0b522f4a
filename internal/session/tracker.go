package session

import (
	"time"

	"github.com/imilab/chartme/internal/model"
)

// ApplyCompletion marks the first pending planned session (in list order)
// whose type matches the submission's session type as completed, attaching
// the submission id and completion timestamp, then recomputes the path
// status: completed iff every planned session is now completed, otherwise
// unchanged. Returns false without touching the path when nothing matches;
// that is a silent no-op, not an error.
func ApplyCompletion(path *model.TrainingPath, sessionType string, submissionID uint, completedAt time.Time) bool {
	if path == nil {
		return false
	}
	for i := range path.Sessions {
		s := &path.Sessions[i]
		if s.Type != sessionType || s.Status != model.PlannedStatusPending {
			continue
		}
		s.Status = model.PlannedStatusCompleted
		id := submissionID
		s.SubmissionID = &id
		at := completedAt
		s.CompletedAt = &at

		if allCompleted(path.Sessions) {
			path.Status = model.PathStatusCompleted
		}
		return true
	}
	return false
}

func allCompleted(sessions []model.PlannedSession) bool {
	for _, s := range sessions {
		if s.Status != model.PlannedStatusCompleted {
			return false
		}
	}
	return true
}
