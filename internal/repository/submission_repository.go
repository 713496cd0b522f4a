package repository

import (
	"github.com/imilab/chartme/internal/model"
	"gorm.io/gorm"
)

// SubmissionRepository is create-only by design: submissions are immutable
// once written and are never updated or deleted through normal flow.
type SubmissionRepository interface {
	Create(submission *model.Submission) error
	FindByID(id uint) (*model.Submission, error)
	FindAllByTest(testID uint) ([]model.Submission, error)
	FindAllByTrainingPath(pathID uint) ([]model.Submission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(submission *model.Submission) error {
	return r.db.Create(submission).Error
}

func (r *submissionRepository) FindByID(id uint) (*model.Submission, error) {
	var submission model.Submission
	if err := r.db.First(&submission, id).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) FindAllByTest(testID uint) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.db.Where("test_id = ?", testID).Order("completed_at DESC").Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepository) FindAllByTrainingPath(pathID uint) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.db.Where("training_path_id = ?", pathID).Order("completed_at ASC").Find(&submissions).Error
	return submissions, err
}
