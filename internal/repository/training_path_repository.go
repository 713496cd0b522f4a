package repository

import (
	"github.com/imilab/chartme/internal/model"
	"gorm.io/gorm"
)

type TrainingPathRepository interface {
	Create(path *model.TrainingPath) error
	FindByID(id uint) (*model.TrainingPath, error)
	FindActiveByTestAndEmail(testID uint, email string) (*model.TrainingPath, error)
	FindByShareToken(token string) (*model.TrainingPath, error)
	FindAllByOrganization(orgID uint) ([]model.TrainingPath, error)
	ReplaceSessions(path *model.TrainingPath) error
	SetStatus(id uint, status string) error
}

type trainingPathRepository struct {
	db *gorm.DB
}

func NewTrainingPathRepository(db *gorm.DB) TrainingPathRepository {
	return &trainingPathRepository{db: db}
}

func (r *trainingPathRepository) Create(path *model.TrainingPath) error {
	return r.db.Create(path).Error
}

func (r *trainingPathRepository) FindByID(id uint) (*model.TrainingPath, error) {
	var path model.TrainingPath
	err := r.db.Preload("Sessions", func(db *gorm.DB) *gorm.DB {
		return db.Order("planned_sessions.position ASC")
	}).First(&path, id).Error
	if err != nil {
		return nil, err
	}
	return &path, nil
}

// FindActiveByTestAndEmail returns at most one active path for this test and
// candidate; the email is expected to already be lower-cased by the caller.
func (r *trainingPathRepository) FindActiveByTestAndEmail(testID uint, email string) (*model.TrainingPath, error) {
	var path model.TrainingPath
	err := r.db.Preload("Sessions", func(db *gorm.DB) *gorm.DB {
		return db.Order("planned_sessions.position ASC")
	}).Where("test_id = ? AND candidate_email = ? AND status = ?", testID, email, model.PathStatusActive).
		First(&path).Error
	if err != nil {
		return nil, err
	}
	return &path, nil
}

func (r *trainingPathRepository) FindByShareToken(token string) (*model.TrainingPath, error) {
	var path model.TrainingPath
	err := r.db.Preload("Sessions", func(db *gorm.DB) *gorm.DB {
		return db.Order("planned_sessions.position ASC")
	}).Where("share_token = ?", token).First(&path).Error
	if err != nil {
		return nil, err
	}
	return &path, nil
}

func (r *trainingPathRepository) FindAllByOrganization(orgID uint) ([]model.TrainingPath, error) {
	var paths []model.TrainingPath
	err := r.db.Preload("Sessions", func(db *gorm.DB) *gorm.DB {
		return db.Order("planned_sessions.position ASC")
	}).Where("organization_id = ?", orgID).Order("created_at DESC").Find(&paths).Error
	return paths, err
}

// ReplaceSessions persists the path's full session list and status as one
// transactional write, as the session engine requires.
func (r *trainingPathRepository) ReplaceSessions(path *model.TrainingPath) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.TrainingPath{}).Where("id = ?", path.ID).
			Update("status", path.Status).Error; err != nil {
			return err
		}
		for i := range path.Sessions {
			if err := tx.Save(&path.Sessions[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *trainingPathRepository) SetStatus(id uint, status string) error {
	return r.db.Model(&model.TrainingPath{}).Where("id = ?", id).Update("status", status).Error
}
