package repository

import (
	"github.com/imilab/chartme/internal/model"
	"gorm.io/gorm"
)

type TestRepository interface {
	Create(test *model.Test) error
	FindByID(id uint) (*model.Test, error)
	FindByIDWithQuestions(id uint) (*model.Test, error)
	FindActiveByUniqueLink(link string) (*model.Test, error)
	FindAllByOrganization(orgID uint) ([]TestWithSubmissionCount, error)
	SetActive(id uint, active bool) error
}

// TestWithSubmissionCount augments a test row with its submission total for
// dashboard listings.
type TestWithSubmissionCount struct {
	model.Test
	SubmissionCount int
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) Create(test *model.Test) error {
	// GORM creates the associated questions alongside the test.
	return r.db.Create(test).Error
}

func (r *testRepository) FindByID(id uint) (*model.Test, error) {
	var test model.Test
	if err := r.db.First(&test, id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindByIDWithQuestions(id uint) (*model.Test, error) {
	var test model.Test
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.position ASC")
	}).First(&test, id).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindActiveByUniqueLink(link string) (*model.Test, error) {
	var test model.Test
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.position ASC")
	}).Where("unique_link = ? AND is_active = ?", link, true).First(&test).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindAllByOrganization(orgID uint) ([]TestWithSubmissionCount, error) {
	var results []TestWithSubmissionCount
	err := r.db.Model(&model.Test{}).
		Select("tests.*, (SELECT COUNT(*) FROM submissions WHERE submissions.test_id = tests.id AND submissions.deleted_at IS NULL) as submission_count").
		Where("tests.organization_id = ? AND tests.deleted_at IS NULL", orgID).
		Order("tests.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *testRepository) SetActive(id uint, active bool) error {
	return r.db.Model(&model.Test{}).Where("id = ?", id).Update("is_active", active).Error
}
