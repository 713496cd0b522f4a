package repository

import (
	"github.com/imilab/chartme/internal/model"
	"gorm.io/gorm"
)

type OrganizationRepository interface {
	Create(org *model.Organization) error
	FindByID(id uint) (*model.Organization, error)
	IncrementTestCount(tx *gorm.DB, id uint) error
	Update(org *model.Organization) error
}

type organizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) Create(org *model.Organization) error {
	return r.db.Create(org).Error
}

func (r *organizationRepository) FindByID(id uint) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.First(&org, id).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// IncrementTestCount bumps the counter inside the caller's transaction so the
// test insert and the counter stay consistent.
func (r *organizationRepository) IncrementTestCount(tx *gorm.DB, id uint) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Model(&model.Organization{}).Where("id = ?", id).
		Update("test_count", gorm.Expr("test_count + 1")).Error
}

func (r *organizationRepository) Update(org *model.Organization) error {
	return r.db.Save(org).Error
}
