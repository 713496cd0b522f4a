package repository

import (
	"github.com/imilab/chartme/internal/model"
	"gorm.io/gorm"
)

type InvitationRepository interface {
	Create(invitation *model.Invitation) error
	FindByToken(token string) (*model.Invitation, error)
	FindPendingByOrgAndEmail(orgID uint, email string) (*model.Invitation, error)
	FindAllByOrganization(orgID uint) ([]model.Invitation, error)
	Update(invitation *model.Invitation) error
}

type invitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) InvitationRepository {
	return &invitationRepository{db: db}
}

func (r *invitationRepository) Create(invitation *model.Invitation) error {
	return r.db.Create(invitation).Error
}

func (r *invitationRepository) FindByToken(token string) (*model.Invitation, error) {
	var invitation model.Invitation
	if err := r.db.Where("token = ?", token).First(&invitation).Error; err != nil {
		return nil, err
	}
	return &invitation, nil
}

func (r *invitationRepository) FindPendingByOrgAndEmail(orgID uint, email string) (*model.Invitation, error) {
	var invitation model.Invitation
	err := r.db.Where("organization_id = ? AND email = ? AND status = ?",
		orgID, email, model.InvitationPending).First(&invitation).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

func (r *invitationRepository) FindAllByOrganization(orgID uint) ([]model.Invitation, error) {
	var invitations []model.Invitation
	err := r.db.Where("organization_id = ?", orgID).Order("created_at DESC").Find(&invitations).Error
	return invitations, err
}

func (r *invitationRepository) Update(invitation *model.Invitation) error {
	return r.db.Save(invitation).Error
}
