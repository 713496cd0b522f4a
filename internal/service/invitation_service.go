package service

import (
	"errors"
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog/log"

	"github.com/imilab/chartme/config"
	"github.com/imilab/chartme/internal/dto"
	"github.com/imilab/chartme/internal/model"
	"github.com/imilab/chartme/internal/repository"
)

const inviteTokenLength = 32

var (
	// ErrInvitationPending rejects re-inviting an email that already has a
	// pending invitation in the organization.
	ErrInvitationPending = errors.New("a pending invitation already exists for this email")
	// ErrInvitationUsed rejects accepting an invitation twice.
	ErrInvitationUsed = errors.New("invitation has already been accepted")
	// ErrEmailTaken rejects accepting when the email already belongs to a user.
	ErrEmailTaken = errors.New("a user with this email already exists")
)

type InvitationService interface {
	Invite(orgID uint, req *dto.InvitationCreateDTO) (*dto.InvitationResponseDTO, error)
	ListInvitations(orgID uint) ([]dto.InvitationResponseDTO, error)
	Accept(token string, req *dto.AcceptInvitationDTO) (*model.User, error)
}

type invitationService struct {
	cfg         *config.Config
	invitations repository.InvitationRepository
	users       repository.UserRepository
	orgs        repository.OrganizationRepository
	mailer      Mailer
}

func NewInvitationService(
	cfg *config.Config,
	invitations repository.InvitationRepository,
	users repository.UserRepository,
	orgs repository.OrganizationRepository,
	mailer Mailer,
) InvitationService {
	return &invitationService{
		cfg:         cfg,
		invitations: invitations,
		users:       users,
		orgs:        orgs,
		mailer:      mailer,
	}
}

func (s *invitationService) Invite(orgID uint, req *dto.InvitationCreateDTO) (*dto.InvitationResponseDTO, error) {
	org, err := s.orgs.FindByID(orgID)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.invitations.FindPendingByOrgAndEmail(orgID, email); err == nil {
		return nil, ErrInvitationPending
	}

	token, err := gonanoid.New(inviteTokenLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation token: %w", err)
	}

	invitation := &model.Invitation{
		Email:            email,
		OrganizationID:   orgID,
		OrganizationName: org.Name,
		InvitedBy:        req.InvitedBy,
		Token:            token,
		Status:           model.InvitationPending,
	}
	if err := s.invitations.Create(invitation); err != nil {
		return nil, err
	}
	log.Info().Uint("invitation_id", invitation.ID).Uint("org_id", orgID).
		Str("email", email).Msg("Invitation created")

	inviteURL := s.inviteLink(token)
	go func() {
		if err := s.mailer.SendOrganizationInvite(email, org.Name, inviteURL); err != nil {
			log.Error().Err(err).Uint("invitation_id", invitation.ID).Msg("Failed to send invitation email")
		}
	}()

	return toInvitationResponse(invitation, inviteURL), nil
}

func (s *invitationService) ListInvitations(orgID uint) ([]dto.InvitationResponseDTO, error) {
	invitations, err := s.invitations.FindAllByOrganization(orgID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvitationResponseDTO, 0, len(invitations))
	for i := range invitations {
		out = append(out, *toInvitationResponse(&invitations[i], s.inviteLink(invitations[i].Token)))
	}
	return out, nil
}

// Accept consumes the invitation and creates the member account in the
// inviting organization.
func (s *invitationService) Accept(token string, req *dto.AcceptInvitationDTO) (*model.User, error) {
	invitation, err := s.invitations.FindByToken(token)
	if err != nil {
		return nil, err
	}
	if invitation.Status != model.InvitationPending {
		return nil, ErrInvitationUsed
	}
	if _, err := s.users.FindByEmail(invitation.Email); err == nil {
		return nil, ErrEmailTaken
	}

	user := &model.User{
		Email:          invitation.Email,
		DisplayName:    strings.TrimSpace(req.DisplayName),
		OrganizationID: invitation.OrganizationID,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	invitation.Status = model.InvitationAccepted
	if err := s.invitations.Update(invitation); err != nil {
		log.Error().Err(err).Uint("invitation_id", invitation.ID).
			Msg("User created but invitation status update failed")
	}
	log.Info().Uint("user_id", user.ID).Uint("org_id", user.OrganizationID).Msg("Invitation accepted")
	return user, nil
}

func (s *invitationService) inviteLink(token string) string {
	return fmt.Sprintf("%s/invitations/%s", s.cfg.App.BaseURL, token)
}

func toInvitationResponse(invitation *model.Invitation, inviteURL string) *dto.InvitationResponseDTO {
	return &dto.InvitationResponseDTO{
		ID:         invitation.ID,
		Email:      invitation.Email,
		Status:     invitation.Status,
		InviteLink: inviteURL,
		CreatedAt:  invitation.CreatedAt,
	}
}
