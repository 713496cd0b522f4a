package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/imilab/chartme/internal/dto"
	"github.com/imilab/chartme/internal/service"
)

// CreateInvitationHandler godoc
// @Summary Invite a member into the organization
// @Description Creates a single-use invitation token and emails the invite link.
// @Tags invitations
// @Accept json
// @Produce json
// @Param X-Organization-ID header int true "Organization scope"
// @Param request body dto.InvitationCreateDTO true "Invitee"
// @Success 201 {object} dto.InvitationResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 409 {object} dto.ErrorResponse "A pending invitation already exists"
// @Router /admin/invitations [post]
func (ctrl *Controller) CreateInvitationHandler(c *gin.Context) {
	org, ok := orgID(c)
	if !ok {
		return
	}
	var req dto.InvitationCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.invitationSvc.Invite(org, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvitationPending):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Organization not found"})
		default:
			log.Error().Err(err).Msg("Failed to create invitation")
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create invitation"})
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListInvitationsHandler godoc
// @Summary List the organization's invitations
// @Tags invitations
// @Produce json
// @Param X-Organization-ID header int true "Organization scope"
// @Success 200 {array} dto.InvitationResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/invitations [get]
func (ctrl *Controller) ListInvitationsHandler(c *gin.Context) {
	org, ok := orgID(c)
	if !ok {
		return
	}
	invitations, err := ctrl.invitationSvc.ListInvitations(org)
	if err != nil {
		log.Error().Err(err).Uint("org_id", org).Msg("Failed to list invitations")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve invitations"})
		return
	}
	c.JSON(http.StatusOK, invitations)
}
