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

// CreateTrainingPathHandler godoc
// @Summary Schedule a training path
// @Description Plan a positionnement and an evaluation session for a candidate on a test. The candidate is emailed the schedule and the test link.
// @Tags training-paths
// @Accept json
// @Produce json
// @Param X-Organization-ID header int true "Organization scope"
// @Param request body dto.TrainingPathCreateDTO true "Path definition"
// @Success 201 {object} dto.TrainingPathResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or dates"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 409 {object} dto.ErrorResponse "Candidate already has an active path on this test"
// @Router /admin/training-paths [post]
func (ctrl *Controller) CreateTrainingPathHandler(c *gin.Context) {
	org, ok := orgID(c)
	if !ok {
		return
	}
	var req dto.TrainingPathCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.pathSvc.CreatePath(org, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPathAlreadyActive):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Test not found"})
		default:
			log.Error().Err(err).Msg("Failed to create training path")
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListTrainingPathsHandler godoc
// @Summary List the organization's training paths
// @Tags training-paths
// @Produce json
// @Param X-Organization-ID header int true "Organization scope"
// @Success 200 {array} dto.TrainingPathResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/training-paths [get]
func (ctrl *Controller) ListTrainingPathsHandler(c *gin.Context) {
	org, ok := orgID(c)
	if !ok {
		return
	}
	paths, err := ctrl.pathSvc.ListPaths(org)
	if err != nil {
		log.Error().Err(err).Uint("org_id", org).Msg("Failed to list training paths")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve training paths"})
		return
	}
	c.JSON(http.StatusOK, paths)
}

// GetTrainingPathHandler godoc
// @Summary Get one training path
// @Tags training-paths
// @Produce json
// @Param X-Organization-ID header int true "Organization scope"
// @Param id path int true "Training path ID"
// @Success 200 {object} dto.TrainingPathResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Training path not found"
// @Router /admin/training-paths/{id} [get]
func (ctrl *Controller) GetTrainingPathHandler(c *gin.Context) {
	org, ok := orgID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.pathSvc.GetPath(org, id)
	if err != nil {
		ctrl.writeTestError(c, err, "Failed to get training path")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CancelTrainingPathHandler godoc
// @Summary Cancel a training path
// @Description Later attempts by the candidate fall back to free sessions; completed slots keep their history.
// @Tags training-paths
// @Produce json
// @Param X-Organization-ID header int true "Organization scope"
// @Param id path int true "Training path ID"
// @Success 200 {object} dto.TrainingPathResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Training path not found"
// @Router /admin/training-paths/{id}/cancel [post]
func (ctrl *Controller) CancelTrainingPathHandler(c *gin.Context) {
	org, ok := orgID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.pathSvc.CancelPath(org, id)
	if err != nil {
		ctrl.writeTestError(c, err, "Failed to cancel training path")
		return
	}
	c.JSON(http.StatusOK, resp)
}
