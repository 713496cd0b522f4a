package public

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/imilab/chartme/internal/dto"
	"github.com/imilab/chartme/internal/service"
	"github.com/imilab/chartme/internal/session"
)

// Controller serves the candidate-facing API: anonymous access to active
// tests by link, the test-taking session flow, shared progress reports and
// invitation acceptance. Correct answers never leave this surface.
type Controller struct {
	sessionSvc    service.CandidateSessionService
	reportSvc     service.ReportService
	invitationSvc service.InvitationService
	billingSvc    service.BillingService
}

func NewController(
	sessionSvc service.CandidateSessionService,
	reportSvc service.ReportService,
	invitationSvc service.InvitationService,
	billingSvc service.BillingService,
) *Controller {
	return &Controller{
		sessionSvc:    sessionSvc,
		reportSvc:     reportSvc,
		invitationSvc: invitationSvc,
		billingSvc:    billingSvc,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1/public")
	{
		tests := api.Group("/tests")
		tests.GET("/:link", ctrl.GetTestHandler)
		tests.POST("/:link/sessions", ctrl.StartSessionHandler)

		sessions := api.Group("/sessions")
		sessions.GET("/:token", ctrl.GetStateHandler)
		sessions.POST("/:token/answer", ctrl.AnswerHandler)
		sessions.POST("/:token/advance", ctrl.AdvanceHandler)
		sessions.POST("/:token/retreat", ctrl.RetreatHandler)
		sessions.POST("/:token/jump", ctrl.JumpHandler)
		sessions.POST("/:token/submit", ctrl.SubmitHandler)

		api.GET("/reports/:share_token", ctrl.GetReportHandler)
		api.POST("/invitations/:token/accept", ctrl.AcceptInvitationHandler)
	}

	router.POST("/api/v1/stripe/webhook", ctrl.StripeWebhookHandler)
}

// GetTestHandler godoc
// @Summary View a test by its public link
// @Description Metadata only; questions are revealed one at a time once a session starts, and never include correct answers.
// @Tags public
// @Produce json
// @Param link path string true "Test link"
// @Success 200 {object} dto.PublicTestDTO
// @Failure 404 {object} dto.ErrorResponse "No active test behind this link"
// @Router /public/tests/{link} [get]
func (ctrl *Controller) GetTestHandler(c *gin.Context) {
	resp, err := ctrl.sessionSvc.GetPublicTest(c.Param("link"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Test not found"})
			return
		}
		log.Error().Err(err).Str("link", c.Param("link")).Msg("Failed to resolve test link")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to load test"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// StartSessionHandler godoc
// @Summary Start a test-taking session
// @Description Validates the candidate's name and email, starts the countdown on timed tests and returns the first question. If the candidate has an active training path on this test, the attempt is recorded against it.
// @Tags public
// @Accept json
// @Produce json
// @Param link path string true "Test link"
// @Param request body dto.SessionStartDTO true "Candidate identity"
// @Success 201 {object} dto.SessionStateDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid candidate fields"
// @Failure 404 {object} dto.ErrorResponse "No active test behind this link"
// @Router /public/tests/{link}/sessions [post]
func (ctrl *Controller) StartSessionHandler(c *gin.Context) {
	var req dto.SessionStartDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	state, err := ctrl.sessionSvc.StartSession(c.Param("link"), &req)
	if err != nil {
		writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, state)
}

// GetStateHandler godoc
// @Summary Get the current session state
// @Tags public
// @Produce json
// @Param token path string true "Session token"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 404 {object} dto.ErrorResponse "Unknown or expired session"
// @Router /public/sessions/{token} [get]
func (ctrl *Controller) GetStateHandler(c *gin.Context) {
	state, err := ctrl.sessionSvc.GetState(c.Param("token"))
	if err != nil {
		writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// AnswerHandler godoc
// @Summary Answer the current question
// @Description Records an option for the current question without moving. Re-answering overwrites the previous choice.
// @Tags public
// @Accept json
// @Produce json
// @Param token path string true "Session token"
// @Param request body dto.SessionAnswerDTO true "Zero-based option index"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 400 {object} dto.ErrorResponse "Option out of range"
// @Failure 404 {object} dto.ErrorResponse "Unknown or expired session"
// @Failure 409 {object} dto.ErrorResponse "Session is not in progress"
// @Router /public/sessions/{token}/answer [post]
func (ctrl *Controller) AnswerHandler(c *gin.Context) {
	var req dto.SessionAnswerDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	state, err := ctrl.sessionSvc.Answer(c.Param("token"), *req.Option)
	if err != nil {
		writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// AdvanceHandler godoc
// @Summary Move to the next question
// @Description Rejected while the current question is unanswered and on the last question.
// @Tags public
// @Produce json
// @Param token path string true "Session token"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 400 {object} dto.ErrorResponse "Current question unanswered or already on the last question"
// @Failure 404 {object} dto.ErrorResponse "Unknown or expired session"
// @Router /public/sessions/{token}/advance [post]
func (ctrl *Controller) AdvanceHandler(c *gin.Context) {
	state, err := ctrl.sessionSvc.Advance(c.Param("token"))
	if err != nil {
		writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// RetreatHandler godoc
// @Summary Move back to the previous question
// @Tags public
// @Produce json
// @Param token path string true "Session token"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 400 {object} dto.ErrorResponse "Already on the first question"
// @Failure 404 {object} dto.ErrorResponse "Unknown or expired session"
// @Router /public/sessions/{token}/retreat [post]
func (ctrl *Controller) RetreatHandler(c *gin.Context) {
	state, err := ctrl.sessionSvc.Retreat(c.Param("token"))
	if err != nil {
		writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// JumpHandler godoc
// @Summary Jump to any question
// @Description Moves the cursor directly to the given index, answered or not. Used by the question-overview picker.
// @Tags public
// @Accept json
// @Produce json
// @Param token path string true "Session token"
// @Param request body dto.SessionJumpDTO true "Zero-based question index"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 400 {object} dto.ErrorResponse "Index out of range"
// @Failure 404 {object} dto.ErrorResponse "Unknown or expired session"
// @Router /public/sessions/{token}/jump [post]
func (ctrl *Controller) JumpHandler(c *gin.Context) {
	var req dto.SessionJumpDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	state, err := ctrl.sessionSvc.Jump(c.Param("token"), *req.Index)
	if err != nil {
		writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// SubmitHandler godoc
// @Summary Submit the session
// @Description Rejected while any question is unanswered. On success the submission is scored and persisted, and the session cannot be submitted again.
// @Tags public
// @Produce json
// @Param token path string true "Session token"
// @Success 200 {object} dto.SessionResultDTO
// @Failure 400 {object} dto.ErrorResponse "Unanswered questions remain"
// @Failure 404 {object} dto.ErrorResponse "Unknown or expired session"
// @Failure 409 {object} dto.ErrorResponse "Session already submitted"
// @Router /public/sessions/{token}/submit [post]
func (ctrl *Controller) SubmitHandler(c *gin.Context) {
	result, err := ctrl.sessionSvc.Submit(c.Param("token"))
	if err != nil {
		writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetReportHandler godoc
// @Summary View a shared progress report
// @Description Read-only view behind the training path's share token. The question-level comparison appears once both attempts are complete.
// @Tags public
// @Produce json
// @Param share_token path string true "Share token"
// @Success 200 {object} dto.ReportDTO
// @Failure 404 {object} dto.ErrorResponse "Unknown share token"
// @Router /public/reports/{share_token} [get]
func (ctrl *Controller) GetReportHandler(c *gin.Context) {
	resp, err := ctrl.reportSvc.GetByShareToken(c.Param("share_token"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Report not found"})
			return
		}
		log.Error().Err(err).Msg("Failed to build report")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to build report"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AcceptInvitationHandler godoc
// @Summary Accept an organization invitation
// @Tags public
// @Accept json
// @Produce json
// @Param token path string true "Invitation token"
// @Param request body dto.AcceptInvitationDTO true "New member's display name"
// @Success 201 {object} model.User
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Unknown invitation token"
// @Failure 409 {object} dto.ErrorResponse "Invitation already used or email taken"
// @Router /public/invitations/{token}/accept [post]
func (ctrl *Controller) AcceptInvitationHandler(c *gin.Context) {
	var req dto.AcceptInvitationDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := ctrl.invitationSvc.Accept(c.Param("token"), &req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Invitation not found"})
		case errors.Is(err, service.ErrInvitationUsed), errors.Is(err, service.ErrEmailTaken):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
		default:
			log.Error().Err(err).Msg("Failed to accept invitation")
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to accept invitation"})
		}
		return
	}
	c.JSON(http.StatusCreated, user)
}

// writeSessionError maps the session engine's guard errors onto HTTP codes:
// bad input is 400, acting on a session in the wrong phase is 409, and an
// unknown token or link is 404.
func writeSessionError(c *gin.Context, err error) {
	var verr *session.ValidationError
	var ierr *session.IncompleteError
	switch {
	case errors.Is(err, session.ErrSessionNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Not found"})
	case errors.As(err, &verr), errors.As(err, &ierr),
		errors.Is(err, session.ErrNoAnswer),
		errors.Is(err, session.ErrFirstQuestion),
		errors.Is(err, session.ErrLastQuestion):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, session.ErrAlreadySubmitted),
		errors.Is(err, session.ErrAlreadyStarted),
		errors.Is(err, session.ErrNotInProgress):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	default:
		log.Error().Err(err).Msg("Session operation failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Session operation failed"})
	}
}
