package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/imilab/chartme/internal/dto"
	"github.com/imilab/chartme/internal/service"
)

// Controller serves the organization dashboard API. Every route is scoped by
// the X-Organization-ID header set by the auth proxy in front of this service.
type Controller struct {
	generationSvc service.GenerationService
	testSvc       service.AdminTestService
	pathSvc       service.TrainingPathService
	invitationSvc service.InvitationService
	billingSvc    service.BillingService
}

func NewController(
	generationSvc service.GenerationService,
	testSvc service.AdminTestService,
	pathSvc service.TrainingPathService,
	invitationSvc service.InvitationService,
	billingSvc service.BillingService,
) *Controller {
	return &Controller{
		generationSvc: generationSvc,
		testSvc:       testSvc,
		pathSvc:       pathSvc,
		invitationSvc: invitationSvc,
		billingSvc:    billingSvc,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1/admin")
	{
		tests := api.Group("/tests")
		tests.POST("/generate", ctrl.GenerateQuestionsHandler)
		tests.POST("", ctrl.CreateTestHandler)
		tests.GET("", ctrl.ListTestsHandler)
		tests.GET("/:id", ctrl.GetTestHandler)
		tests.PATCH("/:id/active", ctrl.SetActiveHandler)
		tests.POST("/:id/duplicate", ctrl.DuplicateTestHandler)
		tests.GET("/:id/submissions", ctrl.ListSubmissionsHandler)

		api.GET("/submissions/:id", ctrl.GetSubmissionHandler)

		paths := api.Group("/training-paths")
		paths.POST("", ctrl.CreateTrainingPathHandler)
		paths.GET("", ctrl.ListTrainingPathsHandler)
		paths.GET("/:id", ctrl.GetTrainingPathHandler)
		paths.POST("/:id/cancel", ctrl.CancelTrainingPathHandler)

		invitations := api.Group("/invitations")
		invitations.POST("", ctrl.CreateInvitationHandler)
		invitations.GET("", ctrl.ListInvitationsHandler)

		billing := api.Group("/billing")
		billing.POST("/checkout", ctrl.CreateCheckoutHandler)
		billing.POST("/portal", ctrl.CreatePortalHandler)
	}
}

// orgID extracts the organization scope from the request, writing a 400 when
// the header is missing or malformed.
func orgID(c *gin.Context) (uint, bool) {
	raw := c.GetHeader("X-Organization-ID")
	if raw == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing X-Organization-ID header"})
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid X-Organization-ID header"})
		return 0, false
	}
	return uint(id), true
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(id), true
}

// GenerateQuestionsHandler godoc
// @Summary Generate draft questions with AI
// @Description Produce multiple-choice question drafts for a topic. Nothing is saved; the admin reviews the drafts and creates the test explicitly.
// @Tags tests
// @Accept json
// @Produce json
// @Param X-Organization-ID header int true "Organization scope"
// @Param request body dto.GenerateQuestionsDTO true "Generation parameters"
// @Success 200 {object} dto.GenerateQuestionsResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 502 {object} dto.ErrorResponse "Generator unavailable or returned unusable output"
// @Router /admin/tests/generate [post]
func (ctrl *Controller) GenerateQuestionsHandler(c *gin.Context) {
	if _, ok := orgID(c); !ok {
		return
	}
	var req dto.GenerateQuestionsDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	questions, err := ctrl.generationSvc.GenerateQuestions(c.Request.Context(), req.Topic, req.NumberOfQuestions, req.Difficulty)
	if err != nil {
		log.Error().Err(err).Str("topic", req.Topic).Msg("Question generation failed")
		if errors.Is(err, service.ErrGenerationUnavailable) || errors.Is(err, service.ErrBadGeneration) {
			c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "Question generation failed"})
		return
	}
	c.JSON(http.StatusOK, dto.GenerateQuestionsResponseDTO{Questions: questions})
}

// CreateTestHandler godoc
// @Summary Create a test
// @Description Publish a test with its reviewed questions. Free organizations are limited in how many tests they can create.
// @Tags tests
// @Accept json
// @Produce json
// @Param X-Organization-ID header int true "Organization scope"
// @Param test body dto.TestCreateDTO true "Test definition"
// @Success 201 {object} dto.TestResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 402 {object} dto.ErrorResponse "Plan limit reached"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/tests [post]
func (ctrl *Controller) CreateTestHandler(c *gin.Context) {
	org, ok := orgID(c)
	if !ok {
		return
	}
	var req dto.TestCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.testSvc.CreateTest(org, &req)
	if err != nil {
		ctrl.writeTestError(c, err, "Failed to create test")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListTestsHandler godoc
// @Summary List the organization's tests
// @Tags tests
// @Produce json
// @Param X-Organization-ID header int true "Organization scope"
// @Success 200 {array} dto.TestSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/tests [get]
func (ctrl *Controller) ListTestsHandler(c *gin.Context) {
	org, ok := orgID(c)
	if !ok {
		return
	}
	tests, err := ctrl.testSvc.ListTests(org)
	if err != nil {
		log.Error().Err(err).Uint("org_id", org).Msg("Failed to list tests")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve tests"})
		return
	}
	c.JSON(http.StatusOK, tests)
}

// GetTestHandler godoc
// @Summary Get one test with its questions
// @Tags tests
// @Produce json
// @Param X-Organization-ID header int true "Organization scope"
// @Param id path int true "Test ID"
// @Success 200 {object} dto.TestResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /admin/tests/{id} [get]
func (ctrl *Controller) GetTestHandler(c *gin.Context) {
	org, ok := orgID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.testSvc.GetTest(org, id)
	if err != nil {
		ctrl.writeTestError(c, err, "Failed to get test")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SetActiveHandler godoc
// @Summary Activate or deactivate a test
// @Description A deactivated test keeps its history but its public link stops resolving.
// @Tags tests
// @Accept json
// @Produce json
// @Param X-Organization-ID header int true "Organization scope"
// @Param id path int true "Test ID"
// @Param request body dto.ToggleActiveDTO true "Target activation state"
// @Success 200 {object} dto.TestResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /admin/tests/{id}/active [patch]
func (ctrl *Controller) SetActiveHandler(c *gin.Context) {
	org, ok := orgID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ToggleActiveDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.testSvc.SetActive(org, id, *req.IsActive)
	if err != nil {
		ctrl.writeTestError(c, err, "Failed to toggle test")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DuplicateTestHandler godoc
// @Summary Duplicate a test
// @Description Copy a test into a fresh inactive draft with a new public link. Counts against the plan limit.
// @Tags tests
// @Produce json
// @Param X-Organization-ID header int true "Organization scope"
// @Param id path int true "Test ID"
// @Success 201 {object} dto.TestResponseDTO
// @Failure 402 {object} dto.ErrorResponse "Plan limit reached"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /admin/tests/{id}/duplicate [post]
func (ctrl *Controller) DuplicateTestHandler(c *gin.Context) {
	org, ok := orgID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.testSvc.DuplicateTest(org, id)
	if err != nil {
		ctrl.writeTestError(c, err, "Failed to duplicate test")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListSubmissionsHandler godoc
// @Summary List submissions of a test
// @Tags submissions
// @Produce json
// @Param X-Organization-ID header int true "Organization scope"
// @Param id path int true "Test ID"
// @Success 200 {array} dto.SubmissionSummaryDTO
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /admin/tests/{id}/submissions [get]
func (ctrl *Controller) ListSubmissionsHandler(c *gin.Context) {
	org, ok := orgID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	subs, err := ctrl.testSvc.ListSubmissions(org, id)
	if err != nil {
		ctrl.writeTestError(c, err, "Failed to list submissions")
		return
	}
	c.JSON(http.StatusOK, subs)
}

// GetSubmissionHandler godoc
// @Summary Get one submission with question-level detail
// @Tags submissions
// @Produce json
// @Param X-Organization-ID header int true "Organization scope"
// @Param id path int true "Submission ID"
// @Success 200 {object} dto.SubmissionDetailDTO
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Router /admin/submissions/{id} [get]
func (ctrl *Controller) GetSubmissionHandler(c *gin.Context) {
	org, ok := orgID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.testSvc.GetSubmission(org, id)
	if err != nil {
		ctrl.writeTestError(c, err, "Failed to get submission")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (ctrl *Controller) writeTestError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrTestLimitReached):
		c.JSON(http.StatusPaymentRequired, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Not found"})
	default:
		log.Error().Err(err).Msg(msg)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msg})
	}
}
