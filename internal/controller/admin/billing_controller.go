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

// CreateCheckoutHandler godoc
// @Summary Start a pro-plan checkout
// @Description Creates a Stripe Checkout session for the pro subscription and returns its hosted URL. The plan change itself lands through the webhook.
// @Tags billing
// @Accept json
// @Produce json
// @Param X-Organization-ID header int true "Organization scope"
// @Param request body dto.CheckoutCreateDTO true "Billing contact"
// @Success 200 {object} dto.CheckoutResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 502 {object} dto.ErrorResponse "Stripe unavailable"
// @Router /admin/billing/checkout [post]
func (ctrl *Controller) CreateCheckoutHandler(c *gin.Context) {
	org, ok := orgID(c)
	if !ok {
		return
	}
	var req dto.CheckoutCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.billingSvc.CreateCheckoutSession(org, req.UserEmail)
	if err != nil {
		ctrl.writeBillingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreatePortalHandler godoc
// @Summary Open the Stripe billing portal
// @Description Returns the hosted portal URL where the organization manages or cancels its subscription.
// @Tags billing
// @Produce json
// @Param X-Organization-ID header int true "Organization scope"
// @Success 200 {object} dto.PortalResponseDTO
// @Failure 409 {object} dto.ErrorResponse "Organization has never checked out"
// @Failure 502 {object} dto.ErrorResponse "Stripe unavailable"
// @Router /admin/billing/portal [post]
func (ctrl *Controller) CreatePortalHandler(c *gin.Context) {
	org, ok := orgID(c)
	if !ok {
		return
	}
	resp, err := ctrl.billingSvc.CreatePortalSession(org)
	if err != nil {
		ctrl.writeBillingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (ctrl *Controller) writeBillingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBillingUnavailable):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNoStripeCustomer):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Organization not found"})
	default:
		log.Error().Err(err).Msg("Billing operation failed")
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "Billing operation failed"})
	}
}
