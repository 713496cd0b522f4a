package public

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/imilab/chartme/internal/dto"
)

// Stripe sends at most 64KB payloads; anything larger is not ours.
const maxWebhookBody = 65536

// StripeWebhookHandler godoc
// @Summary Stripe event webhook
// @Description Verifies the Stripe-Signature header and applies subscription plan changes. This is the only place plans ever change.
// @Tags billing
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse "Bad payload or signature"
// @Router /stripe/webhook [post]
func (ctrl *Controller) StripeWebhookHandler(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Failed to read payload"})
		return
	}

	if err := ctrl.billingSvc.HandleWebhook(payload, c.GetHeader("Stripe-Signature")); err != nil {
		log.Error().Err(err).Msg("Stripe webhook rejected")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": "true"})
}
