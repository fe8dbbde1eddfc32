package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/velmart/storefront/internal/core/port"
	"go.uber.org/zap"
)

const signatureHeaderKey = "Stripe-Signature"

type WebhookHandler struct {
	Handler
	service port.PurchaseService
}

func NewWebhookHandler(service port.PurchaseService, logger *zap.Logger) (*WebhookHandler, error) {
	return &WebhookHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type webhookAck struct {
	Received bool `json:"received"`
}

// HandleGatewayEvent receives asynchronous notifications from the payment
// processor. The raw body must reach signature verification untouched, so it
// is read before any binding.
func (wh *WebhookHandler) HandleGatewayEvent(ctx *gin.Context) {
	payload, err := ctx.GetRawData()
	if err != nil {
		wh.handleValidationError(ctx, err)
		return
	}

	err = wh.service.HandleGatewayEvent(ctx, payload, ctx.GetHeader(signatureHeaderKey))
	if err != nil {
		wh.handleError(ctx, err)
		return
	}

	wh.handleSuccessWithStatus(ctx, webhookAck{Received: true}, http.StatusOK)
}
