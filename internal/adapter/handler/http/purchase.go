package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/velmart/storefront/internal/core/port"
	"go.uber.org/zap"
)

type PurchaseHandler struct {
	Handler
	service port.PurchaseService
}

func NewPurchaseHandler(service port.PurchaseService, logger *zap.Logger) (*PurchaseHandler, error) {
	return &PurchaseHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type purchaseRequest struct {
	PaymentMethodID   string  `json:"paymentMethodId" binding:"required"`
	DiscountCode      string  `json:"discountCode"`
	ShippingAddressID *uint64 `json:"shippingAddressId"`
}

type checkoutResponse struct {
	PaymentID    uint64          `json:"paymentId"`
	ClientSecret string          `json:"clientSecret"`
	Amount       decimal.Decimal `json:"amount"`
	Discount     decimal.Decimal `json:"discount"`
	ShippingCost decimal.Decimal `json:"shippingCost"`
	Tax          decimal.Decimal `json:"tax"`
}

// InitiatePurchase prices the order and opens a payment intent against the
// gateway. The returned client secret drives client-side confirmation.
func (ph *PurchaseHandler) InitiatePurchase(ctx *gin.Context) {
	orderID, err := strconv.ParseUint(ctx.Param("orderID"), 10, 64)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	req := purchaseRequest{}
	err = ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	result, err := ph.service.InitiatePurchase(ctx, port.PurchaseRequest{
		OrderID:           orderID,
		UserID:            getAuthPayload(ctx).UserID,
		PaymentMethod:     req.PaymentMethodID,
		DiscountCode:      req.DiscountCode,
		ShippingAddressID: req.ShippingAddressID,
	})
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccessWithStatus(ctx, checkoutResponse{
		PaymentID:    result.PaymentID,
		ClientSecret: result.ClientSecret,
		Amount:       result.Amount,
		Discount:     result.Discount,
		ShippingCost: result.ShippingCost,
		Tax:          result.Tax,
	}, http.StatusCreated)
}

type confirmRequest struct {
	PaymentID       uint64 `json:"paymentId" binding:"required"`
	PaymentMethodID string `json:"paymentMethodId" binding:"required"`
}

type confirmResponse struct {
	GatewayStatus string `json:"gatewayStatus"`
	PaymentStatus string `json:"paymentStatus"`
	OrderStatus   string `json:"orderStatus"`
}

// ConfirmPayment drives a server-side confirmation of an open intent. The
// webhook remains the source of truth; this endpoint reflects the gateway's
// synchronous answer.
func (ph *PurchaseHandler) ConfirmPayment(ctx *gin.Context) {
	req := confirmRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	result, err := ph.service.ConfirmPayment(ctx, req.PaymentID, req.PaymentMethodID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, confirmResponse{
		GatewayStatus: string(result.GatewayStatus),
		PaymentStatus: string(result.PaymentStatus),
		OrderStatus:   string(result.OrderStatus),
	})
}
