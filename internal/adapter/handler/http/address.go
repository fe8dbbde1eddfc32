package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/velmart/storefront/internal/core/domain"
	"github.com/velmart/storefront/internal/core/port"
	"go.uber.org/zap"
)

type AddressHandler struct {
	Handler
	service port.AddressService
}

func NewAddressHandler(service port.AddressService, logger *zap.Logger) (*AddressHandler, error) {
	return &AddressHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type addressRequest struct {
	Label    string `json:"label"`
	Address1 string `json:"address1" binding:"required"`
	Address2 string `json:"address2"`
	City     string `json:"city" binding:"required"`
	State    string `json:"state"`
	Zipcode  string `json:"zipcode" binding:"required"`
	Country  string `json:"country" binding:"required"`
}

type addressResponse struct {
	ID       uint64 `json:"id"`
	UserID   uint64 `json:"userId"`
	Label    string `json:"label,omitempty"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city"`
	State    string `json:"state,omitempty"`
	Zipcode  string `json:"zipcode"`
	Country  string `json:"country"`
}

func newAddressResponse(a *domain.Address) addressResponse {
	return addressResponse{
		ID:       a.ID,
		UserID:   a.UserID,
		Label:    a.Label,
		Address1: a.Address1,
		Address2: a.Address2,
		City:     a.City,
		State:    a.State,
		Zipcode:  a.Zipcode,
		Country:  a.Country,
	}
}

func (ah *AddressHandler) CreateAddress(ctx *gin.Context) {
	req := addressRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		ah.handleValidationError(ctx, err)
		return
	}

	address := &domain.Address{
		UserID:   getAuthPayload(ctx).UserID,
		Label:    req.Label,
		Address1: req.Address1,
		Address2: req.Address2,
		City:     req.City,
		State:    req.State,
		Zipcode:  req.Zipcode,
		Country:  req.Country,
	}

	newAddress, err := ah.service.CreateAddress(ctx, address)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}
	ah.handleSuccessWithStatus(ctx, newAddressResponse(newAddress), http.StatusCreated)
}

func (ah *AddressHandler) ListAddresses(ctx *gin.Context) {
	list, err := ah.service.ListAddressesByUser(ctx, getAuthPayload(ctx).UserID)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	result := make([]addressResponse, 0, len(list))
	for _, a := range list {
		result = append(result, newAddressResponse(a))
	}
	ah.handleSuccess(ctx, result)
}

func (ah *AddressHandler) GetAddress(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ah.handleValidationError(ctx, err)
		return
	}

	payload := getAuthPayload(ctx)
	address, err := ah.service.GetAddress(ctx, id, payload.UserID, payload.Role)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}
	ah.handleSuccess(ctx, newAddressResponse(address))
}

func (ah *AddressHandler) UpdateAddress(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ah.handleValidationError(ctx, err)
		return
	}

	req := addressRequest{}
	err = ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		ah.handleValidationError(ctx, err)
		return
	}

	address := &domain.Address{
		ID:       id,
		UserID:   getAuthPayload(ctx).UserID,
		Label:    req.Label,
		Address1: req.Address1,
		Address2: req.Address2,
		City:     req.City,
		State:    req.State,
		Zipcode:  req.Zipcode,
		Country:  req.Country,
	}

	updated, err := ah.service.UpdateAddress(ctx, address)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}
	ah.handleSuccess(ctx, newAddressResponse(updated))
}

func (ah *AddressHandler) DeleteAddress(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ah.handleValidationError(ctx, err)
		return
	}

	err = ah.service.DeleteAddress(ctx, id, getAuthPayload(ctx).UserID)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}
	ah.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}
