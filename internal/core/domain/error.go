package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrNoUpdatedData   = errors.New("no data to update")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrExpiredToken               = errors.New("access token has expired")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrInvalidCredentials         = errors.New("invalid email or password")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrUnauthorized               = errors.New("user is unauthorized to access the resource")
	ErrForbidden                  = errors.New("user is forbidden to access the resource")

	// * Business errors.
	ErrOrderNotPurchasable = errors.New("order status forbids purchase")
	ErrInsufficientStock   = errors.New("not enough stock for product")
	ErrNoGatewayIntent     = errors.New("no gateway intent associated with this payment")
	ErrDiscountCodeInvalid = errors.New("discount code is not valid")
	ErrReviewDuplicate     = errors.New("product already reviewed by user")

	// * External processor errors.
	ErrGatewayRejected    = errors.New("payment gateway rejected the request")
	ErrGatewayUnavailable = errors.New("payment gateway is unavailable")
	ErrSignatureInvalid   = errors.New("webhook signature verification failed")
)

// OrderStateError reports the order status that forbade a purchase attempt.
func OrderStateError(status OrderStatus) error {
	return fmt.Errorf("%w: order is in status %s", ErrOrderNotPurchasable, status)
}

// StockError names the product and the shortfall.
func StockError(productName string, requested, inStock int64) error {
	return fmt.Errorf("%w: %s requires %d, in stock %d",
		ErrInsufficientStock, productName, requested, inStock)
}
