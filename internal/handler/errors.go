package handler

import "github.com/gofiber/fiber/v3"

// ErrInvalidQueryParameters indicates that the request query string could not
// be parsed into the expected structure.
var ErrInvalidQueryParameters = fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")

// ErrPathRequired is returned when the path parameter is missing.
var ErrPathRequired = fiber.NewError(fiber.StatusBadRequest, "path is required")

// ErrPathTooShort is returned when the path holds fewer than two tokens.
var ErrPathTooShort = fiber.NewError(fiber.StatusBadRequest, "path must contain at least two tokens")

// ErrAmountRequired is returned when the amount parameter is missing.
var ErrAmountRequired = fiber.NewError(fiber.StatusBadRequest, "amount is required")

// ErrIdenticalTokensBadRequest maps an identical-token pair to a 400 error.
var ErrIdenticalTokensBadRequest = fiber.NewError(fiber.StatusBadRequest, "pair tokens cannot be the same")

// ErrZeroTokenBadRequest maps a zero-address pair member to a 400 error.
var ErrZeroTokenBadRequest = fiber.NewError(fiber.StatusBadRequest, "zero address is not a valid token")

// ErrInsufficientAmountBadRequest maps a zero trade amount to a 400 error.
var ErrInsufficientAmountBadRequest = fiber.NewError(fiber.StatusBadRequest, "amount must be greater than zero")

// ErrInsufficientLiquidityUnprocessable signals that the route is currently
// untradeable; the request was well-formed, so this is 422 rather than 400.
var ErrInsufficientLiquidityUnprocessable = fiber.NewError(fiber.StatusUnprocessableEntity, "insufficient liquidity on route")

// ErrLedgerQueryBadGateway maps a failed upstream ledger read to a 502 error.
var ErrLedgerQueryBadGateway = fiber.NewError(fiber.StatusBadGateway, "ledger query failed")

// ErrComputationFailedInternal signals a generic server-side routing error.
var ErrComputationFailedInternal = fiber.NewError(fiber.StatusInternalServerError, "route computation failed")

// NewInvalidAmount wraps an amount parsing error into a 400 Bad Request with
// a descriptive message.
func NewInvalidAmount(field string, err error) error {
	return fiber.NewError(fiber.StatusBadRequest, "invalid "+field+": "+err.Error())
}

// NewAddressRequired returns a 400 Bad Request for a missing address field.
func NewAddressRequired(field string) error {
	return fiber.NewError(fiber.StatusBadRequest, field+" address is required")
}

// NewInvalidAddress returns a 400 Bad Request for an invalid address format.
func NewInvalidAddress(field string) error {
	return fiber.NewError(fiber.StatusBadRequest, "invalid "+field+" address")
}
