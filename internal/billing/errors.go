package billing

import "errors"

// Sentinel errors so callers can map billing failures to user-facing
// responses without string matching.
var (
	// ErrInsufficientStock - requested line quantity exceeds the product's stock.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidBillRequest - missing customer, empty cart, or an unusable
	// payment amount at finalize time.
	ErrInvalidBillRequest = errors.New("invalid bill request")

	// ErrCreditLimitExceeded - the bill's due amount would push the customer
	// past their credit limit. Soft: finalize proceeds when the caller sets
	// the override flag.
	ErrCreditLimitExceeded = errors.New("credit limit exceeded")

	// ErrInvalidQuantity - line quantity below 1.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)
