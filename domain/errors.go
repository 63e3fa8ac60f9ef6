package domain

import "errors"

// Validation outcomes surfaced by the ledger and entity constructors. All are
// local rejections; none partially applies.
var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrUnknownReference     = errors.New("unknown reference")
)

// UnknownName is the display placeholder for a dangling medicine, customer or
// supplier reference. Lookups degrade to it instead of failing.
const UnknownName = "Unknown"
