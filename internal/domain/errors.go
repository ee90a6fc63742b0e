package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Construction errors
	ErrMsgInvalidDivisor = "swing time must be nonzero"
	ErrMsgPriceOverflow  = "price exceeds currency range"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrInvalidDivisor is returned when a sword is built with a zero swing time
	ErrInvalidDivisor = errors.New(ErrMsgInvalidDivisor)

	// ErrPriceOverflow is returned when the price formula would leave uint16
	ErrPriceOverflow = errors.New(ErrMsgPriceOverflow)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
