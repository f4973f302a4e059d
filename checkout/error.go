package checkout

import (
	"errors"
	"fmt"
)

// InvalidAddressError is returned when a shipping address fails validation
type InvalidAddressError struct {
	Field  string
	Reason string
}

// Error implements the error interface for InvalidAddressError
func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid address: field=%s, reason=%s", e.Field, e.Reason)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidAddressError) Is(target error) bool {
	_, ok := target.(*InvalidAddressError)
	return ok
}

// InvalidPromoError is returned for an unknown promo code
type InvalidPromoError struct {
	Code string
}

// Error implements the error interface for InvalidPromoError
func (e *InvalidPromoError) Error() string {
	return fmt.Sprintf("invalid promo code: %s", e.Code)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidPromoError) Is(target error) bool {
	_, ok := target.(*InvalidPromoError)
	return ok
}

// NewInvalidAddressError creates a new InvalidAddressError
func NewInvalidAddressError(field, reason string) error {
	return &InvalidAddressError{Field: field, Reason: reason}
}

// NewInvalidPromoError creates a new InvalidPromoError
func NewInvalidPromoError(code string) error {
	return &InvalidPromoError{Code: code}
}

// IsInvalidAddressError checks if an error is an InvalidAddressError
func IsInvalidAddressError(err error) bool {
	var iae *InvalidAddressError
	return errors.As(err, &iae)
}

// IsInvalidPromoError checks if an error is an InvalidPromoError
func IsInvalidPromoError(err error) bool {
	var ipe *InvalidPromoError
	return errors.As(err, &ipe)
}
