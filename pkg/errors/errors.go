package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrDonationNotFound = errors.New("donation not found")
	ErrProjectNotFound  = errors.New("project not found")
	ErrProjectExists    = errors.New("project already exists")
	ErrInvalidAmount    = errors.New("invalid donation amount")
	ErrAmountBelowMin   = errors.New("donation amount below minimum")
	ErrDuplicateEvent   = errors.New("payment event already processed")
	ErrInvalidEvent     = errors.New("invalid payment event")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeDonationNotFound = "DONATION_NOT_FOUND"
	ErrCodeProjectNotFound  = "PROJECT_NOT_FOUND"
	ErrCodeProjectExists    = "PROJECT_ALREADY_EXISTS"
	ErrCodeInvalidAmount    = "INVALID_AMOUNT"
	ErrCodeAmountBelowMin   = "AMOUNT_BELOW_MINIMUM"
	ErrCodeDuplicateEvent   = "DUPLICATE_EVENT"
	ErrCodeInvalidEvent     = "INVALID_EVENT"
	ErrCodeDatabaseError    = "DATABASE_ERROR"
	ErrCodeCacheError       = "CACHE_ERROR"
)

// Wrap common errors with business context
func WrapDonationNotFound(ref string) *BusinessError {
	return NewBusinessError(
		ErrCodeDonationNotFound,
		fmt.Sprintf("Donation %s not found", ref),
		ErrDonationNotFound,
	)
}

func WrapProjectNotFound(ref string) *BusinessError {
	return NewBusinessError(
		ErrCodeProjectNotFound,
		fmt.Sprintf("Project %s not found", ref),
		ErrProjectNotFound,
	)
}

func WrapProjectExists(slug string) *BusinessError {
	return NewBusinessError(
		ErrCodeProjectExists,
		fmt.Sprintf("Project with slug %s already exists", slug),
		ErrProjectExists,
	)
}

func WrapAmountBelowMin(amount, min string) *BusinessError {
	return NewBusinessError(
		ErrCodeAmountBelowMin,
		fmt.Sprintf("Donation amount %s is below the minimum of %s", amount, min),
		ErrAmountBelowMin,
	)
}

func WrapInvalidEvent(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidEvent,
		"Payment event could not be parsed",
		err,
	)
}

func WrapDuplicateEvent(eventID string) *BusinessError {
	return NewBusinessError(
		ErrCodeDuplicateEvent,
		fmt.Sprintf("Payment event %s was already processed", eventID),
		ErrDuplicateEvent,
	)
}

func WrapDatabaseError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDatabaseError,
		"database operation failed",
		err,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"Cache operation failed",
		err,
	)
}
