package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrTourNotFound            = errors.New("tour not found")
	ErrAvailabilityNotFound    = errors.New("availability not found")
	ErrBookingNotFound         = errors.New("booking not found")
	ErrPaymentNotFound         = errors.New("payment not found")
	ErrUserNotFound            = errors.New("user not found")
	ErrInsufficientSlots       = errors.New("insufficient slots")
	ErrBookingAlreadyCancelled = errors.New("booking already cancelled")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrTourHasConfirmedBookings = errors.New("tour has confirmed bookings")
	ErrReviewNotAllowed        = errors.New("review requires a confirmed booking")
	ErrPermissionDenied        = errors.New("permission denied")
	ErrValidation              = errors.New("validation failed")
	ErrInvalidInput            = errors.New("invalid input")
	ErrInternalServerError     = errors.New("internal server error")
)

// ValidationError 帶欄位與原因的驗證錯誤，errors.Is(err, ErrValidation) 成立
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
