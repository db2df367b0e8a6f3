// Package error defines domain-specific errors for the hotel ledger application.
package error

import "errors"

// Booking domain errors.
var (
	// ErrBookingNotFound is returned when a booking is not found in the system.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidBookingMode is returned when the booking mode is not one of the supported channels.
	ErrInvalidBookingMode = errors.New("invalid booking mode")

	// ErrInvalidPaymentMode is returned when the payment mode is invalid.
	ErrInvalidPaymentMode = errors.New("invalid payment mode")

	// ErrInvalidRoomCount is returned when the room count is below one.
	ErrInvalidRoomCount = errors.New("room count must be at least 1")

	// ErrInvalidBookingAmount is returned when the booking amount is not positive.
	ErrInvalidBookingAmount = errors.New("booking amount must be positive")

	// ErrInvalidBookingDate is returned when the booking date is invalid.
	ErrInvalidBookingDate = errors.New("invalid booking date")

	// ErrBookingReferenceRequired is returned when the booking reference is empty.
	ErrBookingReferenceRequired = errors.New("booking reference is required")

	// ErrMissingBookingFields is returned when required booking fields are absent.
	ErrMissingBookingFields = errors.New("missing required booking fields")
)

// BookingErrorCode defines error codes for booking errors.
// Format: BKG-XXYYYY where XX is category and YYYY is specific error.
type BookingErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBookingMode       BookingErrorCode = "BKG-010001"
	ErrCodeInvalidPaymentMode       BookingErrorCode = "BKG-010002"
	ErrCodeInvalidRoomCount         BookingErrorCode = "BKG-010003"
	ErrCodeInvalidBookingAmount     BookingErrorCode = "BKG-010004"
	ErrCodeInvalidBookingDate       BookingErrorCode = "BKG-010005"
	ErrCodeBookingNotFound          BookingErrorCode = "BKG-010006"
	ErrCodeBookingReferenceRequired BookingErrorCode = "BKG-010007"
	ErrCodeMissingBookingFields     BookingErrorCode = "BKG-010008"
)

// BookingError represents a booking error with code and message.
type BookingError struct {
	Code    BookingErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BookingError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BookingError) Unwrap() error {
	return e.Err
}

// NewBookingError creates a new BookingError with the given code and message.
func NewBookingError(code BookingErrorCode, message string, err error) *BookingError {
	return &BookingError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
