// Package error defines domain-specific errors for the hotel ledger application.
package error

import "errors"

// Hotel domain errors.
var (
	// ErrHotelNotFound is returned when a hotel is not found in the system.
	ErrHotelNotFound = errors.New("hotel not found")

	// ErrNoHotelForOperator is returned when an authenticated operator has no hotel association.
	ErrNoHotelForOperator = errors.New("operator has no hotel associated")

	// ErrHotelCodeExists is returned when attempting to create a hotel with an existing code.
	ErrHotelCodeExists = errors.New("hotel code already exists")

	// ErrOperatorHasHotel is returned when an operator who already owns a hotel creates another.
	ErrOperatorHasHotel = errors.New("operator already has a hotel")

	// ErrInvalidQRRate is returned when the configured QR rate is negative.
	ErrInvalidQRRate = errors.New("QR rate must not be negative")

	// ErrHotelInactive is returned when an operation targets a deactivated hotel.
	ErrHotelInactive = errors.New("hotel is inactive")

	// ErrNotHotelOwner is returned when an operator touches a record outside their hotel.
	ErrNotHotelOwner = errors.New("record does not belong to operator's hotel")
)

// HotelErrorCode defines error codes for hotel errors.
// Format: HTL-XXYYYY where XX is category and YYYY is specific error.
type HotelErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeHotelNotFound     HotelErrorCode = "HTL-010001"
	ErrCodeHotelCodeExists   HotelErrorCode = "HTL-010002"
	ErrCodeOperatorHasHotel  HotelErrorCode = "HTL-010003"
	ErrCodeInvalidQRRate     HotelErrorCode = "HTL-010004"
	ErrCodeMissingHotelField HotelErrorCode = "HTL-010005"

	// Tenancy errors (02XXXX)
	ErrCodeNoHotelForOperator HotelErrorCode = "HTL-020001"
	ErrCodeHotelInactive      HotelErrorCode = "HTL-020002"
	ErrCodeNotHotelOwner      HotelErrorCode = "HTL-020003"
)

// HotelError represents a hotel error with code and message.
type HotelError struct {
	Code    HotelErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HotelError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *HotelError) Unwrap() error {
	return e.Err
}

// NewHotelError creates a new HotelError with the given code and message.
func NewHotelError(code HotelErrorCode, message string, err error) *HotelError {
	return &HotelError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
