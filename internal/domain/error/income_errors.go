// Package error defines domain-specific errors for the hotel ledger application.
package error

import "errors"

// Extra income domain errors.
var (
	// ErrIncomeNotFound is returned when an extra income record is not found.
	ErrIncomeNotFound = errors.New("extra income not found")

	// ErrInvalidIncomeSource is returned when the income source is invalid.
	ErrInvalidIncomeSource = errors.New("invalid income source")

	// ErrInvalidIncomeAmount is returned when the income amount is not positive.
	ErrInvalidIncomeAmount = errors.New("income amount must be positive")

	// ErrInvalidIncomeDate is returned when the income date is invalid.
	ErrInvalidIncomeDate = errors.New("invalid income date")

	// ErrIncomeBookingNotFound is returned when the referenced booking does not exist.
	ErrIncomeBookingNotFound = errors.New("referenced booking not found")
)

// IncomeErrorCode defines error codes for extra income errors.
// Format: INC-XXYYYY where XX is category and YYYY is specific error.
type IncomeErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidIncomeSource   IncomeErrorCode = "INC-010001"
	ErrCodeInvalidIncomeAmount   IncomeErrorCode = "INC-010002"
	ErrCodeInvalidIncomeDate     IncomeErrorCode = "INC-010003"
	ErrCodeIncomeNotFound        IncomeErrorCode = "INC-010004"
	ErrCodeIncomeBookingNotFound IncomeErrorCode = "INC-010005"
)

// IncomeError represents an extra income error with code and message.
type IncomeError struct {
	Code    IncomeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *IncomeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *IncomeError) Unwrap() error {
	return e.Err
}

// NewIncomeError creates a new IncomeError with the given code and message.
func NewIncomeError(code IncomeErrorCode, message string, err error) *IncomeError {
	return &IncomeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
