// Package error defines domain-specific errors for the hotel ledger application.
package error

import "errors"

// Daily expense domain errors.
var (
	// ErrExpenseNotFound is returned when a daily expense record is not found.
	ErrExpenseNotFound = errors.New("daily expense not found")

	// ErrInvalidExpenseType is returned when the expense type is invalid.
	ErrInvalidExpenseType = errors.New("invalid expense type")

	// ErrInvalidExpenseAmount is returned when the expense amount is not positive.
	ErrInvalidExpenseAmount = errors.New("expense amount must be positive")

	// ErrInvalidExpenseDate is returned when the expense date is invalid.
	ErrInvalidExpenseDate = errors.New("invalid expense date")

	// ErrExpenseSuggestionUnavailable is returned when the type suggester cannot produce a result.
	ErrExpenseSuggestionUnavailable = errors.New("expense type suggestion unavailable")
)

// ExpenseErrorCode defines error codes for daily expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidExpenseType   ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseAmount ExpenseErrorCode = "EXP-010002"
	ErrCodeInvalidExpenseDate   ExpenseErrorCode = "EXP-010003"
	ErrCodeExpenseNotFound      ExpenseErrorCode = "EXP-010004"

	// Suggestion errors (02XXXX)
	ErrCodeExpenseSuggestionUnavailable ExpenseErrorCode = "EXP-020001"
)

// ExpenseError represents a daily expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
