// Package error defines domain-specific errors for the hotel ledger application.
package error

import "errors"

// Monthly report domain errors.
var (
	// ErrReportNotFound is returned when a monthly report is not found.
	ErrReportNotFound = errors.New("monthly report not found")

	// ErrReportAlreadyExists is returned when a report for the (hotel, month)
	// pair already exists and regeneration was not forced.
	ErrReportAlreadyExists = errors.New("monthly report already exists")

	// ErrInvalidReportMonth is returned when the report month cannot be parsed.
	ErrInvalidReportMonth = errors.New("invalid report month")

	// ErrReportMonthInFuture is returned when a report is requested for a future month.
	ErrReportMonthInFuture = errors.New("report month must not be in the future")
)

// ReportErrorCode defines error codes for monthly report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidReportMonth  ReportErrorCode = "RPT-010001"
	ErrCodeReportMonthInFuture ReportErrorCode = "RPT-010002"
	ErrCodeReportNotFound      ReportErrorCode = "RPT-010003"

	// Generation errors (02XXXX)
	ErrCodeReportAlreadyExists ReportErrorCode = "RPT-020001"
)

// ReportError represents a monthly report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
