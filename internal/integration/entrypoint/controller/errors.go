// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
	"github.com/hotel-ledger/backend/internal/integration/entrypoint/dto"
)

// handleDomainError maps a domain error onto an HTTP response. Unrecognized
// errors become a generic 500 and are logged server side only.
func handleDomainError(ctx *gin.Context, err error) {
	var hotelErr *domainerror.HotelError
	if errors.As(err, &hotelErr) {
		ctx.JSON(getStatusCodeForHotelError(hotelErr.Code), dto.ErrorResponse{
			Error: hotelErr.Message,
			Code:  string(hotelErr.Code),
		})
		return
	}

	var bookingErr *domainerror.BookingError
	if errors.As(err, &bookingErr) {
		status := http.StatusBadRequest
		if bookingErr.Code == domainerror.ErrCodeBookingNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: bookingErr.Message,
			Code:  string(bookingErr.Code),
		})
		return
	}

	var incomeErr *domainerror.IncomeError
	if errors.As(err, &incomeErr) {
		status := http.StatusBadRequest
		if incomeErr.Code == domainerror.ErrCodeIncomeNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: incomeErr.Message,
			Code:  string(incomeErr.Code),
		})
		return
	}

	var expenseErr *domainerror.ExpenseError
	if errors.As(err, &expenseErr) {
		status := http.StatusBadRequest
		switch expenseErr.Code {
		case domainerror.ErrCodeExpenseNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeExpenseSuggestionUnavailable:
			status = http.StatusServiceUnavailable
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: expenseErr.Message,
			Code:  string(expenseErr.Code),
		})
		return
	}

	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		status := http.StatusBadRequest
		switch reportErr.Code {
		case domainerror.ErrCodeReportNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeReportAlreadyExists:
			status = http.StatusConflict
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	var dashboardErr *domainerror.DashboardError
	if errors.As(err, &dashboardErr) {
		status := http.StatusBadRequest
		if dashboardErr.Code == domainerror.ErrCodeDashboardInternalError {
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: dashboardErr.Message,
			Code:  string(dashboardErr.Code),
		})
		return
	}

	slog.Error("Unhandled error in request", "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForHotelError maps hotel error codes to HTTP status codes.
func getStatusCodeForHotelError(code domainerror.HotelErrorCode) int {
	switch code {
	case domainerror.ErrCodeHotelNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeHotelCodeExists, domainerror.ErrCodeOperatorHasHotel:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidQRRate, domainerror.ErrCodeMissingHotelField:
		return http.StatusBadRequest
	case domainerror.ErrCodeNoHotelForOperator,
		domainerror.ErrCodeHotelInactive,
		domainerror.ErrCodeNotHotelOwner:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
