// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/hotel-ledger/backend/internal/application/usecase/booking"
	"github.com/hotel-ledger/backend/internal/domain/entity"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
	"github.com/hotel-ledger/backend/internal/integration/entrypoint/dto"
)

// BookingController handles booking endpoints.
type BookingController struct {
	listUseCase   *booking.ListBookingsUseCase
	createUseCase *booking.CreateBookingUseCase
	updateUseCase *booking.UpdateBookingUseCase
	deleteUseCase *booking.DeleteBookingUseCase
}

// NewBookingController creates a new booking controller instance.
func NewBookingController(
	listUseCase *booking.ListBookingsUseCase,
	createUseCase *booking.CreateBookingUseCase,
	updateUseCase *booking.UpdateBookingUseCase,
	deleteUseCase *booking.DeleteBookingUseCase,
) *BookingController {
	return &BookingController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /bookings requests.
func (c *BookingController) List(ctx *gin.Context) {
	hotelID, ok := requireHotelID(ctx)
	if !ok {
		return
	}

	startDate, ok := parseDateQuery(ctx, "start_date")
	if !ok {
		return
	}
	endDate, ok := parseDateQuery(ctx, "end_date")
	if !ok {
		return
	}

	input := booking.ListBookingsInput{
		HotelID:   hotelID,
		StartDate: startDate,
		EndDate:   endDate,
		Search:    ctx.Query("search"),
	}

	if mode := ctx.Query("mode"); mode != "" {
		bookingMode := entity.BookingMode(mode)
		if !entity.IsValidBookingMode(bookingMode) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid mode parameter",
				Code:  string(domainerror.ErrCodeInvalidBookingMode),
			})
			return
		}
		input.Mode = &bookingMode
	}

	if paymentMode := ctx.Query("payment_mode"); paymentMode != "" {
		payment := entity.PaymentMode(paymentMode)
		if !entity.IsValidPaymentMode(payment) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid payment_mode parameter",
				Code:  string(domainerror.ErrCodeInvalidPaymentMode),
			})
			return
		}
		input.PaymentMode = &payment
	}

	if page, err := strconv.Atoi(ctx.DefaultQuery("page", "1")); err == nil {
		input.Page = page
	}
	if limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "0")); err == nil {
		input.Limit = limit
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	bookings := make([]dto.BookingResponse, 0, len(output.Bookings))
	for _, b := range output.Bookings {
		bookings = append(bookings, dto.ToBookingResponse(b))
	}

	ctx.JSON(http.StatusOK, dto.BookingListResponse{
		Bookings: bookings,
		Pagination: dto.BookingPaginationResponse{
			Page:       output.Page,
			Limit:      output.Limit,
			Total:      output.Total,
			TotalPages: output.TotalPages,
		},
	})
}

// Create handles POST /bookings requests.
func (c *BookingController) Create(ctx *gin.Context) {
	hotelID, ok := requireHotelID(ctx)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingBookingFields),
		})
		return
	}

	bookingDate, err := parseDateField(req.BookingDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid booking_date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidBookingDate),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), booking.CreateBookingInput{
		HotelID:        hotelID,
		Reference:      req.Reference,
		GuestName:      req.GuestName,
		BookingDate:    bookingDate,
		Mode:           entity.BookingMode(req.Mode),
		PaymentMode:    entity.PaymentMode(req.PaymentMode),
		RoomCount:      req.RoomCount,
		Amount:         decimal.NewFromFloat(req.Amount),
		ExcludedFromQR: req.ExcludedFromQR,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBookingResponse(output.Booking))
}

// Update handles PATCH /bookings/:id requests.
func (c *BookingController) Update(ctx *gin.Context) {
	hotelID, ok := requireHotelID(ctx)
	if !ok {
		return
	}
	bookingID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingBookingFields),
		})
		return
	}

	bookingDate, err := parseDateField(req.BookingDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid booking_date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidBookingDate),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), booking.UpdateBookingInput{
		BookingID:      bookingID,
		HotelID:        hotelID,
		Reference:      req.Reference,
		GuestName:      req.GuestName,
		BookingDate:    bookingDate,
		Mode:           entity.BookingMode(req.Mode),
		PaymentMode:    entity.PaymentMode(req.PaymentMode),
		RoomCount:      req.RoomCount,
		Amount:         decimal.NewFromFloat(req.Amount),
		ExcludedFromQR: req.ExcludedFromQR,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBookingResponse(output.Booking))
}

// Delete handles DELETE /bookings/:id requests.
func (c *BookingController) Delete(ctx *gin.Context) {
	hotelID, ok := requireHotelID(ctx)
	if !ok {
		return
	}
	bookingID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), booking.DeleteBookingInput{
		BookingID: bookingID,
		HotelID:   hotelID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: output.Message,
	})
}
