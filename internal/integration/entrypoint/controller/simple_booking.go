// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/hotel-ledger/backend/internal/application/usecase/simplebooking"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
	"github.com/hotel-ledger/backend/internal/integration/entrypoint/dto"
)

// SimpleBookingController handles side-ledger booking endpoints.
type SimpleBookingController struct {
	listUseCase   *simplebooking.ListSimpleBookingsUseCase
	createUseCase *simplebooking.CreateSimpleBookingUseCase
	updateUseCase *simplebooking.UpdateSimpleBookingUseCase
	deleteUseCase *simplebooking.DeleteSimpleBookingUseCase
}

// NewSimpleBookingController creates a new simple booking controller instance.
func NewSimpleBookingController(
	listUseCase *simplebooking.ListSimpleBookingsUseCase,
	createUseCase *simplebooking.CreateSimpleBookingUseCase,
	updateUseCase *simplebooking.UpdateSimpleBookingUseCase,
	deleteUseCase *simplebooking.DeleteSimpleBookingUseCase,
) *SimpleBookingController {
	return &SimpleBookingController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /simple-bookings requests.
func (c *SimpleBookingController) List(ctx *gin.Context) {
	hotelID, ok := requireHotelID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), simplebooking.ListSimpleBookingsInput{
		HotelID: hotelID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	bookings := make([]dto.SimpleBookingResponse, 0, len(output.Bookings))
	for _, item := range output.Bookings {
		bookings = append(bookings, dto.ToSimpleBookingResponse(item))
	}

	series := make([]dto.SimpleBookingMonthPointResponse, 0, len(output.MonthlySeries))
	for _, point := range output.MonthlySeries {
		series = append(series, dto.ToSimpleBookingMonthPointResponse(point))
	}

	ctx.JSON(http.StatusOK, dto.SimpleBookingListResponse{
		Bookings: bookings,
		Totals: dto.SimpleBookingTotalsResponse{
			Count:            output.Totals.Count,
			AmountTotal:      output.Totals.AmountTotal.String(),
			ExtraIncomeTotal: output.Totals.ExtraIncomeTotal.String(),
		},
		MonthlySeries: series,
	})
}

// Create handles POST /simple-bookings requests.
func (c *SimpleBookingController) Create(ctx *gin.Context) {
	hotelID, ok := requireHotelID(ctx)
	if !ok {
		return
	}

	var req dto.CreateSimpleBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingBookingFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), simplebooking.CreateSimpleBookingInput{
		HotelID:     hotelID,
		GuestName:   req.GuestName,
		Amount:      decimal.NewFromFloat(req.Amount),
		ExtraIncome: decimal.NewFromFloat(req.ExtraIncome),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSimpleBookingResponse(output.Booking))
}

// Update handles PATCH /simple-bookings/:id requests.
func (c *SimpleBookingController) Update(ctx *gin.Context) {
	hotelID, ok := requireHotelID(ctx)
	if !ok {
		return
	}
	bookingID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSimpleBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingBookingFields),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), simplebooking.UpdateSimpleBookingInput{
		ID:          bookingID,
		HotelID:     hotelID,
		GuestName:   req.GuestName,
		Amount:      decimal.NewFromFloat(req.Amount),
		ExtraIncome: decimal.NewFromFloat(req.ExtraIncome),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSimpleBookingResponse(output.Booking))
}

// Delete handles DELETE /simple-bookings/:id requests.
func (c *SimpleBookingController) Delete(ctx *gin.Context) {
	hotelID, ok := requireHotelID(ctx)
	if !ok {
		return
	}
	bookingID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), simplebooking.DeleteSimpleBookingInput{
		ID:      bookingID,
		HotelID: hotelID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: output.Message,
	})
}
