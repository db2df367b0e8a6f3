// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hotel-ledger/backend/internal/application/usecase/income"
	"github.com/hotel-ledger/backend/internal/domain/entity"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
	"github.com/hotel-ledger/backend/internal/integration/entrypoint/dto"
)

// IncomeController handles extra income endpoints.
type IncomeController struct {
	listUseCase   *income.ListIncomeUseCase
	createUseCase *income.CreateIncomeUseCase
	updateUseCase *income.UpdateIncomeUseCase
	deleteUseCase *income.DeleteIncomeUseCase
}

// NewIncomeController creates a new income controller instance.
func NewIncomeController(
	listUseCase *income.ListIncomeUseCase,
	createUseCase *income.CreateIncomeUseCase,
	updateUseCase *income.UpdateIncomeUseCase,
	deleteUseCase *income.DeleteIncomeUseCase,
) *IncomeController {
	return &IncomeController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /income requests.
func (c *IncomeController) List(ctx *gin.Context) {
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

	input := income.ListIncomeInput{
		HotelID:   hotelID,
		StartDate: startDate,
		EndDate:   endDate,
	}

	if bookingID := ctx.Query("booking_id"); bookingID != "" {
		id, err := uuid.Parse(bookingID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid booking_id parameter",
			})
			return
		}
		input.BookingID = &id
	}

	if source := ctx.Query("source"); source != "" {
		incomeSource := entity.IncomeSource(source)
		if !entity.IsValidIncomeSource(incomeSource) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid source parameter",
				Code:  string(domainerror.ErrCodeInvalidIncomeSource),
			})
			return
		}
		input.Source = &incomeSource
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	incomes := make([]dto.IncomeResponse, 0, len(output.Incomes))
	for _, item := range output.Incomes {
		incomes = append(incomes, dto.ToIncomeResponse(item))
	}

	ctx.JSON(http.StatusOK, dto.IncomeListResponse{
		Incomes: incomes,
		Total:   output.Total.String(),
	})
}

// Create handles POST /income requests.
func (c *IncomeController) Create(ctx *gin.Context) {
	hotelID, ok := requireHotelID(ctx)
	if !ok {
		return
	}

	var req dto.CreateIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidIncomeSource),
		})
		return
	}

	input, ok := c.buildWriteInput(ctx, hotelID, req.BookingID, req.Source, req.Amount, req.Description, req.Date)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), income.CreateIncomeInput{
		HotelID:     input.HotelID,
		BookingID:   input.BookingID,
		Source:      input.Source,
		Amount:      input.Amount,
		Description: input.Description,
		Date:        input.Date,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToIncomeResponse(output.Income))
}

// Update handles PATCH /income/:id requests.
func (c *IncomeController) Update(ctx *gin.Context) {
	hotelID, ok := requireHotelID(ctx)
	if !ok {
		return
	}
	incomeID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidIncomeSource),
		})
		return
	}

	input, ok := c.buildWriteInput(ctx, hotelID, req.BookingID, req.Source, req.Amount, req.Description, req.Date)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), income.UpdateIncomeInput{
		IncomeID:    incomeID,
		HotelID:     input.HotelID,
		BookingID:   input.BookingID,
		Source:      input.Source,
		Amount:      input.Amount,
		Description: input.Description,
		Date:        input.Date,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeResponse(output.Income))
}

// Delete handles DELETE /income/:id requests.
func (c *IncomeController) Delete(ctx *gin.Context) {
	hotelID, ok := requireHotelID(ctx)
	if !ok {
		return
	}
	incomeID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), income.DeleteIncomeInput{
		IncomeID: incomeID,
		HotelID:  hotelID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: output.Message,
	})
}

// buildWriteInput parses the shared create/update fields. It writes the error
// response itself and returns ok=false when parsing fails.
func (c *IncomeController) buildWriteInput(
	ctx *gin.Context,
	hotelID uuid.UUID,
	bookingID *string,
	source string,
	amount float64,
	description string,
	date string,
) (income.CreateIncomeInput, bool) {
	parsedDate, err := parseDateField(date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidIncomeDate),
		})
		return income.CreateIncomeInput{}, false
	}

	input := income.CreateIncomeInput{
		HotelID:     hotelID,
		Source:      entity.IncomeSource(source),
		Amount:      decimal.NewFromFloat(amount),
		Description: description,
		Date:        parsedDate,
	}

	if bookingID != nil && *bookingID != "" {
		id, parseErr := uuid.Parse(*bookingID)
		if parseErr != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid booking_id",
				Code:  string(domainerror.ErrCodeIncomeBookingNotFound),
			})
			return income.CreateIncomeInput{}, false
		}
		input.BookingID = &id
	}

	return input, true
}
