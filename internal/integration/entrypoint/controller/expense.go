// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/hotel-ledger/backend/internal/application/usecase/expense"
	"github.com/hotel-ledger/backend/internal/domain/entity"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
	"github.com/hotel-ledger/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles daily expense endpoints.
type ExpenseController struct {
	listUseCase    *expense.ListExpensesUseCase
	createUseCase  *expense.CreateExpenseUseCase
	updateUseCase  *expense.UpdateExpenseUseCase
	deleteUseCase  *expense.DeleteExpenseUseCase
	suggestUseCase *expense.SuggestExpenseTypeUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	listUseCase *expense.ListExpensesUseCase,
	createUseCase *expense.CreateExpenseUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
	suggestUseCase *expense.SuggestExpenseTypeUseCase,
) *ExpenseController {
	return &ExpenseController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		suggestUseCase: suggestUseCase,
	}
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
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

	input := expense.ListExpensesInput{
		HotelID:   hotelID,
		StartDate: startDate,
		EndDate:   endDate,
	}

	if expenseType := ctx.Query("type"); expenseType != "" {
		parsed := entity.ExpenseType(expenseType)
		if !entity.IsValidExpenseType(parsed) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid type parameter",
				Code:  string(domainerror.ErrCodeInvalidExpenseType),
			})
			return
		}
		input.Type = &parsed
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	expenses := make([]dto.ExpenseResponse, 0, len(output.Expenses))
	for _, item := range output.Expenses {
		expenses = append(expenses, dto.ToExpenseResponse(item))
	}

	totals := make([]dto.ExpenseTypeTotalResponse, 0, len(output.TotalsByType))
	for _, total := range output.TotalsByType {
		totals = append(totals, dto.ToExpenseTypeTotalResponse(total))
	}

	ctx.JSON(http.StatusOK, dto.ExpenseListResponse{
		Expenses:     expenses,
		Total:        output.Total.String(),
		TotalsByType: totals,
	})
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	hotelID, ok := requireHotelID(ctx)
	if !ok {
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidExpenseType),
		})
		return
	}

	date, err := parseDateField(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidExpenseDate),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), expense.CreateExpenseInput{
		HotelID:     hotelID,
		Type:        entity.ExpenseType(req.Type),
		Amount:      decimal.NewFromFloat(req.Amount),
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// Update handles PATCH /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	hotelID, ok := requireHotelID(ctx)
	if !ok {
		return
	}
	expenseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidExpenseType),
		})
		return
	}

	date, err := parseDateField(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidExpenseDate),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), expense.UpdateExpenseInput{
		ExpenseID:   expenseID,
		HotelID:     hotelID,
		Type:        entity.ExpenseType(req.Type),
		Amount:      decimal.NewFromFloat(req.Amount),
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	hotelID, ok := requireHotelID(ctx)
	if !ok {
		return
	}
	expenseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{
		ExpenseID: expenseID,
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

// SuggestType handles POST /expenses/suggest-type requests. Returns 503 when
// the suggestion service is not configured.
func (c *ExpenseController) SuggestType(ctx *gin.Context) {
	if _, ok := requireHotelID(ctx); !ok {
		return
	}

	var req dto.SuggestExpenseTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.suggestUseCase.Execute(ctx.Request.Context(), expense.SuggestExpenseTypeInput{
		Description: req.Description,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuggestExpenseTypeResponse{
		Type:       string(output.Type),
		Label:      output.Label,
		Confidence: output.Confidence,
		Reasoning:  output.Reasoning,
	})
}
