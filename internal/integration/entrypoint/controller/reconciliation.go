// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hotel-ledger/backend/internal/application/usecase/reconciliation"
	"github.com/hotel-ledger/backend/internal/integration/entrypoint/dto"
)

// ReconciliationController handles QR reconciliation endpoints.
type ReconciliationController struct {
	getUseCase *reconciliation.GetReconciliationUseCase
}

// NewReconciliationController creates a new reconciliation controller instance.
func NewReconciliationController(getUseCase *reconciliation.GetReconciliationUseCase) *ReconciliationController {
	return &ReconciliationController{
		getUseCase: getUseCase,
	}
}

// Get handles GET /reconciliation requests.
func (c *ReconciliationController) Get(ctx *gin.Context) {
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

	output, err := c.getUseCase.Execute(ctx.Request.Context(), reconciliation.GetReconciliationInput{
		HotelID:   hotelID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReconciliationResponse(output.Result))
}
