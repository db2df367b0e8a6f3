// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hotel-ledger/backend/internal/application/usecase/dashboard"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	overviewUseCase *dashboard.GetOverviewUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(overviewUseCase *dashboard.GetOverviewUseCase) *DashboardController {
	return &DashboardController{
		overviewUseCase: overviewUseCase,
	}
}

// GetOverview handles GET /dashboard/overview requests. The output struct
// carries its own JSON shape; it is the same payload the cache stores.
func (c *DashboardController) GetOverview(ctx *gin.Context) {
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

	output, err := c.overviewUseCase.Execute(ctx.Request.Context(), dashboard.GetOverviewInput{
		HotelID:   hotelID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}
