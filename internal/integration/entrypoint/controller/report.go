// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hotel-ledger/backend/internal/application/usecase/report"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
	"github.com/hotel-ledger/backend/internal/integration/entrypoint/dto"
)

// ReportController handles monthly report endpoints.
type ReportController struct {
	listUseCase     *report.ListReportsUseCase
	generateUseCase *report.GenerateReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	listUseCase *report.ListReportsUseCase,
	generateUseCase *report.GenerateReportUseCase,
) *ReportController {
	return &ReportController{
		listUseCase:     listUseCase,
		generateUseCase: generateUseCase,
	}
}

// List handles GET /reports requests.
func (c *ReportController) List(ctx *gin.Context) {
	hotelID, ok := requireHotelID(ctx)
	if !ok {
		return
	}

	input := report.ListReportsInput{HotelID: hotelID}
	if limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "0")); err == nil {
		input.Limit = limit
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	reports := make([]dto.ReportResponse, 0, len(output.Reports))
	for _, item := range output.Reports {
		reports = append(reports, dto.ToReportResponse(item))
	}

	ctx.JSON(http.StatusOK, dto.ReportListResponse{Reports: reports})
}

// Generate handles POST /reports/generate requests. Generation is write-once
// per month: an existing report is returned as skipped unless force is set.
func (c *ReportController) Generate(ctx *gin.Context) {
	hotelID, ok := requireHotelID(ctx)
	if !ok {
		return
	}

	var req dto.GenerateReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidReportMonth),
		})
		return
	}

	month, err := parseMonth(req.Month)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid month, expected YYYY-MM",
			Code:  string(domainerror.ErrCodeInvalidReportMonth),
		})
		return
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), report.GenerateReportInput{
		HotelID: hotelID,
		Month:   month,
		Force:   req.Force,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	status := http.StatusCreated
	if output.Skipped {
		status = http.StatusOK
	}

	ctx.JSON(status, dto.GenerateReportResponse{
		Report:  dto.ToReportResponse(output.Report),
		Skipped: output.Skipped,
	})
}

// parseMonth accepts YYYY-MM or a full YYYY-MM-DD date.
func parseMonth(value string) (time.Time, error) {
	if parsed, err := time.Parse("2006-01", value); err == nil {
		return parsed, nil
	}
	return time.Parse(dateLayout, value)
}
