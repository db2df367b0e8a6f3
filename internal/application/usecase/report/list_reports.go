// Package report contains monthly report snapshot use cases.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hotel-ledger/backend/internal/application/adapter"
	"github.com/hotel-ledger/backend/internal/domain/entity"
)

// ListReportsInput represents the input for listing monthly reports.
type ListReportsInput struct {
	HotelID uuid.UUID
	Limit   int
}

// ListReportsOutput represents the output of listing monthly reports.
type ListReportsOutput struct {
	Reports []*entity.MonthlyReport
}

// ListReportsUseCase handles monthly report listing logic.
type ListReportsUseCase struct {
	reportRepo adapter.ReportRepository
}

// NewListReportsUseCase creates a new ListReportsUseCase instance.
func NewListReportsUseCase(reportRepo adapter.ReportRepository) *ListReportsUseCase {
	return &ListReportsUseCase{
		reportRepo: reportRepo,
	}
}

// Execute lists a hotel's reports, newest month first.
func (uc *ListReportsUseCase) Execute(ctx context.Context, input ListReportsInput) (*ListReportsOutput, error) {
	limit := input.Limit
	if limit < 1 {
		limit = 12
	}

	reports, err := uc.reportRepo.FindByHotel(ctx, input.HotelID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	return &ListReportsOutput{Reports: reports}, nil
}
