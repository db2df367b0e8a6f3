// Package income contains extra income use cases.
package income

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hotel-ledger/backend/internal/application/adapter"
	"github.com/hotel-ledger/backend/internal/domain/entity"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
)

// ListIncomeInput represents the input for listing extra income.
type ListIncomeInput struct {
	HotelID   uuid.UUID
	BookingID *uuid.UUID
	Source    *entity.IncomeSource
	StartDate *time.Time
	EndDate   *time.Time
}

// ListIncomeOutput represents the output of listing extra income.
type ListIncomeOutput struct {
	Incomes []*entity.ExtraIncome
	Total   decimal.Decimal
}

// ListIncomeUseCase handles extra income listing logic.
type ListIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewListIncomeUseCase creates a new ListIncomeUseCase instance.
func NewListIncomeUseCase(incomeRepo adapter.IncomeRepository) *ListIncomeUseCase {
	return &ListIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute performs the extra income listing.
func (uc *ListIncomeUseCase) Execute(ctx context.Context, input ListIncomeInput) (*ListIncomeOutput, error) {
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}

	incomes, err := uc.incomeRepo.FindByFilter(ctx, adapter.IncomeFilter{
		HotelID:   input.HotelID,
		BookingID: input.BookingID,
		Source:    input.Source,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list extra income: %w", err)
	}

	total := decimal.Zero
	for _, inc := range incomes {
		total = total.Add(inc.Amount)
	}

	return &ListIncomeOutput{
		Incomes: incomes,
		Total:   total,
	}, nil
}
