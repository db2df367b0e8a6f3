// Package income contains extra income use cases.
package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hotel-ledger/backend/internal/application/adapter"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
)

// DeleteIncomeInput represents the input for extra income deletion.
type DeleteIncomeInput struct {
	IncomeID uuid.UUID
	HotelID  uuid.UUID
}

// DeleteIncomeOutput represents the output of extra income deletion.
type DeleteIncomeOutput struct {
	Message string
}

// DeleteIncomeUseCase handles extra income deletion logic.
type DeleteIncomeUseCase struct {
	incomeRepo  adapter.IncomeRepository
	bookingRepo adapter.BookingRepository
	cache       adapter.DashboardCache
}

// NewDeleteIncomeUseCase creates a new DeleteIncomeUseCase instance.
func NewDeleteIncomeUseCase(
	incomeRepo adapter.IncomeRepository,
	bookingRepo adapter.BookingRepository,
	cache adapter.DashboardCache,
) *DeleteIncomeUseCase {
	return &DeleteIncomeUseCase{
		incomeRepo:  incomeRepo,
		bookingRepo: bookingRepo,
		cache:       cache,
	}
}

// Execute performs the extra income deletion and recomputes the referenced
// booking's cached total from the remaining rows.
func (uc *DeleteIncomeUseCase) Execute(ctx context.Context, input DeleteIncomeInput) (*DeleteIncomeOutput, error) {
	income, err := uc.incomeRepo.FindByID(ctx, input.IncomeID)
	if err != nil {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeIncomeNotFound,
			"extra income not found",
			domainerror.ErrIncomeNotFound,
		)
	}

	if income.HotelID != input.HotelID {
		return nil, domainerror.NewHotelError(
			domainerror.ErrCodeNotHotelOwner,
			"extra income does not belong to this hotel",
			domainerror.ErrNotHotelOwner,
		)
	}

	if err := uc.incomeRepo.Delete(ctx, income.ID); err != nil {
		return nil, fmt.Errorf("failed to delete extra income: %w", err)
	}

	if income.BookingID != nil {
		if err := recomputeBookingIncomeTotal(ctx, uc.incomeRepo, uc.bookingRepo, *income.BookingID); err != nil {
			return nil, err
		}
	}

	invalidateDashboard(ctx, uc.cache, input.HotelID)

	return &DeleteIncomeOutput{
		Message: "Extra income deleted successfully",
	}, nil
}
