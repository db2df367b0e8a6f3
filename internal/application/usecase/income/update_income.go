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

// UpdateIncomeInput represents the input for extra income updates.
type UpdateIncomeInput struct {
	IncomeID    uuid.UUID
	HotelID     uuid.UUID
	BookingID   *uuid.UUID
	Source      entity.IncomeSource
	Amount      decimal.Decimal
	Description string
	Date        time.Time
}

// UpdateIncomeOutput represents the output of extra income updates.
type UpdateIncomeOutput struct {
	Income *entity.ExtraIncome
}

// UpdateIncomeUseCase handles extra income update logic.
type UpdateIncomeUseCase struct {
	incomeRepo  adapter.IncomeRepository
	bookingRepo adapter.BookingRepository
	cache       adapter.DashboardCache
}

// NewUpdateIncomeUseCase creates a new UpdateIncomeUseCase instance.
func NewUpdateIncomeUseCase(
	incomeRepo adapter.IncomeRepository,
	bookingRepo adapter.BookingRepository,
	cache adapter.DashboardCache,
) *UpdateIncomeUseCase {
	return &UpdateIncomeUseCase{
		incomeRepo:  incomeRepo,
		bookingRepo: bookingRepo,
		cache:       cache,
	}
}

// Execute performs the extra income update. When the booking reference moves,
// both the old and the new booking's cached totals are recomputed.
func (uc *UpdateIncomeUseCase) Execute(ctx context.Context, input UpdateIncomeInput) (*UpdateIncomeOutput, error) {
	if err := validateIncomeFields(input.Source, input.Amount, input.Date); err != nil {
		return nil, err
	}

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

	if input.BookingID != nil {
		booking, err := uc.bookingRepo.FindByID(ctx, *input.BookingID)
		if err != nil {
			return nil, domainerror.NewIncomeError(
				domainerror.ErrCodeIncomeBookingNotFound,
				"referenced booking not found",
				domainerror.ErrIncomeBookingNotFound,
			)
		}
		if booking.HotelID == nil || *booking.HotelID != input.HotelID {
			return nil, domainerror.NewHotelError(
				domainerror.ErrCodeNotHotelOwner,
				"booking does not belong to this hotel",
				domainerror.ErrNotHotelOwner,
			)
		}
	}

	previousBookingID := income.BookingID

	income.BookingID = input.BookingID
	income.Source = input.Source
	income.Amount = input.Amount
	income.Description = input.Description
	income.Date = input.Date
	income.UpdatedAt = time.Now().UTC()

	if err := uc.incomeRepo.Update(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to update extra income: %w", err)
	}

	if previousBookingID != nil {
		if err := recomputeBookingIncomeTotal(ctx, uc.incomeRepo, uc.bookingRepo, *previousBookingID); err != nil {
			return nil, err
		}
	}
	if input.BookingID != nil && (previousBookingID == nil || *previousBookingID != *input.BookingID) {
		if err := recomputeBookingIncomeTotal(ctx, uc.incomeRepo, uc.bookingRepo, *input.BookingID); err != nil {
			return nil, err
		}
	}

	invalidateDashboard(ctx, uc.cache, input.HotelID)

	return &UpdateIncomeOutput{Income: income}, nil
}
