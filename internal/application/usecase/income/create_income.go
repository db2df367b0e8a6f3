// Package income contains extra income use cases.
package income

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hotel-ledger/backend/internal/application/adapter"
	"github.com/hotel-ledger/backend/internal/domain/entity"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
)

// CreateIncomeInput represents the input for extra income creation.
type CreateIncomeInput struct {
	HotelID     uuid.UUID
	BookingID   *uuid.UUID
	Source      entity.IncomeSource
	Amount      decimal.Decimal
	Description string
	Date        time.Time
}

// CreateIncomeOutput represents the output of extra income creation.
type CreateIncomeOutput struct {
	Income *entity.ExtraIncome
}

// CreateIncomeUseCase handles extra income creation logic.
type CreateIncomeUseCase struct {
	incomeRepo  adapter.IncomeRepository
	bookingRepo adapter.BookingRepository
	cache       adapter.DashboardCache
}

// NewCreateIncomeUseCase creates a new CreateIncomeUseCase instance.
func NewCreateIncomeUseCase(
	incomeRepo adapter.IncomeRepository,
	bookingRepo adapter.BookingRepository,
	cache adapter.DashboardCache,
) *CreateIncomeUseCase {
	return &CreateIncomeUseCase{
		incomeRepo:  incomeRepo,
		bookingRepo: bookingRepo,
		cache:       cache,
	}
}

// Execute performs the extra income creation and synchronously recomputes the
// referenced booking's cached extra-income total.
func (uc *CreateIncomeUseCase) Execute(ctx context.Context, input CreateIncomeInput) (*CreateIncomeOutput, error) {
	if err := validateIncomeFields(input.Source, input.Amount, input.Date); err != nil {
		return nil, err
	}

	// The booking reference is weak but must exist and belong to the same
	// hotel at creation time.
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

	income := entity.NewExtraIncome(input.HotelID, input.BookingID, input.Source, input.Amount, input.Description, input.Date)

	if err := uc.incomeRepo.Create(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to create extra income: %w", err)
	}

	if input.BookingID != nil {
		if err := recomputeBookingIncomeTotal(ctx, uc.incomeRepo, uc.bookingRepo, *input.BookingID); err != nil {
			return nil, err
		}
	}

	invalidateDashboard(ctx, uc.cache, input.HotelID)

	return &CreateIncomeOutput{Income: income}, nil
}

// validateIncomeFields checks the invariants shared by create and update.
func validateIncomeFields(source entity.IncomeSource, amount decimal.Decimal, date time.Time) error {
	if !entity.IsValidIncomeSource(source) {
		return domainerror.NewIncomeError(
			domainerror.ErrCodeInvalidIncomeSource,
			"income source must be one of KITCHEN, MINI_BAR, PARKING, OTHER",
			domainerror.ErrInvalidIncomeSource,
		)
	}

	if !amount.IsPositive() {
		return domainerror.NewIncomeError(
			domainerror.ErrCodeInvalidIncomeAmount,
			"income amount must be positive",
			domainerror.ErrInvalidIncomeAmount,
		)
	}

	if date.IsZero() {
		return domainerror.NewIncomeError(
			domainerror.ErrCodeInvalidIncomeDate,
			"income date is required",
			domainerror.ErrInvalidIncomeDate,
		)
	}

	return nil
}

// recomputeBookingIncomeTotal rewrites a booking's denormalized extra-income
// total from the sum of its remaining income rows. The cached value is a
// projection, never a source of truth.
func recomputeBookingIncomeTotal(
	ctx context.Context,
	incomeRepo adapter.IncomeRepository,
	bookingRepo adapter.BookingRepository,
	bookingID uuid.UUID,
) error {
	total, err := incomeRepo.SumByBooking(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("failed to sum booking income: %w", err)
	}

	booking, err := bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		// The booking may have been deleted concurrently; the income row
		// simply stays detached.
		return nil
	}

	booking.ExtraIncomeTotal = total
	booking.UpdatedAt = time.Now().UTC()

	if err := bookingRepo.Update(ctx, booking); err != nil {
		return fmt.Errorf("failed to update booking income total: %w", err)
	}

	return nil
}

// invalidateDashboard drops the hotel's cached dashboard payloads. Cache
// failures never fail the mutation.
func invalidateDashboard(ctx context.Context, cache adapter.DashboardCache, hotelID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.InvalidateHotel(ctx, hotelID); err != nil {
		slog.Warn("Failed to invalidate dashboard cache", "hotel_id", hotelID, "error", err)
	}
}
