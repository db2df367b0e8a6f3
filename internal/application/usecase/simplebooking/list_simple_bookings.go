// Package simplebooking contains side-ledger use cases.
package simplebooking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hotel-ledger/backend/internal/application/adapter"
	"github.com/hotel-ledger/backend/internal/domain/entity"
)

// defaultSeriesMonths bounds the monthly series returned with a listing.
const defaultSeriesMonths = 6

// ListSimpleBookingsInput represents the input for listing simple bookings.
type ListSimpleBookingsInput struct {
	HotelID uuid.UUID
}

// ListSimpleBookingsOutput represents the output of listing simple bookings.
type ListSimpleBookingsOutput struct {
	Bookings      []*entity.SimpleBooking
	Totals        adapter.SimpleBookingTotals
	MonthlySeries []adapter.SimpleBookingMonthPoint
}

// ListSimpleBookingsUseCase handles side-ledger listing logic.
type ListSimpleBookingsUseCase struct {
	simpleBookingRepo adapter.SimpleBookingRepository
}

// NewListSimpleBookingsUseCase creates a new ListSimpleBookingsUseCase instance.
func NewListSimpleBookingsUseCase(simpleBookingRepo adapter.SimpleBookingRepository) *ListSimpleBookingsUseCase {
	return &ListSimpleBookingsUseCase{
		simpleBookingRepo: simpleBookingRepo,
	}
}

// Execute lists a hotel's simple bookings with summary totals and a monthly series.
func (uc *ListSimpleBookingsUseCase) Execute(ctx context.Context, input ListSimpleBookingsInput) (*ListSimpleBookingsOutput, error) {
	bookings, err := uc.simpleBookingRepo.FindByHotel(ctx, input.HotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list simple bookings: %w", err)
	}

	totals, err := uc.simpleBookingRepo.GetTotals(ctx, input.HotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate simple bookings: %w", err)
	}

	series, err := uc.simpleBookingRepo.GetMonthlySeries(ctx, input.HotelID, defaultSeriesMonths)
	if err != nil {
		return nil, fmt.Errorf("failed to load simple booking series: %w", err)
	}

	return &ListSimpleBookingsOutput{
		Bookings:      bookings,
		Totals:        *totals,
		MonthlySeries: series,
	}, nil
}
