// Package reconciliation contains aggregator reconciliation use cases.
package reconciliation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hotel-ledger/backend/internal/application/adapter"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
	"github.com/hotel-ledger/backend/internal/domain/valueobject"
)

// GetReconciliationInput represents the input for a range reconciliation.
// Missing dates default to the current month.
type GetReconciliationInput struct {
	HotelID   uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// GetReconciliationOutput represents the output of a range reconciliation.
type GetReconciliationOutput struct {
	Result valueobject.RangeReconciliation
}

// GetReconciliationUseCase runs the reconciliation engine over a hotel's
// bookings in a date range.
type GetReconciliationUseCase struct {
	hotelRepo   adapter.HotelRepository
	bookingRepo adapter.BookingRepository
}

// NewGetReconciliationUseCase creates a new GetReconciliationUseCase instance.
func NewGetReconciliationUseCase(hotelRepo adapter.HotelRepository, bookingRepo adapter.BookingRepository) *GetReconciliationUseCase {
	return &GetReconciliationUseCase{
		hotelRepo:   hotelRepo,
		bookingRepo: bookingRepo,
	}
}

// Execute performs the range reconciliation.
func (uc *GetReconciliationUseCase) Execute(ctx context.Context, input GetReconciliationInput) (*GetReconciliationOutput, error) {
	hotel, err := uc.hotelRepo.FindByID(ctx, input.HotelID)
	if err != nil {
		return nil, domainerror.NewHotelError(
			domainerror.ErrCodeHotelNotFound,
			"hotel not found",
			domainerror.ErrHotelNotFound,
		)
	}

	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := now
	if input.StartDate != nil {
		start = *input.StartDate
	}
	if input.EndDate != nil {
		end = *input.EndDate
	}
	if end.Before(start) {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}

	bookings, err := uc.bookingRepo.FindByDateRange(ctx, hotel.ID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	return &GetReconciliationOutput{
		Result: valueobject.Reconcile(hotel.QRRate, start, end, bookings),
	}, nil
}
