// Package booking contains booking-related use cases.
package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hotel-ledger/backend/internal/application/adapter"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
)

// DeleteBookingInput represents the input for booking deletion.
type DeleteBookingInput struct {
	BookingID uuid.UUID
	HotelID   uuid.UUID
}

// DeleteBookingOutput represents the output of booking deletion.
type DeleteBookingOutput struct {
	Message string
}

// DeleteBookingUseCase handles booking deletion logic.
type DeleteBookingUseCase struct {
	bookingRepo adapter.BookingRepository
	incomeRepo  adapter.IncomeRepository
	cache       adapter.DashboardCache
}

// NewDeleteBookingUseCase creates a new DeleteBookingUseCase instance.
func NewDeleteBookingUseCase(
	bookingRepo adapter.BookingRepository,
	incomeRepo adapter.IncomeRepository,
	cache adapter.DashboardCache,
) *DeleteBookingUseCase {
	return &DeleteBookingUseCase{
		bookingRepo: bookingRepo,
		incomeRepo:  incomeRepo,
		cache:       cache,
	}
}

// Execute performs the booking deletion. Extra income rows referencing the
// booking are deleted with it; nothing else cascades.
func (uc *DeleteBookingUseCase) Execute(ctx context.Context, input DeleteBookingInput) (*DeleteBookingOutput, error) {
	booking, err := uc.bookingRepo.FindByID(ctx, input.BookingID)
	if err != nil {
		return nil, domainerror.NewBookingError(
			domainerror.ErrCodeBookingNotFound,
			"booking not found",
			domainerror.ErrBookingNotFound,
		)
	}

	if booking.HotelID == nil || *booking.HotelID != input.HotelID {
		return nil, domainerror.NewHotelError(
			domainerror.ErrCodeNotHotelOwner,
			"booking does not belong to this hotel",
			domainerror.ErrNotHotelOwner,
		)
	}

	if err := uc.incomeRepo.DeleteByBooking(ctx, booking.ID); err != nil {
		return nil, fmt.Errorf("failed to delete linked extra income: %w", err)
	}

	if err := uc.bookingRepo.Delete(ctx, booking.ID); err != nil {
		return nil, fmt.Errorf("failed to delete booking: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.HotelID)

	return &DeleteBookingOutput{
		Message: "Booking deleted successfully",
	}, nil
}
