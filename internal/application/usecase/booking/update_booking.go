// Package booking contains booking-related use cases.
package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hotel-ledger/backend/internal/application/adapter"
	"github.com/hotel-ledger/backend/internal/domain/entity"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
	"github.com/hotel-ledger/backend/internal/domain/valueobject"
)

// UpdateBookingInput represents the input for booking updates.
type UpdateBookingInput struct {
	BookingID      uuid.UUID
	HotelID        uuid.UUID
	Reference      string
	GuestName      string
	BookingDate    time.Time
	Mode           entity.BookingMode
	PaymentMode    entity.PaymentMode
	RoomCount      int
	Amount         decimal.Decimal
	ExcludedFromQR bool
}

// UpdateBookingOutput represents the output of booking updates.
type UpdateBookingOutput struct {
	Booking *BookingOutput
}

// UpdateBookingUseCase handles booking update logic.
type UpdateBookingUseCase struct {
	bookingRepo adapter.BookingRepository
	hotelRepo   adapter.HotelRepository
	cache       adapter.DashboardCache
}

// NewUpdateBookingUseCase creates a new UpdateBookingUseCase instance.
func NewUpdateBookingUseCase(
	bookingRepo adapter.BookingRepository,
	hotelRepo adapter.HotelRepository,
	cache adapter.DashboardCache,
) *UpdateBookingUseCase {
	return &UpdateBookingUseCase{
		bookingRepo: bookingRepo,
		hotelRepo:   hotelRepo,
		cache:       cache,
	}
}

// Execute performs the booking update, re-deriving the QR-returned amount
// from the edited fields.
func (uc *UpdateBookingUseCase) Execute(ctx context.Context, input UpdateBookingInput) (*UpdateBookingOutput, error) {
	if err := validateBookingFields(input.Reference, input.BookingDate, input.Mode, input.PaymentMode, input.RoomCount, input.Amount); err != nil {
		return nil, err
	}

	booking, err := uc.bookingRepo.FindByID(ctx, input.BookingID)
	if err != nil {
		return nil, domainerror.NewBookingError(
			domainerror.ErrCodeBookingNotFound,
			"booking not found",
			domainerror.ErrBookingNotFound,
		)
	}

	// Tenant isolation: the booking must belong to the caller's hotel.
	if booking.HotelID == nil || *booking.HotelID != input.HotelID {
		return nil, domainerror.NewHotelError(
			domainerror.ErrCodeNotHotelOwner,
			"booking does not belong to this hotel",
			domainerror.ErrNotHotelOwner,
		)
	}

	hotel, err := uc.hotelRepo.FindByID(ctx, input.HotelID)
	if err != nil {
		return nil, domainerror.NewHotelError(
			domainerror.ErrCodeHotelNotFound,
			"hotel not found",
			domainerror.ErrHotelNotFound,
		)
	}

	booking.Reference = input.Reference
	booking.GuestName = input.GuestName
	booking.BookingDate = input.BookingDate
	booking.Mode = input.Mode
	booking.PaymentMode = input.PaymentMode
	booking.RoomCount = input.RoomCount
	booking.Amount = input.Amount
	booking.ExcludedFromQR = input.ExcludedFromQR
	booking.QRReturned = valueobject.AutoQRReturn(hotel.QRRate, booking)
	booking.UpdatedAt = time.Now().UTC()

	if err := uc.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, hotel.ID)

	return &UpdateBookingOutput{
		Booking: toBookingOutput(booking, hotel.QRRate),
	}, nil
}
