// Package booking contains booking-related use cases.
package booking

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hotel-ledger/backend/internal/application/adapter"
	"github.com/hotel-ledger/backend/internal/domain/entity"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
	"github.com/hotel-ledger/backend/internal/domain/valueobject"
)

// CreateBookingInput represents the input for booking creation.
type CreateBookingInput struct {
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

// CreateBookingOutput represents the output of booking creation.
type CreateBookingOutput struct {
	Booking *BookingOutput
}

// CreateBookingUseCase handles booking creation logic.
type CreateBookingUseCase struct {
	bookingRepo adapter.BookingRepository
	hotelRepo   adapter.HotelRepository
	cache       adapter.DashboardCache
}

// NewCreateBookingUseCase creates a new CreateBookingUseCase instance.
func NewCreateBookingUseCase(
	bookingRepo adapter.BookingRepository,
	hotelRepo adapter.HotelRepository,
	cache adapter.DashboardCache,
) *CreateBookingUseCase {
	return &CreateBookingUseCase{
		bookingRepo: bookingRepo,
		hotelRepo:   hotelRepo,
		cache:       cache,
	}
}

// Execute performs the booking creation. The QR-returned amount is derived
// here at the write boundary, never by the reconciliation engine.
func (uc *CreateBookingUseCase) Execute(ctx context.Context, input CreateBookingInput) (*CreateBookingOutput, error) {
	if err := validateBookingFields(input.Reference, input.BookingDate, input.Mode, input.PaymentMode, input.RoomCount, input.Amount); err != nil {
		return nil, err
	}

	hotel, err := uc.hotelRepo.FindByID(ctx, input.HotelID)
	if err != nil {
		return nil, domainerror.NewHotelError(
			domainerror.ErrCodeHotelNotFound,
			"hotel not found",
			domainerror.ErrHotelNotFound,
		)
	}

	booking := entity.NewBooking(
		hotel.ID,
		input.Reference,
		input.GuestName,
		input.BookingDate,
		input.Mode,
		input.PaymentMode,
		input.RoomCount,
		input.Amount,
		input.ExcludedFromQR,
	)
	booking.QRReturned = valueobject.AutoQRReturn(hotel.QRRate, booking)

	if err := uc.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, hotel.ID)

	return &CreateBookingOutput{
		Booking: toBookingOutput(booking, hotel.QRRate),
	}, nil
}

// validateBookingFields checks the invariants shared by create and update.
func validateBookingFields(
	reference string,
	bookingDate time.Time,
	mode entity.BookingMode,
	paymentMode entity.PaymentMode,
	roomCount int,
	amount decimal.Decimal,
) error {
	if strings.TrimSpace(reference) == "" {
		return domainerror.NewBookingError(
			domainerror.ErrCodeBookingReferenceRequired,
			"booking reference is required",
			domainerror.ErrBookingReferenceRequired,
		)
	}

	if bookingDate.IsZero() {
		return domainerror.NewBookingError(
			domainerror.ErrCodeInvalidBookingDate,
			"booking date is required",
			domainerror.ErrInvalidBookingDate,
		)
	}

	if !entity.IsValidBookingMode(mode) {
		return domainerror.NewBookingError(
			domainerror.ErrCodeInvalidBookingMode,
			"booking mode must be one of OYO, TA, OTA, WALK_IN",
			domainerror.ErrInvalidBookingMode,
		)
	}

	if !entity.IsValidPaymentMode(paymentMode) {
		return domainerror.NewBookingError(
			domainerror.ErrCodeInvalidPaymentMode,
			"payment mode must be one of CASH, UPI, PREPAID",
			domainerror.ErrInvalidPaymentMode,
		)
	}

	if roomCount < 1 {
		return domainerror.NewBookingError(
			domainerror.ErrCodeInvalidRoomCount,
			"room count must be at least 1",
			domainerror.ErrInvalidRoomCount,
		)
	}

	if !amount.IsPositive() {
		return domainerror.NewBookingError(
			domainerror.ErrCodeInvalidBookingAmount,
			"booking amount must be positive",
			domainerror.ErrInvalidBookingAmount,
		)
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
