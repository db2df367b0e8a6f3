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

const (
	// DefaultPageSize is the page size used when the caller does not specify one.
	DefaultPageSize = 20
	// MaxPageSize caps the page size to keep list queries bounded.
	MaxPageSize = 100
)

// BookingOutput represents a booking in use case outputs. Due is the
// per-booking aggregator figure derived from the hotel's QR rate.
type BookingOutput struct {
	ID               uuid.UUID
	HotelID          *uuid.UUID
	Reference        string
	GuestName        string
	BookingDate      time.Time
	Mode             entity.BookingMode
	PaymentMode      entity.PaymentMode
	RoomCount        int
	Amount           decimal.Decimal
	QRReturned       decimal.Decimal
	ExcludedFromQR   bool
	ExtraIncomeTotal decimal.Decimal
	Due              decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ListBookingsInput represents the input for listing bookings.
type ListBookingsInput struct {
	HotelID     uuid.UUID
	StartDate   *time.Time
	EndDate     *time.Time
	Mode        *entity.BookingMode
	PaymentMode *entity.PaymentMode
	Search      string
	Page        int
	Limit       int
}

// ListBookingsOutput represents the output of listing bookings.
type ListBookingsOutput struct {
	Bookings   []*BookingOutput
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ListBookingsUseCase handles booking listing logic.
type ListBookingsUseCase struct {
	bookingRepo adapter.BookingRepository
	hotelRepo   adapter.HotelRepository
}

// NewListBookingsUseCase creates a new ListBookingsUseCase instance.
func NewListBookingsUseCase(bookingRepo adapter.BookingRepository, hotelRepo adapter.HotelRepository) *ListBookingsUseCase {
	return &ListBookingsUseCase{
		bookingRepo: bookingRepo,
		hotelRepo:   hotelRepo,
	}
}

// Execute performs the booking listing.
func (uc *ListBookingsUseCase) Execute(ctx context.Context, input ListBookingsInput) (*ListBookingsOutput, error) {
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
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

	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	result, err := uc.bookingRepo.FindByFilter(ctx, adapter.BookingFilter{
		HotelID:     input.HotelID,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Mode:        input.Mode,
		PaymentMode: input.PaymentMode,
		Search:      input.Search,
	}, adapter.BookingPagination{Page: page, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	outputs := make([]*BookingOutput, 0, len(result.Bookings))
	for _, b := range result.Bookings {
		outputs = append(outputs, toBookingOutput(b, hotel.QRRate))
	}

	return &ListBookingsOutput{
		Bookings:   outputs,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}, nil
}

// toBookingOutput maps a booking entity to its output form, attaching the
// per-booking due figure.
func toBookingOutput(b *entity.Booking, qrRate int64) *BookingOutput {
	return &BookingOutput{
		ID:               b.ID,
		HotelID:          b.HotelID,
		Reference:        b.Reference,
		GuestName:        b.GuestName,
		BookingDate:      b.BookingDate,
		Mode:             b.Mode,
		PaymentMode:      b.PaymentMode,
		RoomCount:        b.RoomCount,
		Amount:           b.Amount,
		QRReturned:       b.QRReturned,
		ExcludedFromQR:   b.ExcludedFromQR,
		ExtraIncomeTotal: b.ExtraIncomeTotal,
		Due:              valueobject.BookingDue(qrRate, b),
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}
