// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingMode represents the channel a booking arrived through. All four
// modes participate in aggregator QR accounting.
type BookingMode string

const (
	BookingModeOYO    BookingMode = "OYO"
	BookingModeTA     BookingMode = "TA"
	BookingModeOTA    BookingMode = "OTA"
	BookingModeWalkIn BookingMode = "WALK_IN"
)

// BookingModes lists every booking mode in display order.
var BookingModes = []BookingMode{BookingModeOYO, BookingModeTA, BookingModeOTA, BookingModeWalkIn}

// PaymentMode represents how the guest paid for a booking.
type PaymentMode string

const (
	PaymentModeCash    PaymentMode = "CASH"
	PaymentModeUPI     PaymentMode = "UPI"
	PaymentModePrepaid PaymentMode = "PREPAID"
)

// PaymentModes lists every payment mode in display order.
var PaymentModes = []PaymentMode{PaymentModeCash, PaymentModeUPI, PaymentModePrepaid}

// Booking represents a single guest booking recorded by a hotel operator.
type Booking struct {
	ID        uuid.UUID
	HotelID   *uuid.UUID // nullable for legacy rows imported without a hotel
	Reference string     // external booking reference shown to the aggregator
	GuestName string
	// BookingDate is the business date of the booking and the key used for
	// all date-range queries (reconciliation, reports, dashboard filters).
	BookingDate time.Time
	Mode        BookingMode
	PaymentMode PaymentMode
	RoomCount   int
	Amount      decimal.Decimal
	// QRReturned is the amount already returned through the aggregator's QR
	// channel. It is derived at the write boundary, never by the engine.
	QRReturned decimal.Decimal
	// ExcludedFromQR flags a booking that skips standard QR accounting. Its
	// surplus is folded back into the range reconciliation separately.
	ExcludedFromQR bool
	// ExtraIncomeTotal is a denormalized cache of the booking's associated
	// extra-income rows, recomputed after every income mutation.
	ExtraIncomeTotal decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewBooking creates a new Booking entity.
func NewBooking(
	hotelID uuid.UUID,
	reference string,
	guestName string,
	bookingDate time.Time,
	mode BookingMode,
	paymentMode PaymentMode,
	roomCount int,
	amount decimal.Decimal,
	excludedFromQR bool,
) *Booking {
	now := time.Now().UTC()

	return &Booking{
		ID:               uuid.New(),
		HotelID:          &hotelID,
		Reference:        reference,
		GuestName:        guestName,
		BookingDate:      bookingDate,
		Mode:             mode,
		PaymentMode:      paymentMode,
		RoomCount:        roomCount,
		Amount:           amount,
		QRReturned:       decimal.Zero,
		ExcludedFromQR:   excludedFromQR,
		ExtraIncomeTotal: decimal.Zero,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// IsValidBookingMode reports whether the given mode is one of the four
// supported booking modes.
func IsValidBookingMode(mode BookingMode) bool {
	switch mode {
	case BookingModeOYO, BookingModeTA, BookingModeOTA, BookingModeWalkIn:
		return true
	}
	return false
}

// IsValidPaymentMode reports whether the given payment mode is supported.
func IsValidPaymentMode(mode PaymentMode) bool {
	switch mode {
	case PaymentModeCash, PaymentModeUPI, PaymentModePrepaid:
		return true
	}
	return false
}

// BookingListResult represents the result of listing bookings.
type BookingListResult struct {
	Bookings   []*Booking
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
