package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SimpleBooking is a minimal side-ledger entry: guest name, amount and an
// extra-income figure, with none of the QR accounting attached to regular
// bookings. Kept as its own table with its own endpoints.
type SimpleBooking struct {
	ID          uuid.UUID
	HotelID     uuid.UUID
	GuestName   string
	Amount      decimal.Decimal
	ExtraIncome decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewSimpleBooking creates a new SimpleBooking entity.
func NewSimpleBooking(hotelID uuid.UUID, guestName string, amount, extraIncome decimal.Decimal) *SimpleBooking {
	now := time.Now().UTC()

	return &SimpleBooking{
		ID:          uuid.New(),
		HotelID:     hotelID,
		GuestName:   guestName,
		Amount:      amount,
		ExtraIncome: extraIncome,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
