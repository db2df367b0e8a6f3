package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeSource represents where a piece of extra income came from.
type IncomeSource string

const (
	IncomeSourceKitchen IncomeSource = "KITCHEN"
	IncomeSourceMiniBar IncomeSource = "MINI_BAR"
	IncomeSourceParking IncomeSource = "PARKING"
	IncomeSourceOther   IncomeSource = "OTHER"
)

// IncomeSources lists every income source in display order.
var IncomeSources = []IncomeSource{IncomeSourceKitchen, IncomeSourceMiniBar, IncomeSourceParking, IncomeSourceOther}

// ExtraIncome represents income earned outside the room tariff (kitchen,
// mini bar, parking). It may reference a booking; the reference is weak and
// survives booking deletion as a detached row.
type ExtraIncome struct {
	ID          uuid.UUID
	HotelID     uuid.UUID
	BookingID   *uuid.UUID
	Source      IncomeSource
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExtraIncome creates a new ExtraIncome entity.
func NewExtraIncome(
	hotelID uuid.UUID,
	bookingID *uuid.UUID,
	source IncomeSource,
	amount decimal.Decimal,
	description string,
	date time.Time,
) *ExtraIncome {
	now := time.Now().UTC()

	return &ExtraIncome{
		ID:          uuid.New(),
		HotelID:     hotelID,
		BookingID:   bookingID,
		Source:      source,
		Amount:      amount,
		Description: description,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsValidIncomeSource reports whether the given source is supported.
func IsValidIncomeSource(source IncomeSource) bool {
	switch source {
	case IncomeSourceKitchen, IncomeSourceMiniBar, IncomeSourceParking, IncomeSourceOther:
		return true
	}
	return false
}
