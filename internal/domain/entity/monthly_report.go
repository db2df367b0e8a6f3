package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlyReport is a frozen snapshot of one hotel's month. Reports are
// generated at most once per (hotel, month) unless explicitly forced; the
// database uniqueness constraint on that pair is the concurrency guard.
type MonthlyReport struct {
	ID      uuid.UUID
	HotelID uuid.UUID
	// Month is always the first day of the reported month.
	Month time.Time

	TotalBookings      int
	TotalRevenue       decimal.Decimal // booking amounts plus extra income
	TotalOYODue        decimal.Decimal // signed; negative means the aggregator owes the hotel
	TotalCashCollected decimal.Decimal
	TotalQRReturned    decimal.Decimal
	TotalExtraIncome   decimal.Decimal
	TotalExpenses      decimal.Decimal
	NetProfit          decimal.Decimal

	// Booking mode breakdown.
	OYOBookings    int
	TABookings     int
	OTABookings    int
	WalkInBookings int

	// Payment mode breakdown.
	CashPayments    int
	UPIPayments     int
	PrepaidPayments int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMonthlyReport creates an empty report shell for the given hotel and
// month; the caller fills in the snapshot totals before persisting.
func NewMonthlyReport(hotelID uuid.UUID, month time.Time) *MonthlyReport {
	now := time.Now().UTC()

	return &MonthlyReport{
		ID:                 uuid.New(),
		HotelID:            hotelID,
		Month:              FirstOfMonth(month),
		TotalRevenue:       decimal.Zero,
		TotalOYODue:        decimal.Zero,
		TotalCashCollected: decimal.Zero,
		TotalQRReturned:    decimal.Zero,
		TotalExtraIncome:   decimal.Zero,
		TotalExpenses:      decimal.Zero,
		NetProfit:          decimal.Zero,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// FirstOfMonth truncates a date to the first day of its month (UTC).
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// LastOfMonth returns the last day of t's month (UTC).
func LastOfMonth(t time.Time) time.Time {
	return FirstOfMonth(t).AddDate(0, 1, -1)
}
