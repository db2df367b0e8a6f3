// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hotel-ledger/backend/internal/domain/entity"
)

// SimpleBookingTotals represents aggregated side-ledger figures.
type SimpleBookingTotals struct {
	Count            int64
	AmountTotal      decimal.Decimal
	ExtraIncomeTotal decimal.Decimal
}

// SimpleBookingMonthPoint is one month's side-ledger totals.
type SimpleBookingMonthPoint struct {
	Year  int
	Month int
	Total decimal.Decimal
	Count int64
}

// SimpleBookingRepository defines the interface for side-ledger persistence operations.
type SimpleBookingRepository interface {
	// Create creates a new simple booking in the database.
	Create(ctx context.Context, booking *entity.SimpleBooking) error

	// FindByID retrieves a simple booking by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SimpleBooking, error)

	// FindByHotel retrieves simple bookings for a hotel, newest first.
	FindByHotel(ctx context.Context, hotelID uuid.UUID) ([]*entity.SimpleBooking, error)

	// GetTotals aggregates count, amount, and extra income for a hotel.
	GetTotals(ctx context.Context, hotelID uuid.UUID) (*SimpleBookingTotals, error)

	// GetMonthlySeries aggregates totals per creation month, oldest first.
	GetMonthlySeries(ctx context.Context, hotelID uuid.UUID, months int) ([]SimpleBookingMonthPoint, error)

	// Update updates an existing simple booking in the database.
	Update(ctx context.Context, booking *entity.SimpleBooking) error

	// Delete removes a simple booking from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
