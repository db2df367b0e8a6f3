// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hotel-ledger/backend/internal/domain/entity"
)

// IncomeFilter defines filter options for listing extra income records.
type IncomeFilter struct {
	HotelID   uuid.UUID
	BookingID *uuid.UUID
	Source    *entity.IncomeSource
	StartDate *time.Time
	EndDate   *time.Time
}

// IncomeRepository defines the interface for extra income persistence operations.
type IncomeRepository interface {
	// Create creates a new extra income record in the database.
	Create(ctx context.Context, income *entity.ExtraIncome) error

	// FindByID retrieves an extra income record by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ExtraIncome, error)

	// FindByFilter retrieves extra income records ordered by date descending.
	FindByFilter(ctx context.Context, filter IncomeFilter) ([]*entity.ExtraIncome, error)

	// SumByBooking sums the amounts of every income row referencing a booking.
	SumByBooking(ctx context.Context, bookingID uuid.UUID) (decimal.Decimal, error)

	// SumByHotelAndRange sums income amounts for a hotel over a date range.
	SumByHotelAndRange(ctx context.Context, hotelID uuid.UUID, start, end time.Time) (decimal.Decimal, error)

	// DeleteByBooking removes every income row referencing the given
	// booking. Used when the booking itself is deleted.
	DeleteByBooking(ctx context.Context, bookingID uuid.UUID) error

	// Update updates an existing extra income record in the database.
	Update(ctx context.Context, income *entity.ExtraIncome) error

	// Delete removes an extra income record from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
