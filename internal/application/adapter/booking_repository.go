// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hotel-ledger/backend/internal/domain/entity"
)

// BookingFilter defines filter options for listing bookings.
type BookingFilter struct {
	HotelID     uuid.UUID
	StartDate   *time.Time
	EndDate     *time.Time
	Mode        *entity.BookingMode
	PaymentMode *entity.PaymentMode
	Search      string // Case-insensitive guest name / reference match
}

// BookingPagination defines pagination options.
type BookingPagination struct {
	Page  int
	Limit int
}

// BookingRangeTotals represents aggregated booking figures for a date range.
type BookingRangeTotals struct {
	Count            int64
	AmountTotal      decimal.Decimal
	ExtraIncomeTotal decimal.Decimal
}

// DailyRevenuePoint is a single day's booking revenue inside a range.
type DailyRevenuePoint struct {
	Date    time.Time
	Revenue decimal.Decimal
	Count   int64
}

// BookingModeCounts holds per-mode and per-payment-mode booking counts.
type BookingModeCounts struct {
	OYO     int64
	TA      int64
	OTA     int64
	WalkIn  int64
	Cash    int64
	UPI     int64
	Prepaid int64
}

// BookingRepository defines the interface for booking persistence operations.
type BookingRepository interface {
	// Create creates a new booking in the database.
	Create(ctx context.Context, booking *entity.Booking) error

	// FindByID retrieves a booking by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)

	// FindByFilter retrieves bookings based on filter criteria with pagination,
	// ordered by booking date descending.
	FindByFilter(ctx context.Context, filter BookingFilter, pagination BookingPagination) (*entity.BookingListResult, error)

	// FindByDateRange retrieves every booking for a hotel whose booking date
	// falls inside the inclusive [start, end] range.
	FindByDateRange(ctx context.Context, hotelID uuid.UUID, start, end time.Time) ([]*entity.Booking, error)

	// FindRecent retrieves the most recently created bookings for a hotel.
	FindRecent(ctx context.Context, hotelID uuid.UUID, limit int) ([]*entity.Booking, error)

	// GetRangeTotals aggregates count, amount, and cached extra income over a range.
	GetRangeTotals(ctx context.Context, hotelID uuid.UUID, start, end time.Time) (*BookingRangeTotals, error)

	// GetCreatedTotals aggregates bookings by creation date rather than booking date.
	GetCreatedTotals(ctx context.Context, hotelID uuid.UUID, day time.Time) (*BookingRangeTotals, error)

	// GetDailyRevenueSeries returns one revenue point per day with at least one booking.
	GetDailyRevenueSeries(ctx context.Context, hotelID uuid.UUID, start, end time.Time) ([]DailyRevenuePoint, error)

	// GetModeCounts counts bookings per booking mode and payment mode in a range.
	GetModeCounts(ctx context.Context, hotelID uuid.UUID, start, end time.Time) (*BookingModeCounts, error)

	// Update updates an existing booking in the database.
	Update(ctx context.Context, booking *entity.Booking) error

	// Delete removes a booking. Associated extra income rows are detached,
	// not deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
