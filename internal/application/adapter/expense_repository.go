// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hotel-ledger/backend/internal/domain/entity"
)

// ExpenseFilter defines filter options for listing daily expenses.
type ExpenseFilter struct {
	HotelID   uuid.UUID
	Type      *entity.ExpenseType
	StartDate *time.Time
	EndDate   *time.Time
}

// ExpenseTypeTotal is the aggregated amount for one expense type.
type ExpenseTypeTotal struct {
	Type  entity.ExpenseType
	Total decimal.Decimal
	Count int64
}

// ExpenseRepository defines the interface for daily expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new daily expense in the database.
	Create(ctx context.Context, expense *entity.DailyExpense) error

	// FindByID retrieves a daily expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DailyExpense, error)

	// FindByFilter retrieves daily expenses ordered by date descending.
	FindByFilter(ctx context.Context, filter ExpenseFilter) ([]*entity.DailyExpense, error)

	// SumByHotelAndRange sums expense amounts for a hotel over a date range.
	SumByHotelAndRange(ctx context.Context, hotelID uuid.UUID, start, end time.Time) (decimal.Decimal, error)

	// GetTotalsByType aggregates expenses per type for a hotel over a date range.
	GetTotalsByType(ctx context.Context, hotelID uuid.UUID, start, end time.Time) ([]ExpenseTypeTotal, error)

	// Update updates an existing daily expense in the database.
	Update(ctx context.Context, expense *entity.DailyExpense) error

	// Delete removes a daily expense from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
