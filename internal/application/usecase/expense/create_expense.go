// Package expense contains daily expense use cases.
package expense

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hotel-ledger/backend/internal/application/adapter"
	"github.com/hotel-ledger/backend/internal/domain/entity"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for daily expense creation.
type CreateExpenseInput struct {
	HotelID     uuid.UUID
	Type        entity.ExpenseType
	Amount      decimal.Decimal
	Description string
	Date        time.Time
}

// CreateExpenseOutput represents the output of daily expense creation.
type CreateExpenseOutput struct {
	Expense *entity.DailyExpense
}

// CreateExpenseUseCase handles daily expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	cache       adapter.DashboardCache
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository, cache adapter.DashboardCache) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
		cache:       cache,
	}
}

// Execute performs the daily expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if err := validateExpenseFields(input.Type, input.Amount, input.Date); err != nil {
		return nil, err
	}

	expense := entity.NewDailyExpense(input.HotelID, input.Type, input.Amount, input.Description, input.Date)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.HotelID)

	return &CreateExpenseOutput{Expense: expense}, nil
}

// validateExpenseFields checks the invariants shared by create and update.
func validateExpenseFields(expenseType entity.ExpenseType, amount decimal.Decimal, date time.Time) error {
	if !entity.IsValidExpenseType(expenseType) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseType,
			"expense type must be one of STAFF_SALARY, KITCHEN_GROCERY, ELECTRICITY_WATER, MAINTENANCE, OTHER",
			domainerror.ErrInvalidExpenseType,
		)
	}

	if !amount.IsPositive() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"expense amount must be positive",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	if date.IsZero() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseDate,
			"expense date is required",
			domainerror.ErrInvalidExpenseDate,
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
