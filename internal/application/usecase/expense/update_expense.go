// Package expense contains daily expense use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hotel-ledger/backend/internal/application/adapter"
	"github.com/hotel-ledger/backend/internal/domain/entity"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
)

// UpdateExpenseInput represents the input for daily expense updates.
type UpdateExpenseInput struct {
	ExpenseID   uuid.UUID
	HotelID     uuid.UUID
	Type        entity.ExpenseType
	Amount      decimal.Decimal
	Description string
	Date        time.Time
}

// UpdateExpenseOutput represents the output of daily expense updates.
type UpdateExpenseOutput struct {
	Expense *entity.DailyExpense
}

// UpdateExpenseUseCase handles daily expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	cache       adapter.DashboardCache
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository, cache adapter.DashboardCache) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
		cache:       cache,
	}
}

// Execute performs the daily expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	if err := validateExpenseFields(input.Type, input.Amount, input.Date); err != nil {
		return nil, err
	}

	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"daily expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	if expense.HotelID != input.HotelID {
		return nil, domainerror.NewHotelError(
			domainerror.ErrCodeNotHotelOwner,
			"expense does not belong to this hotel",
			domainerror.ErrNotHotelOwner,
		)
	}

	expense.Type = input.Type
	expense.Amount = input.Amount
	expense.Description = input.Description
	expense.Date = input.Date
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.HotelID)

	return &UpdateExpenseOutput{Expense: expense}, nil
}
