// Package expense contains daily expense use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hotel-ledger/backend/internal/application/adapter"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
)

// DeleteExpenseInput represents the input for daily expense deletion.
type DeleteExpenseInput struct {
	ExpenseID uuid.UUID
	HotelID   uuid.UUID
}

// DeleteExpenseOutput represents the output of daily expense deletion.
type DeleteExpenseOutput struct {
	Message string
}

// DeleteExpenseUseCase handles daily expense deletion logic.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	cache       adapter.DashboardCache
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository, cache adapter.DashboardCache) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
		cache:       cache,
	}
}

// Execute performs the daily expense deletion.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) (*DeleteExpenseOutput, error) {
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

	if err := uc.expenseRepo.Delete(ctx, expense.ID); err != nil {
		return nil, fmt.Errorf("failed to delete expense: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.HotelID)

	return &DeleteExpenseOutput{
		Message: "Expense deleted successfully",
	}, nil
}
