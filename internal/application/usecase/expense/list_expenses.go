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

// ListExpensesInput represents the input for listing daily expenses.
type ListExpensesInput struct {
	HotelID   uuid.UUID
	Type      *entity.ExpenseType
	StartDate *time.Time
	EndDate   *time.Time
}

// ListExpensesOutput represents the output of listing daily expenses.
type ListExpensesOutput struct {
	Expenses     []*entity.DailyExpense
	Total        decimal.Decimal
	TotalsByType []adapter.ExpenseTypeTotal
}

// ListExpensesUseCase handles daily expense listing logic.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the daily expense listing with per-type totals.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}

	expenses, err := uc.expenseRepo.FindByFilter(ctx, adapter.ExpenseFilter{
		HotelID:   input.HotelID,
		Type:      input.Type,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	total := decimal.Zero
	byType := make(map[entity.ExpenseType]*adapter.ExpenseTypeTotal, len(entity.ExpenseTypes))
	for _, exp := range expenses {
		total = total.Add(exp.Amount)
		agg, ok := byType[exp.Type]
		if !ok {
			agg = &adapter.ExpenseTypeTotal{Type: exp.Type, Total: decimal.Zero}
			byType[exp.Type] = agg
		}
		agg.Total = agg.Total.Add(exp.Amount)
		agg.Count++
	}

	// Keep the per-type totals in display order.
	totals := make([]adapter.ExpenseTypeTotal, 0, len(byType))
	for _, expenseType := range entity.ExpenseTypes {
		if agg, ok := byType[expenseType]; ok {
			totals = append(totals, *agg)
		}
	}

	return &ListExpensesOutput{
		Expenses:     expenses,
		Total:        total,
		TotalsByType: totals,
	}, nil
}
