// Package expense contains daily expense use cases.
package expense

import (
	"context"
	"strings"

	"github.com/hotel-ledger/backend/internal/application/adapter"
	"github.com/hotel-ledger/backend/internal/domain/entity"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
)

// SuggestExpenseTypeInput represents the input for expense type suggestion.
type SuggestExpenseTypeInput struct {
	Description string
}

// SuggestExpenseTypeOutput represents the output of expense type suggestion.
type SuggestExpenseTypeOutput struct {
	Type       entity.ExpenseType
	Label      string
	Confidence float64
	Reasoning  string
}

// SuggestExpenseTypeUseCase proposes an expense type for a free-text
// description via the configured AI suggester.
type SuggestExpenseTypeUseCase struct {
	suggester adapter.ExpenseTypeSuggester
}

// NewSuggestExpenseTypeUseCase creates a new SuggestExpenseTypeUseCase instance.
func NewSuggestExpenseTypeUseCase(suggester adapter.ExpenseTypeSuggester) *SuggestExpenseTypeUseCase {
	return &SuggestExpenseTypeUseCase{
		suggester: suggester,
	}
}

// Execute performs the expense type suggestion.
func (uc *SuggestExpenseTypeUseCase) Execute(ctx context.Context, input SuggestExpenseTypeInput) (*SuggestExpenseTypeOutput, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseType,
			"description is required for a suggestion",
			nil,
		)
	}

	if uc.suggester == nil || !uc.suggester.IsAvailable() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseSuggestionUnavailable,
			"expense type suggestion is not configured",
			domainerror.ErrExpenseSuggestionUnavailable,
		)
	}

	suggestion, err := uc.suggester.SuggestType(ctx, input.Description)
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseSuggestionUnavailable,
			"expense type suggestion failed",
			err,
		)
	}

	// The model may drift outside the closed enum; fall back to OTHER.
	if !entity.IsValidExpenseType(suggestion.Type) {
		suggestion.Type = entity.ExpenseTypeOther
	}

	return &SuggestExpenseTypeOutput{
		Type:       suggestion.Type,
		Label:      entity.ExpenseTypeLabel(suggestion.Type),
		Confidence: suggestion.Confidence,
		Reasoning:  suggestion.Reasoning,
	}, nil
}
