// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/hotel-ledger/backend/internal/domain/entity"
)

// ExpenseTypeSuggestion represents a suggested expense type for a description.
type ExpenseTypeSuggestion struct {
	Type       entity.ExpenseType
	Confidence float64
	Reasoning  string
}

// ExpenseTypeSuggester defines the interface for AI-backed expense type suggestions.
type ExpenseTypeSuggester interface {
	// SuggestType analyzes a free-text expense description and proposes a type.
	SuggestType(ctx context.Context, description string) (*ExpenseTypeSuggestion, error)

	// IsAvailable checks if the suggestion service is configured and reachable.
	IsAvailable() bool
}
