// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/hotel-ledger/backend/internal/domain/entity"
)

// OperatorRepository defines the interface for operator persistence operations.
type OperatorRepository interface {
	// Create creates a new operator in the database.
	Create(ctx context.Context, operator *entity.Operator) error

	// FindByID retrieves an operator by their ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Operator, error)

	// FindByEmail retrieves an operator by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Operator, error)

	// Update updates an existing operator in the database.
	Update(ctx context.Context, operator *entity.Operator) error

	// ExistsByEmail checks if an operator with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
