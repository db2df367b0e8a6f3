// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/hotel-ledger/backend/internal/domain/entity"
)

// HotelRepository defines the interface for hotel persistence operations.
type HotelRepository interface {
	// Create creates a new hotel in the database.
	Create(ctx context.Context, hotel *entity.Hotel) error

	// FindByID retrieves a hotel by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error)

	// FindByOperatorID retrieves the hotel owned by the given operator.
	FindByOperatorID(ctx context.Context, operatorID uuid.UUID) (*entity.Hotel, error)

	// FindAllActive retrieves every active hotel, ordered by name.
	FindAllActive(ctx context.Context) ([]*entity.Hotel, error)

	// Update updates an existing hotel in the database.
	Update(ctx context.Context, hotel *entity.Hotel) error

	// ExistsByCode checks if a hotel with the given code exists.
	ExistsByCode(ctx context.Context, code string) (bool, error)
}
