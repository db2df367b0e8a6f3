// Package simplebooking contains side-ledger use cases.
package simplebooking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hotel-ledger/backend/internal/application/adapter"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
)

// DeleteSimpleBookingInput represents the input for deleting a simple booking.
type DeleteSimpleBookingInput struct {
	ID      uuid.UUID
	HotelID uuid.UUID
}

// DeleteSimpleBookingOutput represents the output of deleting a simple booking.
type DeleteSimpleBookingOutput struct {
	Message string
}

// DeleteSimpleBookingUseCase handles side-ledger entry deletion.
type DeleteSimpleBookingUseCase struct {
	simpleBookingRepo adapter.SimpleBookingRepository
}

// NewDeleteSimpleBookingUseCase creates a new DeleteSimpleBookingUseCase instance.
func NewDeleteSimpleBookingUseCase(simpleBookingRepo adapter.SimpleBookingRepository) *DeleteSimpleBookingUseCase {
	return &DeleteSimpleBookingUseCase{
		simpleBookingRepo: simpleBookingRepo,
	}
}

// Execute performs the simple booking deletion.
func (uc *DeleteSimpleBookingUseCase) Execute(ctx context.Context, input DeleteSimpleBookingInput) (*DeleteSimpleBookingOutput, error) {
	booking, err := uc.simpleBookingRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewBookingError(
			domainerror.ErrCodeBookingNotFound,
			"simple booking not found",
			domainerror.ErrBookingNotFound,
		)
	}

	if booking.HotelID != input.HotelID {
		return nil, domainerror.NewHotelError(
			domainerror.ErrCodeNotHotelOwner,
			"booking belongs to another hotel",
			domainerror.ErrNotHotelOwner,
		)
	}

	if err := uc.simpleBookingRepo.Delete(ctx, input.ID); err != nil {
		return nil, fmt.Errorf("failed to delete simple booking: %w", err)
	}

	return &DeleteSimpleBookingOutput{Message: "Simple booking deleted successfully"}, nil
}
