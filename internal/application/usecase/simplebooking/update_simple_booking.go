// Package simplebooking contains side-ledger use cases.
package simplebooking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hotel-ledger/backend/internal/application/adapter"
	"github.com/hotel-ledger/backend/internal/domain/entity"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
)

// UpdateSimpleBookingInput represents the input for updating a simple booking.
type UpdateSimpleBookingInput struct {
	ID          uuid.UUID
	HotelID     uuid.UUID
	GuestName   string
	Amount      decimal.Decimal
	ExtraIncome decimal.Decimal
}

// UpdateSimpleBookingOutput represents the output of updating a simple booking.
type UpdateSimpleBookingOutput struct {
	Booking *entity.SimpleBooking
}

// UpdateSimpleBookingUseCase handles side-ledger entry updates.
type UpdateSimpleBookingUseCase struct {
	simpleBookingRepo adapter.SimpleBookingRepository
}

// NewUpdateSimpleBookingUseCase creates a new UpdateSimpleBookingUseCase instance.
func NewUpdateSimpleBookingUseCase(simpleBookingRepo adapter.SimpleBookingRepository) *UpdateSimpleBookingUseCase {
	return &UpdateSimpleBookingUseCase{
		simpleBookingRepo: simpleBookingRepo,
	}
}

// Execute performs the simple booking update.
func (uc *UpdateSimpleBookingUseCase) Execute(ctx context.Context, input UpdateSimpleBookingInput) (*UpdateSimpleBookingOutput, error) {
	if err := validateSimpleBookingFields(input.GuestName, input.Amount, input.ExtraIncome); err != nil {
		return nil, err
	}

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

	booking.GuestName = strings.TrimSpace(input.GuestName)
	booking.Amount = input.Amount
	booking.ExtraIncome = input.ExtraIncome
	booking.UpdatedAt = time.Now().UTC()

	if err := uc.simpleBookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update simple booking: %w", err)
	}

	return &UpdateSimpleBookingOutput{Booking: booking}, nil
}
