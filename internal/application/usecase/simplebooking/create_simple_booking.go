// Package simplebooking contains side-ledger use cases.
package simplebooking

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hotel-ledger/backend/internal/application/adapter"
	"github.com/hotel-ledger/backend/internal/domain/entity"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
)

// CreateSimpleBookingInput represents the input for creating a simple booking.
type CreateSimpleBookingInput struct {
	HotelID     uuid.UUID
	GuestName   string
	Amount      decimal.Decimal
	ExtraIncome decimal.Decimal
}

// CreateSimpleBookingOutput represents the output of creating a simple booking.
type CreateSimpleBookingOutput struct {
	Booking *entity.SimpleBooking
}

// CreateSimpleBookingUseCase handles side-ledger entry creation.
type CreateSimpleBookingUseCase struct {
	simpleBookingRepo adapter.SimpleBookingRepository
}

// NewCreateSimpleBookingUseCase creates a new CreateSimpleBookingUseCase instance.
func NewCreateSimpleBookingUseCase(simpleBookingRepo adapter.SimpleBookingRepository) *CreateSimpleBookingUseCase {
	return &CreateSimpleBookingUseCase{
		simpleBookingRepo: simpleBookingRepo,
	}
}

// Execute performs the simple booking creation.
func (uc *CreateSimpleBookingUseCase) Execute(ctx context.Context, input CreateSimpleBookingInput) (*CreateSimpleBookingOutput, error) {
	if err := validateSimpleBookingFields(input.GuestName, input.Amount, input.ExtraIncome); err != nil {
		return nil, err
	}

	booking := entity.NewSimpleBooking(input.HotelID, strings.TrimSpace(input.GuestName), input.Amount, input.ExtraIncome)

	if err := uc.simpleBookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create simple booking: %w", err)
	}

	return &CreateSimpleBookingOutput{Booking: booking}, nil
}

// validateSimpleBookingFields checks the side-ledger invariants shared by
// create and update.
func validateSimpleBookingFields(guestName string, amount, extraIncome decimal.Decimal) error {
	if strings.TrimSpace(guestName) == "" {
		return domainerror.NewBookingError(
			domainerror.ErrCodeMissingBookingFields,
			"guest name is required",
			domainerror.ErrMissingBookingFields,
		)
	}
	if !amount.IsPositive() {
		return domainerror.NewBookingError(
			domainerror.ErrCodeInvalidBookingAmount,
			"amount must be positive",
			domainerror.ErrInvalidBookingAmount,
		)
	}
	if extraIncome.IsNegative() {
		return domainerror.NewBookingError(
			domainerror.ErrCodeInvalidBookingAmount,
			"extra income must not be negative",
			domainerror.ErrInvalidBookingAmount,
		)
	}
	return nil
}
