// Package hotel contains hotel profile use cases.
package hotel

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hotel-ledger/backend/internal/application/adapter"
	"github.com/hotel-ledger/backend/internal/domain/entity"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
)

// UpdateHotelInput represents the input for updating the hotel profile.
// Nil pointer fields are left unchanged.
type UpdateHotelInput struct {
	OperatorID    uuid.UUID
	Name          *string
	QRRate        *int64
	Address       *string
	ContactNumber *string
}

// UpdateHotelOutput represents the output of updating the hotel profile.
type UpdateHotelOutput struct {
	Hotel *entity.Hotel
}

// UpdateHotelUseCase handles hotel profile updates.
type UpdateHotelUseCase struct {
	hotelRepo adapter.HotelRepository
}

// NewUpdateHotelUseCase creates a new UpdateHotelUseCase instance.
func NewUpdateHotelUseCase(hotelRepo adapter.HotelRepository) *UpdateHotelUseCase {
	return &UpdateHotelUseCase{
		hotelRepo: hotelRepo,
	}
}

// Execute performs the hotel profile update.
func (uc *UpdateHotelUseCase) Execute(ctx context.Context, input UpdateHotelInput) (*UpdateHotelOutput, error) {
	hotel, err := uc.hotelRepo.FindByOperatorID(ctx, input.OperatorID)
	if err != nil {
		return nil, domainerror.NewHotelError(
			domainerror.ErrCodeNoHotelForOperator,
			"no hotel associated with this account",
			domainerror.ErrNoHotelForOperator,
		)
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, domainerror.NewHotelError(
				domainerror.ErrCodeMissingHotelField,
				"hotel name must not be empty",
				nil,
			)
		}
		hotel.Name = *input.Name
	}

	if input.QRRate != nil {
		if *input.QRRate < 0 {
			return nil, domainerror.NewHotelError(
				domainerror.ErrCodeInvalidQRRate,
				"QR rate must not be negative",
				domainerror.ErrInvalidQRRate,
			)
		}
		hotel.QRRate = *input.QRRate
	}

	if input.Address != nil {
		hotel.Address = *input.Address
	}

	if input.ContactNumber != nil {
		hotel.ContactNumber = *input.ContactNumber
	}

	hotel.UpdatedAt = time.Now().UTC()

	if err := uc.hotelRepo.Update(ctx, hotel); err != nil {
		return nil, fmt.Errorf("failed to update hotel: %w", err)
	}

	return &UpdateHotelOutput{Hotel: hotel}, nil
}
