// Package hotel contains hotel profile use cases.
package hotel

import (
	"context"

	"github.com/google/uuid"

	"github.com/hotel-ledger/backend/internal/application/adapter"
	"github.com/hotel-ledger/backend/internal/domain/entity"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
)

// GetHotelInput represents the input for fetching the operator's hotel.
type GetHotelInput struct {
	OperatorID uuid.UUID
}

// GetHotelOutput represents the output of fetching the operator's hotel.
type GetHotelOutput struct {
	Hotel *entity.Hotel
}

// GetHotelUseCase resolves the authenticated operator's hotel.
type GetHotelUseCase struct {
	hotelRepo adapter.HotelRepository
}

// NewGetHotelUseCase creates a new GetHotelUseCase instance.
func NewGetHotelUseCase(hotelRepo adapter.HotelRepository) *GetHotelUseCase {
	return &GetHotelUseCase{
		hotelRepo: hotelRepo,
	}
}

// Execute fetches the hotel owned by the operator.
func (uc *GetHotelUseCase) Execute(ctx context.Context, input GetHotelInput) (*GetHotelOutput, error) {
	hotel, err := uc.hotelRepo.FindByOperatorID(ctx, input.OperatorID)
	if err != nil {
		return nil, domainerror.NewHotelError(
			domainerror.ErrCodeNoHotelForOperator,
			"no hotel associated with this account",
			domainerror.ErrNoHotelForOperator,
		)
	}

	return &GetHotelOutput{Hotel: hotel}, nil
}
