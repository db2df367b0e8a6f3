// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/hotel-ledger/backend/internal/domain/entity"
)

// CreateIncomeRequest represents the request body for extra income creation.
type CreateIncomeRequest struct {
	BookingID   *string `json:"booking_id,omitempty"`
	Source      string  `json:"source" binding:"required,oneof=KITCHEN MINI_BAR PARKING OTHER"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=500"`
	Date        string  `json:"date" binding:"required"`
}

// UpdateIncomeRequest represents the request body for extra income updates.
type UpdateIncomeRequest struct {
	BookingID   *string `json:"booking_id,omitempty"`
	Source      string  `json:"source" binding:"required,oneof=KITCHEN MINI_BAR PARKING OTHER"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=500"`
	Date        string  `json:"date" binding:"required"`
}

// IncomeResponse represents an extra income entry in API responses.
type IncomeResponse struct {
	ID          string    `json:"id"`
	HotelID     string    `json:"hotel_id"`
	BookingID   *string   `json:"booking_id,omitempty"`
	Source      string    `json:"source"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IncomeListResponse represents the response for listing extra income.
type IncomeListResponse struct {
	Incomes []IncomeResponse `json:"incomes"`
	Total   string           `json:"total"`
}

// ToIncomeResponse converts a domain ExtraIncome entity to an IncomeResponse DTO.
func ToIncomeResponse(income *entity.ExtraIncome) IncomeResponse {
	response := IncomeResponse{
		ID:          income.ID.String(),
		HotelID:     income.HotelID.String(),
		Source:      string(income.Source),
		Amount:      income.Amount.String(),
		Description: income.Description,
		Date:        income.Date.Format("2006-01-02"),
		CreatedAt:   income.CreatedAt,
		UpdatedAt:   income.UpdatedAt,
	}
	if income.BookingID != nil {
		bookingID := income.BookingID.String()
		response.BookingID = &bookingID
	}
	return response
}
