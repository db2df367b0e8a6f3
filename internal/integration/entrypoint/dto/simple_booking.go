// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"fmt"
	"time"

	"github.com/hotel-ledger/backend/internal/application/adapter"
	"github.com/hotel-ledger/backend/internal/domain/entity"
)

// CreateSimpleBookingRequest represents the request body for side-ledger entries.
type CreateSimpleBookingRequest struct {
	GuestName   string  `json:"guest_name" binding:"required,min=1,max=150"`
	Amount      float64 `json:"amount" binding:"required"`
	ExtraIncome float64 `json:"extra_income,omitempty"`
}

// UpdateSimpleBookingRequest represents the request body for side-ledger updates.
type UpdateSimpleBookingRequest struct {
	GuestName   string  `json:"guest_name" binding:"required,min=1,max=150"`
	Amount      float64 `json:"amount" binding:"required"`
	ExtraIncome float64 `json:"extra_income,omitempty"`
}

// SimpleBookingResponse represents a side-ledger entry in API responses.
type SimpleBookingResponse struct {
	ID          string    `json:"id"`
	HotelID     string    `json:"hotel_id"`
	GuestName   string    `json:"guest_name"`
	Amount      string    `json:"amount"`
	ExtraIncome string    `json:"extra_income"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SimpleBookingTotalsResponse represents aggregated side-ledger figures.
type SimpleBookingTotalsResponse struct {
	Count            int64  `json:"count"`
	AmountTotal      string `json:"amount_total"`
	ExtraIncomeTotal string `json:"extra_income_total"`
}

// SimpleBookingMonthPointResponse is one month's side-ledger totals.
type SimpleBookingMonthPointResponse struct {
	Month string `json:"month"`
	Total string `json:"total"`
	Count int64  `json:"count"`
}

// SimpleBookingListResponse represents the response for listing side-ledger entries.
type SimpleBookingListResponse struct {
	Bookings      []SimpleBookingResponse           `json:"bookings"`
	Totals        SimpleBookingTotalsResponse       `json:"totals"`
	MonthlySeries []SimpleBookingMonthPointResponse `json:"monthly_series"`
}

// ToSimpleBookingResponse converts a domain SimpleBooking entity to its DTO.
func ToSimpleBookingResponse(booking *entity.SimpleBooking) SimpleBookingResponse {
	return SimpleBookingResponse{
		ID:          booking.ID.String(),
		HotelID:     booking.HotelID.String(),
		GuestName:   booking.GuestName,
		Amount:      booking.Amount.String(),
		ExtraIncome: booking.ExtraIncome.String(),
		CreatedAt:   booking.CreatedAt,
		UpdatedAt:   booking.UpdatedAt,
	}
}

// ToSimpleBookingMonthPointResponse converts an adapter month point to its DTO.
func ToSimpleBookingMonthPointResponse(point adapter.SimpleBookingMonthPoint) SimpleBookingMonthPointResponse {
	return SimpleBookingMonthPointResponse{
		Month: fmt.Sprintf("%04d-%02d", point.Year, point.Month),
		Total: point.Total.String(),
		Count: point.Count,
	}
}
