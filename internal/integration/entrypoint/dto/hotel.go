// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/hotel-ledger/backend/internal/domain/entity"
)

// UpdateHotelRequest represents the request body for hotel profile updates.
// Only the provided fields are changed.
type UpdateHotelRequest struct {
	Name          *string `json:"name,omitempty" binding:"omitempty,min=1,max=150"`
	QRRate        *int64  `json:"qr_rate,omitempty" binding:"omitempty,min=0"`
	Address       *string `json:"address,omitempty" binding:"omitempty,max=500"`
	ContactNumber *string `json:"contact_number,omitempty" binding:"omitempty,max=20"`
}

// HotelResponse represents a hotel in API responses.
type HotelResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Code          string    `json:"code"`
	QRRate        int64     `json:"qr_rate"`
	Address       string    `json:"address"`
	ContactNumber string    `json:"contact_number"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToHotelResponse converts a domain Hotel entity to a HotelResponse DTO.
func ToHotelResponse(hotel *entity.Hotel) HotelResponse {
	return HotelResponse{
		ID:            hotel.ID.String(),
		Name:          hotel.Name,
		Code:          hotel.Code,
		QRRate:        hotel.QRRate,
		Address:       hotel.Address,
		ContactNumber: hotel.ContactNumber,
		IsActive:      hotel.IsActive,
		CreatedAt:     hotel.CreatedAt,
		UpdatedAt:     hotel.UpdatedAt,
	}
}
