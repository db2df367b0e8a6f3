// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/hotel-ledger/backend/internal/application/usecase/booking"
)

// CreateBookingRequest represents the request body for booking creation.
type CreateBookingRequest struct {
	Reference      string  `json:"reference" binding:"required,min=1,max=50"`
	GuestName      string  `json:"guest_name,omitempty" binding:"omitempty,max=150"`
	BookingDate    string  `json:"booking_date" binding:"required"`
	Mode           string  `json:"mode" binding:"required,oneof=OYO TA OTA WALK_IN"`
	PaymentMode    string  `json:"payment_mode" binding:"required,oneof=CASH UPI PREPAID"`
	RoomCount      int     `json:"room_count" binding:"required,min=1"`
	Amount         float64 `json:"amount" binding:"required"`
	ExcludedFromQR bool    `json:"excluded_from_qr,omitempty"`
}

// UpdateBookingRequest represents the request body for booking updates.
type UpdateBookingRequest struct {
	Reference      string  `json:"reference" binding:"required,min=1,max=50"`
	GuestName      string  `json:"guest_name,omitempty" binding:"omitempty,max=150"`
	BookingDate    string  `json:"booking_date" binding:"required"`
	Mode           string  `json:"mode" binding:"required,oneof=OYO TA OTA WALK_IN"`
	PaymentMode    string  `json:"payment_mode" binding:"required,oneof=CASH UPI PREPAID"`
	RoomCount      int     `json:"room_count" binding:"required,min=1"`
	Amount         float64 `json:"amount" binding:"required"`
	ExcludedFromQR bool    `json:"excluded_from_qr,omitempty"`
}

// BookingResponse represents a single booking in API responses. Due is the
// per-booking aggregator figure derived from the hotel's QR rate.
type BookingResponse struct {
	ID               string    `json:"id"`
	HotelID          *string   `json:"hotel_id,omitempty"`
	Reference        string    `json:"reference"`
	GuestName        string    `json:"guest_name"`
	BookingDate      string    `json:"booking_date"`
	Mode             string    `json:"mode"`
	PaymentMode      string    `json:"payment_mode"`
	RoomCount        int       `json:"room_count"`
	Amount           string    `json:"amount"`
	QRReturned       string    `json:"qr_returned"`
	ExcludedFromQR   bool      `json:"excluded_from_qr"`
	ExtraIncomeTotal string    `json:"extra_income_total"`
	Due              string    `json:"due"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// BookingPaginationResponse represents pagination information in API responses.
type BookingPaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// BookingListResponse represents the response for listing bookings.
type BookingListResponse struct {
	Bookings   []BookingResponse         `json:"bookings"`
	Pagination BookingPaginationResponse `json:"pagination"`
}

// ToBookingResponse converts a BookingOutput to a BookingResponse DTO.
func ToBookingResponse(b *booking.BookingOutput) BookingResponse {
	response := BookingResponse{
		ID:               b.ID.String(),
		Reference:        b.Reference,
		GuestName:        b.GuestName,
		BookingDate:      b.BookingDate.Format("2006-01-02"),
		Mode:             string(b.Mode),
		PaymentMode:      string(b.PaymentMode),
		RoomCount:        b.RoomCount,
		Amount:           b.Amount.String(),
		QRReturned:       b.QRReturned.String(),
		ExcludedFromQR:   b.ExcludedFromQR,
		ExtraIncomeTotal: b.ExtraIncomeTotal.String(),
		Due:              b.Due.String(),
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
	if b.HotelID != nil {
		hotelID := b.HotelID.String()
		response.HotelID = &hotelID
	}
	return response
}
