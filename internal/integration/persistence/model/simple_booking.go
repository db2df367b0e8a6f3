// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hotel-ledger/backend/internal/domain/entity"
)

// SimpleBookingModel represents the simple_bookings table in the database.
type SimpleBookingModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	HotelID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	GuestName   string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ExtraIncome decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt   time.Time       `gorm:"not null;index"`
	UpdatedAt   time.Time       `gorm:"not null"`

	Hotel *HotelModel `gorm:"foreignKey:HotelID;references:ID"`
}

// TableName returns the table name for the SimpleBookingModel.
func (SimpleBookingModel) TableName() string {
	return "simple_bookings"
}

// ToEntity converts a SimpleBookingModel to a domain SimpleBooking entity.
func (m *SimpleBookingModel) ToEntity() *entity.SimpleBooking {
	return &entity.SimpleBooking{
		ID:          m.ID,
		HotelID:     m.HotelID,
		GuestName:   m.GuestName,
		Amount:      m.Amount,
		ExtraIncome: m.ExtraIncome,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// SimpleBookingFromEntity creates a SimpleBookingModel from a domain SimpleBooking entity.
func SimpleBookingFromEntity(booking *entity.SimpleBooking) *SimpleBookingModel {
	return &SimpleBookingModel{
		ID:          booking.ID,
		HotelID:     booking.HotelID,
		GuestName:   booking.GuestName,
		Amount:      booking.Amount,
		ExtraIncome: booking.ExtraIncome,
		CreatedAt:   booking.CreatedAt,
		UpdatedAt:   booking.UpdatedAt,
	}
}
