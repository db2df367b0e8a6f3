// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hotel-ledger/backend/internal/domain/entity"
)

// BookingModel represents the bookings table in the database.
type BookingModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	HotelID          *uuid.UUID      `gorm:"type:uuid;index"`
	Reference        string          `gorm:"type:varchar(100);not null"`
	GuestName        string          `gorm:"type:varchar(255)"`
	BookingDate      time.Time       `gorm:"type:date;not null;index"`
	Mode             string          `gorm:"type:varchar(10);not null;index"`
	PaymentMode      string          `gorm:"type:varchar(10);not null"`
	RoomCount        int             `gorm:"not null;default:1"`
	Amount           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	QRReturned       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	ExcludedFromQR   bool            `gorm:"default:false"`
	ExtraIncomeTotal decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt        time.Time       `gorm:"not null;index"`
	UpdatedAt        time.Time       `gorm:"not null"`

	Hotel *HotelModel `gorm:"foreignKey:HotelID;references:ID"`
}

// TableName returns the table name for the BookingModel.
func (BookingModel) TableName() string {
	return "bookings"
}

// ToEntity converts a BookingModel to a domain Booking entity.
func (m *BookingModel) ToEntity() *entity.Booking {
	return &entity.Booking{
		ID:               m.ID,
		HotelID:          m.HotelID,
		Reference:        m.Reference,
		GuestName:        m.GuestName,
		BookingDate:      m.BookingDate,
		Mode:             entity.BookingMode(m.Mode),
		PaymentMode:      entity.PaymentMode(m.PaymentMode),
		RoomCount:        m.RoomCount,
		Amount:           m.Amount,
		QRReturned:       m.QRReturned,
		ExcludedFromQR:   m.ExcludedFromQR,
		ExtraIncomeTotal: m.ExtraIncomeTotal,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// BookingFromEntity creates a BookingModel from a domain Booking entity.
func BookingFromEntity(booking *entity.Booking) *BookingModel {
	return &BookingModel{
		ID:               booking.ID,
		HotelID:          booking.HotelID,
		Reference:        booking.Reference,
		GuestName:        booking.GuestName,
		BookingDate:      booking.BookingDate,
		Mode:             string(booking.Mode),
		PaymentMode:      string(booking.PaymentMode),
		RoomCount:        booking.RoomCount,
		Amount:           booking.Amount,
		QRReturned:       booking.QRReturned,
		ExcludedFromQR:   booking.ExcludedFromQR,
		ExtraIncomeTotal: booking.ExtraIncomeTotal,
		CreatedAt:        booking.CreatedAt,
		UpdatedAt:        booking.UpdatedAt,
	}
}
