// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/hotel-ledger/backend/internal/domain/entity"
)

// HotelModel represents the hotels table in the database.
type HotelModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OperatorID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Code          string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	QRRate        int64     `gorm:"not null;default:0"`
	Address       string    `gorm:"type:text"`
	ContactNumber string    `gorm:"type:varchar(20)"`
	IsActive      bool      `gorm:"default:true"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`

	Operator *OperatorModel `gorm:"foreignKey:OperatorID;references:ID"`
}

// TableName returns the table name for the HotelModel.
func (HotelModel) TableName() string {
	return "hotels"
}

// ToEntity converts a HotelModel to a domain Hotel entity.
func (m *HotelModel) ToEntity() *entity.Hotel {
	return &entity.Hotel{
		ID:            m.ID,
		OperatorID:    m.OperatorID,
		Name:          m.Name,
		Code:          m.Code,
		QRRate:        m.QRRate,
		Address:       m.Address,
		ContactNumber: m.ContactNumber,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// HotelFromEntity creates a HotelModel from a domain Hotel entity.
func HotelFromEntity(hotel *entity.Hotel) *HotelModel {
	return &HotelModel{
		ID:            hotel.ID,
		OperatorID:    hotel.OperatorID,
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
