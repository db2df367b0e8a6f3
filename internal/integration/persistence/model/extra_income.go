// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hotel-ledger/backend/internal/domain/entity"
)

// ExtraIncomeModel represents the extra_incomes table in the database.
// BookingID is a weak reference: deleting a booking detaches these rows
// instead of cascading.
type ExtraIncomeModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	HotelID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	BookingID   *uuid.UUID      `gorm:"type:uuid;index"`
	Source      string          `gorm:"type:varchar(20);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Description string          `gorm:"type:text"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	Hotel *HotelModel `gorm:"foreignKey:HotelID;references:ID"`
}

// TableName returns the table name for the ExtraIncomeModel.
func (ExtraIncomeModel) TableName() string {
	return "extra_incomes"
}

// ToEntity converts an ExtraIncomeModel to a domain ExtraIncome entity.
func (m *ExtraIncomeModel) ToEntity() *entity.ExtraIncome {
	return &entity.ExtraIncome{
		ID:          m.ID,
		HotelID:     m.HotelID,
		BookingID:   m.BookingID,
		Source:      entity.IncomeSource(m.Source),
		Amount:      m.Amount,
		Description: m.Description,
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ExtraIncomeFromEntity creates an ExtraIncomeModel from a domain ExtraIncome entity.
func ExtraIncomeFromEntity(income *entity.ExtraIncome) *ExtraIncomeModel {
	return &ExtraIncomeModel{
		ID:          income.ID,
		HotelID:     income.HotelID,
		BookingID:   income.BookingID,
		Source:      string(income.Source),
		Amount:      income.Amount,
		Description: income.Description,
		Date:        income.Date,
		CreatedAt:   income.CreatedAt,
		UpdatedAt:   income.UpdatedAt,
	}
}
