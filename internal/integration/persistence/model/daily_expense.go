// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hotel-ledger/backend/internal/domain/entity"
)

// DailyExpenseModel represents the daily_expenses table in the database.
type DailyExpenseModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	HotelID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type        string          `gorm:"type:varchar(30);not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Description string          `gorm:"type:text"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	Hotel *HotelModel `gorm:"foreignKey:HotelID;references:ID"`
}

// TableName returns the table name for the DailyExpenseModel.
func (DailyExpenseModel) TableName() string {
	return "daily_expenses"
}

// ToEntity converts a DailyExpenseModel to a domain DailyExpense entity.
func (m *DailyExpenseModel) ToEntity() *entity.DailyExpense {
	return &entity.DailyExpense{
		ID:          m.ID,
		HotelID:     m.HotelID,
		Type:        entity.ExpenseType(m.Type),
		Amount:      m.Amount,
		Description: m.Description,
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// DailyExpenseFromEntity creates a DailyExpenseModel from a domain DailyExpense entity.
func DailyExpenseFromEntity(expense *entity.DailyExpense) *DailyExpenseModel {
	return &DailyExpenseModel{
		ID:          expense.ID,
		HotelID:     expense.HotelID,
		Type:        string(expense.Type),
		Amount:      expense.Amount,
		Description: expense.Description,
		Date:        expense.Date,
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}
}
