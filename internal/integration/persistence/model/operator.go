// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/hotel-ledger/backend/internal/domain/entity"
)

// OperatorModel represents the operators table in the database.
type OperatorModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(255);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	IsAdmin      bool      `gorm:"default:false"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the OperatorModel.
func (OperatorModel) TableName() string {
	return "operators"
}

// ToEntity converts an OperatorModel to a domain Operator entity.
func (m *OperatorModel) ToEntity() *entity.Operator {
	return &entity.Operator{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		IsAdmin:      m.IsAdmin,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// OperatorFromEntity creates an OperatorModel from a domain Operator entity.
func OperatorFromEntity(operator *entity.Operator) *OperatorModel {
	return &OperatorModel{
		ID:           operator.ID,
		Email:        operator.Email,
		Name:         operator.Name,
		PasswordHash: operator.PasswordHash,
		IsAdmin:      operator.IsAdmin,
		CreatedAt:    operator.CreatedAt,
		UpdatedAt:    operator.UpdatedAt,
	}
}
