// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshTokenModel represents the refresh_tokens table in the database.
type RefreshTokenModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Token       string    `gorm:"type:varchar(512);uniqueIndex;not null"`
	OperatorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Invalidated bool      `gorm:"default:false"`
	ExpiresAt   time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the RefreshTokenModel.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
