package entity

import (
	"time"

	"github.com/google/uuid"
)

// Operator represents an authenticated back-office user. Operators map 1:1
// to hotels; admins may additionally read across tenants.
type Operator struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewOperator creates a new Operator entity.
func NewOperator(email, name, passwordHash string) *Operator {
	now := time.Now().UTC()

	return &Operator{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
