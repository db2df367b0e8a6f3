package entity

import (
	"time"

	"github.com/google/uuid"
)

// Hotel represents a tenant of the back-office. Every operator owns exactly
// one hotel, and every record in the system is scoped to a hotel.
type Hotel struct {
	ID         uuid.UUID
	OperatorID uuid.UUID
	Name       string
	Code       string // unique short code assigned at onboarding
	// QRRate is the per-room amount (integer currency units) owed to the
	// aggregator for each qualifying booking. Zero means no QR accounting.
	QRRate        int64
	Address       string
	ContactNumber string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewHotel creates a new Hotel entity owned by the given operator.
func NewHotel(operatorID uuid.UUID, name, code string, qrRate int64, address, contactNumber string) *Hotel {
	now := time.Now().UTC()

	return &Hotel{
		ID:            uuid.New(),
		OperatorID:    operatorID,
		Name:          name,
		Code:          code,
		QRRate:        qrRate,
		Address:       address,
		ContactNumber: contactNumber,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
