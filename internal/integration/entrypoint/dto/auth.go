// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/hotel-ledger/backend/internal/domain/entity"
)

// RegisterRequest represents the request body for operator registration.
// Registration creates the operator and their hotel in one step.
type RegisterRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Name          string `json:"name" binding:"required,min=1,max=100"`
	Password      string `json:"password" binding:"required,min=8"`
	HotelName     string `json:"hotel_name" binding:"required,min=1,max=150"`
	HotelCode     string `json:"hotel_code" binding:"required,min=1,max=30"`
	QRRate        int64  `json:"qr_rate" binding:"omitempty,min=0"`
	Address       string `json:"address,omitempty" binding:"omitempty,max=500"`
	ContactNumber string `json:"contact_number,omitempty" binding:"omitempty,max=20"`
}

// LoginRequest represents the request body for operator login.
type LoginRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest represents the request body for operator logout.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AuthResponse represents the response for authentication endpoints.
type AuthResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	Operator     OperatorResponse `json:"operator"`
	Hotel        *HotelResponse   `json:"hotel,omitempty"`
}

// TokenResponse represents the response for token refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// OperatorResponse represents the operator data in API responses.
type OperatorResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ToOperatorResponse converts a domain Operator entity to an OperatorResponse DTO.
func ToOperatorResponse(operator *entity.Operator) OperatorResponse {
	return OperatorResponse{
		ID:        operator.ID.String(),
		Email:     operator.Email,
		Name:      operator.Name,
		IsAdmin:   operator.IsAdmin,
		CreatedAt: operator.CreatedAt,
	}
}
