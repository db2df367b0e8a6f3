// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hotel-ledger/backend/internal/application/adapter"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
	"github.com/hotel-ledger/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// OperatorIDKey is the context key for the authenticated operator's ID.
	OperatorIDKey ContextKey = "operator_id"
	// OperatorEmailKey is the context key for the authenticated operator's email.
	OperatorEmailKey ContextKey = "operator_email"
	// HotelIDKey is the context key for the resolved tenant hotel ID.
	HotelIDKey ContextKey = "hotel_id"
	// IsAdminKey is the context key for the operator's admin flag.
	IsAdminKey ContextKey = "is_admin"
)

// AuthMiddleware provides JWT authentication and tenant resolution middleware.
type AuthMiddleware struct {
	tokenService adapter.TokenService
	operatorRepo adapter.OperatorRepository
	hotelRepo    adapter.HotelRepository
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(
	tokenService adapter.TokenService,
	operatorRepo adapter.OperatorRepository,
	hotelRepo adapter.HotelRepository,
) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		operatorRepo: operatorRepo,
		hotelRepo:    hotelRepo,
	}
}

// Authenticate returns a Gin middleware handler that enforces JWT authentication
// and resolves the operator's hotel. Every authenticated request is scoped to
// that hotel; admins may target another hotel via the hotel_id query parameter.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Authorization header is required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid authorization header format",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Token is required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		claims, err := m.tokenService.ValidateAccessToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid or expired token",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		operator, err := m.operatorRepo.FindByID(c.Request.Context(), claims.OperatorID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Operator not found",
				Code:  string(domainerror.ErrCodeOperatorNotFound),
			})
			c.Abort()
			return
		}

		hotelID, ok := m.resolveHotel(c, operator.ID, operator.IsAdmin)
		if !ok {
			return
		}

		c.Set(string(OperatorIDKey), operator.ID)
		c.Set(string(OperatorEmailKey), operator.Email)
		c.Set(string(HotelIDKey), hotelID)
		c.Set(string(IsAdminKey), operator.IsAdmin)

		c.Next()
	}
}

// resolveHotel determines the tenant hotel for this request. Admins may
// override the tenant with an explicit hotel_id query parameter; everyone
// else is pinned to their own hotel.
func (m *AuthMiddleware) resolveHotel(c *gin.Context, operatorID uuid.UUID, isAdmin bool) (uuid.UUID, bool) {
	if isAdmin {
		if override := c.Query("hotel_id"); override != "" {
			id, err := uuid.Parse(override)
			if err != nil {
				c.JSON(http.StatusBadRequest, dto.ErrorResponse{
					Error: "Invalid hotel_id parameter",
					Code:  string(domainerror.ErrCodeHotelNotFound),
				})
				c.Abort()
				return uuid.Nil, false
			}
			if _, err := m.hotelRepo.FindByID(c.Request.Context(), id); err != nil {
				c.JSON(http.StatusNotFound, dto.ErrorResponse{
					Error: "Hotel not found",
					Code:  string(domainerror.ErrCodeHotelNotFound),
				})
				c.Abort()
				return uuid.Nil, false
			}
			return id, true
		}
	}

	hotel, err := m.hotelRepo.FindByOperatorID(c.Request.Context(), operatorID)
	if err != nil {
		// A missing hotel association is a reportable tenancy error, never a
		// crash. Admins without a hotel must pass hotel_id explicitly.
		c.JSON(http.StatusForbidden, dto.ErrorResponse{
			Error: "No hotel associated with this account",
			Code:  string(domainerror.ErrCodeNoHotelForOperator),
		})
		c.Abort()
		return uuid.Nil, false
	}

	if !hotel.IsActive {
		c.JSON(http.StatusForbidden, dto.ErrorResponse{
			Error: "Hotel is inactive, contact support",
			Code:  string(domainerror.ErrCodeHotelInactive),
		})
		c.Abort()
		return uuid.Nil, false
	}

	return hotel.ID, true
}

// GetOperatorIDFromContext extracts the operator ID from the Gin context.
func GetOperatorIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	operatorID, exists := c.Get(string(OperatorIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := operatorID.(uuid.UUID)
	return id, ok
}

// GetOperatorEmailFromContext extracts the operator email from the Gin context.
func GetOperatorEmailFromContext(c *gin.Context) (string, bool) {
	email, exists := c.Get(string(OperatorEmailKey))
	if !exists {
		return "", false
	}
	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetHotelIDFromContext extracts the resolved tenant hotel ID from the Gin context.
func GetHotelIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	hotelID, exists := c.Get(string(HotelIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := hotelID.(uuid.UUID)
	return id, ok
}

// IsAdminFromContext reports whether the authenticated operator is an admin.
func IsAdminFromContext(c *gin.Context) bool {
	isAdmin, exists := c.Get(string(IsAdminKey))
	if !exists {
		return false
	}
	admin, ok := isAdmin.(bool)
	return ok && admin
}
