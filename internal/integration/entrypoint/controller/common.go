// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
	"github.com/hotel-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/hotel-ledger/backend/internal/integration/entrypoint/middleware"
)

// dateLayout is the wire format for business dates.
const dateLayout = "2006-01-02"

// requireHotelID extracts the tenant hotel ID resolved by the auth middleware.
// Responds 401 and returns false if the request somehow skipped authentication.
func requireHotelID(ctx *gin.Context) (uuid.UUID, bool) {
	hotelID, ok := middleware.GetHotelIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return hotelID, true
}

// parseIDParam parses a UUID path parameter. Responds 400 on failure.
func parseIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " parameter",
		})
		return uuid.Nil, false
	}
	return id, true
}

// parseDateQuery parses an optional YYYY-MM-DD query parameter. Responds 400
// and returns ok=false on a malformed value.
func parseDateQuery(ctx *gin.Context, name string) (*time.Time, bool) {
	value := ctx.Query(name)
	if value == "" {
		return nil, true
	}

	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " parameter, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return nil, false
	}
	return &parsed, true
}

// parseDateField parses a required YYYY-MM-DD body field.
func parseDateField(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}
