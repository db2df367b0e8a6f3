// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hotel-ledger/backend/internal/application/usecase/hotel"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
	"github.com/hotel-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/hotel-ledger/backend/internal/integration/entrypoint/middleware"
)

// HotelController handles hotel profile endpoints.
type HotelController struct {
	getUseCase    *hotel.GetHotelUseCase
	updateUseCase *hotel.UpdateHotelUseCase
}

// NewHotelController creates a new hotel controller instance.
func NewHotelController(
	getUseCase *hotel.GetHotelUseCase,
	updateUseCase *hotel.UpdateHotelUseCase,
) *HotelController {
	return &HotelController{
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
	}
}

// Get handles GET /hotel requests.
func (c *HotelController) Get(ctx *gin.Context) {
	operatorID, ok := middleware.GetOperatorIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), hotel.GetHotelInput{
		OperatorID: operatorID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHotelResponse(output.Hotel))
}

// Update handles PATCH /hotel requests.
func (c *HotelController) Update(ctx *gin.Context) {
	operatorID, ok := middleware.GetOperatorIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.UpdateHotelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingHotelField),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), hotel.UpdateHotelInput{
		OperatorID:    operatorID,
		Name:          req.Name,
		QRRate:        req.QRRate,
		Address:       req.Address,
		ContactNumber: req.ContactNumber,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHotelResponse(output.Hotel))
}
