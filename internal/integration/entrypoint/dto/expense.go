// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/hotel-ledger/backend/internal/application/adapter"
	"github.com/hotel-ledger/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for daily expense creation.
type CreateExpenseRequest struct {
	Type        string  `json:"type" binding:"required,oneof=STAFF_SALARY KITCHEN_GROCERY ELECTRICITY_WATER MAINTENANCE OTHER"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=500"`
	Date        string  `json:"date" binding:"required"`
}

// UpdateExpenseRequest represents the request body for daily expense updates.
type UpdateExpenseRequest struct {
	Type        string  `json:"type" binding:"required,oneof=STAFF_SALARY KITCHEN_GROCERY ELECTRICITY_WATER MAINTENANCE OTHER"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=500"`
	Date        string  `json:"date" binding:"required"`
}

// SuggestExpenseTypeRequest represents the request body for type suggestions.
type SuggestExpenseTypeRequest struct {
	Description string `json:"description" binding:"required,min=3,max=500"`
}

// ExpenseResponse represents a daily expense in API responses.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	HotelID     string    `json:"hotel_id"`
	Type        string    `json:"type"`
	TypeLabel   string    `json:"type_label"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ExpenseTypeTotalResponse represents the aggregated amount for one expense type.
type ExpenseTypeTotalResponse struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Total string `json:"total"`
	Count int64  `json:"count"`
}

// ExpenseListResponse represents the response for listing daily expenses.
type ExpenseListResponse struct {
	Expenses     []ExpenseResponse          `json:"expenses"`
	Total        string                     `json:"total"`
	TotalsByType []ExpenseTypeTotalResponse `json:"totals_by_type"`
}

// SuggestExpenseTypeResponse represents a type suggestion in API responses.
type SuggestExpenseTypeResponse struct {
	Type       string  `json:"type"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// ToExpenseResponse converts a domain DailyExpense entity to an ExpenseResponse DTO.
func ToExpenseResponse(expense *entity.DailyExpense) ExpenseResponse {
	return ExpenseResponse{
		ID:          expense.ID.String(),
		HotelID:     expense.HotelID.String(),
		Type:        string(expense.Type),
		TypeLabel:   entity.ExpenseTypeLabel(expense.Type),
		Amount:      expense.Amount.String(),
		Description: expense.Description,
		Date:        expense.Date.Format("2006-01-02"),
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}
}

// ToExpenseTypeTotalResponse converts an adapter ExpenseTypeTotal to its DTO.
func ToExpenseTypeTotalResponse(total adapter.ExpenseTypeTotal) ExpenseTypeTotalResponse {
	return ExpenseTypeTotalResponse{
		Type:  string(total.Type),
		Label: entity.ExpenseTypeLabel(total.Type),
		Total: total.Total.String(),
		Count: total.Count,
	}
}
