package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseType represents the category of a daily expense.
type ExpenseType string

const (
	ExpenseTypeStaffSalary      ExpenseType = "STAFF_SALARY"
	ExpenseTypeKitchenGrocery   ExpenseType = "KITCHEN_GROCERY"
	ExpenseTypeElectricityWater ExpenseType = "ELECTRICITY_WATER"
	ExpenseTypeMaintenance      ExpenseType = "MAINTENANCE"
	ExpenseTypeOther            ExpenseType = "OTHER"
)

// ExpenseTypes lists every expense type in display order.
var ExpenseTypes = []ExpenseType{
	ExpenseTypeStaffSalary,
	ExpenseTypeKitchenGrocery,
	ExpenseTypeElectricityWater,
	ExpenseTypeMaintenance,
	ExpenseTypeOther,
}

// ExpenseTypeLabel returns the human-readable label for an expense type.
func ExpenseTypeLabel(t ExpenseType) string {
	switch t {
	case ExpenseTypeStaffSalary:
		return "Staff Salary / Wages"
	case ExpenseTypeKitchenGrocery:
		return "Kitchen / Grocery"
	case ExpenseTypeElectricityWater:
		return "Electricity / Water Bill"
	case ExpenseTypeMaintenance:
		return "Maintenance"
	default:
		return "Other"
	}
}

// DailyExpense represents a single operating expense recorded by a hotel.
type DailyExpense struct {
	ID          uuid.UUID
	HotelID     uuid.UUID
	Type        ExpenseType
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewDailyExpense creates a new DailyExpense entity.
func NewDailyExpense(hotelID uuid.UUID, expenseType ExpenseType, amount decimal.Decimal, description string, date time.Time) *DailyExpense {
	now := time.Now().UTC()

	return &DailyExpense{
		ID:          uuid.New(),
		HotelID:     hotelID,
		Type:        expenseType,
		Amount:      amount,
		Description: description,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsValidExpenseType reports whether the given expense type is supported.
func IsValidExpenseType(t ExpenseType) bool {
	switch t {
	case ExpenseTypeStaffSalary, ExpenseTypeKitchenGrocery, ExpenseTypeElectricityWater, ExpenseTypeMaintenance, ExpenseTypeOther:
		return true
	}
	return false
}
