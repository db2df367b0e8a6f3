// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hotel-ledger/backend/internal/application/adapter"
	"github.com/hotel-ledger/backend/internal/domain/entity"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
	"github.com/hotel-ledger/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new daily expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new daily expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.DailyExpense) error {
	expenseModel := model.DailyExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Create(expenseModel)
	return result.Error
}

// FindByID retrieves a daily expense by its ID.
func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DailyExpense, error) {
	var expenseModel model.DailyExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindByFilter retrieves daily expenses ordered by date descending.
func (r *expenseRepository) FindByFilter(ctx context.Context, filter adapter.ExpenseFilter) ([]*entity.DailyExpense, error) {
	query := r.db.WithContext(ctx).Where("hotel_id = ?", filter.HotelID)

	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", filter.EndDate)
	}

	var expenseModels []model.DailyExpenseModel
	result := query.Order("date DESC, created_at DESC").Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.DailyExpense, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntity()
	}
	return expenses, nil
}

// SumByHotelAndRange sums expense amounts for a hotel over a date range.
func (r *expenseRepository) SumByHotelAndRange(ctx context.Context, hotelID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	result := r.db.WithContext(ctx).
		Model(&model.DailyExpenseModel{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("hotel_id = ?", hotelID).
		Where("date >= ? AND date <= ?", start, end).
		Scan(&row)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	return row.Total, nil
}

// GetTotalsByType aggregates expenses per type for a hotel over a date range.
func (r *expenseRepository) GetTotalsByType(ctx context.Context, hotelID uuid.UUID, start, end time.Time) ([]adapter.ExpenseTypeTotal, error) {
	var rows []struct {
		Type  string
		Total decimal.Decimal
		Count int64
	}
	result := r.db.WithContext(ctx).
		Model(&model.DailyExpenseModel{}).
		Select("type, COALESCE(SUM(amount), 0) as total, COUNT(*) as count").
		Where("hotel_id = ?", hotelID).
		Where("date >= ? AND date <= ?", start, end).
		Group("type").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	totals := make([]adapter.ExpenseTypeTotal, len(rows))
	for i, row := range rows {
		totals[i] = adapter.ExpenseTypeTotal{
			Type:  entity.ExpenseType(row.Type),
			Total: row.Total,
			Count: row.Count,
		}
	}
	return totals, nil
}

// Update updates an existing daily expense in the database.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.DailyExpense) error {
	expenseModel := model.DailyExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Save(expenseModel)
	return result.Error
}

// Delete removes a daily expense from the database.
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.DailyExpenseModel{}, "id = ?", id)
	return result.Error
}
