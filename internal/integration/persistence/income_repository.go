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

// incomeRepository implements the adapter.IncomeRepository interface.
type incomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new extra income repository instance.
func NewIncomeRepository(db *gorm.DB) adapter.IncomeRepository {
	return &incomeRepository{
		db: db,
	}
}

// Create creates a new extra income record in the database.
func (r *incomeRepository) Create(ctx context.Context, income *entity.ExtraIncome) error {
	incomeModel := model.ExtraIncomeFromEntity(income)
	result := r.db.WithContext(ctx).Create(incomeModel)
	return result.Error
}

// FindByID retrieves an extra income record by its ID.
func (r *incomeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ExtraIncome, error) {
	var incomeModel model.ExtraIncomeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&incomeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrIncomeNotFound
		}
		return nil, result.Error
	}
	return incomeModel.ToEntity(), nil
}

// FindByFilter retrieves extra income records ordered by date descending.
func (r *incomeRepository) FindByFilter(ctx context.Context, filter adapter.IncomeFilter) ([]*entity.ExtraIncome, error) {
	query := r.db.WithContext(ctx).Where("hotel_id = ?", filter.HotelID)

	if filter.BookingID != nil {
		query = query.Where("booking_id = ?", filter.BookingID)
	}
	if filter.Source != nil {
		query = query.Where("source = ?", string(*filter.Source))
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", filter.EndDate)
	}

	var incomeModels []model.ExtraIncomeModel
	result := query.Order("date DESC, created_at DESC").Find(&incomeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	incomes := make([]*entity.ExtraIncome, len(incomeModels))
	for i, im := range incomeModels {
		incomes[i] = im.ToEntity()
	}
	return incomes, nil
}

// SumByBooking sums the amounts of every income row referencing a booking.
func (r *incomeRepository) SumByBooking(ctx context.Context, bookingID uuid.UUID) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	result := r.db.WithContext(ctx).
		Model(&model.ExtraIncomeModel{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("booking_id = ?", bookingID).
		Scan(&row)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	return row.Total, nil
}

// SumByHotelAndRange sums income amounts for a hotel over a date range.
func (r *incomeRepository) SumByHotelAndRange(ctx context.Context, hotelID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	result := r.db.WithContext(ctx).
		Model(&model.ExtraIncomeModel{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("hotel_id = ?", hotelID).
		Where("date >= ? AND date <= ?", start, end).
		Scan(&row)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	return row.Total, nil
}

// DeleteByBooking removes every income row referencing a booking.
func (r *incomeRepository) DeleteByBooking(ctx context.Context, bookingID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Delete(&model.ExtraIncomeModel{})
	return result.Error
}

// Update updates an existing extra income record in the database.
func (r *incomeRepository) Update(ctx context.Context, income *entity.ExtraIncome) error {
	incomeModel := model.ExtraIncomeFromEntity(income)
	result := r.db.WithContext(ctx).Save(incomeModel)
	return result.Error
}

// Delete removes an extra income record from the database.
func (r *incomeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ExtraIncomeModel{}, "id = ?", id)
	return result.Error
}
