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

// simpleBookingRepository implements the adapter.SimpleBookingRepository interface.
type simpleBookingRepository struct {
	db *gorm.DB
}

// NewSimpleBookingRepository creates a new simple booking repository instance.
func NewSimpleBookingRepository(db *gorm.DB) adapter.SimpleBookingRepository {
	return &simpleBookingRepository{
		db: db,
	}
}

// Create creates a new simple booking in the database.
func (r *simpleBookingRepository) Create(ctx context.Context, booking *entity.SimpleBooking) error {
	bookingModel := model.SimpleBookingFromEntity(booking)
	result := r.db.WithContext(ctx).Create(bookingModel)
	return result.Error
}

// FindByID retrieves a simple booking by its ID.
func (r *simpleBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SimpleBooking, error) {
	var bookingModel model.SimpleBookingModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&bookingModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBookingNotFound
		}
		return nil, result.Error
	}
	return bookingModel.ToEntity(), nil
}

// FindByHotel retrieves simple bookings for a hotel, newest first.
func (r *simpleBookingRepository) FindByHotel(ctx context.Context, hotelID uuid.UUID) ([]*entity.SimpleBooking, error) {
	var bookingModels []model.SimpleBookingModel
	result := r.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("created_at DESC").
		Find(&bookingModels)
	if result.Error != nil {
		return nil, result.Error
	}

	bookings := make([]*entity.SimpleBooking, len(bookingModels))
	for i, bm := range bookingModels {
		bookings[i] = bm.ToEntity()
	}
	return bookings, nil
}

// GetTotals aggregates count, amount, and extra income for a hotel.
func (r *simpleBookingRepository) GetTotals(ctx context.Context, hotelID uuid.UUID) (*adapter.SimpleBookingTotals, error) {
	var row struct {
		Count            int64
		AmountTotal      decimal.Decimal
		ExtraIncomeTotal decimal.Decimal
	}
	result := r.db.WithContext(ctx).
		Model(&model.SimpleBookingModel{}).
		Select("COUNT(*) as count, COALESCE(SUM(amount), 0) as amount_total, COALESCE(SUM(extra_income), 0) as extra_income_total").
		Where("hotel_id = ?", hotelID).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}

	return &adapter.SimpleBookingTotals{
		Count:            row.Count,
		AmountTotal:      row.AmountTotal,
		ExtraIncomeTotal: row.ExtraIncomeTotal,
	}, nil
}

// GetMonthlySeries aggregates totals per creation month, oldest first.
func (r *simpleBookingRepository) GetMonthlySeries(ctx context.Context, hotelID uuid.UUID, months int) ([]adapter.SimpleBookingMonthPoint, error) {
	since := entity.FirstOfMonth(time.Now().UTC()).AddDate(0, -(months - 1), 0)

	var bookingModels []model.SimpleBookingModel
	result := r.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Where("created_at >= ?", since).
		Order("created_at ASC").
		Find(&bookingModels)
	if result.Error != nil {
		return nil, result.Error
	}

	// Bucket in Go rather than SQL so the month arithmetic stays portable
	// between postgres and the sqlite test driver.
	var points []adapter.SimpleBookingMonthPoint
	index := make(map[string]int)
	for _, bm := range bookingModels {
		key := bm.CreatedAt.UTC().Format("2006-01")
		i, ok := index[key]
		if !ok {
			points = append(points, adapter.SimpleBookingMonthPoint{
				Year:  bm.CreatedAt.UTC().Year(),
				Month: int(bm.CreatedAt.UTC().Month()),
				Total: decimal.Zero,
			})
			i = len(points) - 1
			index[key] = i
		}
		points[i].Total = points[i].Total.Add(bm.Amount)
		points[i].Count++
	}
	return points, nil
}

// Update updates an existing simple booking in the database.
func (r *simpleBookingRepository) Update(ctx context.Context, booking *entity.SimpleBooking) error {
	bookingModel := model.SimpleBookingFromEntity(booking)
	result := r.db.WithContext(ctx).Save(bookingModel)
	return result.Error
}

// Delete removes a simple booking from the database.
func (r *simpleBookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.SimpleBookingModel{}, "id = ?", id)
	return result.Error
}
