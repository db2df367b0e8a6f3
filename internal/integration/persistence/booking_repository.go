// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hotel-ledger/backend/internal/application/adapter"
	"github.com/hotel-ledger/backend/internal/domain/entity"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
	"github.com/hotel-ledger/backend/internal/integration/persistence/model"
)

// bookingRepository implements the adapter.BookingRepository interface.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository instance.
func NewBookingRepository(db *gorm.DB) adapter.BookingRepository {
	return &bookingRepository{
		db: db,
	}
}

// Create creates a new booking in the database.
func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	bookingModel := model.BookingFromEntity(booking)
	result := r.db.WithContext(ctx).Create(bookingModel)
	return result.Error
}

// FindByID retrieves a booking by its ID.
func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var bookingModel model.BookingModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&bookingModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBookingNotFound
		}
		return nil, result.Error
	}
	return bookingModel.ToEntity(), nil
}

// FindByFilter retrieves bookings based on filter criteria with pagination.
func (r *bookingRepository) FindByFilter(ctx context.Context, filter adapter.BookingFilter, pagination adapter.BookingPagination) (*entity.BookingListResult, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Model(&model.BookingModel{}), filter)

	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (pagination.Page - 1) * pagination.Limit
	totalPages := int((total + int64(pagination.Limit) - 1) / int64(pagination.Limit))
	if totalPages == 0 {
		totalPages = 1
	}

	var bookingModels []model.BookingModel
	result := query.
		Order("booking_date DESC, created_at DESC").
		Offset(offset).
		Limit(pagination.Limit).
		Find(&bookingModels)
	if result.Error != nil {
		return nil, result.Error
	}

	bookings := make([]*entity.Booking, len(bookingModels))
	for i, bm := range bookingModels {
		bookings[i] = bm.ToEntity()
	}

	return &entity.BookingListResult{
		Bookings:   bookings,
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
	}, nil
}

// FindByDateRange retrieves every booking for a hotel inside the inclusive range.
func (r *bookingRepository) FindByDateRange(ctx context.Context, hotelID uuid.UUID, start, end time.Time) ([]*entity.Booking, error) {
	var bookingModels []model.BookingModel
	result := r.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Where("booking_date >= ? AND booking_date <= ?", start, end).
		Order("booking_date ASC, created_at ASC").
		Find(&bookingModels)
	if result.Error != nil {
		return nil, result.Error
	}

	bookings := make([]*entity.Booking, len(bookingModels))
	for i, bm := range bookingModels {
		bookings[i] = bm.ToEntity()
	}
	return bookings, nil
}

// FindRecent retrieves the most recently created bookings for a hotel.
func (r *bookingRepository) FindRecent(ctx context.Context, hotelID uuid.UUID, limit int) ([]*entity.Booking, error) {
	var bookingModels []model.BookingModel
	result := r.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("created_at DESC").
		Limit(limit).
		Find(&bookingModels)
	if result.Error != nil {
		return nil, result.Error
	}

	bookings := make([]*entity.Booking, len(bookingModels))
	for i, bm := range bookingModels {
		bookings[i] = bm.ToEntity()
	}
	return bookings, nil
}

// GetRangeTotals aggregates count, amount, and cached extra income over a range.
func (r *bookingRepository) GetRangeTotals(ctx context.Context, hotelID uuid.UUID, start, end time.Time) (*adapter.BookingRangeTotals, error) {
	var row struct {
		Count            int64
		AmountTotal      decimal.Decimal
		ExtraIncomeTotal decimal.Decimal
	}
	result := r.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Select("COUNT(*) as count, COALESCE(SUM(amount), 0) as amount_total, COALESCE(SUM(extra_income_total), 0) as extra_income_total").
		Where("hotel_id = ?", hotelID).
		Where("booking_date >= ? AND booking_date <= ?", start, end).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}

	return &adapter.BookingRangeTotals{
		Count:            row.Count,
		AmountTotal:      row.AmountTotal,
		ExtraIncomeTotal: row.ExtraIncomeTotal,
	}, nil
}

// GetCreatedTotals aggregates bookings created on a single calendar day.
func (r *bookingRepository) GetCreatedTotals(ctx context.Context, hotelID uuid.UUID, day time.Time) (*adapter.BookingRangeTotals, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var row struct {
		Count            int64
		AmountTotal      decimal.Decimal
		ExtraIncomeTotal decimal.Decimal
	}
	result := r.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Select("COUNT(*) as count, COALESCE(SUM(amount), 0) as amount_total, COALESCE(SUM(extra_income_total), 0) as extra_income_total").
		Where("hotel_id = ?", hotelID).
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}

	return &adapter.BookingRangeTotals{
		Count:            row.Count,
		AmountTotal:      row.AmountTotal,
		ExtraIncomeTotal: row.ExtraIncomeTotal,
	}, nil
}

// GetDailyRevenueSeries returns one revenue point per day with at least one booking.
func (r *bookingRepository) GetDailyRevenueSeries(ctx context.Context, hotelID uuid.UUID, start, end time.Time) ([]adapter.DailyRevenuePoint, error) {
	var rows []struct {
		Date    time.Time
		Revenue decimal.Decimal
		Count   int64
	}
	result := r.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Select("booking_date as date, COALESCE(SUM(amount), 0) as revenue, COUNT(*) as count").
		Where("hotel_id = ?", hotelID).
		Where("booking_date >= ? AND booking_date <= ?", start, end).
		Group("booking_date").
		Order("booking_date ASC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	points := make([]adapter.DailyRevenuePoint, len(rows))
	for i, row := range rows {
		points[i] = adapter.DailyRevenuePoint{
			Date:    row.Date,
			Revenue: row.Revenue,
			Count:   row.Count,
		}
	}
	return points, nil
}

// GetModeCounts counts bookings per booking mode and payment mode in a range.
func (r *bookingRepository) GetModeCounts(ctx context.Context, hotelID uuid.UUID, start, end time.Time) (*adapter.BookingModeCounts, error) {
	var row struct {
		OYO     int64
		TA      int64
		OTA     int64
		WalkIn  int64
		Cash    int64
		UPI     int64
		Prepaid int64
	}
	result := r.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Select(
			"COALESCE(SUM(CASE WHEN mode = 'OYO' THEN 1 ELSE 0 END), 0) as oyo, "+
				"COALESCE(SUM(CASE WHEN mode = 'TA' THEN 1 ELSE 0 END), 0) as ta, "+
				"COALESCE(SUM(CASE WHEN mode = 'OTA' THEN 1 ELSE 0 END), 0) as ota, "+
				"COALESCE(SUM(CASE WHEN mode = 'WALK_IN' THEN 1 ELSE 0 END), 0) as walk_in, "+
				"COALESCE(SUM(CASE WHEN payment_mode = 'CASH' THEN 1 ELSE 0 END), 0) as cash, "+
				"COALESCE(SUM(CASE WHEN payment_mode = 'UPI' THEN 1 ELSE 0 END), 0) as upi, "+
				"COALESCE(SUM(CASE WHEN payment_mode = 'PREPAID' THEN 1 ELSE 0 END), 0) as prepaid").
		Where("hotel_id = ?", hotelID).
		Where("booking_date >= ? AND booking_date <= ?", start, end).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}

	return &adapter.BookingModeCounts{
		OYO:     row.OYO,
		TA:      row.TA,
		OTA:     row.OTA,
		WalkIn:  row.WalkIn,
		Cash:    row.Cash,
		UPI:     row.UPI,
		Prepaid: row.Prepaid,
	}, nil
}

// Update updates an existing booking in the database.
func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	bookingModel := model.BookingFromEntity(booking)
	result := r.db.WithContext(ctx).Save(bookingModel)
	return result.Error
}

// Delete removes a booking from the database.
func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.BookingModel{}, "id = ?", id)
	return result.Error
}

// applyFilter translates a BookingFilter into query conditions.
func (r *bookingRepository) applyFilter(query *gorm.DB, filter adapter.BookingFilter) *gorm.DB {
	query = query.Where("hotel_id = ?", filter.HotelID)

	if filter.StartDate != nil {
		query = query.Where("booking_date >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("booking_date <= ?", filter.EndDate)
	}
	if filter.Mode != nil {
		query = query.Where("mode = ?", string(*filter.Mode))
	}
	if filter.PaymentMode != nil {
		query = query.Where("payment_mode = ?", string(*filter.PaymentMode))
	}
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(guest_name) LIKE ? OR LOWER(reference) LIKE ?", searchPattern, searchPattern)
	}

	return query
}
