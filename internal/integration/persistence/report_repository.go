// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/hotel-ledger/backend/internal/application/adapter"
	"github.com/hotel-ledger/backend/internal/domain/entity"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
	"github.com/hotel-ledger/backend/internal/integration/persistence/model"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// reportRepository implements the adapter.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new monthly report repository instance.
func NewReportRepository(db *gorm.DB) adapter.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// Create inserts a new monthly report. Duplicate (hotel, month) inserts are
// mapped to ErrReportAlreadyExists so generation can treat races as skips.
func (r *reportRepository) Create(ctx context.Context, report *entity.MonthlyReport) error {
	reportModel := model.MonthlyReportFromEntity(report)
	result := r.db.WithContext(ctx).Create(reportModel)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return domainerror.ErrReportAlreadyExists
		}
		return result.Error
	}
	return nil
}

// FindByHotelAndMonth retrieves the report for a hotel and month.
func (r *reportRepository) FindByHotelAndMonth(ctx context.Context, hotelID uuid.UUID, month time.Time) (*entity.MonthlyReport, error) {
	var reportModel model.MonthlyReportModel
	result := r.db.WithContext(ctx).
		Where("hotel_id = ? AND month = ?", hotelID, entity.FirstOfMonth(month)).
		First(&reportModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrReportNotFound
		}
		return nil, result.Error
	}
	return reportModel.ToEntity(), nil
}

// FindByHotel retrieves reports for a hotel, newest month first.
func (r *reportRepository) FindByHotel(ctx context.Context, hotelID uuid.UUID, limit int) ([]*entity.MonthlyReport, error) {
	var reportModels []model.MonthlyReportModel
	result := r.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("month DESC").
		Limit(limit).
		Find(&reportModels)
	if result.Error != nil {
		return nil, result.Error
	}

	reports := make([]*entity.MonthlyReport, len(reportModels))
	for i, rm := range reportModels {
		reports[i] = rm.ToEntity()
	}
	return reports, nil
}

// ExistsByHotelAndMonth checks whether a report already exists.
func (r *reportRepository) ExistsByHotelAndMonth(ctx context.Context, hotelID uuid.UUID, month time.Time) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.MonthlyReportModel{}).
		Where("hotel_id = ? AND month = ?", hotelID, entity.FirstOfMonth(month)).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// DeleteByHotelAndMonth removes an existing report ahead of a forced regeneration.
func (r *reportRepository) DeleteByHotelAndMonth(ctx context.Context, hotelID uuid.UUID, month time.Time) error {
	result := r.db.WithContext(ctx).
		Where("hotel_id = ? AND month = ?", hotelID, entity.FirstOfMonth(month)).
		Delete(&model.MonthlyReportModel{})
	return result.Error
}

// isDuplicateKey detects unique constraint violations across drivers: pq
// error codes in production, gorm's translated error, and the sqlite message
// used by tests.
func isDuplicateKey(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
