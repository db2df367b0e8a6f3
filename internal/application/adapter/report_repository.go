// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hotel-ledger/backend/internal/domain/entity"
)

// ReportRepository defines the interface for monthly report persistence operations.
type ReportRepository interface {
	// Create inserts a new monthly report. The (hotel, month) pair carries a
	// unique constraint; a duplicate insert returns ErrReportAlreadyExists so
	// callers can treat concurrent generation as a skip.
	Create(ctx context.Context, report *entity.MonthlyReport) error

	// FindByHotelAndMonth retrieves the report for a hotel and month.
	FindByHotelAndMonth(ctx context.Context, hotelID uuid.UUID, month time.Time) (*entity.MonthlyReport, error)

	// FindByHotel retrieves reports for a hotel, newest month first.
	FindByHotel(ctx context.Context, hotelID uuid.UUID, limit int) ([]*entity.MonthlyReport, error)

	// ExistsByHotelAndMonth checks whether a report already exists.
	ExistsByHotelAndMonth(ctx context.Context, hotelID uuid.UUID, month time.Time) (bool, error)

	// DeleteByHotelAndMonth removes an existing report ahead of a forced
	// regeneration.
	DeleteByHotelAndMonth(ctx context.Context, hotelID uuid.UUID, month time.Time) error
}
