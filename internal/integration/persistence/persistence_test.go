package persistence

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hotel-ledger/backend/internal/integration/persistence/model"
)

// newTestDB opens a fresh in-memory sqlite database with the full schema.
// Each test gets its own database so tests stay independent.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&model.OperatorModel{},
		&model.HotelModel{},
		&model.BookingModel{},
		&model.ExtraIncomeModel{},
		&model.DailyExpenseModel{},
		&model.MonthlyReportModel{},
		&model.SimpleBookingModel{},
		&model.EmailQueueModel{},
		&model.RefreshTokenModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	return db
}
