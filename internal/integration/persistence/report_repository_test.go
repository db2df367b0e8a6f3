package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hotel-ledger/backend/internal/domain/entity"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
)

func TestReportRepository(t *testing.T) {
	ctx := context.Background()
	hotelID := uuid.New()
	may := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	june := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("duplicate month insert maps to ErrReportAlreadyExists", func(t *testing.T) {
		repo := NewReportRepository(newTestDB(t))

		if err := repo.Create(ctx, entity.NewMonthlyReport(hotelID, may)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		err := repo.Create(ctx, entity.NewMonthlyReport(hotelID, may))
		if !errors.Is(err, domainerror.ErrReportAlreadyExists) {
			t.Fatalf("expected ErrReportAlreadyExists, got %v", err)
		}

		// A different month for the same hotel is fine.
		if err := repo.Create(ctx, entity.NewMonthlyReport(hotelID, june)); err != nil {
			t.Errorf("unexpected error for different month: %v", err)
		}

		// The same month for a different hotel is fine.
		if err := repo.Create(ctx, entity.NewMonthlyReport(uuid.New(), may)); err != nil {
			t.Errorf("unexpected error for different hotel: %v", err)
		}
	})

	t.Run("delete then recreate succeeds", func(t *testing.T) {
		repo := NewReportRepository(newTestDB(t))

		if err := repo.Create(ctx, entity.NewMonthlyReport(hotelID, may)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.DeleteByHotelAndMonth(ctx, hotelID, may); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		exists, err := repo.ExistsByHotelAndMonth(ctx, hotelID, may)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exists {
			t.Fatal("expected report gone after delete")
		}

		if err := repo.Create(ctx, entity.NewMonthlyReport(hotelID, may)); err != nil {
			t.Errorf("recreate after delete failed: %v", err)
		}
	})

	t.Run("find by hotel returns newest month first", func(t *testing.T) {
		repo := NewReportRepository(newTestDB(t))

		if err := repo.Create(ctx, entity.NewMonthlyReport(hotelID, may)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.Create(ctx, entity.NewMonthlyReport(hotelID, june)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		reports, err := repo.FindByHotel(ctx, hotelID, 12)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(reports) != 2 {
			t.Fatalf("expected 2 reports, got %d", len(reports))
		}
		if !reports[0].Month.Equal(june) {
			t.Errorf("expected June first, got %s", reports[0].Month)
		}
	})

	t.Run("lookup normalizes the month to its first day", func(t *testing.T) {
		repo := NewReportRepository(newTestDB(t))

		if err := repo.Create(ctx, entity.NewMonthlyReport(hotelID, may)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		midMonth := time.Date(2025, 5, 18, 0, 0, 0, 0, time.UTC)
		report, err := repo.FindByHotelAndMonth(ctx, hotelID, midMonth)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !report.Month.Equal(may) {
			t.Errorf("expected May report, got %s", report.Month)
		}
	})
}
