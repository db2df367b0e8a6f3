package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hotel-ledger/backend/internal/application/adapter"
	"github.com/hotel-ledger/backend/internal/domain/entity"
)

func seedTestBooking(t *testing.T, repo adapter.BookingRepository, hotelID uuid.UUID, day time.Time, mode entity.BookingMode, payment entity.PaymentMode, amount int64) *entity.Booking {
	t.Helper()

	booking := entity.NewBooking(hotelID, "REF-"+uuid.NewString()[:8], "Guest", day, mode, payment, 1, decimal.NewFromInt(amount), false)
	if err := repo.Create(context.Background(), booking); err != nil {
		t.Fatalf("failed to seed booking: %v", err)
	}
	return booking
}

func TestBookingRepository(t *testing.T) {
	ctx := context.Background()
	hotelID := uuid.New()
	otherHotelID := uuid.New()
	may10 := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	may20 := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)
	june5 := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)

	t.Run("date range queries are inclusive and tenant scoped", func(t *testing.T) {
		repo := NewBookingRepository(newTestDB(t))
		seedTestBooking(t, repo, hotelID, may10, entity.BookingModeOYO, entity.PaymentModeCash, 1000)
		seedTestBooking(t, repo, hotelID, may20, entity.BookingModeTA, entity.PaymentModeUPI, 2000)
		seedTestBooking(t, repo, hotelID, june5, entity.BookingModeOYO, entity.PaymentModeCash, 3000)
		seedTestBooking(t, repo, otherHotelID, may10, entity.BookingModeOYO, entity.PaymentModeCash, 9000)

		bookings, err := repo.FindByDateRange(ctx, hotelID,
			time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(bookings) != 2 {
			t.Fatalf("expected 2 May bookings, got %d", len(bookings))
		}

		// Boundary day is included.
		bookings, err = repo.FindByDateRange(ctx, hotelID, may20, may20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(bookings) != 1 || !bookings[0].Amount.Equal(decimal.NewFromInt(2000)) {
			t.Errorf("expected the single boundary booking, got %d rows", len(bookings))
		}
	})

	t.Run("range totals sum amount and cached extra income", func(t *testing.T) {
		repo := NewBookingRepository(newTestDB(t))
		b := seedTestBooking(t, repo, hotelID, may10, entity.BookingModeOYO, entity.PaymentModeCash, 1000)
		seedTestBooking(t, repo, hotelID, may20, entity.BookingModeTA, entity.PaymentModeUPI, 2000)

		b.ExtraIncomeTotal = decimal.NewFromInt(250)
		if err := repo.Update(ctx, b); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		totals, err := repo.GetRangeTotals(ctx, hotelID,
			time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if totals.Count != 2 {
			t.Errorf("expected count 2, got %d", totals.Count)
		}
		if !totals.AmountTotal.Equal(decimal.NewFromInt(3000)) {
			t.Errorf("expected amount 3000, got %s", totals.AmountTotal)
		}
		if !totals.ExtraIncomeTotal.Equal(decimal.NewFromInt(250)) {
			t.Errorf("expected extra income 250, got %s", totals.ExtraIncomeTotal)
		}
	})

	t.Run("mode counts cover booking and payment modes", func(t *testing.T) {
		repo := NewBookingRepository(newTestDB(t))
		seedTestBooking(t, repo, hotelID, may10, entity.BookingModeOYO, entity.PaymentModeCash, 1000)
		seedTestBooking(t, repo, hotelID, may10, entity.BookingModeOYO, entity.PaymentModeUPI, 1000)
		seedTestBooking(t, repo, hotelID, may20, entity.BookingModeWalkIn, entity.PaymentModePrepaid, 2000)

		counts, err := repo.GetModeCounts(ctx, hotelID,
			time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if counts.OYO != 2 || counts.WalkIn != 1 || counts.TA != 0 {
			t.Errorf("unexpected mode counts: %+v", counts)
		}
		if counts.Cash != 1 || counts.UPI != 1 || counts.Prepaid != 1 {
			t.Errorf("unexpected payment counts: %+v", counts)
		}
	})

	t.Run("daily revenue series groups by booking date", func(t *testing.T) {
		repo := NewBookingRepository(newTestDB(t))
		seedTestBooking(t, repo, hotelID, may10, entity.BookingModeOYO, entity.PaymentModeCash, 1000)
		seedTestBooking(t, repo, hotelID, may10, entity.BookingModeTA, entity.PaymentModeUPI, 500)
		seedTestBooking(t, repo, hotelID, may20, entity.BookingModeOYO, entity.PaymentModeCash, 2000)

		points, err := repo.GetDailyRevenueSeries(ctx, hotelID,
			time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(points) != 2 {
			t.Fatalf("expected 2 points, got %d", len(points))
		}
		if !points[0].Revenue.Equal(decimal.NewFromInt(1500)) || points[0].Count != 2 {
			t.Errorf("expected first point 1500/2, got %s/%d", points[0].Revenue, points[0].Count)
		}
	})

	t.Run("filter search matches guest name and reference", func(t *testing.T) {
		repo := NewBookingRepository(newTestDB(t))
		booking := entity.NewBooking(hotelID, "OYO-4471", "Asha Verma", may10, entity.BookingModeOYO, entity.PaymentModeCash, 1, decimal.NewFromInt(1200), false)
		if err := repo.Create(ctx, booking); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seedTestBooking(t, repo, hotelID, may10, entity.BookingModeTA, entity.PaymentModeUPI, 800)

		result, err := repo.FindByFilter(ctx,
			adapter.BookingFilter{HotelID: hotelID, Search: "asha"},
			adapter.BookingPagination{Page: 1, Limit: 20})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 1 || len(result.Bookings) != 1 {
			t.Fatalf("expected 1 match, got %d", result.Total)
		}
		if result.Bookings[0].Reference != "OYO-4471" {
			t.Errorf("expected OYO-4471, got %s", result.Bookings[0].Reference)
		}
	})

	t.Run("delete removes the booking", func(t *testing.T) {
		repo := NewBookingRepository(newTestDB(t))
		booking := seedTestBooking(t, repo, hotelID, may10, entity.BookingModeOYO, entity.PaymentModeCash, 1000)

		if err := repo.Delete(ctx, booking.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.FindByID(ctx, booking.ID); err == nil {
			t.Error("expected not-found after delete")
		}
	})
}
