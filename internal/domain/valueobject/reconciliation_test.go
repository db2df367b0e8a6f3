package valueobject

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hotel-ledger/backend/internal/domain/entity"
)

func newTestBooking(mode entity.BookingMode, payment entity.PaymentMode, rooms int, amount, qrReturned int64, excluded bool) *entity.Booking {
	hotelID := uuid.New()
	b := entity.NewBooking(
		hotelID,
		"REF-1",
		"Guest",
		time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		mode,
		payment,
		rooms,
		decimal.NewFromInt(amount),
		excluded,
	)
	b.QRReturned = decimal.NewFromInt(qrReturned)
	return b
}

func TestBookingDue(t *testing.T) {
	t.Run("due is capped at booking amount", func(t *testing.T) {
		// qrRate=500, 2 rooms, amount=1200: min(1000, 1200) = 1000.
		b := newTestBooking(entity.BookingModeOYO, entity.PaymentModeCash, 2, 1200, 0, false)

		due := BookingDue(500, b)
		if !due.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected due 1000, got %s", due)
		}
	})

	t.Run("due falls back to amount when expected exceeds it", func(t *testing.T) {
		// qrRate=500, 3 rooms, amount=1000: min(1500, 1000) = 1000.
		b := newTestBooking(entity.BookingModeOYO, entity.PaymentModeUPI, 3, 1000, 0, false)

		due := BookingDue(500, b)
		if !due.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected due 1000, got %s", due)
		}
	})

	t.Run("excluded booking has zero due", func(t *testing.T) {
		b := newTestBooking(entity.BookingModeOYO, entity.PaymentModeCash, 3, 1000, 0, true)

		due := BookingDue(500, b)
		if !due.IsZero() {
			t.Errorf("expected due 0, got %s", due)
		}
	})

	t.Run("zero rate means zero due", func(t *testing.T) {
		b := newTestBooking(entity.BookingModeTA, entity.PaymentModeCash, 2, 1200, 0, false)

		due := BookingDue(0, b)
		if !due.IsZero() {
			t.Errorf("expected due 0, got %s", due)
		}
	})
}

func TestAutoQRReturn(t *testing.T) {
	t.Run("returned plus due equals booking amount", func(t *testing.T) {
		// qrRate=500, 2 rooms, amount=1200: due=1000 so returned=200.
		b := newTestBooking(entity.BookingModeOYO, entity.PaymentModeCash, 2, 1200, 0, false)

		returned := AutoQRReturn(500, b)
		if !returned.Equal(decimal.NewFromInt(200)) {
			t.Errorf("expected returned 200, got %s", returned)
		}

		sum := returned.Add(BookingDue(500, b))
		if !sum.Equal(b.Amount) {
			t.Errorf("expected returned + due == amount, got %s + %s != %s", returned, BookingDue(500, b), b.Amount)
		}
	})

	t.Run("returned floors at zero when due covers the amount", func(t *testing.T) {
		b := newTestBooking(entity.BookingModeOYO, entity.PaymentModeCash, 3, 1000, 0, false)

		returned := AutoQRReturn(500, b)
		if !returned.IsZero() {
			t.Errorf("expected returned 0, got %s", returned)
		}
	})

	t.Run("excluded booking always returns zero", func(t *testing.T) {
		b := newTestBooking(entity.BookingModeOYO, entity.PaymentModeCash, 3, 1000, 0, true)

		returned := AutoQRReturn(500, b)
		if !returned.IsZero() {
			t.Errorf("expected returned 0, got %s", returned)
		}
	})
}

func TestReconcile(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	t.Run("empty range yields zeroes without error", func(t *testing.T) {
		r := Reconcile(500, start, end, nil)

		if r.TotalBookings != 0 {
			t.Errorf("expected 0 bookings, got %d", r.TotalBookings)
		}
		if !r.DueToAggregator.IsZero() {
			t.Errorf("expected zero due, got %s", r.DueToAggregator)
		}
		if !r.QREfficiencyPercent.IsZero() {
			t.Errorf("expected zero efficiency, got %s", r.QREfficiencyPercent)
		}
		if r.PendingQRCount != 0 {
			t.Errorf("expected 0 pending, got %d", r.PendingQRCount)
		}
		if len(r.ByMode) != len(entity.BookingModes) {
			t.Fatalf("expected %d mode buckets, got %d", len(entity.BookingModes), len(r.ByMode))
		}
	})

	t.Run("non-prepaid due nets returned against amounts", func(t *testing.T) {
		bookings := []*entity.Booking{
			newTestBooking(entity.BookingModeOYO, entity.PaymentModeCash, 2, 1200, 200, false),
			newTestBooking(entity.BookingModeTA, entity.PaymentModeUPI, 1, 800, 300, false),
		}

		r := Reconcile(500, start, end, bookings)

		if !r.NonPrepaidBookingTotal.Equal(decimal.NewFromInt(2000)) {
			t.Errorf("expected non-prepaid total 2000, got %s", r.NonPrepaidBookingTotal)
		}
		if !r.QRReturnedTotal.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected returned total 500, got %s", r.QRReturnedTotal)
		}
		if !r.NonPrepaidDue.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("expected non-prepaid due 1500, got %s", r.NonPrepaidDue)
		}
		if !r.DueToAggregator.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("expected due 1500, got %s", r.DueToAggregator)
		}
	})

	t.Run("prepaid bookings count toward due but not QR total", func(t *testing.T) {
		bookings := []*entity.Booking{
			newTestBooking(entity.BookingModeOYO, entity.PaymentModeCash, 2, 1200, 200, false),
			newTestBooking(entity.BookingModeOTA, entity.PaymentModePrepaid, 1, 900, 100, false),
		}

		r := Reconcile(500, start, end, bookings)

		if !r.QRReturnedTotal.Equal(decimal.NewFromInt(200)) {
			t.Errorf("expected returned total 200 (prepaid excluded), got %s", r.QRReturnedTotal)
		}
		if !r.PrepaidDue.Equal(decimal.NewFromInt(800)) {
			t.Errorf("expected prepaid due 800, got %s", r.PrepaidDue)
		}
		if !r.TotalAggregatorDue.Equal(decimal.NewFromInt(1800)) {
			t.Errorf("expected total due 1800, got %s", r.TotalAggregatorDue)
		}
		if r.PrepaidCount != 1 {
			t.Errorf("expected 1 prepaid booking, got %d", r.PrepaidCount)
		}
	})

	t.Run("excluded bookings adjust the balance", func(t *testing.T) {
		// Excluded row: amount 1000, expected QR 500, adjustment +500.
		bookings := []*entity.Booking{
			newTestBooking(entity.BookingModeOYO, entity.PaymentModeCash, 2, 1200, 200, false),
			newTestBooking(entity.BookingModeOYO, entity.PaymentModeCash, 3, 1000, 0, true),
		}

		r := Reconcile(500, start, end, bookings)

		if !r.ExcludedTotal.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected excluded total 1000, got %s", r.ExcludedTotal)
		}
		if r.ExcludedCount != 1 {
			t.Errorf("expected excluded count 1, got %d", r.ExcludedCount)
		}
		if !r.ExpectedQRForExcluded.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected QR for excluded 500, got %s", r.ExpectedQRForExcluded)
		}
		if !r.ExcludedAdjustment.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected adjustment 500, got %s", r.ExcludedAdjustment)
		}
		if !r.AdjustedQRReturned.Equal(decimal.NewFromInt(700)) {
			t.Errorf("expected adjusted returned 700, got %s", r.AdjustedQRReturned)
		}
		// 1000 non-prepaid due minus 500 adjustment.
		if !r.DueToAggregator.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected due 500, got %s", r.DueToAggregator)
		}
	})

	t.Run("negative due reports excess owed by aggregator", func(t *testing.T) {
		// Only an excluded booking with a large surplus: due goes negative.
		bookings := []*entity.Booking{
			newTestBooking(entity.BookingModeOYO, entity.PaymentModeCash, 1, 2000, 0, true),
		}

		r := Reconcile(500, start, end, bookings)

		if !r.DueToAggregator.Equal(decimal.NewFromInt(-1500)) {
			t.Errorf("expected due -1500, got %s", r.DueToAggregator)
		}
		if !r.ExcessOwedByAggregator.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("expected excess 1500, got %s", r.ExcessOwedByAggregator)
		}
		if !r.ExcessOwedByAggregator.Equal(r.DueToAggregator.Neg()) {
			t.Error("expected excess to equal the negated due")
		}
	})

	t.Run("mode breakdown sums match range totals", func(t *testing.T) {
		bookings := []*entity.Booking{
			newTestBooking(entity.BookingModeOYO, entity.PaymentModeCash, 2, 1200, 200, false),
			newTestBooking(entity.BookingModeTA, entity.PaymentModeUPI, 1, 800, 0, false),
			newTestBooking(entity.BookingModeOTA, entity.PaymentModePrepaid, 1, 900, 0, false),
			newTestBooking(entity.BookingModeWalkIn, entity.PaymentModeCash, 1, 600, 0, true),
			newTestBooking(entity.BookingModeOYO, entity.PaymentModeCash, 3, 1000, 0, true),
		}

		r := Reconcile(500, start, end, bookings)

		eligibleCount, excludedCount := 0, 0
		eligibleAmount, excludedAmount := decimal.Zero, decimal.Zero
		for _, m := range r.ByMode {
			eligibleCount += m.EligibleCount
			excludedCount += m.ExcludedCount
			eligibleAmount = eligibleAmount.Add(m.EligibleAmount)
			excludedAmount = excludedAmount.Add(m.ExcludedAmount)
		}

		if eligibleCount != r.EligibleCount {
			t.Errorf("expected eligible counts to add up to %d, got %d", r.EligibleCount, eligibleCount)
		}
		if excludedCount != r.ExcludedCount {
			t.Errorf("expected excluded counts to add up to %d, got %d", r.ExcludedCount, excludedCount)
		}
		expectedEligible := r.NonPrepaidBookingTotal.Add(r.PrepaidBookingTotal)
		if !eligibleAmount.Equal(expectedEligible) {
			t.Errorf("expected eligible amounts to add up to %s, got %s", expectedEligible, eligibleAmount)
		}
		if !excludedAmount.Equal(r.ExcludedTotal) {
			t.Errorf("expected excluded amounts to add up to %s, got %s", r.ExcludedTotal, excludedAmount)
		}
	})

	t.Run("QR efficiency stays within bounds and rounds to one decimal", func(t *testing.T) {
		bookings := []*entity.Booking{
			newTestBooking(entity.BookingModeOYO, entity.PaymentModeCash, 1, 500, 0, false),
			newTestBooking(entity.BookingModeTA, entity.PaymentModeCash, 1, 500, 0, false),
			newTestBooking(entity.BookingModeOTA, entity.PaymentModeCash, 1, 500, 0, true),
		}

		r := Reconcile(500, start, end, bookings)

		// 2 of 3 eligible: 66.7%.
		if !r.QREfficiencyPercent.Equal(decimal.RequireFromString("66.7")) {
			t.Errorf("expected efficiency 66.7, got %s", r.QREfficiencyPercent)
		}
		if r.QREfficiencyPercent.IsNegative() || r.QREfficiencyPercent.GreaterThan(decimal.NewFromInt(100)) {
			t.Errorf("expected efficiency in [0,100], got %s", r.QREfficiencyPercent)
		}
	})

	t.Run("pending QR counts only non-prepaid short returns", func(t *testing.T) {
		bookings := []*entity.Booking{
			// Fully returned: not pending.
			newTestBooking(entity.BookingModeOYO, entity.PaymentModeCash, 1, 500, 500, false),
			// Short return: pending.
			newTestBooking(entity.BookingModeOYO, entity.PaymentModeCash, 2, 1200, 200, false),
			// Prepaid never counts as pending.
			newTestBooking(entity.BookingModeOTA, entity.PaymentModePrepaid, 1, 900, 0, false),
			// Excluded never counts as pending.
			newTestBooking(entity.BookingModeTA, entity.PaymentModeCash, 1, 600, 0, true),
		}

		r := Reconcile(500, start, end, bookings)

		if r.PendingQRCount != 1 {
			t.Errorf("expected 1 pending booking, got %d", r.PendingQRCount)
		}
	})

	t.Run("zero rate treats every due as amount-driven", func(t *testing.T) {
		bookings := []*entity.Booking{
			newTestBooking(entity.BookingModeOYO, entity.PaymentModeCash, 2, 1200, 0, false),
			newTestBooking(entity.BookingModeOYO, entity.PaymentModeCash, 1, 700, 0, true),
		}

		r := Reconcile(0, start, end, bookings)

		if !r.ExpectedQRForExcluded.IsZero() {
			t.Errorf("expected zero QR for excluded, got %s", r.ExpectedQRForExcluded)
		}
		// Adjustment equals the full excluded total when rate is zero.
		if !r.ExcludedAdjustment.Equal(decimal.NewFromInt(700)) {
			t.Errorf("expected adjustment 700, got %s", r.ExcludedAdjustment)
		}
		if !r.DueToAggregator.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected due 500, got %s", r.DueToAggregator)
		}
	})
}

func TestRevenueChangePercent(t *testing.T) {
	t.Run("reports 100 when prior is zero and current positive", func(t *testing.T) {
		change := RevenueChangePercent(decimal.NewFromInt(5000), decimal.Zero)
		if !change.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected 100, got %s", change)
		}
	})

	t.Run("reports 0 when both are zero", func(t *testing.T) {
		change := RevenueChangePercent(decimal.Zero, decimal.Zero)
		if !change.IsZero() {
			t.Errorf("expected 0, got %s", change)
		}
	})

	t.Run("computes signed percentage change", func(t *testing.T) {
		change := RevenueChangePercent(decimal.NewFromInt(1500), decimal.NewFromInt(1000))
		if !change.Equal(decimal.NewFromInt(50)) {
			t.Errorf("expected 50, got %s", change)
		}

		change = RevenueChangePercent(decimal.NewFromInt(500), decimal.NewFromInt(1000))
		if !change.Equal(decimal.NewFromInt(-50)) {
			t.Errorf("expected -50, got %s", change)
		}
	})
}
