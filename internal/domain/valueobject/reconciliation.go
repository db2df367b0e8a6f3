// Package valueobject contains domain value objects for the hotel ledger system.
package valueobject

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hotel-ledger/backend/internal/domain/entity"
)

// ModeBreakdown aggregates QR-eligible and excluded figures for a single
// booking mode inside a reconciled range.
type ModeBreakdown struct {
	Mode           entity.BookingMode
	EligibleCount  int
	EligibleAmount decimal.Decimal
	ExcludedCount  int
	ExcludedAmount decimal.Decimal
}

// RangeReconciliation is the result of reconciling a hotel's bookings over an
// inclusive date range against the aggregator's per-room QR rate.
//
// DueToAggregator is signed: a negative value means the aggregator owes the
// hotel, and ExcessOwedByAggregator carries the absolute value for display.
type RangeReconciliation struct {
	Start  time.Time
	End    time.Time
	QRRate int64

	TotalBookings int
	EligibleCount int
	ExcludedCount int
	PrepaidCount  int

	// Non-prepaid QR-eligible figures. QRReturnedTotal only counts returns
	// on non-prepaid bookings; prepaid returns are tracked separately.
	NonPrepaidBookingTotal decimal.Decimal
	QRReturnedTotal        decimal.Decimal
	NonPrepaidDue          decimal.Decimal

	// Prepaid QR-eligible figures. Prepaid amounts never enter the reported
	// QR total but their due still counts toward the aggregator balance.
	PrepaidBookingTotal decimal.Decimal
	PrepaidQRReturned   decimal.Decimal
	PrepaidDue          decimal.Decimal

	// TotalAggregatorDue is the pre-adjustment sum of non-prepaid and
	// prepaid dues.
	TotalAggregatorDue decimal.Decimal

	// Excluded-booking figures. ExcludedAdjustment is the surplus the hotel
	// already retained beyond the expected per-room rate for excluded rows.
	ExcludedTotal         decimal.Decimal
	ExpectedQRForExcluded decimal.Decimal
	ExcludedAdjustment    decimal.Decimal

	AdjustedQRReturned     decimal.Decimal
	DueToAggregator        decimal.Decimal
	ExcessOwedByAggregator decimal.Decimal

	// QREfficiencyPercent is the share of in-range bookings that participate
	// in QR accounting, in [0, 100] with one decimal place.
	QREfficiencyPercent decimal.Decimal

	// PendingQRCount counts non-prepaid eligible bookings whose returned
	// amount still trails the booking amount.
	PendingQRCount int

	ByMode []ModeBreakdown
}

// Reconcile computes the full aggregator reconciliation for the given
// bookings. The arithmetic is total: an empty slice or a zero rate yields a
// zero-valued result, never an error.
//
// Callers are expected to pass the bookings whose booking date falls inside
// [start, end]; the range is carried through for reporting only.
func Reconcile(qrRate int64, start, end time.Time, bookings []*entity.Booking) RangeReconciliation {
	r := RangeReconciliation{
		Start:                  start,
		End:                    end,
		QRRate:                 qrRate,
		NonPrepaidBookingTotal: decimal.Zero,
		QRReturnedTotal:        decimal.Zero,
		NonPrepaidDue:          decimal.Zero,
		PrepaidBookingTotal:    decimal.Zero,
		PrepaidQRReturned:      decimal.Zero,
		PrepaidDue:             decimal.Zero,
		TotalAggregatorDue:     decimal.Zero,
		ExcludedTotal:          decimal.Zero,
		ExpectedQRForExcluded:  decimal.Zero,
		ExcludedAdjustment:     decimal.Zero,
		AdjustedQRReturned:     decimal.Zero,
		DueToAggregator:        decimal.Zero,
		ExcessOwedByAggregator: decimal.Zero,
		QREfficiencyPercent:    decimal.Zero,
	}

	byMode := make(map[entity.BookingMode]*ModeBreakdown, len(entity.BookingModes))
	r.ByMode = make([]ModeBreakdown, len(entity.BookingModes))
	for i, mode := range entity.BookingModes {
		r.ByMode[i] = ModeBreakdown{
			Mode:           mode,
			EligibleAmount: decimal.Zero,
			ExcludedAmount: decimal.Zero,
		}
		byMode[mode] = &r.ByMode[i]
	}

	for _, b := range bookings {
		r.TotalBookings++
		breakdown := byMode[b.Mode]

		if b.ExcludedFromQR {
			r.ExcludedCount++
			r.ExcludedTotal = r.ExcludedTotal.Add(b.Amount)
			if breakdown != nil {
				breakdown.ExcludedCount++
				breakdown.ExcludedAmount = breakdown.ExcludedAmount.Add(b.Amount)
			}
			continue
		}

		r.EligibleCount++
		if breakdown != nil {
			breakdown.EligibleCount++
			breakdown.EligibleAmount = breakdown.EligibleAmount.Add(b.Amount)
		}

		if b.PaymentMode == entity.PaymentModePrepaid {
			r.PrepaidCount++
			r.PrepaidBookingTotal = r.PrepaidBookingTotal.Add(b.Amount)
			r.PrepaidQRReturned = r.PrepaidQRReturned.Add(b.QRReturned)
			continue
		}

		r.NonPrepaidBookingTotal = r.NonPrepaidBookingTotal.Add(b.Amount)
		r.QRReturnedTotal = r.QRReturnedTotal.Add(b.QRReturned)
		if b.QRReturned.LessThan(b.Amount) {
			r.PendingQRCount++
		}
	}

	r.NonPrepaidDue = r.NonPrepaidBookingTotal.Sub(r.QRReturnedTotal)
	r.PrepaidDue = r.PrepaidBookingTotal.Sub(r.PrepaidQRReturned)
	r.TotalAggregatorDue = r.NonPrepaidDue.Add(r.PrepaidDue)

	r.ExpectedQRForExcluded = decimal.NewFromInt(qrRate).Mul(decimal.NewFromInt(int64(r.ExcludedCount)))
	r.ExcludedAdjustment = r.ExcludedTotal.Sub(r.ExpectedQRForExcluded)

	r.AdjustedQRReturned = r.QRReturnedTotal.Add(r.ExcludedAdjustment)
	r.DueToAggregator = r.TotalAggregatorDue.Sub(r.ExcludedAdjustment)
	if r.DueToAggregator.IsNegative() {
		r.ExcessOwedByAggregator = r.DueToAggregator.Neg()
	}

	if r.TotalBookings > 0 {
		r.QREfficiencyPercent = decimal.NewFromInt(int64(r.EligibleCount)).
			Div(decimal.NewFromInt(int64(r.TotalBookings))).
			Mul(decimal.NewFromInt(100)).
			Round(1)
	}

	return r
}

// BookingDue returns the per-booking amount owed to the aggregator:
// min(roomCount × qrRate, amount), or zero for an excluded booking.
//
// This is the simplified per-row figure shown on booking listings. The
// range-level Reconcile result is the authoritative balance and may differ
// from summing this helper, since the helper ignores prepaid splitting and
// the excluded adjustment.
func BookingDue(qrRate int64, b *entity.Booking) decimal.Decimal {
	if b.ExcludedFromQR {
		return decimal.Zero
	}

	expected := decimal.NewFromInt(qrRate).Mul(decimal.NewFromInt(int64(b.RoomCount)))
	if expected.GreaterThan(b.Amount) {
		return b.Amount
	}
	return expected
}

// AutoQRReturn returns the derived QR-returned amount written whenever a
// booking is saved: the booking amount minus its due, floored at zero.
// Excluded bookings always carry a zero return.
func AutoQRReturn(qrRate int64, b *entity.Booking) decimal.Decimal {
	if b.ExcludedFromQR {
		return decimal.Zero
	}

	returned := b.Amount.Sub(BookingDue(qrRate, b))
	if returned.IsNegative() {
		return decimal.Zero
	}
	return returned
}

// RevenueChangePercent returns the percentage change between a period's
// revenue and the immediately preceding period's, rounded to one decimal.
// A zero prior period yields 100 when current revenue is positive and 0
// otherwise, so the figure is always defined.
func RevenueChangePercent(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsPositive() {
			return decimal.NewFromInt(100)
		}
		return decimal.Zero
	}

	return current.Sub(previous).
		Div(previous).
		Mul(decimal.NewFromInt(100)).
		Round(1)
}
