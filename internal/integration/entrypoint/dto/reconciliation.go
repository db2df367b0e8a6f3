// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/hotel-ledger/backend/internal/domain/valueobject"
)

// ModeBreakdownResponse represents per-mode reconciliation figures.
type ModeBreakdownResponse struct {
	Mode           string `json:"mode"`
	EligibleCount  int    `json:"eligible_count"`
	EligibleAmount string `json:"eligible_amount"`
	ExcludedCount  int    `json:"excluded_count"`
	ExcludedAmount string `json:"excluded_amount"`
}

// ReconciliationResponse represents the full range reconciliation in API
// responses. DueToAggregator is signed; a negative balance surfaces as
// ExcessOwedByAggregator instead.
type ReconciliationResponse struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	QRRate int64  `json:"qr_rate"`

	TotalBookings int `json:"total_bookings"`
	EligibleCount int `json:"eligible_count"`
	ExcludedCount int `json:"excluded_count"`
	PrepaidCount  int `json:"prepaid_count"`

	NonPrepaidBookingTotal string `json:"non_prepaid_booking_total"`
	QRReturnedTotal        string `json:"qr_returned_total"`
	NonPrepaidDue          string `json:"non_prepaid_due"`

	PrepaidBookingTotal string `json:"prepaid_booking_total"`
	PrepaidQRReturned   string `json:"prepaid_qr_returned"`
	PrepaidDue          string `json:"prepaid_due"`

	TotalAggregatorDue string `json:"total_aggregator_due"`

	ExcludedTotal         string `json:"excluded_total"`
	ExpectedQRForExcluded string `json:"expected_qr_for_excluded"`
	ExcludedAdjustment    string `json:"excluded_adjustment"`

	AdjustedQRReturned     string `json:"adjusted_qr_returned"`
	DueToAggregator        string `json:"due_to_aggregator"`
	ExcessOwedByAggregator string `json:"excess_owed_by_aggregator"`

	QREfficiencyPercent string `json:"qr_efficiency_percent"`
	PendingQRCount      int    `json:"pending_qr_count"`

	ByMode []ModeBreakdownResponse `json:"by_mode"`
}

// ToReconciliationResponse converts a RangeReconciliation value object to its DTO.
func ToReconciliationResponse(result valueobject.RangeReconciliation) ReconciliationResponse {
	byMode := make([]ModeBreakdownResponse, 0, len(result.ByMode))
	for _, mode := range result.ByMode {
		byMode = append(byMode, ModeBreakdownResponse{
			Mode:           string(mode.Mode),
			EligibleCount:  mode.EligibleCount,
			EligibleAmount: mode.EligibleAmount.String(),
			ExcludedCount:  mode.ExcludedCount,
			ExcludedAmount: mode.ExcludedAmount.String(),
		})
	}

	return ReconciliationResponse{
		Start:  result.Start.Format("2006-01-02"),
		End:    result.End.Format("2006-01-02"),
		QRRate: result.QRRate,

		TotalBookings: result.TotalBookings,
		EligibleCount: result.EligibleCount,
		ExcludedCount: result.ExcludedCount,
		PrepaidCount:  result.PrepaidCount,

		NonPrepaidBookingTotal: result.NonPrepaidBookingTotal.String(),
		QRReturnedTotal:        result.QRReturnedTotal.String(),
		NonPrepaidDue:          result.NonPrepaidDue.String(),

		PrepaidBookingTotal: result.PrepaidBookingTotal.String(),
		PrepaidQRReturned:   result.PrepaidQRReturned.String(),
		PrepaidDue:          result.PrepaidDue.String(),

		TotalAggregatorDue: result.TotalAggregatorDue.String(),

		ExcludedTotal:         result.ExcludedTotal.String(),
		ExpectedQRForExcluded: result.ExpectedQRForExcluded.String(),
		ExcludedAdjustment:    result.ExcludedAdjustment.String(),

		AdjustedQRReturned:     result.AdjustedQRReturned.String(),
		DueToAggregator:        result.DueToAggregator.String(),
		ExcessOwedByAggregator: result.ExcessOwedByAggregator.String(),

		QREfficiencyPercent: result.QREfficiencyPercent.String(),
		PendingQRCount:      result.PendingQRCount,

		ByMode: byMode,
	}
}
