// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/hotel-ledger/backend/internal/domain/entity"
)

// GenerateReportRequest represents the request body for report generation.
// Month accepts YYYY-MM or a full date; it is normalized server side.
type GenerateReportRequest struct {
	Month string `json:"month" binding:"required"`
	Force bool   `json:"force,omitempty"`
}

// ReportResponse represents a monthly report snapshot in API responses.
type ReportResponse struct {
	ID      string `json:"id"`
	HotelID string `json:"hotel_id"`
	Month   string `json:"month"`

	TotalBookings      int    `json:"total_bookings"`
	TotalRevenue       string `json:"total_revenue"`
	TotalOYODue        string `json:"total_oyo_due"`
	TotalCashCollected string `json:"total_cash_collected"`
	TotalQRReturned    string `json:"total_qr_returned"`
	TotalExtraIncome   string `json:"total_extra_income"`
	TotalExpenses      string `json:"total_expenses"`
	NetProfit          string `json:"net_profit"`

	OYOBookings    int `json:"oyo_bookings"`
	TABookings     int `json:"ta_bookings"`
	OTABookings    int `json:"ota_bookings"`
	WalkInBookings int `json:"walk_in_bookings"`

	CashPayments    int `json:"cash_payments"`
	UPIPayments     int `json:"upi_payments"`
	PrepaidPayments int `json:"prepaid_payments"`

	CreatedAt time.Time `json:"created_at"`
}

// GenerateReportResponse represents the response for report generation.
type GenerateReportResponse struct {
	Report  ReportResponse `json:"report"`
	Skipped bool           `json:"skipped"`
}

// ReportListResponse represents the response for listing monthly reports.
type ReportListResponse struct {
	Reports []ReportResponse `json:"reports"`
}

// ToReportResponse converts a domain MonthlyReport entity to a ReportResponse DTO.
func ToReportResponse(report *entity.MonthlyReport) ReportResponse {
	return ReportResponse{
		ID:      report.ID.String(),
		HotelID: report.HotelID.String(),
		Month:   report.Month.Format("2006-01"),

		TotalBookings:      report.TotalBookings,
		TotalRevenue:       report.TotalRevenue.String(),
		TotalOYODue:        report.TotalOYODue.String(),
		TotalCashCollected: report.TotalCashCollected.String(),
		TotalQRReturned:    report.TotalQRReturned.String(),
		TotalExtraIncome:   report.TotalExtraIncome.String(),
		TotalExpenses:      report.TotalExpenses.String(),
		NetProfit:          report.NetProfit.String(),

		OYOBookings:    report.OYOBookings,
		TABookings:     report.TABookings,
		OTABookings:    report.OTABookings,
		WalkInBookings: report.WalkInBookings,

		CashPayments:    report.CashPayments,
		UPIPayments:     report.UPIPayments,
		PrepaidPayments: report.PrepaidPayments,

		CreatedAt: report.CreatedAt,
	}
}
