// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hotel-ledger/backend/internal/domain/entity"
)

// MonthlyReportModel represents the monthly_reports table in the database.
// The composite unique index on (hotel_id, month) makes duplicate generation
// a constraint violation rather than a lost-update.
type MonthlyReportModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	HotelID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reports_hotel_month"`
	Month   time.Time `gorm:"type:date;not null;uniqueIndex:idx_reports_hotel_month"`

	TotalBookings      int             `gorm:"not null;default:0"`
	TotalRevenue       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	TotalOYODue        decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	TotalCashCollected decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	TotalQRReturned    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	TotalExtraIncome   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	TotalExpenses      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	NetProfit          decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`

	OYOBookings    int `gorm:"not null;default:0"`
	TABookings     int `gorm:"not null;default:0"`
	OTABookings    int `gorm:"not null;default:0"`
	WalkInBookings int `gorm:"not null;default:0"`

	CashPayments    int `gorm:"not null;default:0"`
	UPIPayments     int `gorm:"not null;default:0"`
	PrepaidPayments int `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Hotel *HotelModel `gorm:"foreignKey:HotelID;references:ID"`
}

// TableName returns the table name for the MonthlyReportModel.
func (MonthlyReportModel) TableName() string {
	return "monthly_reports"
}

// ToEntity converts a MonthlyReportModel to a domain MonthlyReport entity.
func (m *MonthlyReportModel) ToEntity() *entity.MonthlyReport {
	return &entity.MonthlyReport{
		ID:                 m.ID,
		HotelID:            m.HotelID,
		Month:              m.Month,
		TotalBookings:      m.TotalBookings,
		TotalRevenue:       m.TotalRevenue,
		TotalOYODue:        m.TotalOYODue,
		TotalCashCollected: m.TotalCashCollected,
		TotalQRReturned:    m.TotalQRReturned,
		TotalExtraIncome:   m.TotalExtraIncome,
		TotalExpenses:      m.TotalExpenses,
		NetProfit:          m.NetProfit,
		OYOBookings:        m.OYOBookings,
		TABookings:         m.TABookings,
		OTABookings:        m.OTABookings,
		WalkInBookings:     m.WalkInBookings,
		CashPayments:       m.CashPayments,
		UPIPayments:        m.UPIPayments,
		PrepaidPayments:    m.PrepaidPayments,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// MonthlyReportFromEntity creates a MonthlyReportModel from a domain MonthlyReport entity.
func MonthlyReportFromEntity(report *entity.MonthlyReport) *MonthlyReportModel {
	return &MonthlyReportModel{
		ID:                 report.ID,
		HotelID:            report.HotelID,
		Month:              report.Month,
		TotalBookings:      report.TotalBookings,
		TotalRevenue:       report.TotalRevenue,
		TotalOYODue:        report.TotalOYODue,
		TotalCashCollected: report.TotalCashCollected,
		TotalQRReturned:    report.TotalQRReturned,
		TotalExtraIncome:   report.TotalExtraIncome,
		TotalExpenses:      report.TotalExpenses,
		NetProfit:          report.NetProfit,
		OYOBookings:        report.OYOBookings,
		TABookings:         report.TABookings,
		OTABookings:        report.OTABookings,
		WalkInBookings:     report.WalkInBookings,
		CashPayments:       report.CashPayments,
		UPIPayments:        report.UPIPayments,
		PrepaidPayments:    report.PrepaidPayments,
		CreatedAt:          report.CreatedAt,
		UpdatedAt:          report.UpdatedAt,
	}
}
