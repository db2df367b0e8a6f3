// Package dashboard contains dashboard aggregation use cases.
package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hotel-ledger/backend/internal/application/adapter"
	"github.com/hotel-ledger/backend/internal/domain/entity"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
	"github.com/hotel-ledger/backend/internal/domain/valueobject"
)

// cacheTTL is how long a rendered overview stays fresh. Mutations invalidate
// eagerly, so the TTL only bounds staleness across instances.
const cacheTTL = 60 * time.Second

// GetOverviewInput represents the input for the dashboard overview.
type GetOverviewInput struct {
	HotelID   uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// DayStats aggregates the bookings created on a single calendar day.
type DayStats struct {
	Bookings    int64           `json:"bookings"`
	Revenue     decimal.Decimal `json:"revenue"`
	ExtraIncome decimal.Decimal `json:"extra_income"`
}

// PeriodStats aggregates the resolved date range.
type PeriodStats struct {
	Bookings       int64           `json:"bookings"`
	BookingRevenue decimal.Decimal `json:"booking_revenue"`
	ExtraIncome    decimal.Decimal `json:"extra_income"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	Expenses       decimal.Decimal `json:"expenses"`
	NetProfit      decimal.Decimal `json:"net_profit"`
}

// MonthlyReportPoint is a compact view of a persisted monthly snapshot.
type MonthlyReportPoint struct {
	Month        time.Time       `json:"month"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	NetProfit    decimal.Decimal `json:"net_profit"`
}

// GetOverviewOutput represents the dashboard overview payload.
type GetOverviewOutput struct {
	Start                time.Time                         `json:"start"`
	End                  time.Time                         `json:"end"`
	Today                DayStats                          `json:"today"`
	Period               PeriodStats                       `json:"period"`
	RevenueChangePercent decimal.Decimal                   `json:"revenue_change_percent"`
	Reconciliation       valueobject.RangeReconciliation   `json:"reconciliation"`
	DailyRevenue         []adapter.DailyRevenuePoint       `json:"daily_revenue"`
	ModeCounts           adapter.BookingModeCounts         `json:"mode_counts"`
	RecentBookings       []*entity.Booking                 `json:"recent_bookings"`
	MonthlyReports       []MonthlyReportPoint              `json:"monthly_reports"`
}

// GetOverviewUseCase assembles the operator dashboard.
type GetOverviewUseCase struct {
	hotelRepo   adapter.HotelRepository
	bookingRepo adapter.BookingRepository
	incomeRepo  adapter.IncomeRepository
	expenseRepo adapter.ExpenseRepository
	reportRepo  adapter.ReportRepository
	cache       adapter.DashboardCache
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(
	hotelRepo adapter.HotelRepository,
	bookingRepo adapter.BookingRepository,
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
	reportRepo adapter.ReportRepository,
	cache adapter.DashboardCache,
) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		hotelRepo:   hotelRepo,
		bookingRepo: bookingRepo,
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
		reportRepo:  reportRepo,
		cache:       cache,
	}
}

// Execute assembles the dashboard overview for the resolved date range.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	hotel, err := uc.hotelRepo.FindByID(ctx, input.HotelID)
	if err != nil {
		return nil, domainerror.NewHotelError(
			domainerror.ErrCodeHotelNotFound,
			"hotel not found",
			domainerror.ErrHotelNotFound,
		)
	}

	now := time.Now().UTC()
	window := clampRange(input.StartDate, input.EndDate, now)

	cacheKey := overviewCacheKey(hotel.ID, window)
	if uc.cache != nil {
		if payload, found, cacheErr := uc.cache.Get(ctx, cacheKey); cacheErr == nil && found {
			var cached GetOverviewOutput
			if unmarshalErr := json.Unmarshal(payload, &cached); unmarshalErr == nil {
				return &cached, nil
			}
		} else if cacheErr != nil {
			slog.Warn("Dashboard cache read failed", "hotel_id", hotel.ID, "error", cacheErr)
		}
	}

	output, err := uc.assemble(ctx, hotel, window, now)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if payload, marshalErr := json.Marshal(output); marshalErr == nil {
			if cacheErr := uc.cache.Set(ctx, cacheKey, payload, cacheTTL); cacheErr != nil {
				slog.Warn("Dashboard cache write failed", "hotel_id", hotel.ID, "error", cacheErr)
			}
		}
	}

	return output, nil
}

func (uc *GetOverviewUseCase) assemble(ctx context.Context, hotel *entity.Hotel, window DateRange, now time.Time) (*GetOverviewOutput, error) {
	// Today's stats go by creation date so freshly entered bookings show up
	// even when backdated.
	todayTotals, err := uc.bookingRepo.GetCreatedTotals(ctx, hotel.ID, truncateToDay(now))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate today's bookings: %w", err)
	}

	periodTotals, err := uc.bookingRepo.GetRangeTotals(ctx, hotel.ID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate period bookings: %w", err)
	}

	periodIncome, err := uc.incomeRepo.SumByHotelAndRange(ctx, hotel.ID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate period income: %w", err)
	}

	periodExpenses, err := uc.expenseRepo.SumByHotelAndRange(ctx, hotel.ID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate period expenses: %w", err)
	}

	previous := window.Previous()
	previousTotals, err := uc.bookingRepo.GetRangeTotals(ctx, hotel.ID, previous.Start, previous.End)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate previous period: %w", err)
	}
	previousIncome, err := uc.incomeRepo.SumByHotelAndRange(ctx, hotel.ID, previous.Start, previous.End)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate previous income: %w", err)
	}

	bookings, err := uc.bookingRepo.FindByDateRange(ctx, hotel.ID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for reconciliation: %w", err)
	}

	dailyRevenue, err := uc.bookingRepo.GetDailyRevenueSeries(ctx, hotel.ID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily revenue series: %w", err)
	}

	modeCounts, err := uc.bookingRepo.GetModeCounts(ctx, hotel.ID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to count booking modes: %w", err)
	}

	recent, err := uc.bookingRepo.FindRecent(ctx, hotel.ID, 5)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent bookings: %w", err)
	}

	reports, err := uc.reportRepo.FindByHotel(ctx, hotel.ID, 6)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly reports: %w", err)
	}
	reportPoints := make([]MonthlyReportPoint, 0, len(reports))
	for _, report := range reports {
		reportPoints = append(reportPoints, MonthlyReportPoint{
			Month:        report.Month,
			TotalRevenue: report.TotalRevenue,
			NetProfit:    report.NetProfit,
		})
	}

	currentRevenue := periodTotals.AmountTotal.Add(periodIncome)
	previousRevenue := previousTotals.AmountTotal.Add(previousIncome)

	return &GetOverviewOutput{
		Start: window.Start,
		End:   window.End,
		Today: DayStats{
			Bookings:    todayTotals.Count,
			Revenue:     todayTotals.AmountTotal,
			ExtraIncome: todayTotals.ExtraIncomeTotal,
		},
		Period: PeriodStats{
			Bookings:       periodTotals.Count,
			BookingRevenue: periodTotals.AmountTotal,
			ExtraIncome:    periodIncome,
			TotalRevenue:   currentRevenue,
			Expenses:       periodExpenses,
			NetProfit:      currentRevenue.Sub(periodExpenses),
		},
		RevenueChangePercent: valueobject.RevenueChangePercent(currentRevenue, previousRevenue),
		Reconciliation:       valueobject.Reconcile(hotel.QRRate, window.Start, window.End, bookings),
		DailyRevenue:         dailyRevenue,
		ModeCounts:           *modeCounts,
		RecentBookings:       recent,
		MonthlyReports:       reportPoints,
	}, nil
}

// overviewCacheKey builds the cache key for a hotel's resolved window.
func overviewCacheKey(hotelID uuid.UUID, window DateRange) string {
	return fmt.Sprintf("dashboard:%s:%s:%s", hotelID, window.Start.Format("2006-01-02"), window.End.Format("2006-01-02"))
}
