// Package report contains monthly report snapshot use cases.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hotel-ledger/backend/internal/application/adapter"
	"github.com/hotel-ledger/backend/internal/domain/entity"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
	"github.com/hotel-ledger/backend/internal/domain/valueobject"
)

// GenerateReportInput represents the input for monthly report generation.
type GenerateReportInput struct {
	HotelID uuid.UUID
	// Month is any date inside the month to snapshot.
	Month time.Time
	// Force deletes and recreates an existing snapshot.
	Force bool
}

// GenerateReportOutput represents the output of monthly report generation.
type GenerateReportOutput struct {
	Report *entity.MonthlyReport
	// Skipped is true when the snapshot already existed and force was not
	// set. A skip is a no-op, not an error.
	Skipped bool
}

// GenerateReportUseCase freezes one hotel's month into a report row. The
// unique (hotel, month) constraint is the concurrency guard: two generators
// racing on the same month resolve to one winner and one skip.
type GenerateReportUseCase struct {
	hotelRepo    adapter.HotelRepository
	operatorRepo adapter.OperatorRepository
	bookingRepo  adapter.BookingRepository
	incomeRepo   adapter.IncomeRepository
	expenseRepo  adapter.ExpenseRepository
	reportRepo   adapter.ReportRepository
	emailService adapter.EmailService
}

// NewGenerateReportUseCase creates a new GenerateReportUseCase instance.
func NewGenerateReportUseCase(
	hotelRepo adapter.HotelRepository,
	operatorRepo adapter.OperatorRepository,
	bookingRepo adapter.BookingRepository,
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
	reportRepo adapter.ReportRepository,
	emailService adapter.EmailService,
) *GenerateReportUseCase {
	return &GenerateReportUseCase{
		hotelRepo:    hotelRepo,
		operatorRepo: operatorRepo,
		bookingRepo:  bookingRepo,
		incomeRepo:   incomeRepo,
		expenseRepo:  expenseRepo,
		reportRepo:   reportRepo,
		emailService: emailService,
	}
}

// Execute performs the monthly report generation.
func (uc *GenerateReportUseCase) Execute(ctx context.Context, input GenerateReportInput) (*GenerateReportOutput, error) {
	month := entity.FirstOfMonth(input.Month)
	currentMonth := entity.FirstOfMonth(time.Now().UTC())
	if month.After(currentMonth) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportMonthInFuture,
			"report month must not be in the future",
			domainerror.ErrReportMonthInFuture,
		)
	}

	hotel, err := uc.hotelRepo.FindByID(ctx, input.HotelID)
	if err != nil {
		return nil, domainerror.NewHotelError(
			domainerror.ErrCodeHotelNotFound,
			"hotel not found",
			domainerror.ErrHotelNotFound,
		)
	}

	exists, err := uc.reportRepo.ExistsByHotelAndMonth(ctx, hotel.ID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing report: %w", err)
	}
	if exists {
		if !input.Force {
			existing, err := uc.reportRepo.FindByHotelAndMonth(ctx, hotel.ID, month)
			if err != nil {
				return nil, fmt.Errorf("failed to load existing report: %w", err)
			}
			return &GenerateReportOutput{Report: existing, Skipped: true}, nil
		}
		if err := uc.reportRepo.DeleteByHotelAndMonth(ctx, hotel.ID, month); err != nil {
			return nil, fmt.Errorf("failed to delete report for regeneration: %w", err)
		}
	}

	report, err := uc.buildSnapshot(ctx, hotel, month)
	if err != nil {
		return nil, err
	}

	if err := uc.reportRepo.Create(ctx, report); err != nil {
		// A concurrent generator won the unique constraint race: treat as skip.
		if errors.Is(err, domainerror.ErrReportAlreadyExists) {
			existing, findErr := uc.reportRepo.FindByHotelAndMonth(ctx, hotel.ID, month)
			if findErr != nil {
				return nil, fmt.Errorf("failed to load report after duplicate insert: %w", findErr)
			}
			return &GenerateReportOutput{Report: existing, Skipped: true}, nil
		}
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	uc.queueReportEmail(ctx, hotel, report)

	return &GenerateReportOutput{Report: report}, nil
}

// buildSnapshot aggregates one month of activity into a report row. Snapshot
// fields are frozen at generation time and never recomputed retroactively.
func (uc *GenerateReportUseCase) buildSnapshot(ctx context.Context, hotel *entity.Hotel, month time.Time) (*entity.MonthlyReport, error) {
	start := month
	end := entity.LastOfMonth(month)

	bookings, err := uc.bookingRepo.FindByDateRange(ctx, hotel.ID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load month bookings: %w", err)
	}

	incomeTotal, err := uc.incomeRepo.SumByHotelAndRange(ctx, hotel.ID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum month income: %w", err)
	}

	expenseTotal, err := uc.expenseRepo.SumByHotelAndRange(ctx, hotel.ID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum month expenses: %w", err)
	}

	reconciliation := valueobject.Reconcile(hotel.QRRate, start, end, bookings)

	report := entity.NewMonthlyReport(hotel.ID, month)
	report.TotalBookings = len(bookings)
	report.TotalOYODue = reconciliation.DueToAggregator
	report.TotalQRReturned = reconciliation.QRReturnedTotal
	report.TotalExtraIncome = incomeTotal
	report.TotalExpenses = expenseTotal

	for _, b := range bookings {
		report.TotalRevenue = report.TotalRevenue.Add(b.Amount)
		switch b.Mode {
		case entity.BookingModeOYO:
			report.OYOBookings++
		case entity.BookingModeTA:
			report.TABookings++
		case entity.BookingModeOTA:
			report.OTABookings++
		case entity.BookingModeWalkIn:
			report.WalkInBookings++
		}
		switch b.PaymentMode {
		case entity.PaymentModeCash:
			report.CashPayments++
			report.TotalCashCollected = report.TotalCashCollected.Add(b.Amount)
		case entity.PaymentModeUPI:
			report.UPIPayments++
		case entity.PaymentModePrepaid:
			report.PrepaidPayments++
		}
	}

	report.TotalRevenue = report.TotalRevenue.Add(incomeTotal)
	report.NetProfit = report.TotalRevenue.Sub(expenseTotal)

	return report, nil
}

// queueReportEmail notifies the owning operator; generation never fails on
// email problems.
func (uc *GenerateReportUseCase) queueReportEmail(ctx context.Context, hotel *entity.Hotel, report *entity.MonthlyReport) {
	if uc.emailService == nil {
		return
	}

	operator, err := uc.operatorRepo.FindByID(ctx, hotel.OperatorID)
	if err != nil {
		slog.Warn("Failed to resolve operator for report email", "hotel_id", hotel.ID, "error", err)
		return
	}

	if err := uc.emailService.QueueMonthlyReportEmail(ctx, adapter.QueueMonthlyReportInput{
		OperatorEmail: operator.Email,
		OperatorName:  operator.Name,
		HotelName:     hotel.Name,
		Month:         report.Month,
		TotalRevenue:  report.TotalRevenue,
		NetProfit:     report.NetProfit,
		DueToOYO:      report.TotalOYODue,
	}); err != nil {
		slog.Warn("Failed to queue monthly report email", "hotel_id", hotel.ID, "error", err)
	}
}
