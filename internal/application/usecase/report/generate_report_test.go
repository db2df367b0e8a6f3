package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hotel-ledger/backend/internal/application/adapter"
	"github.com/hotel-ledger/backend/internal/domain/entity"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
)

type fakeHotelRepo struct {
	hotels map[uuid.UUID]*entity.Hotel
}

func (r *fakeHotelRepo) Create(ctx context.Context, hotel *entity.Hotel) error {
	r.hotels[hotel.ID] = hotel
	return nil
}

func (r *fakeHotelRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	hotel, ok := r.hotels[id]
	if !ok {
		return nil, domainerror.ErrHotelNotFound
	}
	return hotel, nil
}

func (r *fakeHotelRepo) FindByOperatorID(ctx context.Context, operatorID uuid.UUID) (*entity.Hotel, error) {
	for _, hotel := range r.hotels {
		if hotel.OperatorID == operatorID {
			return hotel, nil
		}
	}
	return nil, domainerror.ErrHotelNotFound
}

func (r *fakeHotelRepo) FindAllActive(ctx context.Context) ([]*entity.Hotel, error) {
	var hotels []*entity.Hotel
	for _, hotel := range r.hotels {
		if hotel.IsActive {
			hotels = append(hotels, hotel)
		}
	}
	return hotels, nil
}

func (r *fakeHotelRepo) Update(ctx context.Context, hotel *entity.Hotel) error {
	r.hotels[hotel.ID] = hotel
	return nil
}

func (r *fakeHotelRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	for _, hotel := range r.hotels {
		if hotel.Code == code {
			return true, nil
		}
	}
	return false, nil
}

type fakeOperatorRepo struct {
	operators map[uuid.UUID]*entity.Operator
}

func (r *fakeOperatorRepo) Create(ctx context.Context, operator *entity.Operator) error {
	r.operators[operator.ID] = operator
	return nil
}

func (r *fakeOperatorRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Operator, error) {
	operator, ok := r.operators[id]
	if !ok {
		return nil, domainerror.ErrOperatorNotFound
	}
	return operator, nil
}

func (r *fakeOperatorRepo) FindByEmail(ctx context.Context, email string) (*entity.Operator, error) {
	for _, operator := range r.operators {
		if operator.Email == email {
			return operator, nil
		}
	}
	return nil, domainerror.ErrOperatorNotFound
}

func (r *fakeOperatorRepo) Update(ctx context.Context, operator *entity.Operator) error {
	r.operators[operator.ID] = operator
	return nil
}

func (r *fakeOperatorRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	return err == nil, nil
}

// fakeMonthBookings serves a fixed booking slice for any date range; the
// aggregation methods report use cases never call are stubbed out.
type fakeMonthBookings struct {
	bookings []*entity.Booking
}

func (r *fakeMonthBookings) Create(ctx context.Context, booking *entity.Booking) error { return nil }

func (r *fakeMonthBookings) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return nil, domainerror.ErrBookingNotFound
}

func (r *fakeMonthBookings) FindByFilter(ctx context.Context, filter adapter.BookingFilter, pagination adapter.BookingPagination) (*entity.BookingListResult, error) {
	return &entity.BookingListResult{}, nil
}

func (r *fakeMonthBookings) FindByDateRange(ctx context.Context, hotelID uuid.UUID, start, end time.Time) ([]*entity.Booking, error) {
	return r.bookings, nil
}

func (r *fakeMonthBookings) FindRecent(ctx context.Context, hotelID uuid.UUID, limit int) ([]*entity.Booking, error) {
	return nil, nil
}

func (r *fakeMonthBookings) GetRangeTotals(ctx context.Context, hotelID uuid.UUID, start, end time.Time) (*adapter.BookingRangeTotals, error) {
	return &adapter.BookingRangeTotals{}, nil
}

func (r *fakeMonthBookings) GetCreatedTotals(ctx context.Context, hotelID uuid.UUID, day time.Time) (*adapter.BookingRangeTotals, error) {
	return &adapter.BookingRangeTotals{}, nil
}

func (r *fakeMonthBookings) GetDailyRevenueSeries(ctx context.Context, hotelID uuid.UUID, start, end time.Time) ([]adapter.DailyRevenuePoint, error) {
	return nil, nil
}

func (r *fakeMonthBookings) GetModeCounts(ctx context.Context, hotelID uuid.UUID, start, end time.Time) (*adapter.BookingModeCounts, error) {
	return &adapter.BookingModeCounts{}, nil
}

func (r *fakeMonthBookings) Update(ctx context.Context, booking *entity.Booking) error { return nil }

func (r *fakeMonthBookings) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeIncomeSum struct {
	total decimal.Decimal
}

func (r *fakeIncomeSum) Create(ctx context.Context, income *entity.ExtraIncome) error { return nil }

func (r *fakeIncomeSum) FindByID(ctx context.Context, id uuid.UUID) (*entity.ExtraIncome, error) {
	return nil, domainerror.ErrIncomeNotFound
}

func (r *fakeIncomeSum) FindByFilter(ctx context.Context, filter adapter.IncomeFilter) ([]*entity.ExtraIncome, error) {
	return nil, nil
}

func (r *fakeIncomeSum) SumByBooking(ctx context.Context, bookingID uuid.UUID) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (r *fakeIncomeSum) SumByHotelAndRange(ctx context.Context, hotelID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	return r.total, nil
}

func (r *fakeIncomeSum) DeleteByBooking(ctx context.Context, bookingID uuid.UUID) error { return nil }

func (r *fakeIncomeSum) Update(ctx context.Context, income *entity.ExtraIncome) error { return nil }

func (r *fakeIncomeSum) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeExpenseSum struct {
	total decimal.Decimal
}

func (r *fakeExpenseSum) Create(ctx context.Context, expense *entity.DailyExpense) error { return nil }

func (r *fakeExpenseSum) FindByID(ctx context.Context, id uuid.UUID) (*entity.DailyExpense, error) {
	return nil, domainerror.ErrExpenseNotFound
}

func (r *fakeExpenseSum) FindByFilter(ctx context.Context, filter adapter.ExpenseFilter) ([]*entity.DailyExpense, error) {
	return nil, nil
}

func (r *fakeExpenseSum) SumByHotelAndRange(ctx context.Context, hotelID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	return r.total, nil
}

func (r *fakeExpenseSum) GetTotalsByType(ctx context.Context, hotelID uuid.UUID, start, end time.Time) ([]adapter.ExpenseTypeTotal, error) {
	return nil, nil
}

func (r *fakeExpenseSum) Update(ctx context.Context, expense *entity.DailyExpense) error { return nil }

func (r *fakeExpenseSum) Delete(ctx context.Context, id uuid.UUID) error { return nil }

// fakeReportRepo enforces the (hotel, month) uniqueness in memory. Setting
// failNextCreate simulates losing the insert race to a concurrent generator.
type fakeReportRepo struct {
	reports        map[string]*entity.MonthlyReport
	failNextCreate bool
	deletes        int
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[string]*entity.MonthlyReport)}
}

func reportKey(hotelID uuid.UUID, month time.Time) string {
	return hotelID.String() + ":" + month.Format("2006-01")
}

func (r *fakeReportRepo) Create(ctx context.Context, report *entity.MonthlyReport) error {
	key := reportKey(report.HotelID, report.Month)
	if r.failNextCreate {
		// The concurrent generator's row lands first.
		r.failNextCreate = false
		if _, ok := r.reports[key]; !ok {
			r.reports[key] = entity.NewMonthlyReport(report.HotelID, report.Month)
		}
		return domainerror.ErrReportAlreadyExists
	}
	if _, ok := r.reports[key]; ok {
		return domainerror.ErrReportAlreadyExists
	}
	r.reports[key] = report
	return nil
}

func (r *fakeReportRepo) FindByHotelAndMonth(ctx context.Context, hotelID uuid.UUID, month time.Time) (*entity.MonthlyReport, error) {
	report, ok := r.reports[reportKey(hotelID, month)]
	if !ok {
		return nil, domainerror.ErrReportNotFound
	}
	return report, nil
}

func (r *fakeReportRepo) FindByHotel(ctx context.Context, hotelID uuid.UUID, limit int) ([]*entity.MonthlyReport, error) {
	var reports []*entity.MonthlyReport
	for _, report := range r.reports {
		if report.HotelID == hotelID {
			reports = append(reports, report)
		}
	}
	return reports, nil
}

func (r *fakeReportRepo) ExistsByHotelAndMonth(ctx context.Context, hotelID uuid.UUID, month time.Time) (bool, error) {
	_, ok := r.reports[reportKey(hotelID, month)]
	return ok, nil
}

func (r *fakeReportRepo) DeleteByHotelAndMonth(ctx context.Context, hotelID uuid.UUID, month time.Time) error {
	delete(r.reports, reportKey(hotelID, month))
	r.deletes++
	return nil
}

type fakeEmailService struct {
	reportEmails []adapter.QueueMonthlyReportInput
}

func (s *fakeEmailService) QueueWelcomeEmail(ctx context.Context, input adapter.QueueWelcomeInput) error {
	return nil
}

func (s *fakeEmailService) QueueMonthlyReportEmail(ctx context.Context, input adapter.QueueMonthlyReportInput) error {
	s.reportEmails = append(s.reportEmails, input)
	return nil
}

type generateFixture struct {
	useCase *GenerateReportUseCase
	hotel   *entity.Hotel
	reports *fakeReportRepo
	emails  *fakeEmailService
}

func newGenerateFixture(t *testing.T, qrRate int64, bookings []*entity.Booking, income, expenses decimal.Decimal) *generateFixture {
	t.Helper()

	operator := entity.NewOperator("owner@example.com", "Owner", "hash")
	hotel := entity.NewHotel(operator.ID, "Sea View", "SV01", qrRate, "", "")

	reports := newFakeReportRepo()
	emails := &fakeEmailService{}

	useCase := NewGenerateReportUseCase(
		&fakeHotelRepo{hotels: map[uuid.UUID]*entity.Hotel{hotel.ID: hotel}},
		&fakeOperatorRepo{operators: map[uuid.UUID]*entity.Operator{operator.ID: operator}},
		&fakeMonthBookings{bookings: bookings},
		&fakeIncomeSum{total: income},
		&fakeExpenseSum{total: expenses},
		reports,
		emails,
	)

	return &generateFixture{useCase: useCase, hotel: hotel, reports: reports, emails: emails}
}

func monthBooking(hotelID uuid.UUID, mode entity.BookingMode, payment entity.PaymentMode, amount int64) *entity.Booking {
	day := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	return entity.NewBooking(hotelID, "REF-"+string(mode), "Guest", day, mode, payment, 1, decimal.NewFromInt(amount), false)
}

func TestGenerateReport(t *testing.T) {
	ctx := context.Background()
	month := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("snapshots the month and queues an email", func(t *testing.T) {
		hotelID := uuid.New()
		bookings := []*entity.Booking{
			monthBooking(hotelID, entity.BookingModeOYO, entity.PaymentModeCash, 1500),
			monthBooking(hotelID, entity.BookingModeWalkIn, entity.PaymentModeUPI, 1000),
			monthBooking(hotelID, entity.BookingModeTA, entity.PaymentModePrepaid, 2000),
		}
		fixture := newGenerateFixture(t, 500, bookings, decimal.NewFromInt(300), decimal.NewFromInt(800))

		output, err := fixture.useCase.Execute(ctx, GenerateReportInput{HotelID: fixture.hotel.ID, Month: month})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Skipped {
			t.Fatal("expected a fresh report, got skipped")
		}

		report := output.Report
		if report.TotalBookings != 3 {
			t.Errorf("expected 3 bookings, got %d", report.TotalBookings)
		}
		// 1500 + 1000 + 2000 bookings plus 300 income.
		if !report.TotalRevenue.Equal(decimal.NewFromInt(4800)) {
			t.Errorf("expected revenue 4800, got %s", report.TotalRevenue)
		}
		if !report.NetProfit.Equal(decimal.NewFromInt(4000)) {
			t.Errorf("expected net profit 4000, got %s", report.NetProfit)
		}
		// One room per booking at rate 500, all three eligible.
		if !report.TotalOYODue.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("expected due 1500, got %s", report.TotalOYODue)
		}
		if !report.TotalCashCollected.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("expected cash 1500, got %s", report.TotalCashCollected)
		}
		if report.OYOBookings != 1 || report.TABookings != 1 || report.WalkInBookings != 1 || report.OTABookings != 0 {
			t.Errorf("unexpected mode breakdown: %+v", report)
		}
		if report.CashPayments != 1 || report.UPIPayments != 1 || report.PrepaidPayments != 1 {
			t.Errorf("unexpected payment breakdown: %+v", report)
		}

		if len(fixture.emails.reportEmails) != 1 {
			t.Fatalf("expected 1 queued email, got %d", len(fixture.emails.reportEmails))
		}
		if fixture.emails.reportEmails[0].OperatorEmail != "owner@example.com" {
			t.Errorf("email queued for wrong recipient: %s", fixture.emails.reportEmails[0].OperatorEmail)
		}
	})

	t.Run("existing report without force is a skip", func(t *testing.T) {
		fixture := newGenerateFixture(t, 500, nil, decimal.Zero, decimal.Zero)

		first, err := fixture.useCase.Execute(ctx, GenerateReportInput{HotelID: fixture.hotel.ID, Month: month})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		second, err := fixture.useCase.Execute(ctx, GenerateReportInput{HotelID: fixture.hotel.ID, Month: month})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !second.Skipped {
			t.Fatal("expected skip on duplicate generation")
		}
		if second.Report.ID != first.Report.ID {
			t.Error("skip should return the existing report")
		}
		if len(fixture.emails.reportEmails) != 1 {
			t.Errorf("skip must not queue another email, got %d emails", len(fixture.emails.reportEmails))
		}
	})

	t.Run("force deletes and recreates", func(t *testing.T) {
		fixture := newGenerateFixture(t, 500, nil, decimal.Zero, decimal.Zero)

		first, err := fixture.useCase.Execute(ctx, GenerateReportInput{HotelID: fixture.hotel.ID, Month: month})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		second, err := fixture.useCase.Execute(ctx, GenerateReportInput{HotelID: fixture.hotel.ID, Month: month, Force: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.Skipped {
			t.Fatal("forced regeneration must not skip")
		}
		if second.Report.ID == first.Report.ID {
			t.Error("forced regeneration should produce a new report row")
		}
		if fixture.reports.deletes != 1 {
			t.Errorf("expected 1 delete, got %d", fixture.reports.deletes)
		}
	})

	t.Run("losing the insert race resolves to a skip", func(t *testing.T) {
		fixture := newGenerateFixture(t, 500, nil, decimal.Zero, decimal.Zero)

		fixture.reports.failNextCreate = true

		output, err := fixture.useCase.Execute(ctx, GenerateReportInput{HotelID: fixture.hotel.ID, Month: month})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Skipped {
			t.Fatal("expected race loss to resolve as a skip")
		}
	})

	t.Run("future month is rejected", func(t *testing.T) {
		fixture := newGenerateFixture(t, 500, nil, decimal.Zero, decimal.Zero)

		future := time.Now().UTC().AddDate(0, 2, 0)
		_, err := fixture.useCase.Execute(ctx, GenerateReportInput{HotelID: fixture.hotel.ID, Month: future})
		if err == nil {
			t.Fatal("expected error for future month")
		}
	})
}
