package booking

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

// fakeBookingRepo is an in-memory BookingRepository for use case tests.
type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (r *fakeBookingRepo) Create(_ context.Context, b *entity.Booking) error {
	r.bookings[b.ID] = b
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, domainerror.ErrBookingNotFound
	}
	return b, nil
}

func (r *fakeBookingRepo) FindByFilter(_ context.Context, _ adapter.BookingFilter, _ adapter.BookingPagination) (*entity.BookingListResult, error) {
	return &entity.BookingListResult{}, nil
}

func (r *fakeBookingRepo) FindByDateRange(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]*entity.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) FindRecent(_ context.Context, _ uuid.UUID, _ int) ([]*entity.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) GetRangeTotals(_ context.Context, _ uuid.UUID, _, _ time.Time) (*adapter.BookingRangeTotals, error) {
	return &adapter.BookingRangeTotals{}, nil
}

func (r *fakeBookingRepo) GetCreatedTotals(_ context.Context, _ uuid.UUID, _ time.Time) (*adapter.BookingRangeTotals, error) {
	return &adapter.BookingRangeTotals{}, nil
}

func (r *fakeBookingRepo) GetDailyRevenueSeries(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]adapter.DailyRevenuePoint, error) {
	return nil, nil
}

func (r *fakeBookingRepo) GetModeCounts(_ context.Context, _ uuid.UUID, _, _ time.Time) (*adapter.BookingModeCounts, error) {
	return &adapter.BookingModeCounts{}, nil
}

func (r *fakeBookingRepo) Update(_ context.Context, b *entity.Booking) error {
	r.bookings[b.ID] = b
	return nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.bookings, id)
	return nil
}

// fakeIncomeStore is a minimal IncomeRepository for cascade tests.
type fakeIncomeStore struct {
	incomes map[uuid.UUID]*entity.ExtraIncome
}

func newFakeIncomeStore() *fakeIncomeStore {
	return &fakeIncomeStore{incomes: make(map[uuid.UUID]*entity.ExtraIncome)}
}

func (r *fakeIncomeStore) Create(_ context.Context, income *entity.ExtraIncome) error {
	r.incomes[income.ID] = income
	return nil
}

func (r *fakeIncomeStore) FindByID(_ context.Context, id uuid.UUID) (*entity.ExtraIncome, error) {
	income, ok := r.incomes[id]
	if !ok {
		return nil, domainerror.ErrIncomeNotFound
	}
	return income, nil
}

func (r *fakeIncomeStore) FindByFilter(_ context.Context, filter adapter.IncomeFilter) ([]*entity.ExtraIncome, error) {
	var out []*entity.ExtraIncome
	for _, income := range r.incomes {
		if income.HotelID == filter.HotelID {
			out = append(out, income)
		}
	}
	return out, nil
}

func (r *fakeIncomeStore) SumByBooking(_ context.Context, bookingID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, income := range r.incomes {
		if income.BookingID != nil && *income.BookingID == bookingID {
			total = total.Add(income.Amount)
		}
	}
	return total, nil
}

func (r *fakeIncomeStore) SumByHotelAndRange(_ context.Context, hotelID uuid.UUID, _, _ time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, income := range r.incomes {
		if income.HotelID == hotelID {
			total = total.Add(income.Amount)
		}
	}
	return total, nil
}

func (r *fakeIncomeStore) DeleteByBooking(_ context.Context, bookingID uuid.UUID) error {
	for id, income := range r.incomes {
		if income.BookingID != nil && *income.BookingID == bookingID {
			delete(r.incomes, id)
		}
	}
	return nil
}

func (r *fakeIncomeStore) Update(_ context.Context, income *entity.ExtraIncome) error {
	r.incomes[income.ID] = income
	return nil
}

func (r *fakeIncomeStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.incomes, id)
	return nil
}

func TestDeleteBooking_CascadesLinkedIncome(t *testing.T) {
	ctx := context.Background()
	hotelID := uuid.New()
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	bookingRepo := newFakeBookingRepo()
	incomeRepo := newFakeIncomeStore()

	booking := entity.NewBooking(
		hotelID,
		"REF-200",
		"Guest",
		day,
		entity.BookingModeOYO,
		entity.PaymentModeCash,
		1,
		decimal.NewFromInt(1500),
		false,
	)
	if err := bookingRepo.Create(ctx, booking); err != nil {
		t.Fatalf("failed to seed booking: %v", err)
	}

	linked := entity.NewExtraIncome(hotelID, &booking.ID, entity.IncomeSourceKitchen, decimal.NewFromInt(300), "", day)
	if err := incomeRepo.Create(ctx, linked); err != nil {
		t.Fatalf("failed to seed linked income: %v", err)
	}
	unlinked := entity.NewExtraIncome(hotelID, nil, entity.IncomeSourceParking, decimal.NewFromInt(200), "", day)
	if err := incomeRepo.Create(ctx, unlinked); err != nil {
		t.Fatalf("failed to seed unlinked income: %v", err)
	}

	uc := NewDeleteBookingUseCase(bookingRepo, incomeRepo, nil)
	if _, err := uc.Execute(ctx, DeleteBookingInput{BookingID: booking.ID, HotelID: hotelID}); err != nil {
		t.Fatalf("failed to delete booking: %v", err)
	}

	t.Run("booking row is removed", func(t *testing.T) {
		if _, err := bookingRepo.FindByID(ctx, booking.ID); err == nil {
			t.Error("expected booking removed")
		}
	})

	t.Run("linked income rows are removed with the booking", func(t *testing.T) {
		incomes, err := incomeRepo.FindByFilter(ctx, adapter.IncomeFilter{HotelID: hotelID})
		if err != nil {
			t.Fatalf("failed to list incomes: %v", err)
		}
		if len(incomes) != 1 {
			t.Fatalf("expected only the unlinked income row to survive, got %d rows", len(incomes))
		}
		if incomes[0].ID != unlinked.ID {
			t.Errorf("expected surviving row %s, got %s", unlinked.ID, incomes[0].ID)
		}
	})

	t.Run("hotel income no longer counts the cascaded rows", func(t *testing.T) {
		total, err := incomeRepo.SumByHotelAndRange(ctx, hotelID, day, day)
		if err != nil {
			t.Fatalf("failed to sum income: %v", err)
		}
		if !total.Equal(decimal.NewFromInt(200)) {
			t.Errorf("expected hotel income 200 after delete, got %s", total)
		}
	})
}

func TestDeleteBooking_RejectsForeignHotel(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	bookingRepo := newFakeBookingRepo()
	incomeRepo := newFakeIncomeStore()

	booking := entity.NewBooking(
		uuid.New(),
		"REF-201",
		"Guest",
		day,
		entity.BookingModeOYO,
		entity.PaymentModeCash,
		1,
		decimal.NewFromInt(1000),
		false,
	)
	if err := bookingRepo.Create(ctx, booking); err != nil {
		t.Fatalf("failed to seed booking: %v", err)
	}

	uc := NewDeleteBookingUseCase(bookingRepo, incomeRepo, nil)
	_, err := uc.Execute(ctx, DeleteBookingInput{BookingID: booking.ID, HotelID: uuid.New()})
	if err == nil {
		t.Fatal("expected error for foreign hotel")
	}
	if _, findErr := bookingRepo.FindByID(ctx, booking.ID); findErr != nil {
		t.Errorf("booking should survive a rejected delete: %v", findErr)
	}
}
