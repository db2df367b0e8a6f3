package income

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

// fakeIncomeRepo is an in-memory IncomeRepository for use case tests.
type fakeIncomeRepo struct {
	incomes map[uuid.UUID]*entity.ExtraIncome
}

func newFakeIncomeRepo() *fakeIncomeRepo {
	return &fakeIncomeRepo{incomes: make(map[uuid.UUID]*entity.ExtraIncome)}
}

func (r *fakeIncomeRepo) Create(_ context.Context, income *entity.ExtraIncome) error {
	r.incomes[income.ID] = income
	return nil
}

func (r *fakeIncomeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.ExtraIncome, error) {
	income, ok := r.incomes[id]
	if !ok {
		return nil, domainerror.ErrIncomeNotFound
	}
	return income, nil
}

func (r *fakeIncomeRepo) FindByFilter(_ context.Context, filter adapter.IncomeFilter) ([]*entity.ExtraIncome, error) {
	var out []*entity.ExtraIncome
	for _, income := range r.incomes {
		if income.HotelID == filter.HotelID {
			out = append(out, income)
		}
	}
	return out, nil
}

func (r *fakeIncomeRepo) SumByBooking(_ context.Context, bookingID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, income := range r.incomes {
		if income.BookingID != nil && *income.BookingID == bookingID {
			total = total.Add(income.Amount)
		}
	}
	return total, nil
}

func (r *fakeIncomeRepo) SumByHotelAndRange(_ context.Context, hotelID uuid.UUID, _, _ time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, income := range r.incomes {
		if income.HotelID == hotelID {
			total = total.Add(income.Amount)
		}
	}
	return total, nil
}

func (r *fakeIncomeRepo) DeleteByBooking(_ context.Context, bookingID uuid.UUID) error {
	for id, income := range r.incomes {
		if income.BookingID != nil && *income.BookingID == bookingID {
			delete(r.incomes, id)
		}
	}
	return nil
}

func (r *fakeIncomeRepo) Update(_ context.Context, income *entity.ExtraIncome) error {
	r.incomes[income.ID] = income
	return nil
}

func (r *fakeIncomeRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.incomes, id)
	return nil
}

// fakeBookingStore is a minimal BookingRepository for recompute tests.
type fakeBookingStore struct {
	bookings map[uuid.UUID]*entity.Booking
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (r *fakeBookingStore) Create(_ context.Context, b *entity.Booking) error {
	r.bookings[b.ID] = b
	return nil
}

func (r *fakeBookingStore) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, domainerror.ErrBookingNotFound
	}
	return b, nil
}

func (r *fakeBookingStore) FindByFilter(_ context.Context, _ adapter.BookingFilter, _ adapter.BookingPagination) (*entity.BookingListResult, error) {
	return &entity.BookingListResult{}, nil
}

func (r *fakeBookingStore) FindByDateRange(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]*entity.Booking, error) {
	return nil, nil
}

func (r *fakeBookingStore) FindRecent(_ context.Context, _ uuid.UUID, _ int) ([]*entity.Booking, error) {
	return nil, nil
}

func (r *fakeBookingStore) GetRangeTotals(_ context.Context, _ uuid.UUID, _, _ time.Time) (*adapter.BookingRangeTotals, error) {
	return &adapter.BookingRangeTotals{}, nil
}

func (r *fakeBookingStore) GetCreatedTotals(_ context.Context, _ uuid.UUID, _ time.Time) (*adapter.BookingRangeTotals, error) {
	return &adapter.BookingRangeTotals{}, nil
}

func (r *fakeBookingStore) GetDailyRevenueSeries(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]adapter.DailyRevenuePoint, error) {
	return nil, nil
}

func (r *fakeBookingStore) GetModeCounts(_ context.Context, _ uuid.UUID, _, _ time.Time) (*adapter.BookingModeCounts, error) {
	return &adapter.BookingModeCounts{}, nil
}

func (r *fakeBookingStore) Update(_ context.Context, b *entity.Booking) error {
	r.bookings[b.ID] = b
	return nil
}

func (r *fakeBookingStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.bookings, id)
	return nil
}

func seedBooking(t *testing.T, store *fakeBookingStore, hotelID uuid.UUID) *entity.Booking {
	t.Helper()

	b := entity.NewBooking(
		hotelID,
		"REF-100",
		"Guest",
		time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		entity.BookingModeOYO,
		entity.PaymentModeCash,
		1,
		decimal.NewFromInt(1500),
		false,
	)
	if err := store.Create(context.Background(), b); err != nil {
		t.Fatalf("failed to seed booking: %v", err)
	}
	return b
}

func TestDeleteIncome_RecomputesBookingTotal(t *testing.T) {
	ctx := context.Background()
	hotelID := uuid.New()

	incomeRepo := newFakeIncomeRepo()
	bookingStore := newFakeBookingStore()
	booking := seedBooking(t, bookingStore, hotelID)

	createUC := NewCreateIncomeUseCase(incomeRepo, bookingStore, nil)
	deleteUC := NewDeleteIncomeUseCase(incomeRepo, bookingStore, nil)

	first, err := createUC.Execute(ctx, CreateIncomeInput{
		HotelID:   hotelID,
		BookingID: &booking.ID,
		Source:    entity.IncomeSourceKitchen,
		Amount:    decimal.NewFromInt(300),
		Date:      booking.BookingDate,
	})
	if err != nil {
		t.Fatalf("failed to create first income: %v", err)
	}

	_, err = createUC.Execute(ctx, CreateIncomeInput{
		HotelID:   hotelID,
		BookingID: &booking.ID,
		Source:    entity.IncomeSourceParking,
		Amount:    decimal.NewFromInt(200),
		Date:      booking.BookingDate,
	})
	if err != nil {
		t.Fatalf("failed to create second income: %v", err)
	}

	t.Run("creation accumulates the cached total", func(t *testing.T) {
		got, err := bookingStore.FindByID(ctx, booking.ID)
		if err != nil {
			t.Fatalf("failed to load booking: %v", err)
		}
		if !got.ExtraIncomeTotal.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected cached total 500, got %s", got.ExtraIncomeTotal)
		}
	})

	t.Run("deletion recomputes from remaining rows", func(t *testing.T) {
		if _, err := deleteUC.Execute(ctx, DeleteIncomeInput{IncomeID: first.Income.ID, HotelID: hotelID}); err != nil {
			t.Fatalf("failed to delete income: %v", err)
		}

		got, err := bookingStore.FindByID(ctx, booking.ID)
		if err != nil {
			t.Fatalf("failed to load booking: %v", err)
		}
		if !got.ExtraIncomeTotal.Equal(decimal.NewFromInt(200)) {
			t.Errorf("expected cached total 200, got %s", got.ExtraIncomeTotal)
		}
	})

	t.Run("deleting the last row zeroes the cached total", func(t *testing.T) {
		incomes, err := incomeRepo.FindByFilter(ctx, adapter.IncomeFilter{HotelID: hotelID})
		if err != nil {
			t.Fatalf("failed to list incomes: %v", err)
		}
		for _, inc := range incomes {
			if _, err := deleteUC.Execute(ctx, DeleteIncomeInput{IncomeID: inc.ID, HotelID: hotelID}); err != nil {
				t.Fatalf("failed to delete income: %v", err)
			}
		}

		got, err := bookingStore.FindByID(ctx, booking.ID)
		if err != nil {
			t.Fatalf("failed to load booking: %v", err)
		}
		if !got.ExtraIncomeTotal.IsZero() {
			t.Errorf("expected cached total 0, got %s", got.ExtraIncomeTotal)
		}
	})
}

func TestUpdateIncome_ReassignRecomputesBothBookings(t *testing.T) {
	ctx := context.Background()
	hotelID := uuid.New()

	incomeRepo := newFakeIncomeRepo()
	bookingStore := newFakeBookingStore()
	oldBooking := seedBooking(t, bookingStore, hotelID)
	newBooking := seedBooking(t, bookingStore, hotelID)

	createUC := NewCreateIncomeUseCase(incomeRepo, bookingStore, nil)
	updateUC := NewUpdateIncomeUseCase(incomeRepo, bookingStore, nil)

	created, err := createUC.Execute(ctx, CreateIncomeInput{
		HotelID:   hotelID,
		BookingID: &oldBooking.ID,
		Source:    entity.IncomeSourceMiniBar,
		Amount:    decimal.NewFromInt(450),
		Date:      oldBooking.BookingDate,
	})
	if err != nil {
		t.Fatalf("failed to create income: %v", err)
	}

	_, err = updateUC.Execute(ctx, UpdateIncomeInput{
		IncomeID:  created.Income.ID,
		HotelID:   hotelID,
		BookingID: &newBooking.ID,
		Source:    entity.IncomeSourceMiniBar,
		Amount:    decimal.NewFromInt(450),
		Date:      oldBooking.BookingDate,
	})
	if err != nil {
		t.Fatalf("failed to update income: %v", err)
	}

	oldGot, _ := bookingStore.FindByID(ctx, oldBooking.ID)
	if !oldGot.ExtraIncomeTotal.IsZero() {
		t.Errorf("expected old booking total 0, got %s", oldGot.ExtraIncomeTotal)
	}

	newGot, _ := bookingStore.FindByID(ctx, newBooking.ID)
	if !newGot.ExtraIncomeTotal.Equal(decimal.NewFromInt(450)) {
		t.Errorf("expected new booking total 450, got %s", newGot.ExtraIncomeTotal)
	}
}

func TestCreateIncome_Validation(t *testing.T) {
	ctx := context.Background()
	uc := NewCreateIncomeUseCase(newFakeIncomeRepo(), newFakeBookingStore(), nil)

	t.Run("rejects unknown source", func(t *testing.T) {
		_, err := uc.Execute(ctx, CreateIncomeInput{
			HotelID: uuid.New(),
			Source:  entity.IncomeSource("SPA"),
			Amount:  decimal.NewFromInt(100),
			Date:    time.Now(),
		})
		if err == nil {
			t.Fatal("expected error for unknown source")
		}
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := uc.Execute(ctx, CreateIncomeInput{
			HotelID: uuid.New(),
			Source:  entity.IncomeSourceKitchen,
			Amount:  decimal.Zero,
			Date:    time.Now(),
		})
		if err == nil {
			t.Fatal("expected error for zero amount")
		}
	})
}
