package create_reservation

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
	hallstore "github.com/m04kA/BMC-HallBookingService/internal/infra/storage/hall"
	reservstore "github.com/m04kA/BMC-HallBookingService/internal/infra/storage/reservation"
	"github.com/m04kA/BMC-HallBookingService/pkg/ptr"
	"github.com/m04kA/BMC-HallBookingService/pkg/types"
)

// понедельник
var testDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

type fakeHallRepo struct {
	hall *domain.Hall
	err  error
}

func (f *fakeHallRepo) GetByID(_ context.Context, _ int64) (*domain.Hall, error) {
	return f.hall, f.err
}

// fakeLedger журнал в памяти: уникальность активного слота обеспечивается
// мьютексом так же безусловно, как частичным индексом в PostgreSQL
type fakeLedger struct {
	mu     sync.Mutex
	nextID int64
	rows   []*domain.Reservation
}

func (f *fakeLedger) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.rows {
		if existing.IsActive() &&
			existing.HallID == res.HallID &&
			existing.CourtNumber == res.CourtNumber &&
			existing.BookingDate.Equal(res.BookingDate) &&
			existing.StartTime == res.StartTime {
			return nil, reservstore.ErrSlotTaken
		}
	}

	f.nextID++
	stored := *res
	stored.ID = f.nextID
	f.rows = append(f.rows, &stored)

	created := stored
	return &created, nil
}

func (f *fakeLedger) ListWithFilter(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]*domain.Reservation, 0)
	for _, r := range f.rows {
		if r.HallID != filter.HallID {
			continue
		}
		if filter.CourtNumber != nil && r.CourtNumber != *filter.CourtNumber {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

// fakeTxManager выполняет функцию без транзакции: в тестах атомарность
// обеспечивает мьютекс fakeLedger
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeMetrics struct {
	mu        sync.Mutex
	created   int
	conflicts int
}

func (f *fakeMetrics) IncReservationCreated(int64) {
	f.mu.Lock()
	f.created++
	f.mu.Unlock()
}

func (f *fakeMetrics) IncSlotConflict() {
	f.mu.Lock()
	f.conflicts++
	f.mu.Unlock()
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func bookableHall() *domain.Hall {
	return &domain.Hall{
		ID:           1,
		Name:         "Зал на Ленина",
		CourtsCount:  3,
		PricePerHour: 1200,
		IsActive:     true,
		WorkingHours: domain.WorkingHours{
			domain.DayGroupWeekdays: "06:00 - 23:00",
			domain.DayGroupWeekend:  "08:00 - 22:00",
		},
	}
}

func validIn() *In {
	return &In{
		HallID:        1,
		CourtNumber:   2,
		BookingDate:   testDate,
		StartTime:     "10:00",
		CustomerName:  "Иван Петров",
		CustomerPhone: "+79001234567",
	}
}

func newTestUseCase(halls *fakeHallRepo, ledger *fakeLedger, m *fakeMetrics) *UseCase {
	uc := NewUseCase(halls, ledger, nil, fakeTxManager{}, m, nopLogger{}, 30, 60, 0)
	uc.now = func() time.Time { return testNow }
	return uc
}

func TestExecute_CreatesPendingReservation(t *testing.T) {
	ledger := &fakeLedger{}
	m := &fakeMetrics{}
	uc := newTestUseCase(&fakeHallRepo{hall: bookableHall()}, ledger, m)

	out, err := uc.Execute(context.Background(), validIn())

	require.NoError(t, err)
	res := out.Reservation
	assert.Equal(t, domain.StatusPending, res.Status)
	assert.Equal(t, "Зал на Ленина", res.HallName)
	assert.Equal(t, types.TimeString("10:00"), res.StartTime)
	assert.InDelta(t, 600.0, res.TotalPrice, 0.001)
	assert.Equal(t, 30, res.DurationMinutes)
	assert.NotZero(t, res.ID)
	assert.Equal(t, 1, m.created)
}

func TestExecute_SlotConflict(t *testing.T) {
	ledger := &fakeLedger{}
	m := &fakeMetrics{}
	uc := newTestUseCase(&fakeHallRepo{hall: bookableHall()}, ledger, m)

	_, err := uc.Execute(context.Background(), validIn())
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), validIn())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, 1, m.conflicts)
}

func TestExecute_CancelledReservationDoesNotBlock(t *testing.T) {
	ledger := &fakeLedger{}
	uc := newTestUseCase(&fakeHallRepo{hall: bookableHall()}, ledger, &fakeMetrics{})

	out, err := uc.Execute(context.Background(), validIn())
	require.NoError(t, err)

	// отменяем напрямую в журнале
	ledger.mu.Lock()
	ledger.rows[0].Status = domain.StatusCancelled
	ledger.mu.Unlock()
	_ = out

	out, err = uc.Execute(context.Background(), validIn())
	require.NoError(t, err)
	assert.NotZero(t, out.Reservation.ID)
}

func TestExecute_HallNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeHallRepo{err: hallstore.ErrHallNotFound}, &fakeLedger{}, &fakeMetrics{})

	_, err := uc.Execute(context.Background(), validIn())

	assert.ErrorIs(t, err, ErrHallNotFound)
}

func TestExecute_HallNotBookable(t *testing.T) {
	hall := bookableHall()
	hall.IsActive = false
	uc := newTestUseCase(&fakeHallRepo{hall: hall}, &fakeLedger{}, &fakeMetrics{})

	_, err := uc.Execute(context.Background(), validIn())

	assert.ErrorIs(t, err, ErrHallNotBookable)
}

func TestExecute_InvalidSlot(t *testing.T) {
	uc := newTestUseCase(&fakeHallRepo{hall: bookableHall()}, &fakeLedger{}, &fakeMetrics{})

	in := validIn()
	in.CourtNumber = 4
	_, err := uc.Execute(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidSlot)

	in = validIn()
	in.StartTime = "10:15"
	_, err = uc.Execute(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidSlot)

	in = validIn()
	in.StartTime = "23:00"
	_, err = uc.Execute(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestExecute_SlotInPast(t *testing.T) {
	uc := newTestUseCase(&fakeHallRepo{hall: bookableHall()}, &fakeLedger{}, &fakeMetrics{})
	// до слота 10:00 остается меньше часа
	uc.now = func() time.Time { return time.Date(2026, 9, 7, 9, 30, 0, 0, time.UTC) }

	_, err := uc.Execute(context.Background(), validIn())

	assert.ErrorIs(t, err, ErrSlotInPast)
}

func TestExecute_CustomerValidation(t *testing.T) {
	uc := newTestUseCase(&fakeHallRepo{hall: bookableHall()}, &fakeLedger{}, &fakeMetrics{})

	in := validIn()
	in.CustomerName = "И"
	_, err := uc.Execute(context.Background(), in)
	assert.ErrorIs(t, err, ErrValidation)

	in = validIn()
	in.CustomerPhone = "123"
	_, err = uc.Execute(context.Background(), in)
	assert.ErrorIs(t, err, ErrValidation)

	in = validIn()
	in.CustomerEmail = ptr.Ptr("не-почта")
	_, err = uc.Execute(context.Background(), in)
	assert.ErrorIs(t, err, ErrValidation)
}

// При гонке за один слот побеждает ровно один запрос
func TestExecute_ConcurrentRequestsOneWinner(t *testing.T) {
	ledger := &fakeLedger{}
	m := &fakeMetrics{}
	uc := newTestUseCase(&fakeHallRepo{hall: bookableHall()}, ledger, m)

	const attempts = 10

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := validIn()
			in.CustomerName = fmt.Sprintf("Клиент %d", i)
			_, errs[i] = uc.Execute(context.Background(), in)
		}(i)
	}
	wg.Wait()

	success := 0
	for _, err := range errs {
		if err == nil {
			success++
		} else {
			assert.ErrorIs(t, err, ErrSlotTaken)
		}
	}
	assert.Equal(t, 1, success)
	assert.Len(t, ledger.rows, 1)
}
