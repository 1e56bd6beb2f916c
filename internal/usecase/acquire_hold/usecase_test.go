package acquire_hold

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
	"github.com/m04kA/BMC-HallBookingService/internal/infra/holdstore"
	hallstore "github.com/m04kA/BMC-HallBookingService/internal/infra/storage/hall"
)

// понедельник
var testDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

type fakeHallRepo struct {
	hall *domain.Hall
	err  error
}

func (f *fakeHallRepo) GetByID(_ context.Context, _ int64) (*domain.Hall, error) {
	return f.hall, f.err
}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
}

func (f *fakeReservationRepo) ListWithFilter(_ context.Context, _ domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return f.reservations, nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func activeHall() *domain.Hall {
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

func newTestUseCase(t *testing.T, halls *fakeHallRepo, reservations *fakeReservationRepo) *UseCase {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	holds := holdstore.NewStore(client, 5*time.Minute)
	return NewUseCase(halls, reservations, holds, nopLogger{}, 30)
}

func validIn() *In {
	return &In{HallID: 1, CourtNumber: 2, Date: testDate, StartTime: "10:00"}
}

func TestExecute_AcquiresHold(t *testing.T) {
	uc := newTestUseCase(t, &fakeHallRepo{hall: activeHall()}, &fakeReservationRepo{})

	out, err := uc.Execute(context.Background(), validIn())

	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.True(t, out.ExpiresAt.After(time.Now()))
}

func TestExecute_SecondHoldRejected(t *testing.T) {
	uc := newTestUseCase(t, &fakeHallRepo{hall: activeHall()}, &fakeReservationRepo{})

	_, err := uc.Execute(context.Background(), validIn())
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), validIn())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_ReservedSlotRejected(t *testing.T) {
	reservations := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			{CourtNumber: 2, StartTime: "10:00", Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(t, &fakeHallRepo{hall: activeHall()}, reservations)

	_, err := uc.Execute(context.Background(), validIn())

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_InvalidSlot(t *testing.T) {
	uc := newTestUseCase(t, &fakeHallRepo{hall: activeHall()}, &fakeReservationRepo{})

	in := validIn()
	in.CourtNumber = 7
	_, err := uc.Execute(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidSlot)

	in = validIn()
	in.StartTime = "04:00"
	_, err = uc.Execute(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestExecute_HallNotFound(t *testing.T) {
	uc := newTestUseCase(t, &fakeHallRepo{err: hallstore.ErrHallNotFound}, &fakeReservationRepo{})

	_, err := uc.Execute(context.Background(), validIn())
	assert.ErrorIs(t, err, ErrHallNotFound)
}

func TestExecute_UnavailableStorage(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	holds := holdstore.NewStore(client, time.Minute)

	uc := NewUseCase(&fakeHallRepo{hall: activeHall()}, &fakeReservationRepo{}, holds, nopLogger{}, 30)

	mr.Close()

	_, err := uc.Execute(context.Background(), validIn())
	assert.ErrorIs(t, err, ErrHoldUnavailable)
}
