package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
	hallstore "github.com/m04kA/BMC-HallBookingService/internal/infra/storage/hall"
	"github.com/m04kA/BMC-HallBookingService/pkg/types"
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
	err          error
}

func (f *fakeReservationRepo) ListWithFilter(_ context.Context, _ domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return f.reservations, f.err
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
		CourtsCount:  2,
		PricePerHour: 1200,
		IsActive:     true,
		WorkingHours: domain.WorkingHours{
			domain.DayGroupWeekdays: "10:00 - 12:00",
			domain.DayGroupWeekend:  "10:00 - 12:00",
		},
	}
}

func newTestUseCase(halls *fakeHallRepo, reservations *fakeReservationRepo) *UseCase {
	uc := NewUseCase(halls, reservations, nopLogger{}, 30, 60)
	// запросы в тестах всегда на будущую дату
	uc.now = func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) }
	return uc
}

func TestExecute_AllSlotsFree(t *testing.T) {
	uc := newTestUseCase(&fakeHallRepo{hall: activeHall()}, &fakeReservationRepo{})

	out, err := uc.Execute(context.Background(), &In{HallID: 1, Date: testDate})

	require.NoError(t, err)
	// 2 корта по 4 слота в окне 10:00-12:00
	require.Len(t, out.Slots, 8)
	assert.Equal(t, 1, out.Slots[0].CourtNumber)
	assert.Equal(t, types.TimeString("10:00"), out.Slots[0].StartTime)
	assert.Equal(t, 2, out.Slots[7].CourtNumber)
	assert.Equal(t, types.TimeString("11:30"), out.Slots[7].StartTime)
}

func TestExecute_OccupiedSlotsExcluded(t *testing.T) {
	reservations := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			{CourtNumber: 1, StartTime: "10:30", Status: domain.StatusConfirmed},
			{CourtNumber: 2, StartTime: "11:00", Status: domain.StatusPending},
		},
	}
	uc := newTestUseCase(&fakeHallRepo{hall: activeHall()}, reservations)

	out, err := uc.Execute(context.Background(), &In{HallID: 1, Date: testDate})

	require.NoError(t, err)
	require.Len(t, out.Slots, 6)
	for _, s := range out.Slots {
		taken := (s.CourtNumber == 1 && s.StartTime == "10:30") ||
			(s.CourtNumber == 2 && s.StartTime == "11:00")
		assert.False(t, taken, "slot %d %s must be excluded", s.CourtNumber, s.StartTime)
	}
}

func TestExecute_CancelledReservationFreesSlot(t *testing.T) {
	reservations := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			{CourtNumber: 1, StartTime: "10:30", Status: domain.StatusCancelled},
		},
	}
	uc := newTestUseCase(&fakeHallRepo{hall: activeHall()}, reservations)

	out, err := uc.Execute(context.Background(), &In{HallID: 1, Date: testDate})

	require.NoError(t, err)
	assert.Len(t, out.Slots, 8)
}

func TestExecute_ClosedDayReturnsEmpty(t *testing.T) {
	hall := activeHall()
	hall.WorkingHours = domain.WorkingHours{domain.DayGroupWeekend: "10:00 - 12:00"}
	uc := newTestUseCase(&fakeHallRepo{hall: hall}, &fakeReservationRepo{})

	out, err := uc.Execute(context.Background(), &In{HallID: 1, Date: testDate})

	require.NoError(t, err)
	require.NotNil(t, out.Slots)
	assert.Empty(t, out.Slots)
}

func TestExecute_HallNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeHallRepo{err: hallstore.ErrHallNotFound}, &fakeReservationRepo{})

	_, err := uc.Execute(context.Background(), &In{HallID: 99, Date: testDate})

	assert.ErrorIs(t, err, ErrHallNotFound)
}

func TestExecute_InactiveHallNotFound(t *testing.T) {
	hall := activeHall()
	hall.IsActive = false
	uc := newTestUseCase(&fakeHallRepo{hall: hall}, &fakeReservationRepo{})

	_, err := uc.Execute(context.Background(), &In{HallID: 1, Date: testDate})

	assert.ErrorIs(t, err, ErrHallNotFound)
}

// При недоступном журнале слоты не объявляются свободными
func TestExecute_LedgerErrorFailsClosed(t *testing.T) {
	reservations := &fakeReservationRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(&fakeHallRepo{hall: activeHall()}, reservations)

	out, err := uc.Execute(context.Background(), &In{HallID: 1, Date: testDate})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_SameDayNoticeFilter(t *testing.T) {
	uc := newTestUseCase(&fakeHallRepo{hall: activeHall()}, &fakeReservationRepo{})
	// сегодня 10:15, минимальное уведомление 60 минут: доступен только 11:30
	uc.now = func() time.Time { return time.Date(2026, 9, 7, 10, 15, 0, 0, time.UTC) }

	out, err := uc.Execute(context.Background(), &In{HallID: 1, Date: testDate})

	require.NoError(t, err)
	require.Len(t, out.Slots, 2)
	for _, s := range out.Slots {
		assert.Equal(t, types.TimeString("11:30"), s.StartTime)
	}
}

func TestExecute_NoticeCutoffCrossingMidnightHidesPastSlots(t *testing.T) {
	uc := newTestUseCase(&fakeHallRepo{hall: activeHall()}, &fakeReservationRepo{})
	// сегодня 23:30, уведомление 60 минут: отсечка уходит на завтра,
	// все слоты сегодняшнего дня уже в прошлом
	uc.now = func() time.Time { return time.Date(2026, 9, 7, 23, 30, 0, 0, time.UTC) }

	out, err := uc.Execute(context.Background(), &In{HallID: 1, Date: testDate})

	require.NoError(t, err)
	require.NotNil(t, out.Slots)
	assert.Empty(t, out.Slots)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeHallRepo{hall: activeHall()}, &fakeReservationRepo{})

	_, err := uc.Execute(context.Background(), &In{HallID: 0, Date: testDate})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = uc.Execute(context.Background(), &In{HallID: 1})
	assert.ErrorIs(t, err, ErrValidation)
}
