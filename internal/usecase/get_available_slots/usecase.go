package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
	hallstore "github.com/m04kA/BMC-HallBookingService/internal/infra/storage/hall"
)

// UseCase получение свободных слотов зала на дату
//
// Источник занятости - журнал бронирований. При ошибке журнала usecase
// возвращает ошибку, а не неполный список: перепродажа слота хуже отказа.
type UseCase struct {
	halls        HallRepo
	reservations ReservationRepo
	logger       Logger

	stepMinutes      int
	minNoticeMinutes int

	now func() time.Time
}

// NewUseCase создает usecase получения свободных слотов
func NewUseCase(halls HallRepo, reservations ReservationRepo, logger Logger, stepMinutes, minNoticeMinutes int) *UseCase {
	return &UseCase{
		halls:            halls,
		reservations:     reservations,
		logger:           logger,
		stepMinutes:      stepMinutes,
		minNoticeMinutes: minNoticeMinutes,
		now:              time.Now,
	}
}

// Execute возвращает свободные слоты зала на дату
func (uc *UseCase) Execute(ctx context.Context, in *In) (*Out, error) {
	// 1. Валидируем параметры
	if in.HallID <= 0 {
		return nil, fmt.Errorf("%w: hall_id must be positive", ErrValidation)
	}
	if in.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrValidation)
	}

	// 2. Получаем конфигурацию зала
	hall, err := uc.halls.GetByID(ctx, in.HallID)
	if err != nil {
		if errors.Is(err, hallstore.ErrHallNotFound) {
			return nil, ErrHallNotFound
		}
		uc.logger.Error("get_available_slots: failed to get hall %d: %v", in.HallID, err)
		return nil, fmt.Errorf("%w: failed to get hall: %v", ErrInternal, err)
	}

	// Неактивный зал публично не существует
	if !hall.IsActive {
		return nil, ErrHallNotFound
	}

	// 3. Перечисляем сетку слотов даты
	// Закрытый день дает пустую сетку - это валидный ответ
	slots := domain.EnumerateSlots(hall, in.Date, uc.stepMinutes)
	if len(slots) == 0 {
		return &Out{HallID: in.HallID, Date: in.Date, StepMinutes: uc.stepMinutes, Slots: []domain.Slot{}}, nil
	}

	// 4. Читаем занятость даты из журнала
	date := in.Date
	reservations, err := uc.reservations.ListWithFilter(ctx, domain.ReservationsFilter{
		HallID:    in.HallID,
		StartDate: &date,
		EndDate:   &date,
	})
	if err != nil {
		uc.logger.Error("get_available_slots: failed to list reservations: hall %d date %s: %v",
			in.HallID, in.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	// 5. Вычитаем занятые слоты и слоты ближе минимального уведомления
	free := filterFree(slots, occupiedKeys(reservations))
	free = filterByNotice(free, in.Date, uc.now(), uc.minNoticeMinutes)

	return &Out{
		HallID:      in.HallID,
		Date:        in.Date,
		StepMinutes: uc.stepMinutes,
		Slots:       free,
	}, nil
}
