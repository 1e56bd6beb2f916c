package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
	hallstore "github.com/m04kA/BMC-HallBookingService/internal/infra/storage/hall"
	reservstore "github.com/m04kA/BMC-HallBookingService/internal/infra/storage/reservation"
)

// UseCase создание бронирования слота
//
// Корректность при конкурентных запросах обеспечивается на двух уровнях:
// сериализуемая транзакция с блокирующей перечиткой занятости дня (UX -
// конфликт виден до вставки) и частичный уникальный индекс журнала
// (гарантия - при гонке ровно одна вставка проходит).
type UseCase struct {
	halls        HallRepo
	reservations ReservationRepo
	holds        HoldStore
	txManager    TxManager
	metrics      Metrics
	logger       Logger

	stepMinutes      int
	minNoticeMinutes int
	advanceDays      int

	now func() time.Time
}

// NewUseCase создает usecase создания бронирования
// holds может быть nil, если холды отключены
func NewUseCase(
	halls HallRepo,
	reservations ReservationRepo,
	holds HoldStore,
	txManager TxManager,
	metrics Metrics,
	logger Logger,
	stepMinutes, minNoticeMinutes, advanceDays int,
) *UseCase {
	return &UseCase{
		halls:            halls,
		reservations:     reservations,
		holds:            holds,
		txManager:        txManager,
		metrics:          metrics,
		logger:           logger,
		stepMinutes:      stepMinutes,
		minNoticeMinutes: minNoticeMinutes,
		advanceDays:      advanceDays,
		now:              time.Now,
	}
}

// Execute создает бронирование слота со статусом pending
func (uc *UseCase) Execute(ctx context.Context, in *In) (*Out, error) {
	// 1. Валидируем данные формы
	if err := validateIn(in); err != nil {
		return nil, err
	}

	// 2. Получаем конфигурацию зала
	hall, err := uc.halls.GetByID(ctx, in.HallID)
	if err != nil {
		if errors.Is(err, hallstore.ErrHallNotFound) {
			return nil, ErrHallNotFound
		}
		uc.logger.Error("create_reservation: failed to get hall %d: %v", in.HallID, err)
		return nil, fmt.Errorf("%w: failed to get hall: %v", ErrInternal, err)
	}

	if !hall.IsBookable() {
		return nil, ErrHallNotBookable
	}

	// 3. Проверяем, что слот существует в сетке зала
	if !domain.IsValidCourt(hall, in.CourtNumber) {
		return nil, fmt.Errorf("%w: court %d is out of range", ErrInvalidSlot, in.CourtNumber)
	}
	if !domain.IsValidSlotTime(hall, in.BookingDate, in.StartTime, uc.stepMinutes) {
		return nil, fmt.Errorf("%w: time %s is not on the slot grid", ErrInvalidSlot, in.StartTime)
	}

	// 4. Проверяем горизонт бронирования
	if err := validateSlotTiming(in, uc.now(), uc.minNoticeMinutes, uc.advanceDays); err != nil {
		return nil, err
	}

	slot := domain.Slot{
		HallID:      in.HallID,
		CourtNumber: in.CourtNumber,
		Date:        in.BookingDate,
		StartTime:   in.StartTime,
	}

	// 5. Сверяем холд, если клиент его предъявил
	// Истекший или чужой холд не блокирует бронирование: занятость слота
	// решает журнал, холд лишь снижает вероятность конфликта
	if uc.holds != nil && in.HoldToken != nil && *in.HoldToken != "" {
		if err := uc.holds.Validate(ctx, slot, *in.HoldToken); err != nil {
			uc.logger.Warn("create_reservation: hold validation failed for hall %d: %v", in.HallID, err)
		}
	}

	// 6. Собираем бронирование с денормализованными данными зала
	res := &domain.Reservation{
		HallID:          in.HallID,
		CourtNumber:     in.CourtNumber,
		BookingDate:     in.BookingDate,
		StartTime:       in.StartTime,
		DurationMinutes: uc.stepMinutes,
		Status:          domain.StatusPending,
		CustomerName:    strings.TrimSpace(in.CustomerName),
		CustomerPhone:   strings.TrimSpace(in.CustomerPhone),
		CustomerEmail:   in.CustomerEmail,
		HallName:        hall.Name,
		TotalPrice:      hall.SlotPrice(uc.stepMinutes),
		Notes:           in.Notes,
	}

	// 7. Создаем бронирование в сериализуемой транзакции
	var created *domain.Reservation
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Перечитываем занятость дня с блокировкой строк: конфликт
		// обнаруживается до вставки и возвращается как ErrSlotTaken
		taken, err := uc.isSlotTaken(txCtx, slot)
		if err != nil {
			return err
		}
		if taken {
			return reservstore.ErrSlotTaken
		}

		created, err = uc.reservations.Create(txCtx, res)
		return err
	})

	if err != nil {
		if errors.Is(err, reservstore.ErrSlotTaken) {
			uc.metrics.IncSlotConflict()
			uc.logger.Info("create_reservation: slot conflict: hall %d court %d %s %s",
				in.HallID, in.CourtNumber, in.BookingDate.Format(domain.DateFormat), in.StartTime)
			return nil, ErrSlotTaken
		}
		uc.logger.Error("create_reservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	// 8. Снимаем холд: слот теперь занят журналом
	if uc.holds != nil && in.HoldToken != nil && *in.HoldToken != "" {
		if err := uc.holds.Release(ctx, slot, *in.HoldToken); err != nil {
			uc.logger.Warn("create_reservation: failed to release hold: %v", err)
		}
	}

	uc.metrics.IncReservationCreated(in.HallID)
	uc.logger.Info("create_reservation: created reservation %d: hall %d court %d %s %s",
		created.ID, in.HallID, in.CourtNumber, in.BookingDate.Format(domain.DateFormat), in.StartTime)

	return &Out{Reservation: created}, nil
}

// isSlotTaken проверяет занятость слота по активным бронированиям даты
func (uc *UseCase) isSlotTaken(ctx context.Context, slot domain.Slot) (bool, error) {
	date := slot.Date
	existing, err := uc.reservations.ListWithFilter(ctx, domain.ReservationsFilter{
		HallID:      slot.HallID,
		CourtNumber: &slot.CourtNumber,
		StartDate:   &date,
		EndDate:     &date,
	})
	if err != nil {
		return false, err
	}

	for _, r := range existing {
		if r.IsActive() && r.StartTime == slot.StartTime {
			return true, nil
		}
	}

	return false, nil
}
