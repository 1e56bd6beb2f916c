package acquire_hold

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
	"github.com/m04kA/BMC-HallBookingService/internal/infra/holdstore"
	hallstore "github.com/m04kA/BMC-HallBookingService/internal/infra/storage/hall"
)

// UseCase удержание слота на время заполнения формы бронирования
//
// Холд - рекомендательный механизм против конфликтов на последнем шаге
// формы. Он не участвует в инварианте занятости: даже удержанный слот
// окончательно занимает только запись в журнале бронирований.
type UseCase struct {
	halls        HallRepo
	reservations ReservationRepo
	holds        HoldStore
	logger       Logger

	stepMinutes int
}

// NewUseCase создает usecase удержания слота
func NewUseCase(halls HallRepo, reservations ReservationRepo, holds HoldStore, logger Logger, stepMinutes int) *UseCase {
	return &UseCase{
		halls:        halls,
		reservations: reservations,
		holds:        holds,
		logger:       logger,
		stepMinutes:  stepMinutes,
	}
}

// Execute удерживает слот и возвращает токен холда
func (uc *UseCase) Execute(ctx context.Context, in *In) (*Out, error) {
	// 1. Валидируем параметры
	if in.HallID <= 0 {
		return nil, fmt.Errorf("%w: hall_id must be positive", ErrValidation)
	}
	if in.CourtNumber <= 0 {
		return nil, fmt.Errorf("%w: court_number must be positive", ErrValidation)
	}
	if in.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrValidation)
	}
	if err := in.StartTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: start_time: %v", ErrValidation, err)
	}

	// 2. Проверяем, что слот существует в сетке зала
	hall, err := uc.halls.GetByID(ctx, in.HallID)
	if err != nil {
		if errors.Is(err, hallstore.ErrHallNotFound) {
			return nil, ErrHallNotFound
		}
		uc.logger.Error("acquire_hold: failed to get hall %d: %v", in.HallID, err)
		return nil, fmt.Errorf("%w: failed to get hall: %v", ErrInternal, err)
	}
	if !hall.IsActive {
		return nil, ErrHallNotFound
	}
	if !domain.IsValidCourt(hall, in.CourtNumber) {
		return nil, fmt.Errorf("%w: court %d is out of range", ErrInvalidSlot, in.CourtNumber)
	}
	if !domain.IsValidSlotTime(hall, in.Date, in.StartTime, uc.stepMinutes) {
		return nil, fmt.Errorf("%w: time %s is not on the slot grid", ErrInvalidSlot, in.StartTime)
	}

	// 3. Сверяемся с журналом: занятый слот удерживать бессмысленно
	date := in.Date
	existing, err := uc.reservations.ListWithFilter(ctx, domain.ReservationsFilter{
		HallID:      in.HallID,
		CourtNumber: &in.CourtNumber,
		StartDate:   &date,
		EndDate:     &date,
	})
	if err != nil {
		uc.logger.Error("acquire_hold: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}
	for _, r := range existing {
		if r.IsActive() && r.StartTime == in.StartTime {
			return nil, ErrSlotTaken
		}
	}

	// 4. Удерживаем слот
	slot := domain.Slot{
		HallID:      in.HallID,
		CourtNumber: in.CourtNumber,
		Date:        in.Date,
		StartTime:   in.StartTime,
	}

	hold, err := uc.holds.Acquire(ctx, slot)
	if err != nil {
		if errors.Is(err, holdstore.ErrSlotHeld) {
			return nil, ErrSlotTaken
		}
		if errors.Is(err, holdstore.ErrUnavailable) {
			uc.logger.Warn("acquire_hold: hold storage unavailable: %v", err)
			return nil, ErrHoldUnavailable
		}
		uc.logger.Error("acquire_hold: failed to acquire hold: %v", err)
		return nil, fmt.Errorf("%w: failed to acquire hold: %v", ErrInternal, err)
	}

	uc.logger.Debug("acquire_hold: held slot: hall %d court %d %s %s",
		in.HallID, in.CourtNumber, in.Date.Format(domain.DateFormat), in.StartTime)

	return &Out{
		Token:     hold.Token,
		ExpiresAt: hold.ExpiresAt,
	}, nil
}
