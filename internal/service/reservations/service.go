package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
	reservstore "github.com/m04kA/BMC-HallBookingService/internal/infra/storage/reservation"
)

// Service управление жизненным циклом бронирований
// Создание бронирований живет в отдельном usecase: там транзакционная
// логика занятости слота. Здесь операции над уже существующими записями.
type Service struct {
	repo   ReservationRepo
	logger Logger
}

// NewService создает сервис бронирований
func NewService(repo ReservationRepo, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// GetByID возвращает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservstore.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("reservations: failed to get reservation %d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}
	return res, nil
}

// ListByHall возвращает бронирования зала с фильтрацией
func (s *Service) ListByHall(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	if filter.HallID <= 0 {
		return nil, fmt.Errorf("%w: hall_id must be positive", ErrValidation)
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, fmt.Errorf("%w: end_date must not precede start_date", ErrValidation)
	}
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *filter.Status)
	}

	list, err := s.repo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("reservations: failed to list reservations: hall %d: %v", filter.HallID, err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}
	return list, nil
}

// UpdateStatus переводит бронирование в новый статус
// Допустимые переходы: pending→confirmed, pending→cancelled,
// confirmed→cancelled. Остальные отклоняются с ErrInvalidTransition.
func (s *Service) UpdateStatus(ctx context.Context, id int64, next domain.ReservationStatus) (*domain.Reservation, error) {
	if !next.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, next)
	}

	res, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !res.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s → %s", ErrInvalidTransition, res.Status, next)
	}

	// Отмена идет через Cancel: проставляется время и причина
	if next == domain.StatusCancelled {
		return s.Cancel(ctx, id, "")
	}

	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		if errors.Is(err, reservstore.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("reservations: failed to update status of reservation %d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	s.logger.Info("reservations: reservation %d: %s → %s", id, res.Status, next)
	return s.GetByID(ctx, id)
}

// Cancel отменяет бронирование с указанием причины
// После отмены слот освобождается для новых бронирований
func (s *Service) Cancel(ctx context.Context, id int64, reason string) (*domain.Reservation, error) {
	reason = strings.TrimSpace(reason)
	if len([]rune(reason)) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason must not exceed %d characters",
			ErrValidation, domain.MaxCancellationReasonLength)
	}

	res, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !res.CanBeCancelled() {
		return nil, fmt.Errorf("%w: reservation %d is already %s", ErrInvalidTransition, id, res.Status)
	}

	if err := s.repo.Cancel(ctx, id, reason); err != nil {
		if errors.Is(err, reservstore.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("reservations: failed to cancel reservation %d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to cancel reservation: %v", ErrInternal, err)
	}

	s.logger.Info("reservations: cancelled reservation %d", id)
	return s.GetByID(ctx, id)
}

// Delete физически удаляет бронирование
// Запись исчезает из журнала и её слот освобождается
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, reservstore.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("reservations: failed to delete reservation %d: %v", id, err)
		return fmt.Errorf("%w: failed to delete reservation: %v", ErrInternal, err)
	}

	s.logger.Info("reservations: deleted reservation %d", id)
	return nil
}
