package halls

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
	hallstore "github.com/m04kA/BMC-HallBookingService/internal/infra/storage/hall"
)

// Service управление каталогом залов
type Service struct {
	repo   HallRepo
	logger Logger
}

// NewService создает сервис залов
func NewService(repo HallRepo, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create создает новый зал
func (s *Service) Create(ctx context.Context, hall *domain.Hall) (*domain.Hall, error) {
	if err := validateHall(hall); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, hall)
	if err != nil {
		s.logger.Error("halls: failed to create hall: %v", err)
		return nil, fmt.Errorf("%w: failed to create hall: %v", ErrInternal, err)
	}

	s.logger.Info("halls: created hall %d (%s)", created.ID, created.Name)
	return created, nil
}

// GetByID возвращает зал по ID
// При onlyActive неактивный зал считается несуществующим (публичный каталог)
func (s *Service) GetByID(ctx context.Context, id int64, onlyActive bool) (*domain.Hall, error) {
	hall, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, hallstore.ErrHallNotFound) {
			return nil, ErrHallNotFound
		}
		s.logger.Error("halls: failed to get hall %d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get hall: %v", ErrInternal, err)
	}

	if onlyActive && !hall.IsActive {
		return nil, ErrHallNotFound
	}

	return hall, nil
}

// List возвращает список залов
func (s *Service) List(ctx context.Context, filter domain.HallsFilter) ([]*domain.Hall, error) {
	halls, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("halls: failed to list halls: %v", err)
		return nil, fmt.Errorf("%w: failed to list halls: %v", ErrInternal, err)
	}
	return halls, nil
}

// Update обновляет зал целиком
func (s *Service) Update(ctx context.Context, hall *domain.Hall) (*domain.Hall, error) {
	if hall.ID <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrValidation)
	}
	if err := validateHall(hall); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, hall)
	if err != nil {
		if errors.Is(err, hallstore.ErrHallNotFound) {
			return nil, ErrHallNotFound
		}
		s.logger.Error("halls: failed to update hall %d: %v", hall.ID, err)
		return nil, fmt.Errorf("%w: failed to update hall: %v", ErrInternal, err)
	}

	s.logger.Info("halls: updated hall %d (%s)", updated.ID, updated.Name)
	return updated, nil
}

// Deactivate убирает зал из каталога бронирования
// Зал не удаляется: история бронирований остается связной
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	err := s.repo.SetActive(ctx, id, false)
	if err != nil {
		if errors.Is(err, hallstore.ErrHallNotFound) {
			return ErrHallNotFound
		}
		s.logger.Error("halls: failed to deactivate hall %d: %v", id, err)
		return fmt.Errorf("%w: failed to deactivate hall: %v", ErrInternal, err)
	}

	s.logger.Info("halls: deactivated hall %d", id)
	return nil
}

// Delete физически удаляет зал вместе с его бронированиями
// Обычный путь вывода зала из каталога - Deactivate
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, hallstore.ErrHallNotFound) {
			return ErrHallNotFound
		}
		s.logger.Error("halls: failed to delete hall %d: %v", id, err)
		return fmt.Errorf("%w: failed to delete hall: %v", ErrInternal, err)
	}

	s.logger.Info("halls: deleted hall %d", id)
	return nil
}
