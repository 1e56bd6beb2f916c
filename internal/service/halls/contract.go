package halls

import (
	"context"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
)

// HallRepo контракт репозитория залов
type HallRepo interface {
	Create(ctx context.Context, hall *domain.Hall) (*domain.Hall, error)
	GetByID(ctx context.Context, id int64) (*domain.Hall, error)
	List(ctx context.Context, filter domain.HallsFilter) ([]*domain.Hall, error)
	Update(ctx context.Context, hall *domain.Hall) (*domain.Hall, error)
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
}

// Logger контракт логгера
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
