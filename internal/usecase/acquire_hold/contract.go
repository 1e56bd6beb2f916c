package acquire_hold

import (
	"context"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
	"github.com/m04kA/BMC-HallBookingService/internal/infra/holdstore"
)

// HallRepo контракт репозитория залов
type HallRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Hall, error)
}

// ReservationRepo контракт журнала бронирований
type ReservationRepo interface {
	ListWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// HoldStore контракт хранилища холдов
type HoldStore interface {
	Acquire(ctx context.Context, slot domain.Slot) (*holdstore.Hold, error)
}

// Logger контракт логгера
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
