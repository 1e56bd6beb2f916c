package create_reservation

import (
	"context"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
)

// HallRepo контракт репозитория залов
type HallRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Hall, error)
}

// ReservationRepo контракт журнала бронирований
type ReservationRepo interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	ListWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// HoldStore контракт хранилища холдов слотов
// Холды - рекомендательный механизм: их отсутствие или недоступность
// хранилища не блокируют создание бронирования
type HoldStore interface {
	Validate(ctx context.Context, slot domain.Slot, token string) error
	Release(ctx context.Context, slot domain.Slot, token string) error
}

// TxManager контракт менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics контракт метрик бронирований
type Metrics interface {
	IncReservationCreated(hallID int64)
	IncSlotConflict()
}

// Logger контракт логгера
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
