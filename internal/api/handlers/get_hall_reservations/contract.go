package get_hall_reservations

import (
	"context"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
)

// ReservationsService контракт сервиса бронирований
type ReservationsService interface {
	ListByHall(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// Logger контракт логгера
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
