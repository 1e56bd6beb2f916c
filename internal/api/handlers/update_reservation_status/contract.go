package update_reservation_status

import (
	"context"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
)

// ReservationsService контракт сервиса бронирований
type ReservationsService interface {
	UpdateStatus(ctx context.Context, id int64, next domain.ReservationStatus) (*domain.Reservation, error)
}

// Logger контракт логгера
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
