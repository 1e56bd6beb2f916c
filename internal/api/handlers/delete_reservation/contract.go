package delete_reservation

import "context"

// ReservationsService контракт сервиса бронирований
type ReservationsService interface {
	Delete(ctx context.Context, id int64) error
}

// Logger контракт логгера
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
