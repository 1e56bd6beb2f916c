package create_hall

import (
	"context"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
)

// HallsService контракт сервиса залов
type HallsService interface {
	Create(ctx context.Context, hall *domain.Hall) (*domain.Hall, error)
}

// Logger контракт логгера
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
