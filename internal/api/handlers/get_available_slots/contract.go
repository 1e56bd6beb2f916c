package get_available_slots

import (
	"context"

	uc "github.com/m04kA/BMC-HallBookingService/internal/usecase/get_available_slots"
)

// UseCase контракт usecase получения свободных слотов
type UseCase interface {
	Execute(ctx context.Context, in *uc.In) (*uc.Out, error)
}

// Logger контракт логгера
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
