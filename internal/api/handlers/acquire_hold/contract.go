package acquire_hold

import (
	"context"

	uc "github.com/m04kA/BMC-HallBookingService/internal/usecase/acquire_hold"
)

// UseCase контракт usecase удержания слота
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
