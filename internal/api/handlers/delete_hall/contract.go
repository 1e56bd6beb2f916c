package delete_hall

import "context"

// HallsService контракт сервиса залов
type HallsService interface {
	Deactivate(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// Logger контракт логгера
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
