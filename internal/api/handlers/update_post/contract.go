package update_post

import (
	"context"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
)

// PostsService контракт сервиса записей блога
type PostsService interface {
	Update(ctx context.Context, post *domain.Post) (*domain.Post, error)
}

// Logger контракт логгера
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
