package list_posts

import (
	"context"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
)

// PostsService контракт сервиса записей блога
type PostsService interface {
	List(ctx context.Context, filter domain.PostsFilter) ([]*domain.Post, error)
}

// Logger контракт логгера
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
