package posts

import (
	"context"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
)

// PostRepo контракт репозитория записей блога
type PostRepo interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Post, error)
	List(ctx context.Context, filter domain.PostsFilter) ([]*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) (*domain.Post, error)
	IncrementViews(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// Logger контракт логгера
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
