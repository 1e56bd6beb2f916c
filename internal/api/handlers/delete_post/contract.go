package delete_post

import "context"

// PostsService контракт сервиса записей блога
type PostsService interface {
	Delete(ctx context.Context, id int64) error
}

// Logger контракт логгера
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
