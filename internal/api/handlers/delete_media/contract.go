package delete_media

import "context"

// MediaStore контракт хранилища изображений
type MediaStore interface {
	Delete(ctx context.Context, objectName string) error
}

// Logger контракт логгера
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
