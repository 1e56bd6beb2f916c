package posts

import "errors"

var (
	// ErrPostNotFound запись не найдена
	ErrPostNotFound = errors.New("posts.service: post not found")

	// ErrSlugTaken slug уже используется другой записью
	ErrSlugTaken = errors.New("posts.service: slug is already taken")

	// ErrValidation невалидные данные записи
	ErrValidation = errors.New("posts.service: invalid post data")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("posts.service: internal error")
)
