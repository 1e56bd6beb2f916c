package halls

import "errors"

var (
	// ErrHallNotFound зал не найден
	ErrHallNotFound = errors.New("halls.service: hall not found")

	// ErrValidation невалидные данные зала
	ErrValidation = errors.New("halls.service: invalid hall data")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("halls.service: internal error")
)
