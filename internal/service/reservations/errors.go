package reservations

import "errors"

var (
	// ErrReservationNotFound бронирование не найдено
	ErrReservationNotFound = errors.New("reservations.service: reservation not found")

	// ErrInvalidTransition недопустимый переход статуса
	ErrInvalidTransition = errors.New("reservations.service: invalid status transition")

	// ErrValidation невалидные параметры запроса
	ErrValidation = errors.New("reservations.service: invalid request data")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("reservations.service: internal error")
)
