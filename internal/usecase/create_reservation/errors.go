package create_reservation

import "errors"

var (
	// ErrValidation невалидные данные запроса
	ErrValidation = errors.New("create_reservation.usecase: invalid request data")

	// ErrHallNotFound зал не найден
	ErrHallNotFound = errors.New("create_reservation.usecase: hall not found")

	// ErrHallNotBookable зал не принимает бронирования
	ErrHallNotBookable = errors.New("create_reservation.usecase: hall is not bookable")

	// ErrInvalidSlot слот не существует в сетке зала
	ErrInvalidSlot = errors.New("create_reservation.usecase: invalid slot")

	// ErrSlotInPast слот начинается раньше минимального времени до брони
	ErrSlotInPast = errors.New("create_reservation.usecase: slot is in the past")

	// ErrSlotTaken слот занят активным бронированием
	ErrSlotTaken = errors.New("create_reservation.usecase: slot is already taken")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("create_reservation.usecase: internal error")
)
