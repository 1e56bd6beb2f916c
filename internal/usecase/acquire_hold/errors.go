package acquire_hold

import "errors"

var (
	// ErrValidation невалидные параметры запроса
	ErrValidation = errors.New("acquire_hold.usecase: invalid request data")

	// ErrHallNotFound зал не найден или неактивен
	ErrHallNotFound = errors.New("acquire_hold.usecase: hall not found")

	// ErrInvalidSlot слот не существует в сетке зала
	ErrInvalidSlot = errors.New("acquire_hold.usecase: invalid slot")

	// ErrSlotTaken слот занят бронированием или холдом другого клиента
	ErrSlotTaken = errors.New("acquire_hold.usecase: slot is not available")

	// ErrHoldUnavailable хранилище холдов недоступно
	// Клиент может продолжить бронирование без холда
	ErrHoldUnavailable = errors.New("acquire_hold.usecase: hold storage unavailable")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("acquire_hold.usecase: internal error")
)
