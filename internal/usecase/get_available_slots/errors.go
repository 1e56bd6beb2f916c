package get_available_slots

import "errors"

var (
	// ErrValidation невалидные параметры запроса
	ErrValidation = errors.New("get_available_slots.usecase: invalid request data")

	// ErrHallNotFound зал не найден или неактивен
	ErrHallNotFound = errors.New("get_available_slots.usecase: hall not found")

	// ErrInternal внутренняя ошибка
	// Доступность слотов при сбое хранилища не сообщается: слот никогда
	// не объявляется свободным без подтверждения журнала
	ErrInternal = errors.New("get_available_slots.usecase: internal error")
)
