package holdstore

import "errors"

var (
	// ErrSlotHeld возвращается, когда слот уже удерживается другим клиентом
	ErrSlotHeld = errors.New("holdstore: slot is already held")

	// ErrHoldNotFound возвращается, когда холд истек или не существует
	ErrHoldNotFound = errors.New("holdstore: hold not found")

	// ErrUnavailable возвращается при недоступности Redis
	// Холды - UX-механизм: вызывающая сторона может продолжить бронирование,
	// корректность обеспечивает уникальный индекс журнала
	ErrUnavailable = errors.New("holdstore: storage unavailable")
)
