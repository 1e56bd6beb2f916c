package hall

import "errors"

var (
	// ErrHallNotFound возвращается, когда зал не найден
	ErrHallNotFound = errors.New("hall.repository: hall not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("hall.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("hall.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("hall.repository: failed to scan row")

	// ErrEncodeJSON возвращается при ошибке сериализации JSONB колонок
	ErrEncodeJSON = errors.New("hall.repository: failed to encode json column")
)
