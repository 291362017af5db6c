package court

import "errors"

var (
	// ErrCourtNotFound возвращается, когда площадка не найдена
	ErrCourtNotFound = errors.New("court.repository: court not found")

	// ErrComplexNotFound возвращается, когда комплекс не найден
	ErrComplexNotFound = errors.New("court.repository: complex not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("court.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("court.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("court.repository: failed to scan row")
)
