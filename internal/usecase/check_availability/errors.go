package check_availability

import "errors"

var (
	// ErrCourtNotFound возвращается, когда площадка не найдена
	ErrCourtNotFound = errors.New("check_availability: court not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
