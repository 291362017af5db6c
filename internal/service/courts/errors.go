package courts

import "errors"

var (
	// ErrComplexNotFound возвращается, когда комплекс не найден
	ErrComplexNotFound = errors.New("complex not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
