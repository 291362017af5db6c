package acquire_block

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

var (
	// ErrCourtNotFound возвращается, когда площадка не найдена
	ErrCourtNotFound = errors.New("acquire_block: court not found")

	// ErrCourtInactive возвращается, когда площадка выведена из бронирования
	ErrCourtInactive = errors.New("acquire_block: court is not active")

	// ErrSlotNotAvailable возвращается, когда запрошенный интервал занят
	ErrSlotNotAvailable = errors.New("acquire_block: slot is not available")

	// ErrInvalidInterval возвращается при некорректном интервале времени
	ErrInvalidInterval = errors.New("acquire_block: invalid time interval")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("acquire_block: invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("acquire_block: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("acquire_block: internal error")
)

// ConflictError ошибка занятого слота с деталями конфликта
// Оборачивает ErrSlotNotAvailable, чтобы обработчик мог отдать клиенту,
// чем именно занят интервал
type ConflictError struct {
	Conflict domain.Conflict
}

// Error реализует интерфейс error
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: interval busy by %s %s-%s",
		ErrSlotNotAvailable, e.Conflict.Kind, e.Conflict.StartTime, e.Conflict.EndTime)
}

// Unwrap позволяет errors.Is(err, ErrSlotNotAvailable)
func (e *ConflictError) Unwrap() error {
	return ErrSlotNotAvailable
}
