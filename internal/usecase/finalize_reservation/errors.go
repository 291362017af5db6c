package finalize_reservation

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

var (
	// ErrBlockNotFound возвращается, когда блок не найден и бронирование
	// из него тоже не создавалось
	ErrBlockNotFound = errors.New("finalize_reservation: temporal block not found")

	// ErrBlockExpired возвращается при попытке финализировать истёкший блок
	ErrBlockExpired = errors.New("finalize_reservation: temporal block expired")

	// ErrCourtNotFound возвращается, когда площадка не найдена
	ErrCourtNotFound = errors.New("finalize_reservation: court not found")

	// ErrCourtInactive возвращается, когда площадка выведена из бронирования
	ErrCourtInactive = errors.New("finalize_reservation: court is not active")

	// ErrSlotNotAvailable возвращается, когда интервал занят
	ErrSlotNotAvailable = errors.New("finalize_reservation: slot is not available")

	// ErrInvalidInterval возвращается при некорректном интервале времени
	ErrInvalidInterval = errors.New("finalize_reservation: invalid time interval")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("finalize_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("finalize_reservation: internal error")
)

// ConflictError ошибка занятого слота с деталями конфликта
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
