package finalize_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// CourtRepository интерфейс репозитория площадок
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetByBlockID(ctx context.Context, blockID string) (*domain.Reservation, error)
	ListActiveByCourtDate(ctx context.Context, courtID int64, date time.Time) ([]*domain.Reservation, error)
}

// BlockRepository интерфейс репозитория временных блоков
type BlockRepository interface {
	GetByID(ctx context.Context, id string) (*domain.TemporalBlock, error)
	Delete(ctx context.Context, id string) error
	ListLiveByCourtDate(ctx context.Context, courtID int64, date time.Time, now time.Time) ([]*domain.TemporalBlock, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
