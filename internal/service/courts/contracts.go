package courts

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// CourtRepository интерфейс репозитория справочника площадок
type CourtRepository interface {
	ListByComplex(ctx context.Context, complexID int64) ([]*domain.Court, error)
	GetComplexByID(ctx context.Context, id int64) (*domain.Complex, error)
	ListCities(ctx context.Context) ([]*domain.City, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
