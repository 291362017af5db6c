package list_courts

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/service/courts/models"
)

type CourtService interface {
	GetComplexCourts(ctx context.Context, complexID int64) (*models.ComplexCourtsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
