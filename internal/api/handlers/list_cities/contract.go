package list_cities

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/service/courts/models"
)

type CourtService interface {
	ListCities(ctx context.Context) (*models.CityListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
