package create_admin_reservation

import (
	"context"

	finalizeReservation "github.com/m04kA/SMC-CourtService/internal/usecase/finalize_reservation"
)

type FinalizeReservationUseCase interface {
	ExecuteAdmin(ctx context.Context, req *finalizeReservation.AdminRequest) (*finalizeReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
