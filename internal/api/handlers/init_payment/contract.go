package init_payment

import (
	"context"

	initPayment "github.com/m04kA/SMC-CourtService/internal/usecase/init_payment"
)

type InitPaymentUseCase interface {
	Execute(ctx context.Context, req *initPayment.Request) (*initPayment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
