package create_block

import (
	"context"

	acquireBlock "github.com/m04kA/SMC-CourtService/internal/usecase/acquire_block"
)

type AcquireBlockUseCase interface {
	Execute(ctx context.Context, req *acquireBlock.Request) (*acquireBlock.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
