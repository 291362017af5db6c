package confirm_payment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/internal/integrations/paymentgateway"
	"github.com/m04kA/SMC-CourtService/internal/usecase/finalize_reservation"
)

// PaymentRepository интерфейс репозитория транзакций оплаты
type PaymentRepository interface {
	GetByToken(ctx context.Context, token string) (*domain.Payment, error)
	MarkApproved(ctx context.Context, id int64, authCode string, txDate time.Time) error
	UpdateStatus(ctx context.Context, id int64, status domain.PaymentTxStatus) error
}

// BlockRepository интерфейс репозитория временных блоков
type BlockRepository interface {
	Delete(ctx context.Context, id string) error
}

// GatewayClient интерфейс клиента платёжного шлюза
type GatewayClient interface {
	ConfirmTransaction(ctx context.Context, token string) (*paymentgateway.ConfirmTransactionResponse, error)
	RefundTransaction(ctx context.Context, token string, amount int64) (*paymentgateway.RefundResponse, error)
}

// Finalizer интерфейс финализатора бронирования
type Finalizer interface {
	Execute(ctx context.Context, req *finalize_reservation.Request) (*finalize_reservation.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
