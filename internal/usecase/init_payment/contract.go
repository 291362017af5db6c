package init_payment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/internal/integrations/paymentgateway"
)

// BlockRepository интерфейс репозитория временных блоков
type BlockRepository interface {
	GetByID(ctx context.Context, id string) (*domain.TemporalBlock, error)
}

// PaymentRepository интерфейс репозитория транзакций оплаты
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
}

// GatewayClient интерфейс клиента платёжного шлюза
type GatewayClient interface {
	CreateTransaction(ctx context.Context, req *paymentgateway.CreateTransactionRequest) (*paymentgateway.CreateTransactionResponse, error)
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
