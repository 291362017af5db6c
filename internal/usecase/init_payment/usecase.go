package init_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	blockRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/block"
	"github.com/m04kA/SMC-CourtService/internal/integrations/paymentgateway"
)

// UseCase use case для инициализации оплаты временного блока
type UseCase struct {
	blockRepo    BlockRepository
	paymentRepo  PaymentRepository
	gateway      GatewayClient
	timeProvider TimeProvider
	returnURL    string
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// returnURL - адрес, на который шлюз вернёт клиента после оплаты
func NewUseCase(
	blockRepo BlockRepository,
	paymentRepo PaymentRepository,
	gateway GatewayClient,
	returnURL string,
	logger Logger,
) *UseCase {
	return &UseCase{
		blockRepo:    blockRepo,
		paymentRepo:  paymentRepo,
		gateway:      gateway,
		timeProvider: &RealTimeProvider{},
		returnURL:    returnURL,
		logger:       logger,
	}
}

// Execute выполняет use case инициализации оплаты
// Создает транзакцию в шлюзе и регистрирует её у нас со статусом initiated.
// Итоговый статус выставит обработчик подтверждения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("InitPayment: block=%s, paid_percent=%d", req.BlockID, req.PaidPercent)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("InitPayment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем блок
	block, err := uc.blockRepo.GetByID(ctx, req.BlockID)
	if err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			uc.logger.Warn("InitPayment: block=%s not found", req.BlockID)
			return nil, ErrBlockNotFound
		}
		uc.logger.Error("InitPayment: failed to get block=%s: %v", req.BlockID, err)
		return nil, fmt.Errorf("%w: failed to get block: %v", ErrInternal, err)
	}

	// 3. Истёкший блок оплачивать нельзя
	if block.IsExpired(uc.timeProvider.Now()) {
		uc.logger.Warn("InitPayment: block=%s expired at %s", req.BlockID, block.ExpiresAt)
		return nil, ErrBlockExpired
	}

	amount := block.TotalPrice * int64(req.PaidPercent) / 100
	orderID := uuid.NewString()

	// 4. Создаем транзакцию в шлюзе
	gwResp, err := uc.gateway.CreateTransaction(ctx, &paymentgateway.CreateTransactionRequest{
		BuyOrder:  orderID,
		SessionID: block.SessionID,
		Amount:    amount,
		ReturnURL: uc.returnURL,
	})
	if err != nil {
		if errors.Is(err, paymentgateway.ErrGatewayUnavailable) {
			uc.logger.Error("InitPayment: gateway unavailable for block=%s: %v", req.BlockID, err)
			return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
		}
		uc.logger.Error("InitPayment: failed to create gateway transaction for block=%s: %v", req.BlockID, err)
		return nil, fmt.Errorf("%w: failed to create gateway transaction: %v", ErrInternal, err)
	}

	// 5. Регистрируем транзакцию у нас
	payment, err := uc.paymentRepo.Create(ctx, &domain.Payment{
		BlockID:     block.ID,
		OrderID:     orderID,
		Token:       gwResp.Token,
		Amount:      amount,
		PaidPercent: req.PaidPercent,
		Status:      domain.TxInitiated,
	})
	if err != nil {
		uc.logger.Error("InitPayment: failed to store payment for block=%s: %v", req.BlockID, err)
		return nil, fmt.Errorf("%w: failed to store payment: %v", ErrInternal, err)
	}

	uc.logger.Info("InitPayment: successfully initiated payment id=%d, order=%s, block=%s",
		payment.ID, orderID, req.BlockID)

	return &Response{
		PaymentID: payment.ID,
		OrderID:   payment.OrderID,
		Token:     payment.Token,
		URL:       gwResp.URL,
		Amount:    payment.Amount,
	}, nil
}
