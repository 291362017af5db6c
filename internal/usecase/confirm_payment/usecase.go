package confirm_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	blockRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/block"
	paymentRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-CourtService/internal/integrations/paymentgateway"
	"github.com/m04kA/SMC-CourtService/internal/usecase/finalize_reservation"
)

// UseCase use case обработки подтверждения оплаты
// Единственная точка, где исход оплаты превращается в судьбу блока:
// успех - финализация в бронирование, провал - освобождение слота
type UseCase struct {
	paymentRepo PaymentRepository
	blockRepo   BlockRepository
	gateway     GatewayClient
	finalizer   Finalizer
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	paymentRepo PaymentRepository,
	blockRepo BlockRepository,
	gateway GatewayClient,
	finalizer Finalizer,
	logger Logger,
) *UseCase {
	return &UseCase{
		paymentRepo: paymentRepo,
		blockRepo:   blockRepo,
		gateway:     gateway,
		finalizer:   finalizer,
		logger:      logger,
	}
}

// Execute выполняет use case подтверждения оплаты
// Идемпотентна по токену: повторная доставка для уже подтверждённой
// транзакции повторно вызывает финализатор, который вернёт то же бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmPayment: token=%s", req.Token)

	if req.Token == "" {
		return nil, fmt.Errorf("%w: token is required", ErrInvalidInput)
	}

	// 1. Находим транзакцию по токену
	payment, err := uc.paymentRepo.GetByToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			uc.logger.Warn("ConfirmPayment: unknown token=%s", req.Token)
			return nil, ErrPaymentNotFound
		}
		uc.logger.Error("ConfirmPayment: failed to get payment by token=%s: %v", req.Token, err)
		return nil, fmt.Errorf("%w: failed to get payment: %v", ErrInternal, err)
	}

	// 2. Повторная доставка для уже закрытой транзакции
	if payment.IsFinal() {
		switch payment.Status {
		case domain.TxApproved:
			uc.logger.Info("ConfirmPayment: replay for approved payment id=%d", payment.ID)
			return uc.finalize(ctx, payment)
		default:
			uc.logger.Warn("ConfirmPayment: replay for payment id=%d in status %s", payment.ID, payment.Status)
			return nil, ErrPaymentRejected
		}
	}

	// 3. Подтверждаем транзакцию в шлюзе
	gwResp, err := uc.gateway.ConfirmTransaction(ctx, req.Token)
	if err != nil {
		// Неизвестный исход: ничего не меняем, блок остаётся, ждём повторной доставки
		if errors.Is(err, paymentgateway.ErrGatewayUnavailable) {
			uc.logger.Error("ConfirmPayment: gateway unavailable for payment id=%d: %v", payment.ID, err)
			return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
		}
		uc.logger.Error("ConfirmPayment: failed to confirm payment id=%d: %v", payment.ID, err)
		return nil, fmt.Errorf("%w: failed to confirm transaction: %v", ErrInternal, err)
	}

	// 4. Оплата отклонена: фиксируем провал и освобождаем слот
	if !gwResp.IsApproved() {
		uc.logger.Warn("ConfirmPayment: payment id=%d rejected, status=%s, response_code=%d",
			payment.ID, gwResp.Status, gwResp.ResponseCode)

		if err := uc.paymentRepo.UpdateStatus(ctx, payment.ID, domain.TxFailed); err != nil {
			uc.logger.Error("ConfirmPayment: failed to mark payment id=%d failed: %v", payment.ID, err)
			return nil, fmt.Errorf("%w: failed to update payment status: %v", ErrInternal, err)
		}

		uc.releaseBlock(ctx, payment.BlockID)
		return nil, ErrPaymentRejected
	}

	// 5. Оплата прошла: фиксируем данные шлюза
	if err := uc.paymentRepo.MarkApproved(ctx, payment.ID, gwResp.AuthorizationCode, gwResp.TransactionDate); err != nil {
		uc.logger.Error("ConfirmPayment: failed to mark payment id=%d approved: %v", payment.ID, err)
		return nil, fmt.Errorf("%w: failed to update payment status: %v", ErrInternal, err)
	}

	payment.Status = domain.TxApproved
	payment.AuthorizationCode = &gwResp.AuthorizationCode

	uc.logger.Info("ConfirmPayment: payment id=%d approved, auth_code=%s", payment.ID, gwResp.AuthorizationCode)

	// 6. Превращаем блок в бронирование
	return uc.finalize(ctx, payment)
}

// finalize вызывает финализатор; при провале финализации после списания
// денег инициирует возврат средств
func (uc *UseCase) finalize(ctx context.Context, payment *domain.Payment) (*Response, error) {
	reservation, err := uc.finalizer.Execute(ctx, &finalize_reservation.Request{
		BlockID:     payment.BlockID,
		PaidPercent: payment.PaidPercent,
	})

	if err != nil {
		uc.logger.Error("ConfirmPayment: finalize failed for payment id=%d, block=%s: %v",
			payment.ID, payment.BlockID, err)
		return nil, uc.refund(ctx, payment, err)
	}

	authCode := ""
	if payment.AuthorizationCode != nil {
		authCode = *payment.AuthorizationCode
	}

	return &Response{
		PaymentID:         payment.ID,
		OrderID:           payment.OrderID,
		Amount:            payment.Amount,
		AuthorizationCode: authCode,
		Reservation:       reservation,
	}, nil
}

// refund возвращает списанные средства после провала финализации
func (uc *UseCase) refund(ctx context.Context, payment *domain.Payment, cause error) error {
	uc.logger.Warn("ConfirmPayment: refunding payment id=%d, amount=%d", payment.ID, payment.Amount)

	if _, err := uc.gateway.RefundTransaction(ctx, payment.Token, payment.Amount); err != nil {
		uc.logger.Error("ConfirmPayment: refund failed for payment id=%d: %v", payment.ID, err)
		return fmt.Errorf("%w: payment id=%d: %v", ErrRefundFailed, payment.ID, err)
	}

	if err := uc.paymentRepo.UpdateStatus(ctx, payment.ID, domain.TxRefunded); err != nil {
		uc.logger.Error("ConfirmPayment: failed to mark payment id=%d refunded: %v", payment.ID, err)
	}

	uc.releaseBlock(ctx, payment.BlockID)

	return fmt.Errorf("%w: %v", ErrPaymentRefunded, cause)
}

// releaseBlock освобождает слот; отсутствие блока не считается ошибкой
func (uc *UseCase) releaseBlock(ctx context.Context, blockID string) {
	if err := uc.blockRepo.Delete(ctx, blockID); err != nil && !errors.Is(err, blockRepo.ErrBlockNotFound) {
		// Не фатально: блок доберёт уборщик по истечении TTL
		uc.logger.Error("ConfirmPayment: failed to release block=%s: %v", blockID, err)
	}
}
