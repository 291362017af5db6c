package confirm_payment

import "errors"

var (
	// ErrPaymentNotFound возвращается, когда токен шлюза нам неизвестен
	ErrPaymentNotFound = errors.New("confirm_payment: payment not found")

	// ErrPaymentRejected возвращается, когда шлюз отклонил оплату
	// Блок при этом освобождается
	ErrPaymentRejected = errors.New("confirm_payment: payment rejected by gateway")

	// ErrPaymentRefunded возвращается, когда деньги были списаны, но
	// бронирование создать не удалось и средства возвращены
	ErrPaymentRefunded = errors.New("confirm_payment: payment captured but reservation failed, refund issued")

	// ErrRefundFailed возвращается, когда не удался и возврат средств
	// Требует ручного вмешательства
	ErrRefundFailed = errors.New("confirm_payment: refund failed, manual intervention required")

	// ErrGatewayUnavailable возвращается при неизвестном исходе подтверждения
	// Блок остаётся на месте до повторной доставки webhook
	ErrGatewayUnavailable = errors.New("confirm_payment: payment gateway unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_payment: internal error")
)
