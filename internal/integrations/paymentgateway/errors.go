package paymentgateway

import "errors"

var (
	// ErrTransactionNotFound возвращается, когда шлюз не знает указанный токен
	ErrTransactionNotFound = errors.New("paymentgateway client: transaction not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentgateway client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза
	ErrInvalidResponse = errors.New("paymentgateway client: invalid response")

	// ErrGatewayUnavailable возвращается, когда шлюз недоступен (timeout, сеть)
	// Подтверждение нельзя считать ни успешным, ни провальным - вызывающий
	// должен оставить блок на месте и дождаться повторной доставки webhook
	ErrGatewayUnavailable = errors.New("paymentgateway client: gateway unavailable")
)
