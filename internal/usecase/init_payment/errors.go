package init_payment

import "errors"

var (
	// ErrBlockNotFound возвращается, когда блок не найден
	ErrBlockNotFound = errors.New("init_payment: temporal block not found")

	// ErrBlockExpired возвращается при попытке оплатить истёкший блок
	ErrBlockExpired = errors.New("init_payment: temporal block expired")

	// ErrGatewayUnavailable возвращается, когда платёжный шлюз недоступен
	ErrGatewayUnavailable = errors.New("init_payment: payment gateway unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("init_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("init_payment: internal error")
)
