package payment

import "errors"

var (
	// ErrPaymentNotFound возвращается, когда транзакция не найдена
	ErrPaymentNotFound = errors.New("payment.repository: payment not found")

	// ErrDuplicateToken возвращается при повторной регистрации токена шлюза
	ErrDuplicateToken = errors.New("payment.repository: duplicate gateway token")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("payment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("payment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("payment.repository: failed to scan row")
)
