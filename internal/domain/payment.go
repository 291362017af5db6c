package domain

import "time"

// PaymentTxStatus статус транзакции в платёжном шлюзе
type PaymentTxStatus string

const (
	TxInitiated PaymentTxStatus = "initiated"
	TxApproved  PaymentTxStatus = "approved"
	TxFailed    PaymentTxStatus = "failed"
	TxRefunded  PaymentTxStatus = "refunded"
)

// Payment транзакция оплаты, привязанная к временному блоку
// Создается при инициализации оплаты; итоговый статус выставляется
// обработчиком подтверждения по ответу шлюза
type Payment struct {
	ID int64
	// ID временного блока, под который инициирована оплата
	BlockID string
	// Номер заказа, переданный в шлюз
	OrderID string
	// Токен транзакции, выданный шлюзом; по нему же приходит подтверждение
	Token string

	Amount int64
	// Процент от полной стоимости (50 предоплата или 100)
	PaidPercent int

	Status PaymentTxStatus

	// Код авторизации и время проведения из ответа шлюза (после подтверждения)
	AuthorizationCode *string
	TransactionDate   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFinal возвращает true, если транзакция уже получила итоговый статус
func (p *Payment) IsFinal() bool {
	return p.Status != TxInitiated
}
