package paymentgateway

import "time"

// Статусы транзакции в ответах шлюза
const (
	StatusInitialized = "INITIALIZED"
	StatusAuthorized  = "AUTHORIZED"
	StatusFailed      = "FAILED"
	StatusReversed    = "REVERSED"
	StatusNullified   = "NULLIFIED"
)

// CreateTransactionRequest запрос на создание транзакции в шлюзе
type CreateTransactionRequest struct {
	BuyOrder  string `json:"buy_order"`
	SessionID string `json:"session_id"`
	Amount    int64  `json:"amount"`
	ReturnURL string `json:"return_url"`
}

// CreateTransactionResponse ответ шлюза на создание транзакции
// Token используется для подтверждения, URL - для редиректа клиента на оплату
type CreateTransactionResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

// ConfirmTransactionResponse ответ шлюза на подтверждение транзакции
type ConfirmTransactionResponse struct {
	BuyOrder          string    `json:"buy_order"`
	SessionID         string    `json:"session_id"`
	Status            string    `json:"status"`
	Amount            int64     `json:"amount"`
	AuthorizationCode string    `json:"authorization_code"`
	ResponseCode      int       `json:"response_code"`
	TransactionDate   time.Time `json:"transaction_date"`
}

// IsApproved возвращает true, если оплата прошла успешно
// Шлюз считает платёж успешным при статусе AUTHORIZED и нулевом коде ответа
func (r *ConfirmTransactionResponse) IsApproved() bool {
	return r.Status == StatusAuthorized && r.ResponseCode == 0
}

// RefundRequest запрос на возврат средств
type RefundRequest struct {
	Amount int64 `json:"amount"`
}

// RefundResponse ответ шлюза на возврат средств
type RefundResponse struct {
	Type   string `json:"type"`
	Status string `json:"status"`
	Amount int64  `json:"amount"`
}

// ErrorResponse модель ошибки от шлюза
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
