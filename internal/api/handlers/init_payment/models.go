package init_payment

import (
	initPayment "github.com/m04kA/SMC-CourtService/internal/usecase/init_payment"
)

// InitPaymentRequest HTTP request model
type InitPaymentRequest struct {
	BlockID     string `json:"blockId"`
	PaidPercent int    `json:"paidPercent"` // 50 или 100
}

// InitPaymentResponse HTTP response model
type InitPaymentResponse struct {
	PaymentID int64  `json:"paymentId"`
	OrderID   string `json:"orderId"`
	Token     string `json:"token"`
	URL       string `json:"url"`
	Amount    int64  `json:"amount"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *initPayment.Response) *InitPaymentResponse {
	return &InitPaymentResponse{
		PaymentID: resp.PaymentID,
		OrderID:   resp.OrderID,
		Token:     resp.Token,
		URL:       resp.URL,
		Amount:    resp.Amount,
	}
}
