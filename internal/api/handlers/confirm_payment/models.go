package confirm_payment

import (
	"github.com/m04kA/SMC-CourtService/internal/domain"
	confirmPayment "github.com/m04kA/SMC-CourtService/internal/usecase/confirm_payment"
)

// ConfirmPaymentRequest HTTP request model
// Токен приходит при возврате клиента со страницы шлюза или в webhook
type ConfirmPaymentRequest struct {
	Token string `json:"token"`
}

// ReservationResponse созданное бронирование в HTTP ответе
type ReservationResponse struct {
	ID            int64  `json:"id"`
	Code          string `json:"code"`
	CourtID       int64  `json:"courtId"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	PaidPercent   int    `json:"paidPercent"`
	TotalPrice    int64  `json:"totalPrice"`
}

// ConfirmPaymentResponse HTTP response model
type ConfirmPaymentResponse struct {
	PaymentID         int64               `json:"paymentId"`
	OrderID           string              `json:"orderId"`
	Amount            int64               `json:"amount"`
	AuthorizationCode string              `json:"authorizationCode,omitempty"`
	Reservation       ReservationResponse `json:"reservation"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmPayment.Response) *ConfirmPaymentResponse {
	return &ConfirmPaymentResponse{
		PaymentID:         resp.PaymentID,
		OrderID:           resp.OrderID,
		Amount:            resp.Amount,
		AuthorizationCode: resp.AuthorizationCode,
		Reservation: ReservationResponse{
			ID:            resp.Reservation.ID,
			Code:          resp.Reservation.Code,
			CourtID:       resp.Reservation.CourtID,
			Date:          resp.Reservation.Date.Format(domain.DateFormat),
			StartTime:     string(resp.Reservation.StartTime),
			EndTime:       string(resp.Reservation.EndTime),
			Status:        resp.Reservation.Status,
			PaymentStatus: resp.Reservation.PaymentStatus,
			PaidPercent:   resp.Reservation.PaidPercent,
			TotalPrice:    resp.Reservation.TotalPrice,
		},
	}
}
