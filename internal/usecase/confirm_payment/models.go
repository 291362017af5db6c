package confirm_payment

import (
	"github.com/m04kA/SMC-CourtService/internal/usecase/finalize_reservation"
)

// Request модель запроса подтверждения оплаты
// Токен приходит от шлюза при возврате клиента или в webhook
type Request struct {
	Token string
}

// Response модель ответа с созданным бронированием
type Response struct {
	PaymentID         int64
	OrderID           string
	Amount            int64
	AuthorizationCode string
	Reservation       *finalize_reservation.Response
}
