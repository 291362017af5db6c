package finalize_reservation

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// Request модель запроса на финализацию из временного блока
type Request struct {
	BlockID string // ID блока, оформление которого завершено
	// Процент оплаченной суммы (50 предоплата или 100)
	PaidPercent int
}

// CustomerData данные клиента для административного бронирования
type CustomerData struct {
	Name       string
	Email      string
	Phone      *string
	NationalID *string
}

// AdminRequest модель запроса на административное бронирование без блока
type AdminRequest struct {
	CourtID   int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Customer  CustomerData
	AdminID   int64
	// Процент оплаченной суммы; 0 - оплата на месте
	PaidPercent int
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	Code          string
	CourtID       int64
	Date          time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	CustomerName  string
	CustomerEmail string
	Status        string
	PaymentStatus string
	PaidPercent   int
	TotalPrice    int64
	Commission    int64
	Channel       string
	CreatedAt     time.Time
}

// toResponse конвертирует доменное бронирование в response
func toResponse(res *domain.Reservation) *Response {
	return &Response{
		ID:            res.ID,
		Code:          res.Code,
		CourtID:       res.CourtID,
		Date:          res.Date,
		StartTime:     res.StartTime,
		EndTime:       res.EndTime,
		CustomerName:  res.Customer.Name,
		CustomerEmail: res.Customer.Email,
		Status:        string(res.Status),
		PaymentStatus: string(res.PaymentStatus),
		PaidPercent:   res.PaidPercent,
		TotalPrice:    res.TotalPrice,
		Commission:    res.Commission,
		Channel:       string(res.Channel),
		CreatedAt:     res.CreatedAt,
	}
}
