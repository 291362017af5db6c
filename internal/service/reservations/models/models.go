package models

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// CancelReservationRequest запрос на отмену бронирования
type CancelReservationRequest struct {
	AdminID            int64  `json:"adminId"`
	CancellationReason string `json:"cancellationReason"`
}

// ReservationResponse бронирование в ответе сервиса
type ReservationResponse struct {
	ID            int64            `json:"id"`
	Code          string           `json:"code"`
	CourtID       int64            `json:"courtId"`
	Date          time.Time        `json:"date"`
	StartTime     types.TimeString `json:"startTime"`
	EndTime       types.TimeString `json:"endTime"`
	CustomerName  string           `json:"customerName"`
	CustomerEmail string           `json:"customerEmail"`
	CustomerPhone *string          `json:"customerPhone,omitempty"`
	Status        string           `json:"status"`
	PaymentStatus string           `json:"paymentStatus"`
	PaidPercent   int              `json:"paidPercent"`
	TotalPrice    int64            `json:"totalPrice"`
	// Сумма, которую осталось доплатить на месте
	RemainingAmount    int64      `json:"remainingAmount"`
	Channel            string     `json:"channel"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
}

// FromDomainReservation конвертирует доменное бронирование в response
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:                 res.ID,
		Code:               res.Code,
		CourtID:            res.CourtID,
		Date:               res.Date,
		StartTime:          res.StartTime,
		EndTime:            res.EndTime,
		CustomerName:       res.Customer.Name,
		CustomerEmail:      res.Customer.Email,
		CustomerPhone:      res.Customer.Phone,
		Status:             string(res.Status),
		PaymentStatus:      string(res.PaymentStatus),
		PaidPercent:        res.PaidPercent,
		TotalPrice:         res.TotalPrice,
		RemainingAmount:    res.RemainingAmount(),
		Channel:            string(res.Channel),
		CancellationReason: res.CancellationReason,
		CancelledAt:        res.CancelledAt,
		CreatedAt:          res.CreatedAt,
	}
}
