package create_admin_reservation

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	finalizeReservation "github.com/m04kA/SMC-CourtService/internal/usecase/finalize_reservation"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// CustomerRequest данные клиента в HTTP запросе
type CustomerRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone,omitempty"`
	NationalID *string `json:"nationalId,omitempty"`
}

// CreateAdminReservationRequest HTTP request model
type CreateAdminReservationRequest struct {
	CourtID   int64           `json:"courtId"`
	Date      string          `json:"date"`
	StartTime string          `json:"startTime"`
	EndTime   string          `json:"endTime"`
	Customer  CustomerRequest `json:"customer"`
	// Процент оплаченной суммы; 0 - оплата на месте
	PaidPercent int `json:"paidPercent"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID            int64  `json:"id"`
	Code          string `json:"code"`
	CourtID       int64  `json:"courtId"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	CustomerName  string `json:"customerName"`
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	PaidPercent   int    `json:"paidPercent"`
	TotalPrice    int64  `json:"totalPrice"`
	Channel       string `json:"channel"`
	CreatedAt     string `json:"createdAt"`
}

// ConflictResponse HTTP response при занятом слоте
type ConflictResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Kind      string `json:"kind"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAdminReservationRequest) ToUseCaseRequest(adminID int64) (*finalizeReservation.AdminRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &finalizeReservation.AdminRequest{
		CourtID:   r.CourtID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Customer: finalizeReservation.CustomerData{
			Name:       r.Customer.Name,
			Email:      r.Customer.Email,
			Phone:      r.Customer.Phone,
			NationalID: r.Customer.NationalID,
		},
		AdminID:     adminID,
		PaidPercent: r.PaidPercent,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *finalizeReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:            resp.ID,
		Code:          resp.Code,
		CourtID:       resp.CourtID,
		Date:          resp.Date.Format(domain.DateFormat),
		StartTime:     string(resp.StartTime),
		EndTime:       string(resp.EndTime),
		CustomerName:  resp.CustomerName,
		Status:        resp.Status,
		PaymentStatus: resp.PaymentStatus,
		PaidPercent:   resp.PaidPercent,
		TotalPrice:    resp.TotalPrice,
		Channel:       resp.Channel,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
