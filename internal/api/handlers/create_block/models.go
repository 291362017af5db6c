package create_block

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	acquireBlock "github.com/m04kA/SMC-CourtService/internal/usecase/acquire_block"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// CustomerRequest данные клиента в HTTP запросе
type CustomerRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone,omitempty"`
	NationalID *string `json:"nationalId,omitempty"`
}

// CreateBlockRequest HTTP request model
type CreateBlockRequest struct {
	CourtID   int64           `json:"courtId"`
	Date      string          `json:"date"`      // "2025-10-15"
	StartTime string          `json:"startTime"` // "10:00"
	EndTime   string          `json:"endTime"`   // "11:30", "00:00" = полночь
	SessionID string          `json:"sessionId"`
	Customer  CustomerRequest `json:"customer"`
}

// BlockResponse HTTP response model
type BlockResponse struct {
	BlockID         string `json:"blockId"`
	ReservationCode string `json:"reservationCode"`
	CourtID         int64  `json:"courtId"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	TotalPrice      int64  `json:"totalPrice"`
	ExpiresAt       string `json:"expiresAt"` // RFC3339
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
func (r *CreateBlockRequest) ToUseCaseRequest() (*acquireBlock.Request, error) {
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

	return &acquireBlock.Request{
		CourtID:   r.CourtID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		SessionID: r.SessionID,
		Customer: acquireBlock.CustomerData{
			Name:       r.Customer.Name,
			Email:      r.Customer.Email,
			Phone:      r.Customer.Phone,
			NationalID: r.Customer.NationalID,
		},
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *acquireBlock.Response) *BlockResponse {
	return &BlockResponse{
		BlockID:         resp.BlockID,
		ReservationCode: resp.ReservationCode,
		CourtID:         resp.CourtID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       string(resp.StartTime),
		EndTime:         string(resp.EndTime),
		TotalPrice:      resp.TotalPrice,
		ExpiresAt:       resp.ExpiresAt.Format(time.RFC3339),
	}
}
