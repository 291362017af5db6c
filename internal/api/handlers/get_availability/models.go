package get_availability

import (
	"github.com/m04kA/SMC-CourtService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-CourtService/internal/usecase/check_availability"
)

// BusySlotResponse занятый интервал в HTTP ответе
type BusySlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Kind      string `json:"kind"` // reservation | temporal_block
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	CourtID int64              `json:"courtId"`
	Date    string             `json:"date"`
	Busy    []BusySlotResponse `json:"busy"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	busy := make([]BusySlotResponse, 0, len(resp.Busy))
	for _, b := range resp.Busy {
		busy = append(busy, BusySlotResponse{
			StartTime: string(b.StartTime),
			EndTime:   string(b.EndTime),
			Kind:      b.Kind,
		})
	}

	return &AvailabilityResponse{
		CourtID: resp.CourtID,
		Date:    resp.Date.Format(domain.DateFormat),
		Busy:    busy,
	}
}
