package check_availability

import (
	"time"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// Request модель запроса доступности площадки на дату
type Request struct {
	CourtID int64     // ID площадки
	Date    time.Time // Дата (без времени)
}

// BusySlot занятый интервал в ответе
type BusySlot struct {
	StartTime types.TimeString // Время начала интервала
	EndTime   types.TimeString // Время окончания интервала
	Kind      string           // Кто занимает: reservation или temporal_block
}

// Response модель ответа с занятыми интервалами площадки
// Свободно всё, что не перечислено в Busy
type Response struct {
	CourtID int64
	Date    time.Time
	Busy    []BusySlot
}
