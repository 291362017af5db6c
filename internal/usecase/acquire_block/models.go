package acquire_block

import (
	"time"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// CustomerData данные клиента, оформляющего заказ
type CustomerData struct {
	Name       string
	Email      string
	Phone      *string
	NationalID *string
}

// Request модель запроса на временный блок слота
type Request struct {
	CourtID   int64            // ID площадки
	Date      time.Time        // Дата (без времени)
	StartTime types.TimeString // Время начала слота
	EndTime   types.TimeString // Время окончания (00:00 = полночь следующего дня)
	SessionID string           // Токен клиентской сессии
	Customer  CustomerData     // Данные клиента
}

// Response модель ответа с созданным блоком
type Response struct {
	BlockID         string           // ID блока (uuid)
	ReservationCode string           // Код будущего бронирования
	CourtID         int64            // ID площадки
	Date            time.Time        // Дата
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время окончания
	TotalPrice      int64            // Полная стоимость слота
	ExpiresAt       time.Time        // Момент истечения TTL блока
}
