package domain

import (
	"time"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// TemporalBlock временный блок слота на время оформления заказа
// Принадлежит сессии, которая его создала; это НЕ бронирование:
// блок лишь не даёт другим занять интервал, пока клиент оплачивает.
// Уничтожается при финализации, явном освобождении или по истечении TTL
type TemporalBlock struct {
	ID      string
	CourtID int64

	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString

	// Непрозрачный токен клиентской сессии, владеющей блоком
	SessionID string
	// Код будущего бронирования: генерируется при создании блока,
	// чтобы повторная доставка webhook не породила второй код
	ReservationCode string

	Customer   Customer
	TotalPrice int64

	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsExpired возвращает true, если TTL блока истёк к моменту now
// В момент now == ExpiresAt блок ещё жив: TTL включает правую границу
func (b *TemporalBlock) IsExpired(now time.Time) bool {
	return b.ExpiresAt.Before(now)
}
