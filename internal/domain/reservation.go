package domain

import (
	"time"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// ReservationStatus статус бронирования
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// PaymentStatus статус оплаты бронирования
type PaymentStatus string

const (
	PaymentUnpaid        PaymentStatus = "unpaid"
	PaymentPartiallyPaid PaymentStatus = "partially_paid"
	PaymentPaid          PaymentStatus = "paid"
)

// Channel канал, через который создано бронирование
type Channel string

const (
	ChannelWebDirect Channel = "web_direct"
	ChannelAdmin     Channel = "admin"
)

// Customer данные клиента, указанные при бронировании
type Customer struct {
	Name       string
	Email      string
	Phone      *string
	NationalID *string
}

// Reservation бронирование площадки
// Создается только финализатором; никогда не удаляется физически,
// отмена выставляет статус cancelled (история сохраняется)
type Reservation struct {
	ID      int64
	Code    string
	CourtID int64

	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString

	Customer Customer

	Status        ReservationStatus
	PaymentStatus PaymentStatus
	// Процент оплаченной суммы (50 при частичной предоплате, 100 при полной)
	PaidPercent int
	TotalPrice  int64
	// Комиссия платёжной системы, справочное значение (в цену не входит)
	Commission int64

	Channel Channel
	// ID временного блока, из которого создано бронирование (web_direct)
	BlockID *string
	// ID администратора, создавшего бронирование (admin)
	AdminID *int64

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если бронирование занимает интервал площадки
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// CanBeCancelled возвращает true, если бронирование можно отменить
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// PaidAmount возвращает оплаченную сумму
func (r *Reservation) PaidAmount() int64 {
	return r.TotalPrice * int64(r.PaidPercent) / 100
}

// RemainingAmount возвращает сумму, которую осталось доплатить на месте
func (r *Reservation) RemainingAmount() int64 {
	return r.TotalPrice - r.PaidAmount()
}

// CommissionAmount возвращает справочную комиссию платёжной системы
// от полной стоимости (с усечением до целых единиц)
func CommissionAmount(totalPrice int64) int64 {
	return totalPrice * CommissionPerMille / 1000
}

// PaymentStatusForPercent возвращает статус оплаты для процента предоплаты
func PaymentStatusForPercent(percent int) PaymentStatus {
	switch {
	case percent >= 100:
		return PaymentPaid
	case percent > 0:
		return PaymentPartiallyPaid
	default:
		return PaymentUnpaid
	}
}
