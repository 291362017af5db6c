package domain

import "time"

// FindConflict ищет первое пересечение запрошенного интервала с занятыми
// интервалами площадки: неотменёнными бронированиями и живыми временными
// блоками. Истёкшие блоки не учитываются, даже если ещё не удалены уборщиком.
// Бронирования проверяются раньше блоков: при конфликте с обоими видами
// в ответ попадает бронирование.
// Возвращает nil, если пересечений нет.
// Строки с некорректным временем пропускаются: битая строка не должна
// блокировать всю площадку
func FindConflict(
	requested Interval,
	reservations []*Reservation,
	blocks []*TemporalBlock,
	now time.Time,
) *Conflict {
	for _, res := range reservations {
		if !res.IsActive() {
			continue
		}

		busy, err := NewInterval(res.StartTime, res.EndTime)
		if err != nil {
			continue
		}

		if requested.Overlaps(busy) {
			return &Conflict{
				Kind:      KindReservation,
				StartTime: res.StartTime,
				EndTime:   res.EndTime,
			}
		}
	}

	for _, blk := range blocks {
		if blk.IsExpired(now) {
			continue
		}

		busy, err := NewInterval(blk.StartTime, blk.EndTime)
		if err != nil {
			continue
		}

		if requested.Overlaps(busy) {
			return &Conflict{
				Kind:      KindTemporalBlock,
				StartTime: blk.StartTime,
				EndTime:   blk.EndTime,
			}
		}
	}

	return nil
}

// BusyIntervals собирает занятые интервалы площадки для выдачи доступности:
// неотменённые бронирования и живые блоки, в порядке поступления
func BusyIntervals(reservations []*Reservation, blocks []*TemporalBlock, now time.Time) []BusyInterval {
	busy := make([]BusyInterval, 0, len(reservations)+len(blocks))

	for _, res := range reservations {
		if !res.IsActive() {
			continue
		}
		busy = append(busy, BusyInterval{
			StartTime: res.StartTime,
			EndTime:   res.EndTime,
			Kind:      KindReservation,
		})
	}

	for _, blk := range blocks {
		if blk.IsExpired(now) {
			continue
		}
		busy = append(busy, BusyInterval{
			StartTime: blk.StartTime,
			EndTime:   blk.EndTime,
			Kind:      KindTemporalBlock,
		})
	}

	return busy
}
