package domain

import (
	"fmt"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

// Interval полуоткрытый интервал [Start, End) в минутах с начала суток
// Время окончания 00:00 трактуется как 24:00 (полночь следующего дня):
// слот 23:00-01:00 занимает [1380, 1440) текущей даты, а не заворачивается к нулю.
// Часть такого слота после полуночи относится к следующей календарной дате
type Interval struct {
	Start int
	End   int
}

// NewInterval создает интервал из времени начала и окончания
// Возвращает ошибку, если интервал пуст или некорректен
func NewInterval(start, end types.TimeString) (Interval, error) {
	startMin, err := start.Minutes()
	if err != nil {
		return Interval{}, fmt.Errorf("invalid start time: %v", err)
	}

	endMin, err := end.Minutes()
	if err != nil {
		return Interval{}, fmt.Errorf("invalid end time: %v", err)
	}

	// 00:00 в качестве окончания означает полночь следующего дня
	if endMin == 0 {
		endMin = MinutesPerDay
	}

	if startMin >= endMin {
		return Interval{}, fmt.Errorf("start time %s must be before end time %s", start, end)
	}

	return Interval{Start: startMin, End: endMin}, nil
}

// Overlaps возвращает true, если интервалы действительно пересекаются
// Граничные случаи (один заканчивается там, где начинается другой) пересечением не считаются:
// [a1, a2) и [b1, b2) конфликтуют тогда и только тогда, когда a1 < b2 И a2 > b1
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && i.End > other.Start
}

// DurationMinutes возвращает длительность интервала в минутах
func (i Interval) DurationMinutes() int {
	return i.End - i.Start
}

// IntervalKind тип сущности, занимающей интервал
type IntervalKind string

const (
	KindReservation   IntervalKind = "reservation"
	KindTemporalBlock IntervalKind = "temporal_block"
)

// BusyInterval занятый интервал площадки на дату
type BusyInterval struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Kind      IntervalKind
}

// Conflict описание сущности, с которой конфликтует запрошенный интервал
type Conflict struct {
	Kind      IntervalKind
	StartTime types.TimeString
	EndTime   types.TimeString
}
