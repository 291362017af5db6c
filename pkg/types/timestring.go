package types

import (
	"fmt"
	"time"
)

// TimeFormat формат времени HH:MM
const TimeFormat = "15:04"

// TimeString строковое представление времени в формате HH:MM
// Используется для хранения времени слотов без привязки к дате и часовому поясу
type TimeString string

// NewTimeString создает TimeString из time.Time (усекает до минут)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет, что строка соответствует формату HH:MM
func (t TimeString) Validate() error {
	if _, err := time.Parse(TimeFormat, string(t)); err != nil {
		return fmt.Errorf("invalid time string format: %v", err)
	}
	return nil
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// Minutes возвращает количество минут с начала суток
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("invalid time string format: %v", err)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes возвращает время, смещённое на указанное количество минут
// Переход через полночь заворачивается (23:30 + 60 минут = 00:30)
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return "", fmt.Errorf("invalid time string format: %v", err)
	}
	return TimeString(parsed.Add(time.Duration(minutes) * time.Minute).Format(TimeFormat)), nil
}

// IsBefore возвращает true, если время строго раньше other
// Формат HH:MM сравнивается лексикографически корректно
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}
