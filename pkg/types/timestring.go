package types

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format")

const timeLayout = "15:04"

// TimeString represents a wall-clock time in HH:MM format.
// Используется для отображения времени слота без привязки к дате.
type TimeString string

// NewTimeString создает TimeString из time.Time (локальное время)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Local().Format(timeLayout))
}

// NewTimeStringFromString валидирует строку HH:MM и создает TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := time.Parse(timeLayout, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(s), nil
}

// String возвращает строковое представление HH:MM
func (t TimeString) String() string {
	return string(t)
}

// IsBefore returns true if t is strictly earlier in the day than other.
// Формат HH:MM с ведущими нулями сравнивается лексикографически корректно.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}
