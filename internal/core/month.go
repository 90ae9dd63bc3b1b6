package core

import (
	"fmt"
	"time"
)

const (
	monthLayout = "2006-01"
	dateLayout  = "2006-01-02"
)

// MonthKey is the YYYY-MM bucketing unit for aggregation and navigation.
type MonthKey string

// ParseMonthKey validates s as a YYYY-MM month key.
func ParseMonthKey(s string) (MonthKey, error) {
	if _, err := time.Parse(monthLayout, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	return MonthKey(s), nil
}

// MonthOf derives the month key of a YYYY-MM-DD date. Dates too short to
// carry a month yield the empty key, which matches no month.
func MonthOf(dateISO string) MonthKey {
	if len(dateISO) < len(monthLayout) {
		return ""
	}
	return MonthKey(dateISO[:len(monthLayout)])
}

// MonthFor returns the month key containing t.
func MonthFor(t time.Time) MonthKey {
	return MonthKey(t.Format(monthLayout))
}

// DateOf formats t as a YYYY-MM-DD calendar date in t's location.
func DateOf(t time.Time) string {
	return t.Format(dateLayout)
}

// Time returns the first day of the month at midnight UTC.
func (m MonthKey) Time() (time.Time, error) {
	t, err := time.Parse(monthLayout, string(m))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidMonth, string(m))
	}
	return t, nil
}

// Shift moves the key by n calendar months, rolling over years as needed.
func (m MonthKey) Shift(n int) (MonthKey, error) {
	t, err := m.Time()
	if err != nil {
		return m, err
	}
	return MonthFor(t.AddDate(0, n, 0)), nil
}

// Next returns the following month.
func (m MonthKey) Next() (MonthKey, error) { return m.Shift(1) }

// Prev returns the preceding month.
func (m MonthKey) Prev() (MonthKey, error) { return m.Shift(-1) }

func (m MonthKey) String() string { return string(m) }
