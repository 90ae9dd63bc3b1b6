// Package core provides the journal's domain model and money handling.
//
// Money is always carried as integer cents. Conversions from user input go
// through decimal arithmetic so that no float rounding leaks into stored values.
package core

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	hundred  = decimal.NewFromInt(100)
	maxCents = decimal.NewFromInt(math.MaxInt64)
)

// ToCents converts a decimal amount string to cents, rounding half away from
// zero on the third decimal place.
//
// Non-numeric or empty input is coerced to 0 rather than reported; callers
// decide whether 0 is acceptable. Only a dot separates decimals, so "1,234"
// is non-numeric. Negative input yields negative cents so that validation can reject it.
//
// Examples:
//
//	ToCents("12.34")  -> 1234
//	ToCents("12.345") -> 1235
//	ToCents("abc")    -> 0
func ToCents(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	cents := d.Mul(hundred).Round(0)
	if cents.Abs().GreaterThan(maxCents) {
		return 0
	}
	return cents.IntPart()
}

// FromCents returns the decimal value of cents for display and editing.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// FormatCents renders cents as a plain two-decimal amount, e.g. "12.34".
func FormatCents(cents int64) string {
	return FromCents(cents).StringFixed(2)
}
