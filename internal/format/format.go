// Package format renders money, months and dates for display.
package format

import (
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"mindful/internal/core"
)

const (
	DefaultLocale   = "en-US"
	DefaultCurrency = "USD"
)

// Money formats cent amounts for one locale and currency. The zero value
// formats as en-US dollars.
type Money struct {
	printer *message.Printer
	unit    currency.Unit
	symbol  string
	ok      bool
}

// NewMoney builds a formatter. An unknown locale falls back to en-US; an
// unknown currency code makes Format use the plain "$0.00" fallback.
func NewMoney(locale, code string) Money {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	p := message.NewPrinter(tag)

	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return Money{printer: p}
	}
	return Money{
		printer: p,
		unit:    unit,
		symbol:  p.Sprint(currency.Symbol(unit)),
		ok:      true,
	}
}

// Format renders cents with the currency symbol and locale grouping.
func (m Money) Format(cents int64) string {
	if !m.ok {
		return Fallback(cents)
	}

	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	amount := core.FromCents(cents).InexactFloat64()
	return sign + m.symbol + m.printer.Sprint(number.Decimal(amount, number.Scale(2)))
}

// Currency returns the ISO code in use, or "" for the fallback.
func (m Money) Currency() string {
	if !m.ok {
		return ""
	}
	return m.unit.String()
}

// Fallback is the locale-independent "$12.34" rendering.
func Fallback(cents int64) string {
	if cents < 0 {
		return "-$" + core.FormatCents(-cents)
	}
	return "$" + core.FormatCents(cents)
}

// MonthLabel renders a month as "March 2024". Invalid keys are returned as is.
func MonthLabel(month core.MonthKey) string {
	t, err := month.Time()
	if err != nil {
		return string(month)
	}
	return t.Format("January 2006")
}

// Date renders a YYYY-MM-DD date as "Mar 15, 2024". Invalid dates are
// returned as is.
func Date(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("Jan 2, 2006")
}
