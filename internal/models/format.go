package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// DateLayout is the normalized date key used for storage and matching
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"

	displayDateLayout = "Jan 2, 2006"

	DefaultCurrency = "PKR"
)

var currencyPrinter = message.NewPrinter(language.English)

// NormalizeDate drops the time of day and location, keeping the calendar day of t
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MonthStart returns the first day of t's month
func MonthStart(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// DateKey formats t as its normalized date key
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// ParseMonth accepts either YYYY-MM or a full date and returns the first of that month
func ParseMonth(s string) (time.Time, error) {
	if t, err := time.Parse(MonthLayout, s); err == nil {
		return MonthStart(t), nil
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return MonthStart(t), nil
	}
	return time.Time{}, fmt.Errorf("invalid month %q: expected YYYY-MM", s)
}

// FormatCurrency renders amount with a three-letter currency code and no decimals, e.g. "PKR 12,345"
func FormatCurrency(amount decimal.Decimal, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	return currencyPrinter.Sprintf("%s %d", currency, amount.Round(0).IntPart())
}

func FormatDisplayDate(t time.Time) string {
	return t.Format(displayDateLayout)
}

// FormatPercent renders a percentage with one decimal place
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
