package output

import (
	"time"

	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as currency with 2 decimals. Kept here so
// it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return "$" + amount.StringFixed(2) }

// FormatPercentage formats a fractional rate as a percentage with 2 decimals.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// FormatMonthYear renders a date the way the report boundary presents
// calendar dates, e.g. "January 2027".
func FormatMonthYear(t time.Time) string { return t.Format("January 2006") }

func round2(d decimal.Decimal) decimal.Decimal { return d.Round(2) }
