package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

const displayPrecision = 2

var hundred = decimal.NewFromInt(100)

// SafeParse parses a string into a decimal, returning zero for invalid or empty input.
func SafeParse(value string) decimal.Decimal {
	if value == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Percent returns amount * ratePct / 100.
func Percent(amount, ratePct decimal.Decimal) decimal.Decimal {
	return amount.Mul(ratePct).Div(hundred)
}

// RateOf returns part / whole * 100, or zero when whole is zero.
func RateOf(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// NonNegative clamps negative values to zero.
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// FormatAmount rounds to 2 decimal places and strips trailing zeros.
func FormatAmount(d decimal.Decimal) string {
	s := d.Round(displayPrecision).StringFixed(displayPrecision)
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}
