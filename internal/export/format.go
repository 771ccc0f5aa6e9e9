package export

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatILS renders an amount in shekels, rounded to agorot.
func FormatILS(d decimal.Decimal) string {
	cur := money.GetCurrency(money.ILS)
	minor := d.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return money.New(minor.IntPart(), money.ILS).Display()
}
