package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ForeignCurrencyRate converts foreign-currency fee bounds into local currency.
var ForeignCurrencyRate = decimal.RequireFromString("3.8")

// flatRateAnnualThreshold separates flat management rates quoted on a monthly
// scale (above) from rates quoted per quarter (at or below).
var flatRateAnnualThreshold = decimal.NewFromInt(10)

var (
	monthsPerYear   = decimal.NewFromInt(12)
	quartersPerYear = decimal.NewFromInt(4)
)

// Market identifies where securities are traded.
type Market string

const (
	MarketDomestic Market = "domestic"
	MarketForeign  Market = "foreign"
)

// ManagementTier is one band of a tiered management-fee table.
// MaxAmount is nil for the open-ended last band.
type ManagementTier struct {
	MinAmount             decimal.Decimal  `json:"minAmount"`
	MaxAmount             *decimal.Decimal `json:"maxAmount"`
	DomesticAnnualRatePct decimal.Decimal  `json:"domesticAnnualRatePct"`
	ForeignAnnualRatePct  decimal.Decimal  `json:"foreignAnnualRatePct"`
}

// Contains reports whether total falls inside the band, both ends inclusive.
func (t ManagementTier) Contains(total decimal.Decimal) bool {
	if total.LessThan(t.MinAmount) {
		return false
	}
	return t.MaxAmount == nil || total.LessThanOrEqual(*t.MaxAmount)
}

// FeeSchedule is the normalized fee model of a single brokerage.
type FeeSchedule struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Logo    string `json:"logo"`
	LogoURL string `json:"logoUrl"`

	DomesticTradingRate decimal.Decimal `json:"domesticTradingRate"`
	DomesticTradingMin  decimal.Decimal `json:"domesticTradingMin"`
	DomesticTradingMax  decimal.Decimal `json:"domesticTradingMax"`

	// Foreign bounds are in foreign currency; see ForeignCurrencyRate.
	ForeignTradingRate decimal.Decimal `json:"foreignTradingRate"`
	ForeignTradingMin  decimal.Decimal `json:"foreignTradingMin"`
	ForeignTradingMax  decimal.Decimal `json:"foreignTradingMax"`

	FlatManagementRateDomestic decimal.Decimal `json:"flatManagementRateDomestic"`
	FlatManagementRateForeign  decimal.Decimal `json:"flatManagementRateForeign"`

	ManagementTiers []ManagementTier `json:"managementTiers,omitempty"`

	Exceptional        bool   `json:"exceptional"`
	ExceptionalMessage string `json:"exceptionalMessage,omitempty"`
	Comment            string `json:"comment,omitempty"`
	UpdatedAt          string `json:"updatedAt,omitempty"`
}

// HasTiers reports whether the schedule publishes a tiered management table.
func (s FeeSchedule) HasTiers() bool {
	return len(s.ManagementTiers) > 0
}

// TradingTerms returns rate, min and max for the market. Foreign bounds are
// returned already converted to local currency.
func (s FeeSchedule) TradingTerms(m Market) (rate, minFee, maxFee decimal.Decimal) {
	if m == MarketForeign {
		return s.ForeignTradingRate,
			s.ForeignTradingMin.Mul(ForeignCurrencyRate),
			s.ForeignTradingMax.Mul(ForeignCurrencyRate)
	}
	return s.DomesticTradingRate, s.DomesticTradingMin, s.DomesticTradingMax
}

// AnnualizeFlatRate turns a flat management rate from the source data into an
// annual percentage. Values above the threshold are read as monthly figures,
// the rest as quarterly rates.
func AnnualizeFlatRate(v decimal.Decimal) decimal.Decimal {
	if v.GreaterThan(flatRateAnnualThreshold) {
		return v.Mul(monthsPerYear)
	}
	return v.Mul(quartersPerYear)
}

// LogoURL returns the exchange-hosted logo for a member id.
func LogoURL(id string) string {
	code := id
	if n := 4 - len(code); n > 0 {
		code = strings.Repeat("0", n) + code
	}
	return fmt.Sprintf("https://market.tase.co.il/assets/img/tase_members/heb/00%s.png", code)
}
