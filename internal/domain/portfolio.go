package domain

import "github.com/shopspring/decimal"

// PortfolioSplit is the user's holdings split by market, in local currency.
type PortfolioSplit struct {
	Domestic decimal.Decimal `json:"domestic"`
	Foreign  decimal.Decimal `json:"foreign"`
}

// NewPortfolioSplit builds a split from whole-currency amounts.
func NewPortfolioSplit(domestic, foreign int64) PortfolioSplit {
	return PortfolioSplit{
		Domestic: decimal.NewFromInt(domestic),
		Foreign:  decimal.NewFromInt(foreign),
	}
}

// Amount returns the holding for a market.
func (p PortfolioSplit) Amount(m Market) decimal.Decimal {
	if m == MarketForeign {
		return p.Foreign
	}
	return p.Domestic
}

// Total returns the combined holdings, with negative parts counted as zero.
func (p PortfolioSplit) Total() decimal.Decimal {
	return NonNegative(p.Domestic).Add(NonNegative(p.Foreign))
}

// InvestmentData is what a user last entered: the brokerage they use today and
// their holdings.
type InvestmentData struct {
	CurrentBroker string          `json:"currentBank"`
	Domestic      decimal.Decimal `json:"israeliAmount"`
	Foreign       decimal.Decimal `json:"foreignAmount"`
}

// Split returns the holdings part of the data.
func (d InvestmentData) Split() PortfolioSplit {
	return PortfolioSplit{Domestic: d.Domestic, Foreign: d.Foreign}
}
