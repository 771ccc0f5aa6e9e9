package domain

import "github.com/shopspring/decimal"

// FeeBreakdown holds the annual cost of one brokerage for one portfolio split.
// Rates are effective percentages of the respective amount.
type FeeBreakdown struct {
	DomesticFee    decimal.Decimal `json:"domesticFee"`
	DomesticRate   decimal.Decimal `json:"domesticRate"`
	ForeignFee     decimal.Decimal `json:"foreignFee"`
	ForeignRate    decimal.Decimal `json:"foreignRate"`
	ManagementFee  decimal.Decimal `json:"managementFee"`
	ManagementRate decimal.Decimal `json:"managementRate"`
	Total          decimal.Decimal `json:"total"`
}

// Recommendation is one ranked brokerage.
type Recommendation struct {
	Schedule  FeeSchedule  `json:"bank"`
	Breakdown FeeBreakdown `json:"breakdown"`
	// Savings compared with the user's current brokerage; zero when none is set.
	Savings    decimal.Decimal `json:"savings"`
	SavingsPct decimal.Decimal `json:"savingsPercentage"`
}
