// Package fees computes annual brokerage costs from normalized fee schedules.
// Every function is pure.
package fees

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/eladgel/nof-ai/internal/domain"
)

// TradingFee returns the clamped trading commission for amount in market.
// The minimum is applied before the maximum, so a maximum configured below the
// minimum wins.
func TradingFee(s domain.FeeSchedule, amount decimal.Decimal, market domain.Market) decimal.Decimal {
	if amount.IsZero() {
		return decimal.Zero
	}
	rate, minFee, maxFee := s.TradingTerms(market)
	if rate.IsZero() {
		return decimal.Zero
	}

	fee := domain.Percent(amount, rate)
	if minFee.IsPositive() && fee.LessThan(minFee) {
		fee = minFee
	}
	if maxFee.IsPositive() && fee.GreaterThan(maxFee) {
		fee = maxFee
	}
	return fee
}

// ManagementRates returns the annual management percentages for each market.
//
// With a tier table, one tier is chosen by the combined total of both amounts
// and its rates apply to both markets. Without one, the flat rates are
// annualized.
func ManagementRates(s domain.FeeSchedule, domestic, foreign decimal.Decimal) (domesticPct, foreignPct decimal.Decimal) {
	if !s.HasTiers() {
		return domain.AnnualizeFlatRate(s.FlatManagementRateDomestic),
			domain.AnnualizeFlatRate(s.FlatManagementRateForeign)
	}
	tier := SelectTier(s.ManagementTiers, domain.NonNegative(domestic).Add(domain.NonNegative(foreign)))
	return tier.DomesticAnnualRatePct, tier.ForeignAnnualRatePct
}

// SelectTier returns the first tier containing total, or the last tier when
// none does. tiers must not be empty.
func SelectTier(tiers []domain.ManagementTier, total decimal.Decimal) domain.ManagementTier {
	tier, ok := lo.Find(tiers, func(t domain.ManagementTier) bool {
		return t.Contains(total)
	})
	if !ok {
		return tiers[len(tiers)-1]
	}
	return tier
}

// ManagementFee returns the annual management fee for the holdings.
func ManagementFee(s domain.FeeSchedule, domestic, foreign decimal.Decimal) decimal.Decimal {
	domesticPct, foreignPct := ManagementRates(s, domestic, foreign)
	return domain.Percent(domestic, domesticPct).Add(domain.Percent(foreign, foreignPct))
}

// TotalFee returns both trading fees plus the management fee.
func TotalFee(s domain.FeeSchedule, domestic, foreign decimal.Decimal) decimal.Decimal {
	return TradingFee(s, domestic, domain.MarketDomestic).
		Add(TradingFee(s, foreign, domain.MarketForeign)).
		Add(ManagementFee(s, domestic, foreign))
}

// Breakdown itemizes the annual cost of s for the split.
func Breakdown(s domain.FeeSchedule, split domain.PortfolioSplit) domain.FeeBreakdown {
	domesticFee := TradingFee(s, split.Amount(domain.MarketDomestic), domain.MarketDomestic)
	foreignFee := TradingFee(s, split.Amount(domain.MarketForeign), domain.MarketForeign)
	managementFee := ManagementFee(s, split.Domestic, split.Foreign)

	return domain.FeeBreakdown{
		DomesticFee:    domesticFee,
		DomesticRate:   domain.RateOf(domesticFee, split.Domestic),
		ForeignFee:     foreignFee,
		ForeignRate:    domain.RateOf(foreignFee, split.Foreign),
		ManagementFee:  managementFee,
		ManagementRate: domain.RateOf(managementFee, split.Total()),
		Total:          domesticFee.Add(foreignFee).Add(managementFee),
	}
}
