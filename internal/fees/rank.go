package fees

import (
	"slices"

	"github.com/samber/lo"

	"github.com/eladgel/nof-ai/internal/domain"
)

// DefaultLimit is how many recommendations are surfaced by default.
const DefaultLimit = 8

// Rank prices every schedule for the split and orders them cheapest first.
// Equal totals keep their input order. When currentID names one of the
// schedules, savings are reported against it. A limit of zero or less returns
// all of them.
func Rank(schedules []domain.FeeSchedule, split domain.PortfolioSplit, currentID string, limit int) []domain.Recommendation {
	recs := lo.Map(schedules, func(s domain.FeeSchedule, _ int) domain.Recommendation {
		return domain.Recommendation{Schedule: s, Breakdown: Breakdown(s, split)}
	})

	if current, ok := lo.Find(recs, func(r domain.Recommendation) bool {
		return currentID != "" && r.Schedule.ID == currentID
	}); ok {
		base := current.Breakdown.Total
		for i := range recs {
			recs[i].Savings = base.Sub(recs[i].Breakdown.Total)
			recs[i].SavingsPct = domain.RateOf(recs[i].Savings, base)
		}
	}

	slices.SortStableFunc(recs, func(a, b domain.Recommendation) int {
		return a.Breakdown.Total.Cmp(b.Breakdown.Total)
	})

	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}
