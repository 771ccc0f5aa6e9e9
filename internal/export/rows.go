package export

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/eladgel/nof-ai/internal/domain"
)

// SheetName is the sheet every writer fills.
const SheetName = "RANKING"

// RankingRow is one line of an exported ranking.
type RankingRow struct {
	Rank           int
	ID             string
	Name           string
	DomesticFee    decimal.Decimal
	ForeignFee     decimal.Decimal
	ManagementFee  decimal.Decimal
	ManagementRate decimal.Decimal
	Total          decimal.Decimal
	Savings        decimal.Decimal
	IsCurrent      bool
}

// rankingHeader spans columns A:J.
var rankingHeader = []any{
	"Rank", "ID", "Name",
	"Domestic fee", "Foreign fee", "Management fee", "Management %",
	"Total", "Savings", "Current",
}

// BuildRankingRows numbers recommendations from 1 and flags the current brokerage.
func BuildRankingRows(recs []domain.Recommendation, currentID string) []RankingRow {
	return lo.Map(recs, func(r domain.Recommendation, i int) RankingRow {
		return RankingRow{
			Rank:           i + 1,
			ID:             r.Schedule.ID,
			Name:           r.Schedule.Name,
			DomesticFee:    r.Breakdown.DomesticFee,
			ForeignFee:     r.Breakdown.ForeignFee,
			ManagementFee:  r.Breakdown.ManagementFee,
			ManagementRate: r.Breakdown.ManagementRate,
			Total:          r.Breakdown.Total,
			Savings:        r.Savings,
			IsCurrent:      currentID != "" && r.Schedule.ID == currentID,
		}
	})
}

// buildValues lays rows out as a header plus one line per row.
func buildValues(rows []RankingRow) [][]any {
	data := make([][]any, 0, len(rows)+1)
	data = append(data, rankingHeader)

	for _, row := range rows {
		current := 0
		if row.IsCurrent {
			current = 1
		}
		data = append(data, []any{
			row.Rank, row.ID, row.Name,
			toFloat(row.DomesticFee),
			toFloat(row.ForeignFee),
			toFloat(row.ManagementFee),
			toFloat(row.ManagementRate.Round(4)),
			toFloat(row.Total),
			toFloat(row.Savings),
			current,
		})
	}

	return data
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
