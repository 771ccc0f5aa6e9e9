package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/eladgel/nof-ai/internal/domain"
)

// ErrMalformedRecord marks a record whose top-level structure cannot be read.
var ErrMalformedRecord = errors.New("malformed fee schedule record")

// Tier table columns.
const (
	tierRangeCol    = 0
	tierDomesticCol = 4
	tierForeignCol  = 5
)

// rowKind is one of the commission-table rows the fee model needs.
type rowKind struct {
	name    string
	matches func(desc string) bool
}

func containsAll(parts ...string) func(string) bool {
	return func(desc string) bool {
		return lo.EveryBy(parts, func(p string) bool { return strings.Contains(desc, p) })
	}
}

var (
	domesticTradingRow = rowKind{
		name:    "domestic trading",
		matches: containsAll(`ני"ע ישראלים: מניות, אג"ח`),
	}
	foreignTradingRow = rowKind{
		name:    "foreign trading",
		matches: containsAll(`ני"ע בחו"ל`, `מניות, אג"ח`),
	}
	domesticManagementRow = rowKind{
		name:    "domestic management",
		matches: containsAll(`דמי ניהול`, `ישראל`),
	}
	foreignManagementRow = rowKind{
		name:    "foreign management",
		matches: containsAll(`דמי ניהול`, `חו"ל`),
	}
)

// find returns the first row of this kind. An absent row is an empty row, so
// every value read from it is zero.
func (k rowKind) find(rows []CommissionRow) CommissionRow {
	row, _ := lo.Find(rows, func(r CommissionRow) bool {
		return k.matches(r.DescHeb)
	})
	return row
}

// tradingTerms reads rate, min and max from columns 0, 1 and 2.
func tradingTerms(row CommissionRow) (rate, minFee, maxFee decimal.Decimal) {
	return ExtractRate(cell(row.Cols, 0)),
		ExtractCurrency(cell(row.Cols, 1)),
		ExtractCurrency(cell(row.Cols, 2))
}

// Decode parses raw JSON into a fee schedule identified by id.
func Decode(data []byte, id string) (domain.FeeSchedule, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.FeeSchedule{}, fmt.Errorf("record %s: %w: %v", id, ErrMalformedRecord, err)
	}
	return Parse(rec, id)
}

// Parse normalizes a raw record. It fails only when the commission table
// itself is missing; absent rows and an absent tier table yield zero values.
func Parse(rec Record, id string) (domain.FeeSchedule, error) {
	if rec.Commissions == nil {
		return domain.FeeSchedule{}, fmt.Errorf("record %s: %w: no commission table", id, ErrMalformedRecord)
	}
	rows := rec.Commissions.TableRow
	if rows == nil {
		return domain.FeeSchedule{}, fmt.Errorf("record %s: %w: no commission rows", id, ErrMalformedRecord)
	}

	s := domain.FeeSchedule{
		ID:                 id,
		Name:               rec.Name,
		Logo:               rec.Logo,
		LogoURL:            domain.LogoURL(id),
		Exceptional:        rec.Exceptional,
		ExceptionalMessage: rec.ExceptionalMessage,
		Comment:            rec.Comment,
		UpdatedAt:          rec.Commissions.DateUpdate,
	}

	s.DomesticTradingRate, s.DomesticTradingMin, s.DomesticTradingMax = tradingTerms(domesticTradingRow.find(rows))
	s.ForeignTradingRate, s.ForeignTradingMin, s.ForeignTradingMax = tradingTerms(foreignTradingRow.find(rows))
	s.FlatManagementRateDomestic = ExtractRate(cell(domesticManagementRow.find(rows).Cols, 0))
	s.FlatManagementRateForeign = ExtractRate(cell(foreignManagementRow.find(rows).Cols, 0))

	if rec.Averages != nil {
		s.ManagementTiers = parseTiers(rec.Averages.TableValue)
	}

	return s, nil
}

// parseTiers keeps source row order. Nil when the table has no rows.
func parseTiers(values [][]*string) []domain.ManagementTier {
	if len(values) == 0 {
		return nil
	}
	return lo.Map(values, func(row []*string, _ int) domain.ManagementTier {
		minAmount, maxAmount := ParseTierRange(cell(row, tierRangeCol))
		return domain.ManagementTier{
			MinAmount:             minAmount,
			MaxAmount:             maxAmount,
			DomesticAnnualRatePct: ExtractRate(cell(row, tierDomesticCol)),
			ForeignAnnualRatePct:  ExtractRate(cell(row, tierForeignCol)),
		}
	})
}

// Identified pairs raw record bytes with the id they were stored under.
type Identified struct {
	ID   string
	Data []byte
}

// DecodeAll decodes every record, dropping the ones that fail. Survivors keep
// their relative order.
func DecodeAll(records []Identified) []domain.FeeSchedule {
	schedules := make([]domain.FeeSchedule, 0, len(records))
	for _, r := range records {
		s, err := Decode(r.Data, r.ID)
		if err != nil {
			slog.Warn("skipping unparseable fee schedule", "id", r.ID, "error", err)
			continue
		}
		schedules = append(schedules, s)
	}
	return schedules
}
