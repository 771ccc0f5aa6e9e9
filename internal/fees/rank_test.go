package fees

import (
	"testing"

	"github.com/eladgel/nof-ai/internal/domain"
)

func flatSchedule(id string, domesticRate string) domain.FeeSchedule {
	return domain.FeeSchedule{
		ID:                         id,
		Name:                       "Broker " + id,
		DomesticTradingRate:        dec(domesticRate),
		FlatManagementRateDomestic: dec("0.1"),
	}
}

func ids(recs []domain.Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Schedule.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRankOrdersCheapestFirst(t *testing.T) {
	schedules := []domain.FeeSchedule{
		flatSchedule("a", "0.5"),
		flatSchedule("b", "0.1"),
		flatSchedule("c", "0.3"),
	}

	got := Rank(schedules, domain.NewPortfolioSplit(100000, 0), "", 0)
	if want := []string{"b", "c", "a"}; !equalIDs(ids(got), want) {
		t.Errorf("order = %v, want %v", ids(got), want)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Breakdown.Total.LessThan(got[i-1].Breakdown.Total) {
			t.Errorf("recommendation %d cheaper than %d", i, i-1)
		}
	}
}

func TestRankTiesKeepInputOrder(t *testing.T) {
	schedules := []domain.FeeSchedule{
		flatSchedule("x", "0.2"),
		flatSchedule("y", "0.1"),
		flatSchedule("z", "0.2"),
		flatSchedule("w", "0.2"),
	}

	got := Rank(schedules, domain.NewPortfolioSplit(50000, 0), "", 0)
	if want := []string{"y", "x", "z", "w"}; !equalIDs(ids(got), want) {
		t.Errorf("order = %v, want %v", ids(got), want)
	}
}

func TestRankLimit(t *testing.T) {
	var schedules []domain.FeeSchedule
	for _, id := range []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"} {
		schedules = append(schedules, flatSchedule(id, "0.1"))
	}

	split := domain.NewPortfolioSplit(1000, 0)
	if got := Rank(schedules, split, "", DefaultLimit); len(got) != DefaultLimit {
		t.Errorf("len = %d, want %d", len(got), DefaultLimit)
	}
	if got := Rank(schedules, split, "", 0); len(got) != len(schedules) {
		t.Errorf("len = %d, want all %d", len(got), len(schedules))
	}
	if got := Rank(schedules[:2], split, "", 5); len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestRankSavingsAgainstCurrent(t *testing.T) {
	schedules := []domain.FeeSchedule{
		flatSchedule("cheap", "0.1"),
		flatSchedule("current", "0.5"),
	}
	// Domestic 100000: trading 100 vs 500, management 400 for both.
	got := Rank(schedules, domain.NewPortfolioSplit(100000, 0), "current", 0)

	if got[0].Schedule.ID != "cheap" {
		t.Fatalf("first = %q, want cheap", got[0].Schedule.ID)
	}
	assertDecimal(t, "cheap savings", got[0].Savings, "400")
	assertDecimal(t, "cheap savings pct", got[0].SavingsPct.Round(2), "44.44")
	assertDecimal(t, "current savings", got[1].Savings, "0")
}

func TestRankUnknownCurrentHasNoSavings(t *testing.T) {
	schedules := []domain.FeeSchedule{flatSchedule("a", "0.1"), flatSchedule("b", "0.2")}

	for _, current := range []string{"", "missing"} {
		for _, r := range Rank(schedules, domain.NewPortfolioSplit(100000, 0), current, 0) {
			if !r.Savings.IsZero() || !r.SavingsPct.IsZero() {
				t.Errorf("current %q: savings = %s (%s%%), want 0", current, r.Savings, r.SavingsPct)
			}
		}
	}
}

func TestRankEmpty(t *testing.T) {
	if got := Rank(nil, domain.NewPortfolioSplit(1, 1), "", DefaultLimit); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	schedules := []domain.FeeSchedule{flatSchedule("a", "0.5"), flatSchedule("b", "0.1")}
	Rank(schedules, domain.NewPortfolioSplit(100000, 0), "", 0)
	if schedules[0].ID != "a" || schedules[1].ID != "b" {
		t.Errorf("input reordered: %s, %s", schedules[0].ID, schedules[1].ID)
	}
}
