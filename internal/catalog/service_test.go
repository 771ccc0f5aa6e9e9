package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/eladgel/nof-ai/internal/domain"
)

type mockLoader struct {
	schedules []domain.FeeSchedule
	err       error
	calls     int
}

func (m *mockLoader) Load(_ context.Context) ([]domain.FeeSchedule, error) {
	m.calls++
	return m.schedules, m.err
}

func schedule(id, rate string) domain.FeeSchedule {
	return domain.FeeSchedule{
		ID:                  id,
		Name:                "Broker " + id,
		DomesticTradingRate: decimal.RequireFromString(rate),
	}
}

func TestReloadAndSchedules(t *testing.T) {
	loader := &mockLoader{schedules: []domain.FeeSchedule{schedule("1", "0.1"), schedule("2", "0.2")}}
	svc := NewService(loader)

	if got := svc.Schedules(); len(got) != 0 {
		t.Fatalf("before reload: %d schedules, want 0", len(got))
	}
	if err := svc.Reload(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := svc.Schedules(); len(got) != 2 {
		t.Fatalf("after reload: %d schedules, want 2", len(got))
	}
}

func TestReloadErrorKeepsPrevious(t *testing.T) {
	loader := &mockLoader{schedules: []domain.FeeSchedule{schedule("1", "0.1")}}
	svc := NewService(loader)
	if err := svc.Reload(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loader.schedules = nil
	loader.err = errors.New("disk gone")
	if err := svc.Reload(context.Background()); err == nil {
		t.Fatal("expected reload error")
	}
	if got := svc.Schedules(); len(got) != 1 {
		t.Errorf("after failed reload: %d schedules, want 1", len(got))
	}
}

func TestSchedulesReturnsCopy(t *testing.T) {
	svc := NewService(&mockLoader{schedules: []domain.FeeSchedule{schedule("1", "0.1")}})
	_ = svc.Reload(context.Background())

	got := svc.Schedules()
	got[0].Name = "changed"

	if again := svc.Schedules(); again[0].Name != "Broker 1" {
		t.Error("mutation of returned slice leaked into catalog")
	}
}

func TestScheduleLookup(t *testing.T) {
	svc := NewService(&mockLoader{schedules: []domain.FeeSchedule{schedule("1", "0.1"), schedule("2", "0.2")}})
	_ = svc.Reload(context.Background())

	s, ok := svc.Schedule("2")
	if !ok || s.Name != "Broker 2" {
		t.Errorf("Schedule(2) = %+v, %v", s, ok)
	}
	if _, ok := svc.Schedule("3"); ok {
		t.Error("Schedule(3) found, want missing")
	}
}

func TestRecommend(t *testing.T) {
	svc := NewService(&mockLoader{schedules: []domain.FeeSchedule{
		schedule("a", "0.3"), schedule("b", "0.1"), schedule("c", "0.2"),
	}})
	_ = svc.Reload(context.Background())

	recs := svc.Recommend(domain.NewPortfolioSplit(10000, 0), "a", 2)
	if len(recs) != 2 {
		t.Fatalf("len = %d, want 2", len(recs))
	}
	if recs[0].Schedule.ID != "b" || recs[1].Schedule.ID != "c" {
		t.Errorf("order = %s, %s; want b, c", recs[0].Schedule.ID, recs[1].Schedule.ID)
	}
	// a costs 30, b costs 10.
	if !recs[0].Savings.Equal(decimal.NewFromInt(20)) {
		t.Errorf("savings = %s, want 20", recs[0].Savings)
	}
}

func TestBreakdown(t *testing.T) {
	svc := NewService(&mockLoader{schedules: []domain.FeeSchedule{schedule("1", "0.5")}})
	_ = svc.Reload(context.Background())

	b, err := svc.Breakdown("1", domain.NewPortfolioSplit(2000, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.DomesticFee.Equal(decimal.NewFromInt(10)) {
		t.Errorf("DomesticFee = %s, want 10", b.DomesticFee)
	}

	if _, err := svc.Breakdown("missing", domain.NewPortfolioSplit(1, 1)); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
