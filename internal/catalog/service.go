package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/samber/lo"

	"github.com/eladgel/nof-ai/internal/domain"
	"github.com/eladgel/nof-ai/internal/fees"
)

// ErrNotFound indicates that no loaded schedule has the requested id.
var ErrNotFound = errors.New("fee schedule not found")

// Loader supplies the current set of fee schedules.
type Loader interface {
	Load(ctx context.Context) ([]domain.FeeSchedule, error)
}

// Service holds the loaded fee schedules and answers pricing queries over them.
type Service struct {
	loader Loader

	mu        sync.RWMutex
	schedules []domain.FeeSchedule
}

// NewService creates a catalog. Nothing is loaded until Reload is called.
func NewService(loader Loader) *Service {
	return &Service{loader: loader}
}

// Reload replaces the loaded schedules. On a load error the previous set is
// kept and the error returned.
func (s *Service) Reload(ctx context.Context) error {
	schedules, err := s.loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("reloading fee schedules: %w", err)
	}

	s.mu.Lock()
	s.schedules = schedules
	s.mu.Unlock()

	slog.Info("fee schedules loaded", "count", len(schedules))
	return nil
}

// Schedules returns a copy of the loaded schedules in load order.
func (s *Service) Schedules() []domain.FeeSchedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.schedules)
}

// Schedule looks up a schedule by id.
func (s *Service) Schedule(id string) (domain.FeeSchedule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Find(s.schedules, func(fs domain.FeeSchedule) bool {
		return fs.ID == id
	})
}

// Recommend ranks the loaded schedules for the split. See fees.Rank.
func (s *Service) Recommend(split domain.PortfolioSplit, currentID string, limit int) []domain.Recommendation {
	return fees.Rank(s.Schedules(), split, currentID, limit)
}

// Breakdown prices a single schedule for the split.
func (s *Service) Breakdown(id string, split domain.PortfolioSplit) (domain.FeeBreakdown, error) {
	fs, ok := s.Schedule(id)
	if !ok {
		return domain.FeeBreakdown{}, fmt.Errorf("schedule %s: %w", id, ErrNotFound)
	}
	return fees.Breakdown(fs, split), nil
}
