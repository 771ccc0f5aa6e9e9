// Package investment persists the holdings and current brokerage a user last
// entered so the ranking can be restored later.
package investment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/eladgel/nof-ai/internal/domain"
)

// DefaultProfile is the profile key used when none is configured.
const DefaultProfile = "investmentData"

var (
	// ErrInvalidAmount indicates a negative holding.
	ErrInvalidAmount = errors.New("amounts must be non-negative")
	// ErrUnknownBroker indicates a current brokerage id absent from the catalog.
	ErrUnknownBroker = errors.New("unknown brokerage")
)

// BrokerLookup reports whether a brokerage id is known.
type BrokerLookup interface {
	Schedule(id string) (domain.FeeSchedule, bool)
}

// Service validates and stores investment data for a single profile.
type Service struct {
	repo    Repository
	profile string
	brokers BrokerLookup // optional
}

// NewService creates a new investment Service. An empty profile falls back to
// DefaultProfile. When brokers is nil the current brokerage is not checked.
func NewService(repo Repository, profile string, brokers BrokerLookup) *Service {
	if profile == "" {
		profile = DefaultProfile
	}
	return &Service{repo: repo, profile: profile, brokers: brokers}
}

// Validate checks data without storing it.
func (s *Service) Validate(data domain.InvestmentData) error {
	if data.Domestic.IsNegative() || data.Foreign.IsNegative() {
		return ErrInvalidAmount
	}
	if s.brokers != nil && data.CurrentBroker != "" {
		if _, ok := s.brokers.Schedule(data.CurrentBroker); !ok {
			return fmt.Errorf("%s: %w", data.CurrentBroker, ErrUnknownBroker)
		}
	}
	return nil
}

// Save validates and stores data.
func (s *Service) Save(ctx context.Context, data domain.InvestmentData) error {
	if err := s.Validate(data); err != nil {
		return err
	}
	if err := s.repo.Save(ctx, s.profile, data); err != nil {
		return fmt.Errorf("saving profile %s: %w", s.profile, err)
	}
	slog.Info("investment data saved", "profile", s.profile, "currentBroker", data.CurrentBroker)
	return nil
}

// Load returns the stored data, or ErrNotFound.
func (s *Service) Load(ctx context.Context) (*Record, error) {
	rec, err := s.repo.Load(ctx, s.profile)
	if err != nil {
		return nil, fmt.Errorf("loading profile %s: %w", s.profile, err)
	}
	return rec, nil
}

// Clear removes the stored data. Clearing an empty profile is not an error.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx, s.profile); err != nil {
		return fmt.Errorf("clearing profile %s: %w", s.profile, err)
	}
	return nil
}
