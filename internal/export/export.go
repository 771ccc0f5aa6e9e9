// Package export writes brokerage rankings to spreadsheets.
package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/eladgel/nof-ai/internal/domain"
	"github.com/eladgel/nof-ai/internal/investment"
)

// SheetWriter writes ranking rows to a spreadsheet destination.
type SheetWriter interface {
	Write(ctx context.Context, rows []RankingRow) error
}

// Ranker produces recommendations for a split.
type Ranker interface {
	Recommend(split domain.PortfolioSplit, currentID string, limit int) []domain.Recommendation
}

// Service ranks the catalog and delegates writing to a SheetWriter.
type Service struct {
	ranker Ranker
	writer SheetWriter
	limit  int
}

// NewService creates a new export Service. A limit of zero or less exports
// every brokerage.
func NewService(ranker Ranker, writer SheetWriter, limit int) *Service {
	return &Service{ranker: ranker, writer: writer, limit: limit}
}

// Export ranks brokerages for split and writes the result.
func (s *Service) Export(ctx context.Context, split domain.PortfolioSplit, currentID string) error {
	recs := s.ranker.Recommend(split, currentID, s.limit)
	if err := s.writer.Write(ctx, BuildRankingRows(recs, currentID)); err != nil {
		return fmt.Errorf("writing ranking: %w", err)
	}
	slog.Info("ranking exported", "rows", len(recs), "current", currentID)
	return nil
}

// InvestmentSource supplies the stored holdings to export for.
type InvestmentSource interface {
	Load(ctx context.Context) (*investment.Record, error)
}

// StoredProfileHook re-exports the ranking for the stored investment data.
// Implements worker.AfterReloadHook.
type StoredProfileHook struct {
	exporter *Service
	source   InvestmentSource
}

// NewStoredProfileHook creates a hook exporting for whatever source holds.
func NewStoredProfileHook(exporter *Service, source InvestmentSource) *StoredProfileHook {
	return &StoredProfileHook{exporter: exporter, source: source}
}

// AfterReload exports the ranking. Nothing is written when no data is stored.
func (h *StoredProfileHook) AfterReload(ctx context.Context) error {
	rec, err := h.source.Load(ctx)
	if errors.Is(err, investment.ErrNotFound) {
		slog.Debug("export: no stored investment data, skipping")
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading investment data: %w", err)
	}
	return h.exporter.Export(ctx, rec.Data.Split(), rec.Data.CurrentBroker)
}
