package source

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/eladgel/nof-ai/internal/domain"
	"github.com/eladgel/nof-ai/internal/schedule"
)

const defaultConcurrency = 4

// DirLoader reads one fee-schedule record per <id>.json file in a directory.
type DirLoader struct {
	dir         string
	concurrency int
}

// NewDirLoader creates a loader for dir. Concurrency below 1 uses the default.
func NewDirLoader(dir string, concurrency int) *DirLoader {
	if concurrency < 1 {
		concurrency = defaultConcurrency
	}
	return &DirLoader{dir: dir, concurrency: concurrency}
}

// Load reads and parses every record with bounded concurrency. Records that
// cannot be read or parsed are logged and skipped; survivors are returned in
// file-name order.
func (l *DirLoader) Load(ctx context.Context) ([]domain.FeeSchedule, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("reading record directory %s: %w", l.dir, err)
	}

	files := lo.FilterMap(entries, func(e os.DirEntry, _ int) (string, bool) {
		return e.Name(), !e.IsDir() && strings.HasSuffix(e.Name(), ".json")
	})
	sort.Strings(files)

	results := make([]*domain.FeeSchedule, len(files))
	var skipped int
	var mu sync.Mutex

	sem := make(chan struct{}, l.concurrency)
	var wg sync.WaitGroup

	for i, file := range files {
		wg.Add(1)
		go func(i int, file string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			id := strings.TrimSuffix(file, ".json")
			s, err := l.loadOne(ctx, file, id)
			if err != nil {
				slog.Warn("skipping fee schedule record", "id", id, "error", err)
				mu.Lock()
				skipped++
				mu.Unlock()
				return
			}
			results[i] = &s
		}(i, file)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}

	schedules := lo.FilterMap(results, func(s *domain.FeeSchedule, _ int) (domain.FeeSchedule, bool) {
		return lo.FromPtr(s), s != nil
	})

	if skipped > 0 {
		slog.Warn("some fee schedule records were skipped", "skipped", skipped, "loaded", len(schedules))
	}

	return schedules, nil
}

func (l *DirLoader) loadOne(ctx context.Context, file, id string) (domain.FeeSchedule, error) {
	if err := ctx.Err(); err != nil {
		return domain.FeeSchedule{}, err
	}
	data, err := os.ReadFile(filepath.Join(l.dir, file))
	if err != nil {
		return domain.FeeSchedule{}, fmt.Errorf("reading %s: %w", file, err)
	}
	return schedule.Decode(data, id)
}
