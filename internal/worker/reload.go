package worker

import (
	"context"
	"log/slog"
	"time"
)

// Reloader defines the interface for refreshing the fee schedule catalog.
type Reloader interface {
	Reload(ctx context.Context) error
}

// AfterReloadHook is called after each successful reload.
type AfterReloadHook interface {
	AfterReload(ctx context.Context) error
}

// ReloadWorker periodically reloads fee schedules from their source.
type ReloadWorker struct {
	reloader Reloader
	interval time.Duration
	hook     AfterReloadHook // optional
}

// NewReloadWorker creates a new ReloadWorker with an optional post-reload hook.
func NewReloadWorker(reloader Reloader, interval time.Duration, hook AfterReloadHook) *ReloadWorker {
	return &ReloadWorker{
		reloader: reloader,
		interval: interval,
		hook:     hook,
	}
}

func (w *ReloadWorker) runHook(ctx context.Context) {
	if w.hook == nil {
		return
	}
	if err := w.hook.AfterReload(ctx); err != nil {
		slog.Error("ReloadWorker: hook failed", "error", err)
	} else {
		slog.Info("ReloadWorker: hook completed")
	}
}

func (w *ReloadWorker) reload(ctx context.Context) {
	if err := w.reloader.Reload(ctx); err != nil {
		slog.Error("ReloadWorker: reload failed", "error", err)
		return
	}
	w.runHook(ctx)
}

// Run starts the reload loop. It blocks until the context is cancelled.
func (w *ReloadWorker) Run(ctx context.Context) {
	slog.Info("ReloadWorker: starting", "interval", w.interval)

	// Reload immediately on startup
	w.reload(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("ReloadWorker: shutting down")
			return
		case <-ticker.C:
			w.reload(ctx)
		}
	}
}
