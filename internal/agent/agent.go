// Package agent runs the daily cycle: collect raw events, score and
// select the best picks, persist and deliver them.
package agent

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/Vodeneev/autobet/internal/analyzer"
	"github.com/Vodeneev/autobet/internal/collector"
	"github.com/Vodeneev/autobet/internal/notifier"
	"github.com/Vodeneev/autobet/internal/pkg/config"
	"github.com/Vodeneev/autobet/internal/pkg/models"
	"github.com/Vodeneev/autobet/internal/pkg/storage"
)

// Agent wires the pipeline together and drives it on a daily schedule.
// Picks storage and the snapshot cache are optional; a nil notifier logs
// instead of sending.
type Agent struct {
	collector   *collector.Collector
	analyzer    *analyzer.Analyzer
	notifier    *notifier.TelegramNotifier
	picks       storage.PickStorage
	cache       storage.SnapshotCache
	schedule    config.ScheduleConfig
	snapshotTTL time.Duration

	mu   sync.RWMutex
	last models.Selection
	ran  bool
}

func New(
	col *collector.Collector,
	an *analyzer.Analyzer,
	n *notifier.TelegramNotifier,
	picks storage.PickStorage,
	cache storage.SnapshotCache,
	schedule config.ScheduleConfig,
	snapshotTTL time.Duration,
) *Agent {
	return &Agent{
		collector:   col,
		analyzer:    an,
		notifier:    n,
		picks:       picks,
		cache:       cache,
		schedule:    schedule,
		snapshotTTL: snapshotTTL,
	}
}

// Start runs the daily loop until the context is canceled, firing at the
// configured local time.
func (a *Agent) Start(ctx context.Context) error {
	slog.Info("Starting daily agent", "hour", a.schedule.Hour, "minute", a.schedule.Minute)

	if a.schedule.RunOnStart {
		a.RunOnce(ctx)
	}

	for {
		next := nextRun(time.Now(), a.schedule.Hour, a.schedule.Minute)
		slog.Info("Next run scheduled", "at", next.Format(time.RFC3339))

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			slog.Info("Stopping daily agent")
			return nil
		case <-timer.C:
			a.RunOnce(ctx)
		}
	}
}

// RunOnce executes one full cycle for today. Every failure is logged and
// the cycle is skipped; the scheduler keeps running.
func (a *Agent) RunOnce(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Daily run failed, skipping cycle", "panic", r)
		}
	}()

	date := time.Now().Format("2006-01-02")
	slog.Info("Starting daily run", "date", date)

	snap := a.loadSnapshot(ctx, date)
	sel := a.analyzer.Analyze(snap)

	if a.picks != nil && !sel.Empty() {
		if err := a.picks.SaveSelection(ctx, sel); err != nil {
			slog.Error("Failed to persist selection", "date", date, "error", err)
		}
	}

	if err := a.notifier.SendSelection(ctx, sel); err != nil {
		slog.Error("Failed to deliver selection", "date", date, "error", err)
	}

	a.mu.Lock()
	a.last = sel
	a.ran = true
	a.mu.Unlock()

	slog.Info("Daily run completed", "date", date, "picks", len(sel.Picks))
}

// loadSnapshot returns today's snapshot, from cache when a valid one
// exists, otherwise freshly collected (and cached for re-runs).
func (a *Agent) loadSnapshot(ctx context.Context, date string) *models.DailySnapshot {
	if a.cache != nil {
		cached, err := a.cache.GetSnapshot(ctx, date)
		if err != nil {
			slog.Error("Snapshot cache lookup failed", "date", date, "error", err)
		} else if cached != nil {
			slog.Info("Using cached snapshot", "date", date)
			return cached
		}
	}

	snap := a.collector.Collect(ctx, date)

	// An all-empty snapshot usually means the API was down; caching it
	// would block retries until the TTL expires.
	if a.cache != nil && !snap.Empty() {
		if err := a.cache.StoreSnapshot(ctx, snap, a.snapshotTTL); err != nil {
			slog.Error("Failed to cache snapshot", "date", date, "error", err)
		}
	}
	return snap
}

// LastSelection returns the most recent selection and whether a run has
// completed yet.
func (a *Agent) LastSelection() (models.Selection, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.last, a.ran
}

// RegisterHTTP mounts the agent's data endpoints on the health server mux.
func (a *Agent) RegisterHTTP(mux *http.ServeMux) {
	mux.HandleFunc("/picks", func(w http.ResponseWriter, r *http.Request) {
		sel, ok := a.LastSelection()
		w.Header().Set("Content-Type", "application/json")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "no run completed yet"})
			return
		}
		_ = json.NewEncoder(w).Encode(sel)
	})
}

// nextRun computes the next occurrence of hour:minute after now.
func nextRun(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
