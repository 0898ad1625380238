// Package collector assembles the daily snapshot of raw events the
// analyzer consumes, one source fetch per supported sport.
package collector

import (
	"context"
	"log/slog"

	"github.com/Vodeneev/autobet/internal/pkg/enums"
	"github.com/Vodeneev/autobet/internal/pkg/models"
)

// Collector gathers raw events for the configured sports.
type Collector struct {
	source SportSource
	sports []enums.Sport
}

// NewCollector creates a collector over the given sports. An empty list
// means every supported sport.
func NewCollector(source SportSource, sports []enums.Sport) *Collector {
	if len(sports) == 0 {
		sports = enums.GetAllSports()
	}
	return &Collector{source: source, sports: sports}
}

// Collect fetches the raw event lists for the configured sports for the
// given date.
// A source that fails or returns nothing contributes an empty list; one
// bad sport never aborts the snapshot.
func (c *Collector) Collect(ctx context.Context, date string) *models.DailySnapshot {
	snap := &models.DailySnapshot{
		Date:   date,
		Events: make(map[enums.Sport][]models.RawEvent),
	}

	for _, sport := range c.sports {
		events, err := c.source.FetchEvents(ctx, sport, date)
		if err != nil {
			slog.Error("Failed to fetch events, continuing with empty list",
				"sport", sport, "date", date, "error", err)
			snap.Events[sport] = []models.RawEvent{}
			continue
		}
		slog.Info("Fetched events", "sport", sport, "count", len(events))
		snap.Events[sport] = events
	}

	return snap
}
