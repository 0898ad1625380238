package models

import "github.com/Vodeneev/autobet/internal/pkg/enums"

// RawEvent is a raw fixture record exactly as the sports API returned it.
// The shape differs per sport and fields go missing routinely, so it stays
// an untyped tree and is only read through the extract package.
type RawEvent = map[string]any

// DailySnapshot is one day's worth of raw events for every supported sport.
// A sport that returned nothing (or failed to fetch) maps to an empty list.
type DailySnapshot struct {
	Date   string                     `json:"date"` // YYYY-MM-DD, passed through to delivery unchanged
	Events map[enums.Sport][]RawEvent `json:"events"`
}

// Empty reports whether the snapshot carries no events for any sport.
func (s *DailySnapshot) Empty() bool {
	if s == nil {
		return true
	}
	for _, events := range s.Events {
		if len(events) > 0 {
			return false
		}
	}
	return true
}

// EventsFor returns the raw events for a sport, treating absent keys as empty.
func (s *DailySnapshot) EventsFor(sport enums.Sport) []RawEvent {
	if s == nil || s.Events == nil {
		return nil
	}
	return s.Events[sport]
}

// Selection is the final ordered set of picks for one day, highest
// confidence first, at most three entries.
type Selection struct {
	Date  string      `json:"date"`
	Picks []Candidate `json:"picks"`
}

// Empty reports whether the selection carries no picks
func (s Selection) Empty() bool { return len(s.Picks) == 0 }
