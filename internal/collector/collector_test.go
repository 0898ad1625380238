package collector

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Vodeneev/autobet/internal/pkg/config"
	"github.com/Vodeneev/autobet/internal/pkg/enums"
	"github.com/Vodeneev/autobet/internal/pkg/models"
)

func TestClientFetchEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-API-Key"); got != "secret" {
			t.Errorf("api key header = %q, want %q", got, "secret")
		}
		if got := r.URL.Query().Get("sport"); got != "football" {
			t.Errorf("sport query = %q, want football", got)
		}
		if got := r.URL.Query().Get("date"); got != "2026-08-29" {
			t.Errorf("date query = %q, want 2026-08-29", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"response": []any{
				map[string]any{"league": map[string]any{"name": "Serie A"}},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(&config.SportsAPIConfig{
		BaseURL: srv.URL,
		APIKey:  "secret",
		Timeout: 5 * time.Second,
	})

	events, err := client.FetchEvents(context.Background(), enums.Football, "2026-08-29")
	if err != nil {
		t.Fatalf("FetchEvents() error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if league, _ := events[0]["league"].(map[string]any); league["name"] != "Serie A" {
		t.Errorf("decoded event = %v", events[0])
	}
}

func TestClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(&config.SportsAPIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second})
	if _, err := client.FetchEvents(context.Background(), enums.Tennis, "2026-08-29"); err == nil {
		t.Error("FetchEvents() should fail on non-200 status")
	}
}

func TestNewClientUnconfigured(t *testing.T) {
	if c := NewClient(&config.SportsAPIConfig{}); c != nil {
		t.Error("NewClient without base URL should return nil")
	}
}

// failingSource errors for football, serves basketball, and returns
// nothing for the rest.
type failingSource struct{}

func (failingSource) FetchEvents(_ context.Context, sport enums.Sport, _ string) ([]models.RawEvent, error) {
	switch sport {
	case enums.Football:
		return nil, context.DeadlineExceeded
	case enums.Basketball:
		return []models.RawEvent{{"id": 1.0}}, nil
	default:
		return nil, nil
	}
}

func TestCollectBestEffort(t *testing.T) {
	snap := NewCollector(failingSource{}, nil).Collect(context.Background(), "2026-08-29")

	if snap.Date != "2026-08-29" {
		t.Errorf("date = %q", snap.Date)
	}
	if got := snap.EventsFor(enums.Football); len(got) != 0 {
		t.Errorf("failed sport should contribute empty list, got %v", got)
	}
	if got := snap.EventsFor(enums.Basketball); len(got) != 1 {
		t.Errorf("basketball events = %v, want 1", got)
	}
	if got := snap.EventsFor(enums.Tennis); len(got) != 0 {
		t.Errorf("tennis should be empty, got %v", got)
	}
}

func TestCollectConfiguredSports(t *testing.T) {
	c := NewCollector(failingSource{}, []enums.Sport{enums.Basketball})
	snap := c.Collect(context.Background(), "2026-08-29")

	if got := snap.EventsFor(enums.Basketball); len(got) != 1 {
		t.Errorf("basketball events = %v, want 1", got)
	}
	if _, ok := snap.Events[enums.Football]; ok {
		t.Error("football was fetched despite not being configured")
	}
	if len(snap.Events) != 1 {
		t.Errorf("got %d sports in snapshot, want only the configured one", len(snap.Events))
	}
}
