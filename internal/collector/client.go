package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/Vodeneev/autobet/internal/pkg/config"
	"github.com/Vodeneev/autobet/internal/pkg/enums"
	"github.com/Vodeneev/autobet/internal/pkg/models"
)

// SportSource fetches one day's raw events for a sport.
type SportSource interface {
	FetchEvents(ctx context.Context, sport enums.Sport, date string) ([]models.RawEvent, error)
}

// Client fetches daily fixtures with odds from the sports API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new sports API client. Returns nil when no base URL
// is configured.
func NewClient(cfg *config.SportsAPIConfig) *Client {
	if cfg == nil || cfg.BaseURL == "" {
		return nil
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// fixturesResponse is the envelope the API wraps event lists in. Events
// stay untyped: their shape differs per sport and is only read through the
// extract package.
type fixturesResponse struct {
	Response []models.RawEvent `json:"response"`
}

// FetchEvents fetches the fixtures-with-odds list for one sport and date.
func (c *Client) FetchEvents(ctx context.Context, sport enums.Sport, date string) ([]models.RawEvent, error) {
	if c == nil {
		return nil, fmt.Errorf("sports API client is not configured")
	}

	u, err := url.Parse(c.baseURL + "/fixtures")
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	q := u.Query()
	q.Set("sport", sport.GetSportInfo().Alias)
	q.Set("date", date)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s fixtures: %w", sport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
	}

	var fixtures fixturesResponse
	if err := json.NewDecoder(resp.Body).Decode(&fixtures); err != nil {
		return nil, fmt.Errorf("failed to decode %s fixtures: %w", sport, err)
	}

	return fixtures.Response, nil
}
