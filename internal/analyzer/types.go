package analyzer

import (
	"strings"

	"github.com/Vodeneev/autobet/internal/pkg/enums"
	"github.com/Vodeneev/autobet/internal/pkg/models"
)

// Blend weights for the per-side probability estimate. Form currently has
// no real data source and contributes a flat 0.5, but it keeps its weight
// so a future form feed slots in without moving the contract.
const (
	weightImplied = 0.6
	weightForm    = 0.3
	weightLeague  = 0.1
)

// topTierHomeWeight is the home-side league weight when the league name
// carries a recognized top-tier marker.
const topTierHomeWeight = 0.55

// FormFunc estimates recent form for both sides of an event, each in [0,1].
type FormFunc func(ev models.RawEvent) (home, away float64)

// LeagueWeightFunc maps a league name to the home-side league weight.
// The away side always gets the complement.
type LeagueWeightFunc func(league string) float64

// SportProfile describes how candidates are built for one sport: market
// and pick labels plus the sport-specific prior functions. One generic
// builder runs over these instead of per-sport copies of the scoring code.
type SportProfile struct {
	Sport    enums.Sport
	Market   string
	HomePick string
	AwayPick string

	LeagueWeight LeagueWeightFunc
	Form         FormFunc
}

func flatForm(models.RawEvent) (float64, float64) { return 0.5, 0.5 }

func flatLeagueWeight(string) float64 { return 0.5 }

// footballLeagueWeight bumps the home side for recognized top-tier leagues.
// The substring rule applies to football only.
func footballLeagueWeight(league string) float64 {
	if strings.Contains(league, "Serie") || strings.Contains(league, "Premier") {
		return topTierHomeWeight
	}
	return 0.5
}

// DefaultProfiles returns the builder profiles for the supported sports.
// Tennis is a recognized source but has no profile yet: its (currently
// always empty) event list contributes zero candidates.
func DefaultProfiles() map[enums.Sport]SportProfile {
	return map[enums.Sport]SportProfile{
		enums.Football: {
			Sport:        enums.Football,
			Market:       "1X2",
			HomePick:     "1",
			AwayPick:     "2",
			LeagueWeight: footballLeagueWeight,
			Form:         flatForm,
		},
		enums.Basketball: {
			Sport:        enums.Basketball,
			Market:       "ML",
			HomePick:     "Home",
			AwayPick:     "Away",
			LeagueWeight: flatLeagueWeight,
			Form:         flatForm,
		},
		enums.Volleyball: {
			Sport:        enums.Volleyball,
			Market:       "ML",
			HomePick:     "Home",
			AwayPick:     "Away",
			LeagueWeight: flatLeagueWeight,
			Form:         flatForm,
		},
	}
}
