package analyzer

import (
	"fmt"
	"math"
	"time"

	"github.com/Vodeneev/autobet/internal/pkg/enums"
	"github.com/Vodeneev/autobet/internal/pkg/extract"
	"github.com/Vodeneev/autobet/internal/pkg/models"
	"github.com/Vodeneev/autobet/internal/pkg/oddsmath"
)

// Analyzer runs the candidate scoring pipeline over a daily snapshot.
type Analyzer struct {
	profiles map[enums.Sport]SportProfile
}

// NewAnalyzer creates an analyzer. Passing nil uses the default per-sport
// profiles.
func NewAnalyzer(profiles map[enums.Sport]SportProfile) *Analyzer {
	if profiles == nil {
		profiles = DefaultProfiles()
	}
	return &Analyzer{profiles: profiles}
}

// Analyze converts the snapshot into the final ranked selection:
// build candidates, apply odds-band penalties, pick the diversified top.
func (a *Analyzer) Analyze(snap *models.DailySnapshot) models.Selection {
	candidates := a.BuildCandidates(snap)
	AdjustConfidence(candidates)
	picks := SelectTop(candidates)

	date := ""
	if snap != nil {
		date = snap.Date
	}
	return models.Selection{Date: date, Picks: picks}
}

// BuildCandidates produces exactly one candidate per raw event, walking
// sports in a stable order. Malformed events degrade to defaults and still
// yield a candidate; only an event missing from the input yields nothing.
func (a *Analyzer) BuildCandidates(snap *models.DailySnapshot) []models.Candidate {
	if snap == nil {
		return nil
	}
	var candidates []models.Candidate
	for _, sport := range enums.GetAllSports() {
		profile, ok := a.profiles[sport]
		if !ok {
			continue
		}
		for _, ev := range snap.EventsFor(sport) {
			candidates = append(candidates, buildCandidate(profile, ev))
		}
	}
	return candidates
}

// buildCandidate scores one raw event and emits the better of its two sides.
func buildCandidate(profile SportProfile, ev models.RawEvent) models.Candidate {
	league := extract.String(ev, "Unknown", "league", "name")
	home := extract.String(ev, "Home", "teams", "home", "name")
	away := extract.String(ev, "Away", "teams", "away", "name")
	startTime := extract.Time(ev, time.Time{}, "fixture", "date")
	odds := eventOdds(ev)

	implied := oddsmath.ImpliedProbability(odds)

	lwHome := profile.LeagueWeight(league)
	lwAway := 1 - lwHome
	formHome, formAway := profile.Form(ev)

	pHome := weightImplied*implied.Home + weightForm*formHome + weightLeague*lwHome
	pAway := weightImplied*implied.Away + weightForm*formAway + weightLeague*lwAway

	valueHome := oddsmath.ValueScore(pHome, odds.Home)
	valueAway := oddsmath.ValueScore(pAway, odds.Away)

	// Ties go to the home side.
	pick, team := profile.HomePick, home
	sideOdds, p, value := odds.Home, pHome, valueHome
	if valueAway > valueHome {
		pick, team = profile.AwayPick, away
		sideOdds, p, value = odds.Away, pAway, valueAway
	}

	return models.Candidate{
		Sport:       profile.Sport,
		Market:      profile.Market,
		Pick:        pick,
		Event:       fmt.Sprintf("%s vs %s", home, away),
		League:      league,
		StartTime:   startTime,
		Odds:        sideOdds,
		Probability: round3(p),
		Confidence:  round3(0.5*p + 0.5*value),
		Rationale:   fmt.Sprintf("%s favored, value %.2f", team, value),
	}
}

// eventOdds reads the decimal odds through the fragile fixed-index path
// the upstream API guarantees by ordering: bookmakers[0].bets[0].values[0]
// is the home side, values[1] the away side. Any mismatch along the path
// means that side is absent; a value that is present but does not coerce
// to a float invalidates the whole pair.
func eventOdds(ev models.RawEvent) models.OddsPair {
	home, homeBad := oddAt(ev, 0)
	away, awayBad := oddAt(ev, 1)
	if homeBad || awayBad {
		return models.OddsPair{}
	}
	return models.OddsPair{Home: home, Away: away}
}

func oddAt(ev models.RawEvent, side int) (odd float64, bad bool) {
	v, ok := extract.Dig(ev, "bookmakers", 0, "bets", 0, "values", side, "odd")
	if !ok {
		return 0, false
	}
	f, ok := extract.AsFloat(v)
	if !ok {
		return 0, true
	}
	return f, false
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
