// Package oddsmath converts decimal odds into probabilities and value
// signals for the candidate scoring pipeline.
package oddsmath

import "github.com/Vodeneev/autobet/internal/pkg/models"

// Probability is a two-way outcome distribution. Home + Away == 1 whenever
// at least one side carried usable odds.
type Probability struct {
	Home float64
	Away float64
}

// ImpliedProbability derives a probability distribution from a pair of
// decimal odds.
//
// Both sides quoted: the inverse odds are normalized so they sum to 1
// (multiplicative vig removal). One side quoted: that side keeps its raw
// inverse odds and the other side becomes the complement, so the missing
// side is inferred, not defaulted to 0.5. No usable odds at all: uniform
// prior.
func ImpliedProbability(odds models.OddsPair) Probability {
	var wHome, wAway float64
	if odds.HasHome() {
		wHome = 1 / odds.Home
	}
	if odds.HasAway() {
		wAway = 1 / odds.Away
	}

	switch {
	case wHome > 0 && wAway > 0:
		total := wHome + wAway
		return Probability{Home: wHome / total, Away: wAway / total}
	case wHome > 0:
		return Probability{Home: wHome, Away: 1 - wHome}
	case wAway > 0:
		return Probability{Home: 1 - wAway, Away: wAway}
	default:
		return Probability{Home: 0.5, Away: 0.5}
	}
}
