package oddsmath

import "math"

// valueSteepness controls how sharply the logistic squash separates
// positive from negative expected value.
const valueSteepness = 4

// ValueScore maps a probability and the offered decimal odds to a bounded
// (0,1) attractiveness signal via sigmoid-squashed expected value per unit
// stake: ev = p*(odds-1) - (1-p). Negative EV lands below 0.5, positive EV
// above, EV of zero at exactly 0.5.
//
// Odds that are absent, non-finite or <= 1.0 make no bet possible; the
// score is then the exact 0.0 sentinel. NaN fails every comparison, so it
// needs its own check.
func ValueScore(p, odds float64) float64 {
	if math.IsNaN(odds) || math.IsInf(odds, 0) || odds <= 1.0 {
		return 0.0
	}
	ev := p*(odds-1) - (1 - p)
	return 1 / (1 + math.Exp(-valueSteepness*ev))
}
