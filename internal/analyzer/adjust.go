package analyzer

import "github.com/Vodeneev/autobet/internal/pkg/models"

// Odds-band penalties. The boundaries are strict: odds of exactly 1.3 or
// 5.0 are not penalized.
const (
	lowOddsCutoff   = 1.3
	highOddsCutoff  = 5.0
	lowOddsPenalty  = 0.10
	highOddsPenalty = 0.05
)

// AdjustConfidence applies the odds-band penalty to every candidate in
// place. The transform is pure per candidate and order-independent; this is
// the single mutation a candidate sees after it is built.
func AdjustConfidence(candidates []models.Candidate) {
	for i := range candidates {
		c := &candidates[i]
		switch {
		case c.Odds < lowOddsCutoff:
			c.Confidence -= lowOddsPenalty
		case c.Odds > highOddsCutoff:
			c.Confidence -= highOddsPenalty
		}
		if c.Confidence < 0 {
			c.Confidence = 0
		}
		c.Confidence = round3(c.Confidence)
	}
}
