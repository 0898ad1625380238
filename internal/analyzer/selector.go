package analyzer

import (
	"sort"

	"github.com/Vodeneev/autobet/internal/pkg/enums"
	"github.com/Vodeneev/autobet/internal/pkg/models"
)

const (
	maxPicks = 3
	sportCap = 2
)

// SelectTop ranks candidates by descending confidence (stable, so equal
// confidences keep their input order) and greedily admits up to three.
//
// Diversification is soft: a candidate is skipped while its sport already
// has two admitted and fewer than three picks are in. When the capped walk
// runs out of candidates before filling three slots, the best skipped ones
// complete the selection regardless of sport. A third same-sport pick is
// possible exactly when no other sport can fill the slot.
func SelectTop(candidates []models.Candidate) []models.Candidate {
	ranked := make([]models.Candidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Confidence > ranked[j].Confidence
	})

	picked := make([]models.Candidate, 0, maxPicks)
	taken := make([]bool, len(ranked))
	counts := make(map[enums.Sport]int)

	for i, c := range ranked {
		if len(picked) >= maxPicks {
			break
		}
		if counts[c.Sport] >= sportCap && len(picked) < maxPicks {
			continue
		}
		picked = append(picked, c)
		counts[c.Sport]++
		taken[i] = true
	}

	if len(picked) < maxPicks {
		for i, c := range ranked {
			if len(picked) >= maxPicks {
				break
			}
			if taken[i] {
				continue
			}
			picked = append(picked, c)
		}
	}

	return picked
}
