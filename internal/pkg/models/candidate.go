package models

import (
	"time"

	"github.com/Vodeneev/autobet/internal/pkg/enums"
)

// Candidate представляет один оцененный пик по событию
type Candidate struct {
	Sport  enums.Sport `json:"sport"`
	Market string      `json:"market"` // "1X2", "ML"
	Pick   string      `json:"pick"`   // "1"/"2" for 1X2, "Home"/"Away" for ML

	Event     string    `json:"event"` // "{home} vs {away}"
	League    string    `json:"league"`
	StartTime time.Time `json:"start_time"`

	// Коэффициент выбранной стороны, 0 если у букмекера не было котировки
	Odds        float64 `json:"odds"`
	Probability float64 `json:"probability"` // blended probability of the picked side, [0,1]
	Confidence  float64 `json:"confidence"`  // ranking score after odds-band penalty, [0,1]

	Rationale string `json:"rationale"`
}

// OddsPair holds decimal odds for the two sides of a match.
// Zero means the bookmaker offered no quote for that side; anything <= 1.0
// carries no signal and is ignored by the estimator.
type OddsPair struct {
	Home float64 `json:"home"`
	Away float64 `json:"away"`
}

// HasHome reports whether the home side carries usable odds
func (o OddsPair) HasHome() bool { return o.Home > 1.0 }

// HasAway reports whether the away side carries usable odds
func (o OddsPair) HasAway() bool { return o.Away > 1.0 }
