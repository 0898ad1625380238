package oddsmath

import (
	"math"
	"testing"

	"github.com/Vodeneev/autobet/internal/pkg/models"
)

const eps = 1e-9

func TestImpliedProbabilityEqualOdds(t *testing.T) {
	for _, odds := range []float64{1.5, 2.0, 3.3, 10} {
		p := ImpliedProbability(models.OddsPair{Home: odds, Away: odds})
		if p.Home != 0.5 || p.Away != 0.5 {
			t.Errorf("equal odds %v: got {%v, %v}, want {0.5, 0.5}", odds, p.Home, p.Away)
		}
	}
}

func TestImpliedProbabilityBothSides(t *testing.T) {
	p := ImpliedProbability(models.OddsPair{Home: 1.8, Away: 4.5})

	wHome, wAway := 1/1.8, 1/4.5
	wantHome := wHome / (wHome + wAway) // ~0.7143
	wantAway := wAway / (wHome + wAway) // ~0.2857

	if math.Abs(p.Home-wantHome) > eps || math.Abs(p.Away-wantAway) > eps {
		t.Errorf("got {%v, %v}, want {%v, %v}", p.Home, p.Away, wantHome, wantAway)
	}
	if math.Abs(p.Home+p.Away-1) > eps {
		t.Errorf("probabilities should sum to 1, got %v", p.Home+p.Away)
	}
}

func TestImpliedProbabilityOneSided(t *testing.T) {
	// The side without odds is the complement of the quoted side,
	// not a renormalized or defaulted value.
	tests := []struct {
		name     string
		odds     models.OddsPair
		wantHome float64
		wantAway float64
	}{
		{"home only at evens", models.OddsPair{Home: 2.0}, 0.5, 0.5},
		{"home only favorite", models.OddsPair{Home: 1.25}, 0.8, 0.2},
		{"away only favorite", models.OddsPair{Away: 1.25}, 0.2, 0.8},
		{"away side junk odds", models.OddsPair{Home: 4.0, Away: 1.0}, 0.25, 0.75},
	}
	for _, tt := range tests {
		p := ImpliedProbability(tt.odds)
		if math.Abs(p.Home-tt.wantHome) > eps || math.Abs(p.Away-tt.wantAway) > eps {
			t.Errorf("%s: got {%v, %v}, want {%v, %v}", tt.name, p.Home, p.Away, tt.wantHome, tt.wantAway)
		}
	}
}

func TestImpliedProbabilityNoSignal(t *testing.T) {
	for _, odds := range []models.OddsPair{{}, {Home: 1.0, Away: 0.9}, {Home: -2}} {
		p := ImpliedProbability(odds)
		if p.Home != 0.5 || p.Away != 0.5 {
			t.Errorf("odds %+v: got {%v, %v}, want uniform prior", odds, p.Home, p.Away)
		}
	}
}
