package notifier

import (
	"context"
	"strings"
	"testing"

	"github.com/Vodeneev/autobet/internal/pkg/enums"
	"github.com/Vodeneev/autobet/internal/pkg/models"
)

func TestFormatMessage(t *testing.T) {
	sel := models.Selection{
		Date: "2026-08-29",
		Picks: []models.Candidate{
			{
				Sport: enums.Football, Market: "1X2", Pick: "2",
				Event: "Inter vs Milan", Odds: 4.5,
				Probability: 0.366, Confidence: 0.649,
				Rationale: "Milan favored, value 0.93",
			},
			{
				Sport: enums.Basketball, Market: "ML", Pick: "Home",
				Event: "Lakers vs Celtics", Odds: 1.7,
				Probability: 0.532, Confidence: 0.476,
				Rationale: "Lakers favored, value 0.40",
			},
		},
	}

	got := FormatMessage(sel)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header plus 2 picks:\n%s", len(lines), got)
	}
	if !strings.Contains(lines[0], "2026-08-29") {
		t.Errorf("header %q missing date", lines[0])
	}

	want1 := "1. [Football] Inter vs Milan | 1X2 2 @ 4.50 | p=0.37 conf=0.65 | Milan favored, value 0.93"
	if lines[1] != want1 {
		t.Errorf("line 1:\n got %q\nwant %q", lines[1], want1)
	}
	if !strings.HasPrefix(lines[2], "2. [Basketball] Lakers vs Celtics") {
		t.Errorf("line 2 = %q", lines[2])
	}
}

func TestFormatMessageEmptySelection(t *testing.T) {
	got := FormatMessage(models.Selection{Date: "2026-08-29"})
	want := "No recommendation today (2026-08-29)."
	if got != want {
		t.Errorf("FormatMessage(empty) = %q, want %q", got, want)
	}
}

func TestNilNotifierIsSafe(t *testing.T) {
	var n *TelegramNotifier
	if err := n.SendSelection(context.Background(), models.Selection{Date: "2026-08-29"}); err != nil {
		t.Errorf("nil notifier SendSelection() = %v, want nil", err)
	}
}
