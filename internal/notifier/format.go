package notifier

import (
	"fmt"
	"strings"

	"github.com/Vodeneev/autobet/internal/pkg/models"
)

// FormatMessage renders the daily selection as the Telegram message body.
// One numbered line per pick; an empty selection renders the
// no-recommendation line carrying the snapshot date.
func FormatMessage(sel models.Selection) string {
	if sel.Empty() {
		return fmt.Sprintf("No recommendation today (%s).", sel.Date)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🎯 Daily picks for %s\n", sel.Date)
	for i, p := range sel.Picks {
		fmt.Fprintf(&b, "%d. [%s] %s | %s %s @ %.2f | p=%.2f conf=%.2f | %s\n",
			i+1, p.Sport.GetSportInfo().Name, p.Event,
			p.Market, p.Pick, p.Odds,
			p.Probability, p.Confidence, p.Rationale)
	}
	return strings.TrimRight(b.String(), "\n")
}
