package report

import (
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
)

// Totals sums the tracked time of finished sessions per category, counting
// only sessions whose start falls inside the range. Every registered category
// is present in the result, zero when nothing matched; the open session is
// never counted.
func Totals(led *domain.Ledger, r Range, now time.Time) map[string]time.Duration {
	totals := make(map[string]time.Duration, len(led.Categories))
	for _, c := range led.Categories {
		totals[c] = 0
	}
	for _, s := range led.Sessions {
		if !r.Contains(s.Start, now) {
			continue
		}
		totals[s.Category] += s.Duration(now)
	}
	return totals
}
