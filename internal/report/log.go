package report

import (
	"sort"
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
)

// DayLog returns the finished sessions whose start falls on day's local
// calendar date, most recent first. Sessions starting at the same second keep
// the order they were recorded in.
func DayLog(led *domain.Ledger, day time.Time) []domain.Session {
	return sortedFilter(led.Sessions, func(s domain.Session) bool {
		return sameDate(s.Start, day)
	})
}

// Log returns the finished sessions inside the range, most recent first, with
// the same tie rule as DayLog.
func Log(led *domain.Ledger, r Range, now time.Time) []domain.Session {
	return sortedFilter(led.Sessions, func(s domain.Session) bool {
		return r.Contains(s.Start, now)
	})
}

// OnlyCategory narrows sessions to a single category, keeping their order.
func OnlyCategory(sessions []domain.Session, category string) []domain.Session {
	out := make([]domain.Session, 0, len(sessions))
	for _, s := range sessions {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

func sortedFilter(sessions []domain.Session, keep func(domain.Session) bool) []domain.Session {
	var out []domain.Session
	for _, s := range sessions {
		if keep(s) {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.After(out[j].Start)
	})
	return out
}
