package report

import (
	"fmt"
	"time"
)

// Range selects which sessions a summary or log covers, judged by start time.
type Range string

const (
	RangeAll       Range = "all"
	RangeToday     Range = "today"
	RangeYesterday Range = "yesterday"
	RangeWeek      Range = "week"
	RangeMonth     Range = "month"
	RangeYear      Range = "year"
)

// ParseRange validates a user-supplied range keyword.
func ParseRange(s string) (Range, error) {
	switch Range(s) {
	case RangeAll, RangeToday, RangeYesterday, RangeWeek, RangeMonth, RangeYear:
		return Range(s), nil
	}
	return "", fmt.Errorf("unknown range %q: expected all, today, yesterday, week, month or year", s)
}

// Contains reports whether a session started at start falls inside the range
// relative to now. Comparison is by local calendar date: week, month and year
// reach 7, 28 and 365 whole days back from today's date. A start dated in the
// future is never excluded.
func (r Range) Contains(start, now time.Time) bool {
	switch r {
	case RangeAll:
		return true
	case RangeToday:
		return sameDate(start, now)
	case RangeYesterday:
		return sameDate(start, now.AddDate(0, 0, -1))
	case RangeWeek:
		return daysBack(start, now) <= 7
	case RangeMonth:
		return daysBack(start, now) <= 28
	case RangeYear:
		return daysBack(start, now) <= 365
	}
	return false
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// daysBack counts calendar days from t's date up to now's date, negative when
// t is dated in the future.
func daysBack(t, now time.Time) int {
	return int(dateOnly(now).Sub(dateOnly(t)).Hours() / 24)
}

// dateOnly pins a local calendar date to midnight UTC so that day arithmetic
// is unaffected by DST transitions.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
