package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Saturday mid-afternoon, a fixed reference point for all range tests.
var testNow = time.Date(2026, 3, 14, 15, 0, 0, 0, time.Local)

func TestParseRange(t *testing.T) {
	for _, in := range []string{"all", "today", "yesterday", "week", "month", "year"} {
		r, err := ParseRange(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, Range(in), r)
	}
}

func TestParseRange_Invalid(t *testing.T) {
	for _, in := range []string{"", "Today", "fortnight", "2026-03-14"} {
		_, err := ParseRange(in)
		require.Error(t, err, "input %q", in)
		assert.Contains(t, err.Error(), "unknown range")
	}
}

func TestRangeContains(t *testing.T) {
	day := func(offset int) time.Time { return testNow.AddDate(0, 0, offset) }

	cases := []struct {
		name  string
		r     Range
		start time.Time
		want  bool
	}{
		{"all distant past", RangeAll, day(-4000), true},
		{"all future", RangeAll, day(30), true},

		{"today same day", RangeToday, testNow.Add(-6 * time.Hour), true},
		{"today midnight", RangeToday, time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local), true},
		{"today yesterday", RangeToday, day(-1), false},
		{"today tomorrow", RangeToday, day(1), false},

		{"yesterday match", RangeYesterday, day(-1), true},
		{"yesterday today", RangeYesterday, testNow, false},
		{"yesterday two days ago", RangeYesterday, day(-2), false},

		{"week today", RangeWeek, testNow, true},
		{"week 7 days ago", RangeWeek, day(-7), true},
		{"week 8 days ago", RangeWeek, day(-8), false},
		{"week future", RangeWeek, day(3), true},

		{"month 28 days ago", RangeMonth, day(-28), true},
		{"month 29 days ago", RangeMonth, day(-29), false},

		{"year 365 days ago", RangeYear, day(-365), true},
		{"year 366 days ago", RangeYear, day(-366), false},
		{"year future", RangeYear, day(100), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.r.Contains(tc.start, testNow))
		})
	}
}

func TestRangeContains_DayBoundaryNotClock(t *testing.T) {
	// Just past midnight seven calendar days back is still "week" even though
	// more than 7*24h of clock time have passed; the cutoff is the date.
	start := time.Date(2026, 3, 7, 0, 1, 0, 0, time.Local)
	assert.True(t, RangeWeek.Contains(start, testNow))
}
