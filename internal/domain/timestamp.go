package domain

import (
	"fmt"
	"time"
)

// TimeLayout is the wall-clock format used wherever a timestamp crosses a
// boundary: command arguments, flags and the save file.
const TimeLayout = "2006-01-02T15:04:05"

// ParseTimestamp reads a TimeLayout timestamp in the host's local zone.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.ParseInLocation(TimeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: expected yyyy-mm-ddThh:mm:ss", s)
	}
	return t, nil
}

// FormatTimestamp renders t in TimeLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimeLayout)
}

// normalize clamps a timestamp to tracker resolution: local wall clock,
// whole seconds. Every timestamp stored on a Ledger goes through this.
func normalize(t time.Time) time.Time {
	return t.In(time.Local).Truncate(time.Second)
}
