package domain

import "time"

// Session is one tracked span of time against a category. End is nil while
// the session is still open; Description is free text attached on stop and
// empty when the user gave none.
type Session struct {
	Category    string
	Start       time.Time
	End         *time.Time
	Description string
}

// Open reports whether the session is still running.
func (s Session) Open() bool {
	return s.End == nil
}

// Duration returns the tracked length of the session. Open sessions are
// measured against now.
func (s Session) Duration(now time.Time) time.Duration {
	if s.End != nil {
		return s.End.Sub(s.Start)
	}
	return now.Sub(s.Start)
}
