package domain

import (
	"fmt"
	"time"
)

// Ledger is the whole tracked state of one user: the registered categories,
// the session currently being tracked (if any) and every finished session.
// Sessions holds closed sessions only, in the order they were recorded;
// Active is the single open one. At most one session is open at a time and
// that rule is enforced here, not by callers.
type Ledger struct {
	Categories []string
	Active     *Session
	Sessions   []Session
}

// AddCategory registers a new category name. Names are case-sensitive,
// must be non-empty and must not already exist.
func (l *Ledger) AddCategory(name string) error {
	if name == "" {
		return fmt.Errorf("category name must not be empty")
	}
	if l.HasCategory(name) {
		return fmt.Errorf("category %q: %w", name, ErrDuplicateCategory)
	}
	l.Categories = append(l.Categories, name)
	return nil
}

// HasCategory reports whether name is registered.
func (l *Ledger) HasCategory(name string) bool {
	for _, c := range l.Categories {
		if c == name {
			return true
		}
	}
	return false
}

// Start opens a new session on the given category at the given time. The
// category must be registered and no other session may be open. The start
// time is taken as given; starting in the past or future is allowed.
func (l *Ledger) Start(category string, at time.Time) error {
	if !l.HasCategory(category) {
		return fmt.Errorf("category %q: %w", category, ErrUnknownCategory)
	}
	if l.Active != nil {
		return fmt.Errorf("%w: %q since %s", ErrAlreadyTracking, l.Active.Category, FormatTimestamp(l.Active.Start))
	}
	l.Active = &Session{Category: category, Start: normalize(at)}
	return nil
}

// Stop closes the open session at the given time, attaches the optional
// description and moves it to the finished history. It returns the closed
// session. The end may not precede the start; equal is allowed.
func (l *Ledger) Stop(at time.Time, description string) (Session, error) {
	if l.Active == nil {
		return Session{}, ErrNotTracking
	}
	end := normalize(at)
	if end.Before(l.Active.Start) {
		return Session{}, fmt.Errorf("end %s is before start %s", FormatTimestamp(end), FormatTimestamp(l.Active.Start))
	}
	done := *l.Active
	done.End = &end
	done.Description = description
	l.Sessions = append(l.Sessions, done)
	l.Active = nil
	return done, nil
}

// Cancel discards the open session without recording it and returns what
// was dropped.
func (l *Ledger) Cancel() (Session, error) {
	if l.Active == nil {
		return Session{}, ErrNotTracking
	}
	dropped := *l.Active
	l.Active = nil
	return dropped, nil
}

// Record appends an already-finished session. The open session, if any, is
// not touched.
func (l *Ledger) Record(category string, start, end time.Time, description string) error {
	if !l.HasCategory(category) {
		return fmt.Errorf("category %q: %w", category, ErrUnknownCategory)
	}
	s, e := normalize(start), normalize(end)
	if e.Before(s) {
		return fmt.Errorf("end %s is before start %s", FormatTimestamp(e), FormatTimestamp(s))
	}
	l.Sessions = append(l.Sessions, Session{Category: category, Start: s, End: &e, Description: description})
	return nil
}

// Status returns the open session, or nil when none is being tracked.
func (l *Ledger) Status() *Session {
	return l.Active
}
