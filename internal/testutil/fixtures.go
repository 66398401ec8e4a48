package testutil

import (
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
)

// Session options
type SessionOption func(*domain.Session)

func WithDescription(d string) SessionOption {
	return func(s *domain.Session) {
		s.Description = d
	}
}

// NewTestSession builds a finished session of the given length.
func NewTestSession(category string, start time.Time, length time.Duration, opts ...SessionOption) domain.Session {
	end := start.Add(length)
	s := domain.Session{
		Category: category,
		Start:    start,
		End:      &end,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Ledger options
type LedgerOption func(*domain.Ledger)

func WithCategories(names ...string) LedgerOption {
	return func(l *domain.Ledger) {
		l.Categories = append(l.Categories, names...)
	}
}

func WithSessions(sessions ...domain.Session) LedgerOption {
	return func(l *domain.Ledger) {
		l.Sessions = append(l.Sessions, sessions...)
	}
}

func WithActive(category string, start time.Time) LedgerOption {
	return func(l *domain.Ledger) {
		l.Active = &domain.Session{Category: category, Start: start}
	}
}

func NewTestLedger(opts ...LedgerOption) *domain.Ledger {
	l := &domain.Ledger{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}
