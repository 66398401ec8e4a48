package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/chronos/internal/domain"
)

// ErrCorruptData indicates save-file content that does not match the
// expected encoding. Nothing is recovered from a partially valid file.
var ErrCorruptData = errors.New("corrupt save data")

// ledgerDoc is the stored shape of a Ledger. Timestamps travel as
// domain.TimeLayout strings so encoding is byte-deterministic and decoding
// reproduces the exact wall-clock values.
type ledgerDoc struct {
	Categories []string     `json:"categories"`
	Active     *sessionDoc  `json:"active,omitempty"`
	Sessions   []sessionDoc `json:"sessions"`
}

type sessionDoc struct {
	Category    string `json:"category"`
	Start       string `json:"start"`
	End         string `json:"end,omitempty"`
	Description string `json:"description,omitempty"`
}

// Encode renders a ledger as canonical save-file bytes: indented JSON with a
// fixed field order and a trailing newline. Encoding the same ledger twice
// yields identical bytes.
func Encode(led *domain.Ledger) ([]byte, error) {
	doc := ledgerDoc{
		Categories: led.Categories,
		Sessions:   make([]sessionDoc, 0, len(led.Sessions)),
	}
	if doc.Categories == nil {
		doc.Categories = []string{}
	}
	if led.Active != nil {
		active := sessionToDoc(*led.Active)
		doc.Active = &active
	}
	for _, s := range led.Sessions {
		doc.Sessions = append(doc.Sessions, sessionToDoc(s))
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding ledger: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses bytes produced by Encode back into a ledger. Decode is the
// exact inverse: for every valid ledger, Decode(Encode(l)) reproduces l.
// Anything that does not match the encoding fails with ErrCorruptData.
func Decode(data []byte) (*domain.Ledger, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc ledgerDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("malformed save file (%v): %w", err, ErrCorruptData)
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after ledger: %w", ErrCorruptData)
	}

	led := &domain.Ledger{}
	seen := make(map[string]struct{}, len(doc.Categories))
	for _, name := range doc.Categories {
		if name == "" {
			return nil, fmt.Errorf("empty category name: %w", ErrCorruptData)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("duplicate category %q: %w", name, ErrCorruptData)
		}
		seen[name] = struct{}{}
	}
	// Empty collections stay nil so a decoded ledger compares equal to the
	// one that was encoded.
	if len(doc.Categories) > 0 {
		led.Categories = doc.Categories
	}

	if doc.Active != nil {
		s, err := sessionFromDoc(*doc.Active, seen)
		if err != nil {
			return nil, err
		}
		if s.End != nil {
			return nil, fmt.Errorf("active session has an end: %w", ErrCorruptData)
		}
		led.Active = &s
	}
	for _, d := range doc.Sessions {
		s, err := sessionFromDoc(d, seen)
		if err != nil {
			return nil, err
		}
		if s.End == nil {
			return nil, fmt.Errorf("finished session without an end: %w", ErrCorruptData)
		}
		led.Sessions = append(led.Sessions, s)
	}
	return led, nil
}

func sessionToDoc(s domain.Session) sessionDoc {
	doc := sessionDoc{
		Category:    s.Category,
		Start:       domain.FormatTimestamp(s.Start),
		Description: s.Description,
	}
	if s.End != nil {
		doc.End = domain.FormatTimestamp(*s.End)
	}
	return doc
}

func sessionFromDoc(d sessionDoc, categories map[string]struct{}) (domain.Session, error) {
	if d.Category == "" {
		return domain.Session{}, fmt.Errorf("session without a category: %w", ErrCorruptData)
	}
	if _, ok := categories[d.Category]; !ok {
		return domain.Session{}, fmt.Errorf("session references unknown category %q: %w", d.Category, ErrCorruptData)
	}
	if d.Start == "" {
		return domain.Session{}, fmt.Errorf("session without a start: %w", ErrCorruptData)
	}
	start, err := domain.ParseTimestamp(d.Start)
	if err != nil {
		return domain.Session{}, fmt.Errorf("session start (%v): %w", err, ErrCorruptData)
	}

	s := domain.Session{Category: d.Category, Start: start, Description: d.Description}
	if d.End != "" {
		end, err := domain.ParseTimestamp(d.End)
		if err != nil {
			return domain.Session{}, fmt.Errorf("session end (%v): %w", err, ErrCorruptData)
		}
		if end.Before(start) {
			return domain.Session{}, fmt.Errorf("session end %s before start %s: %w", d.End, d.Start, ErrCorruptData)
		}
		s.End = &end
	}
	return s, nil
}
