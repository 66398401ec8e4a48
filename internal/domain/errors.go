package domain

import "errors"

var (
	// ErrDuplicateCategory indicates an attempt to register a category
	// name that already exists.
	ErrDuplicateCategory = errors.New("category already exists")

	// ErrUnknownCategory indicates a reference to a category that was
	// never registered.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrAlreadyTracking indicates a start while a session is open.
	ErrAlreadyTracking = errors.New("a session is already being tracked")

	// ErrNotTracking indicates a stop or cancel with no open session.
	ErrNotTracking = errors.New("no session is being tracked")
)
