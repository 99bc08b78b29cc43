package domain

import "errors"

var (
	// ErrNotFound means the id (or id + owner pair) does not resolve to a
	// stored motorbike. Callers can tell "nothing there" from a broken store.
	ErrNotFound = errors.New("motorbike not found")

	// ErrInvalidArgument means the caller supplied malformed criteria,
	// such as a negative skip or take.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDanglingReference means a stored owner id does not resolve to an
	// existing user or company row.
	ErrDanglingReference = errors.New("owner reference does not resolve")
)
