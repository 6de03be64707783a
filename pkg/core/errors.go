package core

import "errors"

// Common errors.
var (
	// ErrNotFound is returned when an operation references a note id
	// that is not in the collection.
	ErrNotFound = errors.New("note not found")
)
