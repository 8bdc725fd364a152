package store

import "errors"

// Shared error kinds for the store layer. Callers branch on these with
// errors.Is; anything else is a resource/access failure wrapped with
// context.
var (
	// ErrInvalidArgument means a required field was blank or an id was
	// out of range. The operation never reached the database.
	ErrInvalidArgument = errors.New("store: invalid argument")
	// ErrNotFound means the requested row does not exist.
	ErrNotFound = errors.New("store: record not found")
	// ErrDuplicate means an insert violated a uniqueness constraint.
	ErrDuplicate = errors.New("store: duplicate entry")
)
