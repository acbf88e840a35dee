package session

import "errors"

var (
	// ErrUninitialized is returned when the store is reached without a live scope.
	ErrUninitialized = errors.New("session scope not initialized")
	// ErrNoActiveSession means no identity or no questions are stored yet.
	ErrNoActiveSession = errors.New("no active quiz session")
	// ErrCursorOutOfRange means a jump target is not an index into the question set.
	ErrCursorOutOfRange = errors.New("question index out of range")
)
