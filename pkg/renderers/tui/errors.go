package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrInvalidResponse is returned when required answers are still missing
	// after the session completes.
	ErrInvalidResponse = errors.New("tui: required answers missing")
)
