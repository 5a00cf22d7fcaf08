package domain

import "errors"

// Domain errors represent error conditions in the pomo domain.
// They can be checked with errors.Is.
var (
	// ErrAlreadyRunning is returned when Start() is called on a running session.
	ErrAlreadyRunning = errors.New("pomo: already running")

	// ErrNotRunning is returned when Stop() is called on a stopped session.
	ErrNotRunning = errors.New("pomo: not running")

	// ErrShutdownTimeout is returned when graceful shutdown times out.
	ErrShutdownTimeout = errors.New("pomo: shutdown timeout")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("pomo: invalid configuration")

	// ErrUnknownRecordFormat is returned for a record format other than csv, sqlite or none.
	ErrUnknownRecordFormat = errors.New("pomo: unknown record format")

	// ErrMalformedRecord is returned when a stored record cannot be parsed.
	ErrMalformedRecord = errors.New("pomo: malformed record")
)
