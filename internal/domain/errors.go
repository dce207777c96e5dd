package domain

import "errors"

// Sentinel errors for the backend-facing paths. Callers on the page swallow
// them; the CLI and diagnostics endpoint report them.
var (
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrMalformedResponse  = errors.New("malformed backend response")
	ErrNoStatusMessage    = errors.New("backend status carries no message")
)
