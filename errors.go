package grc

import "errors"

// Handle misuse is programmer error, not an operational condition, so these
// surface as panic values rather than returned errors.
var (
	errUseAfterDrop   = errors.New("grc: use of dropped handle")
	errConsumed       = errors.New("grc: Sendable already consumed")
	errWrongGoroutine = errors.New("grc: Local handle used outside its owning goroutine")
	errLocalOverflow  = errors.New("grc: local clone count overflow")
)
