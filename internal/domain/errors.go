package domain

import "errors"

var (
	// ErrMalformedBuffer reports a buffer with fewer lines, or shorter lines,
	// than the configured sites reference. It aborts the run before any trial.
	ErrMalformedBuffer = errors.New("malformed buffer")
	// ErrSearchSpaceOverflow reports a combination count that does not fit
	// in 64 bits.
	ErrSearchSpaceOverflow = errors.New("search space overflow")
	// ErrInvalidSite reports a site with an empty alphabet or an impossible
	// position.
	ErrInvalidSite = errors.New("invalid site")
	// ErrInterrupted reports a search stopped before the last combination.
	ErrInterrupted = errors.New("search interrupted")
)
