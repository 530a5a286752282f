package walker

import "errors"

// Error definitions for walker package.
var (
	// ErrWalkRoot is returned when the root directory cannot be listed.
	ErrWalkRoot = errors.New("failed to read root directory")

	// SkipDir can be returned by a WalkFunc to skip the subdirectories of the
	// directory it was called for. It is never returned by Walk.
	SkipDir = errors.New("skip this directory")
)
