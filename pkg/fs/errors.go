package fs

import "errors"

// Error definitions for fs package.
var (
	// ErrNotText is returned when a file cannot be decoded as UTF-8 text.
	ErrNotText = errors.New("file is not valid UTF-8 text")

	// ErrPathResolution is returned when a path cannot be made absolute.
	ErrPathResolution = errors.New("path resolution failed")
)
