package ignore

import "errors"

// Error definitions for ignore package.
var (
	// ErrInvalidPattern is returned when the config-file pattern does not compile.
	ErrInvalidPattern = errors.New("invalid config file pattern")
)
