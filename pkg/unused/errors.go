package unused

import "errors"

// ErrInvalidEntryPoint is returned when an entry-point glob is malformed.
var ErrInvalidEntryPoint = errors.New("invalid entry point pattern")
