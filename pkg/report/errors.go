package report

import "errors"

// ErrFindings is returned when a check reports at least one file.
// Commands map it to exit code 1 without printing it.
var ErrFindings = errors.New("findings reported")
