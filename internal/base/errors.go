// Package base provides base functionality and error definitions.
package base

import "errors"

// Error definitions for base package.
var (
	// Root directory errors.
	ErrInvalidRoot = errors.New("is not a valid directory")

	// Ignore rule errors.
	ErrInvalidRules = errors.New("invalid ignore rules")
)
