package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse config file")
	ErrConfigNotFound  = errors.New("config file not found")
	// Configuration validation errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)
