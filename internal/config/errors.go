package config

import (
	"errors"

	"github.com/dshills/bindery/internal/config/loader"
)

// Errors returned by configuration operations.
var (
	// ErrFileNotFound indicates an explicitly named configuration file
	// doesn't exist.
	ErrFileNotFound = errors.New("config file not found")

	// ErrInvalidValue indicates a setting outside its allowed range.
	ErrInvalidValue = errors.New("invalid config value")
)

// ParseError represents an error while decoding a configuration file.
type ParseError = loader.ParseError
