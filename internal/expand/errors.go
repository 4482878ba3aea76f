package expand

import (
	"errors"
	"fmt"
)

// Errors returned by expansion.
var (
	// ErrInvalidParams indicates a parameter combination that cannot be
	// expanded into an unambiguous table.
	ErrInvalidParams = errors.New("invalid keymap parameters")

	// ErrUnknownPlatform indicates a platform name with no defaults.
	ErrUnknownPlatform = errors.New("unknown platform")
)

// ConfigError describes a rejected expansion parameter.
type ConfigError struct {
	// Param is the parameter name, such as "select_mouse".
	Param string
	// Value is the rejected value.
	Value any
	// Message describes the problem.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("keymap param %s=%v: %s", e.Param, e.Value, e.Message)
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}
