package keymap

import (
	"errors"
	"fmt"
)

// Errors returned by keymap operations.
var (
	// ErrInvalidKeymap indicates a keymap failed validation.
	ErrInvalidKeymap = errors.New("invalid keymap")

	// ErrInvalidBinding indicates a binding failed validation.
	ErrInvalidBinding = errors.New("invalid binding")

	// ErrInvalidArgs indicates an argument list failed validation.
	ErrInvalidArgs = errors.New("invalid arguments")

	// ErrDuplicateKeymap indicates two keymaps in one table share a name.
	ErrDuplicateKeymap = errors.New("duplicate keymap name")

	// ErrUnsupportedFormat indicates a file extension with no codec.
	ErrUnsupportedFormat = errors.New("unsupported keymap file format")

	// ErrKeymapNotFound indicates a keymap name absent from a table.
	ErrKeymapNotFound = errors.New("keymap not found")
)

// ValidationError locates a validation failure inside a keymap.
type ValidationError struct {
	// Keymap is the name of the keymap that failed.
	Keymap string
	// Index is the binding index, or -1 for keymap-level failures.
	Index int
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("keymap %q: %v", e.Keymap, e.Err)
	}
	return fmt.Sprintf("keymap %q binding %d: %v", e.Keymap, e.Index, e.Err)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
