package dispatcher

import (
	"errors"
	"fmt"
)

// Dispatcher errors.
var (
	// ErrUnknownCommand indicates no handler is registered for a command.
	ErrUnknownCommand = errors.New("dispatcher: unknown command")

	// ErrInvalidInvocation indicates an invocation without a command.
	ErrInvalidInvocation = errors.New("dispatcher: invalid invocation")

	// ErrPanic indicates the handler panicked.
	ErrPanic = errors.New("dispatcher: handler panic")

	// ErrTimeout indicates the handler did not finish before the deadline.
	ErrTimeout = errors.New("dispatcher: handler timeout")

	// ErrModalActive indicates a modal operator tried to start while
	// another one is running.
	ErrModalActive = errors.New("dispatcher: modal already active")

	// ErrEndModal may be returned by a modal handler to finish the modal
	// operator without a CANCEL or CONFIRM binding.
	ErrEndModal = errors.New("dispatcher: end modal")
)

// ModalRequest is returned by a handler, through StartModal, to enter a
// modal operator. While it is active, invocations resolved from Keymap go
// to Handler.
type ModalRequest struct {
	Keymap  string
	Handler HandlerFunc
}

func (r *ModalRequest) Error() string {
	return fmt.Sprintf("dispatcher: start modal %s", r.Keymap)
}

// StartModal returns the request a handler uses to start a modal operator
// driven by the named modal keymap.
func StartModal(keymap string, h HandlerFunc) error {
	return &ModalRequest{Keymap: keymap, Handler: h}
}
