package dispatcher

import (
	"context"
	"fmt"

	"github.com/dshills/bindery/internal/input/key"
	"github.com/dshills/bindery/internal/input/keymap"
)

// Invocation is one resolved command ready to run.
type Invocation struct {
	// Command is the operator id or modal pseudo-command.
	Command string

	// Args are the binding's arguments.
	Args keymap.Args

	// Keymap names the keymap the binding was found in.
	Keymap string

	// Event is the input event that triggered the command.
	Event key.Event
}

// FromResult builds an invocation from a handled lookup result.
func FromResult(res keymap.Result, ev key.Event) Invocation {
	inv := Invocation{
		Command: res.Command(),
		Args:    res.Args(),
		Event:   ev,
	}
	if res.Keymap != nil {
		inv.Keymap = res.Keymap.Name
	}
	return inv
}

// String returns a compact representation for logs.
func (i Invocation) String() string {
	if i.Args.Len() == 0 {
		return fmt.Sprintf("%s (%s)", i.Command, i.Keymap)
	}
	return fmt.Sprintf("%s%s (%s)", i.Command, i.Args, i.Keymap)
}

// HandlerFunc runs a command. Returning StartModal enters a modal operator.
type HandlerFunc func(ctx context.Context, inv Invocation) error
