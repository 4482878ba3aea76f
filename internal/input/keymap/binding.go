package keymap

import (
	"fmt"
	"strings"

	"github.com/dshills/bindery/internal/input/key"
)

// Pseudo-commands used by modal keymaps. The dispatcher's modal state
// machine consumes them instead of the command registry.
const (
	CommandCancel  = "CANCEL"
	CommandConfirm = "CONFIRM"
)

// Binding maps a physical trigger to a command and its arguments.
type Binding struct {
	// Command is the command to invoke, or a pseudo-command in modal keymaps.
	// Examples: "wm.save_mainfile", "view3d.select", "CANCEL"
	Command string

	// Trigger is the predicate on physical events.
	Trigger key.Trigger

	// Args are fixed arguments for the command.
	Args Args

	// Description provides documentation for the binding.
	Description string
}

// NewBinding creates a new binding with the given trigger and command.
func NewBinding(trigger key.Trigger, command string) Binding {
	return Binding{
		Command: command,
		Trigger: trigger,
	}
}

// WithArgs sets arguments for this binding.
func (b Binding) WithArgs(args ...Arg) Binding {
	b.Args = NewArgs(args...)
	return b
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// IsPseudo returns true if the command is an upper-case pseudo-command.
func (b Binding) IsPseudo() bool {
	return b.Command != "" && strings.ToUpper(b.Command) == b.Command && !strings.Contains(b.Command, ".")
}

// Matches reports whether the binding's trigger accepts the event.
func (b Binding) Matches(e key.Event) bool {
	return b.Trigger.Matches(e)
}

// Validate checks the binding is well-formed.
func (b Binding) Validate() error {
	if b.Command == "" {
		return fmt.Errorf("%w: empty command", ErrInvalidBinding)
	}
	if err := b.Trigger.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBinding, err)
	}
	if err := b.Args.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBinding, err)
	}
	return nil
}

// Clone returns a deep copy of the binding.
func (b Binding) Clone() Binding {
	b.Args = b.Args.Clone()
	return b
}

// Equal reports whether two bindings have the same command, trigger and
// arguments. Descriptions are ignored.
func (b Binding) Equal(other Binding) bool {
	return b.Command == other.Command &&
		b.Trigger == other.Trigger &&
		b.Args.Equal(other.Args)
}

// String returns a one-line representation.
func (b Binding) String() string {
	if len(b.Args) == 0 {
		return fmt.Sprintf("%s -> %s", b.Trigger, b.Command)
	}
	return fmt.Sprintf("%s -> %s%s", b.Trigger, b.Command, b.Args)
}
