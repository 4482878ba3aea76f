package keymap

import "github.com/dshills/bindery/internal/input/key"

// Result is the outcome of matching one event.
// The zero value is unhandled.
type Result struct {
	// Keymap is the keymap containing the matched binding.
	Keymap *Keymap

	// Binding is the matched binding.
	Binding *Binding

	// Index is the binding's position within Keymap.Bindings.
	Index int
}

// Unhandled is the result for events no binding accepts.
var Unhandled = Result{Index: -1}

// Handled returns true if a binding matched.
func (r Result) Handled() bool {
	return r.Binding != nil
}

// Command returns the matched command, or "".
func (r Result) Command() string {
	if r.Binding == nil {
		return ""
	}
	return r.Binding.Command
}

// Args returns the matched arguments, or nil.
func (r Result) Args() Args {
	if r.Binding == nil {
		return nil
	}
	return r.Binding.Args
}

// String returns a description of the result for logs.
func (r Result) String() string {
	if !r.Handled() {
		return "unhandled"
	}
	return r.Keymap.Name + ": " + r.Binding.String()
}

// Match finds the first binding, across keymaps in order and bindings in
// declaration order, whose trigger accepts the event. The search stops at
// the first hit; later entries and lower keymaps are never consulted.
func Match(e key.Event, keymaps []*Keymap) Result {
	for _, km := range keymaps {
		if km == nil {
			continue
		}
		if i := km.Find(e); i >= 0 {
			return Result{
				Keymap:  km,
				Binding: &km.Bindings[i],
				Index:   i,
			}
		}
	}
	return Unhandled
}

// MatchAny is Match for a group of equivalent events, such as a physical
// button and its SELECTMOUSE form. Each keymap is searched for all of
// them before the next keymap is consulted, so a lower keymap binding the
// physical button never shadows a higher one binding the role. The event
// the binding accepted is returned with the result.
func MatchAny(events []key.Event, keymaps []*Keymap) (Result, key.Event) {
	for _, km := range keymaps {
		if km == nil {
			continue
		}
		if i, j := km.FindAny(events); i >= 0 {
			return Result{
				Keymap:  km,
				Binding: &km.Bindings[i],
				Index:   i,
			}, events[j]
		}
	}
	return Unhandled, key.Event{}
}
