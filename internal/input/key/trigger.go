package key

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTrigger indicates a trigger that can never match an event.
var ErrInvalidTrigger = errors.New("invalid trigger")

// Trigger is the predicate a binding places on physical events.
type Trigger struct {
	// Kind must equal the event kind.
	Kind Kind

	// Value must equal the event phase, unless it is ValueAny.
	Value Value

	// Modifiers must equal the event modifier set exactly,
	// unless AnyModifier is set.
	Modifiers Modifier

	// AnyModifier ignores the event modifier set entirely.
	AnyModifier bool
}

// On creates a trigger for kind/value with an exact modifier set.
func On(kind Kind, value Value, mods Modifier) Trigger {
	return Trigger{Kind: kind, Value: value, Modifiers: mods}
}

// OnPress creates a press trigger with an exact modifier set.
func OnPress(kind Kind, mods Modifier) Trigger {
	return On(kind, ValuePress, mods)
}

// OnAny creates a trigger that ignores held modifiers.
func OnAny(kind Kind, value Value) Trigger {
	return Trigger{Kind: kind, Value: value, AnyModifier: true}
}

// Matches reports whether the event satisfies the trigger.
//
// Modifier comparison is set equality: an event holding {shift} does not
// match a trigger requiring {shift, ctrl} or {}. Modifier keys used as the
// primary Kind are compared by Kind like any other key.
func (t Trigger) Matches(e Event) bool {
	if t.Kind != e.Kind {
		return false
	}
	if !t.Value.Accepts(e.Value) {
		return false
	}
	return t.AnyModifier || t.Modifiers == e.Modifiers
}

// Validate checks that the trigger is well-formed.
func (t Trigger) Validate() error {
	if !t.Kind.IsValid() {
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidTrigger, t.Kind)
	}
	if !t.Value.IsValid() {
		return fmt.Errorf("%w: %s has no value", ErrInvalidTrigger, t.Kind)
	}
	if !t.Modifiers.IsValid() {
		return fmt.Errorf("%w: %s has unknown modifier bits %#x", ErrInvalidTrigger, t.Kind, uint8(t.Modifiers))
	}
	if t.AnyModifier && t.Modifiers != ModNone {
		return fmt.Errorf("%w: %s combines any with explicit modifiers", ErrInvalidTrigger, t.Kind)
	}
	return nil
}

// WithKind returns a copy of the trigger bound to a different kind.
func (t Trigger) WithKind(k Kind) Trigger {
	t.Kind = k
	return t
}

// String returns the canonical form accepted by ParseTrigger, for example
// "ctrl+shift+S:PRESS" or "any+ESC:PRESS".
func (t Trigger) String() string {
	var b strings.Builder
	if t.AnyModifier {
		b.WriteString("any+")
	}
	for _, m := range t.Modifiers.Names() {
		b.WriteString(m)
		b.WriteByte('+')
	}
	b.WriteString(t.Kind.String())
	b.WriteByte(':')
	b.WriteString(t.Value.String())
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (t Trigger) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Trigger) UnmarshalText(text []byte) error {
	parsed, err := ParseTrigger(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
