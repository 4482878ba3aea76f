package key

import (
	"fmt"
	"strings"
	"time"
)

// Event is a single physical input event as delivered by the host.
type Event struct {
	// Kind identifies the key, button or signal.
	Kind Kind

	// Value is the phase of the event.
	Value Value

	// Modifiers contains the modifier keys held when the event occurred.
	Modifiers Modifier

	// X and Y are the pointer position in window coordinates.
	// Only meaningful for pointer events.
	X, Y int

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewEvent creates an event with the current timestamp.
func NewEvent(kind Kind, value Value, mods Modifier) Event {
	return Event{
		Kind:      kind,
		Value:     value,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// Press creates a press event.
func Press(kind Kind, mods Modifier) Event {
	return NewEvent(kind, ValuePress, mods)
}

// Release creates a release event.
func Release(kind Kind, mods Modifier) Event {
	return NewEvent(kind, ValueRelease, mods)
}

// Tick creates a continuous-signal event (timer, NDOF motion) with ValueAny.
func Tick(kind Kind) Event {
	return NewEvent(kind, ValueAny, ModNone)
}

// At returns a copy of the event positioned at x, y.
func (e Event) At(x, y int) Event {
	e.X, e.Y = x, y
	return e
}

// WithValue returns a copy of the event with a different phase.
func (e Event) WithValue(v Value) Event {
	e.Value = v
	return e
}

// WithModifier returns a copy with the specified modifier added.
func (e Event) WithModifier(mod Modifier) Event {
	e.Modifiers = e.Modifiers.With(mod)
	return e
}

// IsModified returns true if any modifier is held.
func (e Event) IsModified() bool {
	return e.Modifiers != ModNone
}

// Equals returns true if two events describe the same input.
// Position and timestamp are not compared.
func (e Event) Equals(other Event) bool {
	return e.Kind == other.Kind &&
		e.Value == other.Value &&
		e.Modifiers == other.Modifiers
}

// String returns a canonical representation such as "ctrl+shift+S:PRESS".
func (e Event) String() string {
	var b strings.Builder
	for _, m := range e.Modifiers.Names() {
		b.WriteString(m)
		b.WriteByte('+')
	}
	b.WriteString(e.Kind.String())
	b.WriteByte(':')
	b.WriteString(e.Value.String())
	return b.String()
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Kind: %s, Value: %s, Modifiers: %q, X: %d, Y: %d}",
		e.Kind, e.Value, e.Modifiers.String(), e.X, e.Y)
}
