package key

import (
	"fmt"
	"strings"
)

// Value is the phase of an input event.
type Value uint8

const (
	// ValueNone indicates an unset phase. It is never valid on a trigger.
	ValueNone Value = iota

	// ValueAny matches every phase when used on a trigger. Continuous
	// signals such as timers and NDOF motion are delivered with ValueAny.
	ValueAny

	// ValuePress is a key or button going down.
	ValuePress

	// ValueRelease is a key or button going up.
	ValueRelease

	// ValueClick is a press followed by a release without dragging.
	ValueClick

	// ValueDoubleClick is a second press shortly after a click.
	ValueDoubleClick
)

var valueNames = [...]string{
	ValueNone:        "NOTHING",
	ValueAny:         "ANY",
	ValuePress:       "PRESS",
	ValueRelease:     "RELEASE",
	ValueClick:       "CLICK",
	ValueDoubleClick: "DOUBLE_CLICK",
}

// String returns the canonical phase identifier.
func (v Value) String() string {
	if int(v) < len(valueNames) {
		return valueNames[v]
	}
	return fmt.Sprintf("Value(%d)", v)
}

// ValueFromName returns the Value for a name (case-insensitive).
// Returns ValueNone if the name is not recognized.
func ValueFromName(name string) Value {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "ANY":
		return ValueAny
	case "PRESS":
		return ValuePress
	case "RELEASE":
		return ValueRelease
	case "CLICK":
		return ValueClick
	case "DOUBLE_CLICK", "DOUBLECLICK", "DBL_CLICK":
		return ValueDoubleClick
	default:
		return ValueNone
	}
}

// IsValid returns true for every phase except ValueNone.
func (v Value) IsValid() bool {
	return v > ValueNone && v <= ValueDoubleClick
}

// Accepts reports whether a trigger phase v accepts an event phase.
func (v Value) Accepts(event Value) bool {
	return v == ValueAny || v == event
}
