package key

import "strings"

// Modifier is a set of held modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << (iota - 1)

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModOSKey indicates the platform key (Cmd on macOS, Super/Win elsewhere).
	ModOSKey

	modAll = ModShift | ModCtrl | ModAlt | ModOSKey
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasShift returns true if Shift is held.
func (m Modifier) HasShift() bool {
	return m.Has(ModShift)
}

// HasCtrl returns true if Control is held.
func (m Modifier) HasCtrl() bool {
	return m.Has(ModCtrl)
}

// HasAlt returns true if Alt is held.
func (m Modifier) HasAlt() bool {
	return m.Has(ModAlt)
}

// HasOSKey returns true if the platform key is held.
func (m Modifier) HasOSKey() bool {
	return m.Has(ModOSKey)
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// IsValid returns true if m only contains known modifier bits.
func (m Modifier) IsValid() bool {
	return m&^modAll == 0
}

// Names returns the canonical names of the held modifiers in a fixed
// order: ctrl, alt, shift, oskey.
func (m Modifier) Names() []string {
	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "ctrl")
	}
	if m.HasAlt() {
		parts = append(parts, "alt")
	}
	if m.HasShift() {
		parts = append(parts, "shift")
	}
	if m.HasOSKey() {
		parts = append(parts, "oskey")
	}
	return parts
}

// String returns a representation like "ctrl+shift".
func (m Modifier) String() string {
	return strings.Join(m.Names(), "+")
}

// modifierNameMap maps modifier names (lowercase) to Modifier values.
var modifierNameMap = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"c":       ModCtrl,
	"alt":     ModAlt,
	"a":       ModAlt,
	"option":  ModAlt,
	"opt":     ModAlt,
	"shift":   ModShift,
	"s":       ModShift,
	"oskey":   ModOSKey,
	"os":      ModOSKey,
	"super":   ModOSKey,
	"meta":    ModOSKey,
	"m":       ModOSKey,
	"cmd":     ModOSKey,
	"command": ModOSKey,
	"win":     ModOSKey,
	"d":       ModOSKey, // as in <D-s>
}

// ModifierFromName returns the Modifier for a given name (case-insensitive).
// Returns ModNone if the name is not recognized.
func ModifierFromName(name string) Modifier {
	if m, ok := modifierNameMap[strings.ToLower(strings.TrimSpace(name))]; ok {
		return m
	}
	return ModNone
}

// ParseModifiers parses a modifier string like "ctrl+alt" or "C-A".
// Unknown names are ignored.
func ParseModifiers(s string) Modifier {
	s = strings.ToLower(s)
	var result Modifier

	var parts []string
	if strings.Contains(s, "+") {
		parts = strings.Split(s, "+")
	} else if strings.Contains(s, "-") {
		parts = strings.Split(s, "-")
	} else {
		parts = []string{s}
	}

	for _, part := range parts {
		if mod := ModifierFromName(part); mod != ModNone {
			result = result.With(mod)
		}
	}

	return result
}
