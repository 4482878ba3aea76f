package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec        = errors.New("empty trigger specification")
	ErrInvalidSpec      = errors.New("invalid trigger specification")
	ErrUnmatchedBracket = errors.New("unmatched bracket in trigger specification")
)

// ParseTrigger parses a trigger specification.
//
// Supported formats:
//   - Identifier: "S", "ESC", "LEFTMOUSE", "NUMPAD_ENTER" (phase defaults to PRESS)
//   - With phase: "LEFTMOUSE:CLICK", "TIMER0:ANY", "LEFT_SHIFT:RELEASE"
//   - With modifiers: "ctrl+S", "shift+ctrl+Z", "oskey+Q"
//   - Any modifier: "any+ESC", "any+RIGHTMOUSE:ANY"
//   - Vim-style: "<C-s>", "<C-S-z>", "<D-q>:RELEASE"
func ParseTrigger(spec string) (Trigger, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Trigger{}, ErrEmptySpec
	}

	body, value, err := splitValue(spec)
	if err != nil {
		return Trigger{}, err
	}

	var (
		mods    Modifier
		anyMod  bool
		keyPart string
	)
	if strings.HasPrefix(body, "<") {
		if !strings.HasSuffix(body, ">") {
			return Trigger{}, fmt.Errorf("%w: %q", ErrUnmatchedBracket, spec)
		}
		mods, keyPart, err = parseVimStyle(body[1 : len(body)-1])
	} else {
		mods, anyMod, keyPart, err = parseModifierStyle(body)
	}
	if err != nil {
		return Trigger{}, err
	}

	kind := KindFromName(keyPart)
	if kind == KindNone {
		return Trigger{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
	}

	t := Trigger{Kind: kind, Value: value, Modifiers: mods, AnyModifier: anyMod}
	if err := t.Validate(); err != nil {
		return Trigger{}, err
	}
	return t, nil
}

// ParseEvent parses an event specification using the trigger grammar.
// The "any" modifier is rejected since events always carry a concrete
// modifier set.
func ParseEvent(spec string) (Event, error) {
	t, err := ParseTrigger(spec)
	if err != nil {
		return Event{}, err
	}
	if t.AnyModifier {
		return Event{}, fmt.Errorf("%w: events cannot use any modifier", ErrInvalidSpec)
	}
	return NewEvent(t.Kind, t.Value, t.Modifiers), nil
}

// splitValue separates an optional ":VALUE" suffix.
func splitValue(spec string) (string, Value, error) {
	idx := strings.LastIndex(spec, ":")
	if idx < 0 {
		return spec, ValuePress, nil
	}
	body := strings.TrimSpace(spec[:idx])
	name := strings.TrimSpace(spec[idx+1:])
	if body == "" {
		return "", ValueNone, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
	}
	v := ValueFromName(name)
	if v == ValueNone {
		return "", ValueNone, fmt.Errorf("%w: unknown value %q", ErrInvalidSpec, name)
	}
	return body, v, nil
}

// parseVimStyle parses notation like "C-s", "C-S-z", "Esc".
func parseVimStyle(inner string) (Modifier, string, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return ModNone, "", ErrInvalidSpec
	}

	parts := strings.Split(inner, "-")
	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "c":
			mods = mods.With(ModCtrl)
		case "a":
			mods = mods.With(ModAlt)
		case "s":
			mods = mods.With(ModShift)
		case "d", "m":
			mods = mods.With(ModOSKey)
		default:
			return ModNone, "", fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}
	return mods, strings.TrimSpace(parts[len(parts)-1]), nil
}

// parseModifierStyle parses "ctrl+shift+S" notation. The pseudo-modifier
// "any" sets AnyModifier.
func parseModifierStyle(body string) (Modifier, bool, string, error) {
	parts := strings.Split(body, "+")
	var (
		mods   Modifier
		anyMod bool
	)
	for _, p := range parts[:len(parts)-1] {
		p = strings.TrimSpace(p)
		if strings.EqualFold(p, "any") {
			anyMod = true
			continue
		}
		mod := ModifierFromName(p)
		if mod == ModNone {
			return ModNone, false, "", fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}
	keyPart := strings.TrimSpace(parts[len(parts)-1])
	if keyPart == "" {
		return ModNone, false, "", fmt.Errorf("%w: missing key in %q", ErrInvalidSpec, body)
	}
	return mods, anyMod, keyPart, nil
}

// MustParseTrigger parses a trigger specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParseTrigger(spec string) Trigger {
	t, err := ParseTrigger(spec)
	if err != nil {
		panic("invalid trigger specification: " + spec + ": " + err.Error())
	}
	return t
}

// MustParseEvent parses an event specification and panics on error.
func MustParseEvent(spec string) Event {
	e, err := ParseEvent(spec)
	if err != nil {
		panic("invalid event specification: " + spec + ": " + err.Error())
	}
	return e
}

// NormalizeSpec parses and re-formats a trigger specification to its
// canonical form.
func NormalizeSpec(spec string) (string, error) {
	t, err := ParseTrigger(spec)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}
