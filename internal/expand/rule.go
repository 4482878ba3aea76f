package expand

import (
	"github.com/dshills/bindery/internal/input/key"
	"github.com/dshills/bindery/internal/input/keymap"
)

// Predicate decides whether a rule is enabled for a parameter set.
type Predicate func(Params) bool

// Always enables a rule unconditionally.
func Always(Params) bool { return true }

// Legacy enables a rule in the legacy scheme.
func Legacy(p Params) bool { return p.Legacy }

// Modern enables a rule outside the legacy scheme.
func Modern(p Params) bool { return !p.Legacy }

// Apple enables a rule on Apple platforms.
func Apple(p Params) bool { return p.Apple }

// Not negates a predicate.
func Not(pred Predicate) Predicate {
	return func(p Params) bool { return !pred(p) }
}

// And enables a rule only when every predicate holds.
func And(preds ...Predicate) Predicate {
	return func(p Params) bool {
		for _, pred := range preds {
			if !pred(p) {
				return false
			}
		}
		return true
	}
}

// Rule is a binding tagged with the predicate that enables it.
type Rule struct {
	Binding keymap.Binding
	When    Predicate
}

// Enabled reports whether the rule applies to p. A nil predicate is Always.
func (r Rule) Enabled(p Params) bool {
	return r.When == nil || r.When(p)
}

// Filter returns the bindings of enabled rules in declaration order.
func Filter(rules []Rule, p Params) []keymap.Binding {
	out := make([]keymap.Binding, 0, len(rules))
	for _, r := range rules {
		if r.Enabled(p) {
			out = append(out, r.Binding.Clone())
		}
	}
	return out
}

// Only returns rules gated by pred, combined with any existing predicate.
func Only(pred Predicate, rules ...Rule) []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		if r.When == nil {
			r.When = pred
		} else {
			r.When = And(pred, r.When)
		}
		out[i] = r
	}
	return out
}

// Concat joins rule groups in order.
func Concat(groups ...[]Rule) []Rule {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	out := make([]Rule, 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// Modifier shorthands for the default keymaps.
const (
	none  = key.ModNone
	shift = key.ModShift
	ctrl  = key.ModCtrl
	alt   = key.ModAlt
	oskey = key.ModOSKey
)

// item is an always-enabled rule.
func item(command string, trigger key.Trigger, args ...keymap.Arg) Rule {
	return Rule{Binding: keymap.Binding{
		Command: command,
		Trigger: trigger,
		Args:    keymap.NewArgs(args...),
	}}
}

// press is a PRESS trigger with exact modifiers.
func press(kind key.Kind, mods key.Modifier) key.Trigger {
	return key.OnPress(kind, mods)
}

// on is a trigger for any phase with exact modifiers.
func on(kind key.Kind, value key.Value, mods key.Modifier) key.Trigger {
	return key.On(kind, value, mods)
}

// anyMod is a trigger that ignores modifiers.
func anyMod(kind key.Kind, value key.Value) key.Trigger {
	return key.OnAny(kind, value)
}

// modal is a pseudo-command rule for modal keymaps.
func modal(command string, trigger key.Trigger) Rule {
	return item(command, trigger)
}

// prop is a command argument.
func prop(name string, value any) keymap.Arg {
	return keymap.A(name, value)
}

// props builds nested arguments for composite commands.
func props(args ...keymap.Arg) keymap.Args {
	return keymap.NewArgs(args...)
}
