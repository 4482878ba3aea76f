package keymap

import (
	"fmt"
	"reflect"
)

// Arg is a single named argument passed to a command.
type Arg struct {
	Name  string
	Value any
}

// A creates an argument.
func A(name string, value any) Arg {
	return Arg{Name: name, Value: value}
}

// Args is an ordered mapping from argument name to literal value.
//
// Values are bool, int, float64, string, []any of those scalars, or a
// nested Args for composite commands. Insertion order is preserved through
// construction and serialization but ignored by Equal.
type Args []Arg

// NewArgs creates an argument list from pairs.
func NewArgs(pairs ...Arg) Args {
	if len(pairs) == 0 {
		return nil
	}
	out := make(Args, len(pairs))
	copy(out, pairs)
	return out
}

// Len returns the number of arguments.
func (a Args) Len() int {
	return len(a)
}

// Get returns the value for name.
func (a Args) Get(name string) (any, bool) {
	for _, arg := range a {
		if arg.Name == name {
			return arg.Value, true
		}
	}
	return nil, false
}

// Names returns argument names in insertion order.
func (a Args) Names() []string {
	names := make([]string, len(a))
	for i, arg := range a {
		names[i] = arg.Name
	}
	return names
}

// With returns a copy with name set to value. An existing argument keeps
// its position; a new one is appended.
func (a Args) With(name string, value any) Args {
	out := a.Clone()
	for i := range out {
		if out[i].Name == name {
			out[i].Value = value
			return out
		}
	}
	return append(out, Arg{Name: name, Value: value})
}

// Clone returns a deep copy.
func (a Args) Clone() Args {
	if a == nil {
		return nil
	}
	out := make(Args, len(a))
	for i, arg := range a {
		out[i] = Arg{Name: arg.Name, Value: cloneValue(arg.Value)}
	}
	return out
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case Args:
		return x.Clone()
	case []any:
		out := make([]any, len(x))
		copy(out, x)
		return out
	default:
		return v
	}
}

// Equal reports whether two argument lists hold the same names and values,
// regardless of order.
func (a Args) Equal(b Args) bool {
	if len(a) != len(b) {
		return false
	}
	for _, arg := range a {
		other, ok := b.Get(arg.Name)
		if !ok || !valueEqual(arg.Value, other) {
			return false
		}
	}
	return true
}

func valueEqual(x, y any) bool {
	xa, xok := x.(Args)
	ya, yok := y.(Args)
	if xok || yok {
		return xok && yok && xa.Equal(ya)
	}
	return reflect.DeepEqual(x, y)
}

// Validate checks names are unique and non-empty and that every value has
// a supported type.
func (a Args) Validate() error {
	seen := make(map[string]bool, len(a))
	for _, arg := range a {
		if arg.Name == "" {
			return fmt.Errorf("%w: empty argument name", ErrInvalidArgs)
		}
		if seen[arg.Name] {
			return fmt.Errorf("%w: duplicate argument %q", ErrInvalidArgs, arg.Name)
		}
		seen[arg.Name] = true
		if err := validateValue(arg.Value); err != nil {
			return fmt.Errorf("argument %q: %w", arg.Name, err)
		}
	}
	return nil
}

func validateValue(v any) error {
	switch x := v.(type) {
	case bool, int, float64, string:
		return nil
	case Args:
		return x.Validate()
	case []any:
		for i, item := range x {
			switch item.(type) {
			case bool, int, float64, string:
			default:
				return fmt.Errorf("%w: element %d has type %T", ErrInvalidArgs, i, item)
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidArgs, v)
	}
}

// String returns a compact representation like "(name=VALUE, level=2)".
func (a Args) String() string {
	s := "("
	for i, arg := range a {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s=%v", arg.Name, arg.Value)
	}
	return s + ")"
}
