package keymap

import (
	"fmt"
	"strings"

	"github.com/dshills/bindery/internal/input/key"
)

// Layer classifies a keymap into one of the resolver's precedence layers.
// Higher layers are consulted first.
type Layer uint8

const (
	// LayerNone is unset and fails validation.
	LayerNone Layer = iota
	// LayerWindow keymaps are always active.
	LayerWindow
	// LayerRegion keymaps are generic region handlers such as "View2D".
	LayerRegion
	// LayerEditor keymaps are active for one editor type.
	LayerEditor
	// LayerMode keymaps are active while an object/edit mode is on.
	LayerMode
	// LayerTool keymaps belong to tools and gizmos in the current region.
	LayerTool
	// LayerModal keymaps are active only while a modal operation owns input.
	LayerModal
)

var layerNames = [...]string{
	LayerNone:   "none",
	LayerWindow: "window",
	LayerRegion: "region",
	LayerEditor: "editor",
	LayerMode:   "mode",
	LayerTool:   "tool",
	LayerModal:  "modal",
}

// String returns the layer name.
func (l Layer) String() string {
	if int(l) < len(layerNames) {
		return layerNames[l]
	}
	return fmt.Sprintf("Layer(%d)", l)
}

// LayerFromName returns the layer for a name (case-insensitive).
func LayerFromName(name string) Layer {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range layerNames {
		if n == name {
			return Layer(i)
		}
	}
	return LayerNone
}

// MarshalText implements encoding.TextMarshaler.
func (l Layer) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Layer) UnmarshalText(text []byte) error {
	parsed := LayerFromName(string(text))
	if parsed == LayerNone {
		return fmt.Errorf("%w: unknown layer %q", ErrInvalidKeymap, text)
	}
	*l = parsed
	return nil
}

// Scope restricts where a keymap applies. Empty Editor or Region means any.
type Scope struct {
	// Editor is the editor type, such as "VIEW_3D" or "TEXT_EDITOR".
	Editor string

	// Region is the region type, such as "WINDOW" or "HEADER".
	Region string

	// Modal marks keymaps active only while a modal operation owns input.
	Modal bool
}

// Applies reports whether the scope accepts the given editor and region.
func (s Scope) Applies(editor, region string) bool {
	if s.Editor != "" && s.Editor != editor {
		return false
	}
	if s.Region != "" && s.Region != region {
		return false
	}
	return true
}

// String returns a representation like "VIEW_3D/WINDOW" or "*/WINDOW (modal)".
func (s Scope) String() string {
	editor, region := s.Editor, s.Region
	if editor == "" {
		editor = "*"
	}
	if region == "" {
		region = "*"
	}
	if s.Modal {
		return editor + "/" + region + " (modal)"
	}
	return editor + "/" + region
}

// Keymap is a named, scoped, ordered set of bindings.
//
// A keymap registered in a Table must not be modified.
type Keymap struct {
	// Name is the keymap identifier, unique within a table.
	Name string

	// Scope restricts where the keymap applies.
	Scope Scope

	// Layer is the resolver precedence class.
	Layer Layer

	// Bindings are the trigger-to-command mappings in priority order.
	Bindings []Binding

	// Source indicates where this keymap was defined.
	// Examples: "default", "user", "file:overrides.yaml"
	Source string

	// index maps event kinds to binding indices in declaration order.
	// Built when the keymap is frozen into a table.
	index map[key.Kind][]int
}

// NewKeymap creates a new keymap with the given name and layer.
func NewKeymap(name string, layer Layer) *Keymap {
	km := &Keymap{
		Name:     name,
		Layer:    layer,
		Bindings: make([]Binding, 0),
	}
	if layer == LayerModal {
		km.Scope.Modal = true
	}
	return km
}

// ForEditor sets the editor scope.
func (k *Keymap) ForEditor(editor string) *Keymap {
	k.Scope.Editor = editor
	return k
}

// ForRegion sets the region scope.
func (k *Keymap) ForRegion(region string) *Keymap {
	k.Scope.Region = region
	return k
}

// WithSource sets the source for this keymap.
func (k *Keymap) WithSource(source string) *Keymap {
	k.Source = source
	return k
}

// Add adds a binding to this keymap.
func (k *Keymap) Add(trigger key.Trigger, command string, args ...Arg) *Keymap {
	k.Bindings = append(k.Bindings, Binding{
		Command: command,
		Trigger: trigger,
		Args:    NewArgs(args...),
	})
	return k
}

// AddBinding adds a fully configured binding to this keymap.
func (k *Keymap) AddBinding(binding Binding) *Keymap {
	k.Bindings = append(k.Bindings, binding)
	return k
}

// IsModal returns true for keymaps active only during modal operations.
func (k *Keymap) IsModal() bool {
	return k.Scope.Modal
}

// Validate checks that the keymap and all bindings are valid.
func (k *Keymap) Validate() error {
	if k.Name == "" {
		return &ValidationError{Index: -1, Err: fmt.Errorf("%w: empty name", ErrInvalidKeymap)}
	}
	if k.Layer == LayerNone || int(k.Layer) >= len(layerNames) {
		return &ValidationError{Keymap: k.Name, Index: -1, Err: fmt.Errorf("%w: no layer", ErrInvalidKeymap)}
	}
	if k.Scope.Modal != (k.Layer == LayerModal) {
		return &ValidationError{Keymap: k.Name, Index: -1,
			Err: fmt.Errorf("%w: modal scope requires the modal layer", ErrInvalidKeymap)}
	}
	for i, b := range k.Bindings {
		if err := b.Validate(); err != nil {
			return &ValidationError{Keymap: k.Name, Index: i, Err: err}
		}
	}
	return nil
}

// Clone creates a deep copy of the keymap. The copy is not frozen.
func (k *Keymap) Clone() *Keymap {
	clone := &Keymap{
		Name:     k.Name,
		Scope:    k.Scope,
		Layer:    k.Layer,
		Source:   k.Source,
		Bindings: make([]Binding, len(k.Bindings)),
	}
	for i, b := range k.Bindings {
		clone.Bindings[i] = b.Clone()
	}
	return clone
}

// freeze builds the kind index. Indices stay in declaration order so the
// first-listed binding still wins.
func (k *Keymap) freeze() {
	k.index = make(map[key.Kind][]int)
	for i, b := range k.Bindings {
		k.index[b.Trigger.Kind] = append(k.index[b.Trigger.Kind], i)
	}
}

// Find returns the index of the first binding whose trigger matches the
// event, or -1.
func (k *Keymap) Find(e key.Event) int {
	if k.index != nil {
		for _, i := range k.index[e.Kind] {
			if k.Bindings[i].Trigger.Matches(e) {
				return i
			}
		}
		return -1
	}
	for i := range k.Bindings {
		if k.Bindings[i].Trigger.Matches(e) {
			return i
		}
	}
	return -1
}

// FindAny returns the first binding, in declaration order, whose trigger
// accepts any of events, and the index of the event it accepted. Both are
// -1 when nothing matches.
func (k *Keymap) FindAny(events []key.Event) (int, int) {
	best, which := -1, -1
	for j, e := range events {
		if i := k.Find(e); i >= 0 && (best < 0 || i < best) {
			best, which = i, j
		}
	}
	return best, which
}
