package keymap

import (
	"fmt"

	"github.com/dshills/bindery/internal/input/key"
)

// Table is an immutable, ordered collection of keymaps.
//
// A table is built once from a complete keymap list and never modified;
// regenerating bindings means building a new table and swapping it in.
type Table struct {
	keymaps []*Keymap
	byName  map[string]*Keymap

	// Keymaps per auto-selected layer, in table order.
	editor []*Keymap
	window []*Keymap
}

// NewTable validates and freezes the keymaps into a table. The input is
// deep-copied, so later changes to it do not affect the table.
func NewTable(keymaps []*Keymap) (*Table, error) {
	t := &Table{
		keymaps: make([]*Keymap, 0, len(keymaps)),
		byName:  make(map[string]*Keymap, len(keymaps)),
	}

	for _, km := range keymaps {
		if km == nil {
			return nil, fmt.Errorf("%w: nil keymap", ErrInvalidKeymap)
		}
		if err := km.Validate(); err != nil {
			return nil, err
		}
		if _, exists := t.byName[km.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKeymap, km.Name)
		}

		frozen := km.Clone()
		frozen.freeze()
		t.keymaps = append(t.keymaps, frozen)
		t.byName[frozen.Name] = frozen

		switch frozen.Layer {
		case LayerEditor:
			t.editor = append(t.editor, frozen)
		case LayerWindow:
			t.window = append(t.window, frozen)
		}
	}

	return t, nil
}

// MustNewTable is like NewTable but panics on error.
func MustNewTable(keymaps []*Keymap) *Table {
	t, err := NewTable(keymaps)
	if err != nil {
		panic(err)
	}
	return t
}

// Get returns a keymap by name, or nil.
func (t *Table) Get(name string) *Keymap {
	if t == nil {
		return nil
	}
	return t.byName[name]
}

// Keymaps returns all keymaps in table order.
func (t *Table) Keymaps() []*Keymap {
	if t == nil {
		return nil
	}
	out := make([]*Keymap, len(t.keymaps))
	copy(out, t.keymaps)
	return out
}

// Len returns the number of keymaps.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keymaps)
}

// BindingCount returns the total number of bindings across all keymaps.
func (t *Table) BindingCount() int {
	if t == nil {
		return 0
	}
	n := 0
	for _, km := range t.keymaps {
		n += len(km.Bindings)
	}
	return n
}

// Lookup resolves the active keymaps for state and matches the event
// against them.
func (t *Table) Lookup(e key.Event, state State) Result {
	return Match(e, t.Resolve(state))
}

// KeysFor returns every trigger bound to command, grouped by keymap in
// table order. Useful for help output.
func (t *Table) KeysFor(command string) map[string][]key.Trigger {
	out := make(map[string][]key.Trigger)
	if t == nil {
		return out
	}
	for _, km := range t.keymaps {
		for _, b := range km.Bindings {
			if b.Command == command {
				out[km.Name] = append(out[km.Name], b.Trigger)
			}
		}
	}
	return out
}
