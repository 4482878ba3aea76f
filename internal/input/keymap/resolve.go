package keymap

// State is the UI state the resolver selects keymaps from.
type State struct {
	// Editor is the active editor type, such as "VIEW_3D".
	Editor string

	// Region is the region type under the pointer, such as "WINDOW".
	Region string

	// Modal names the modal keymap of the operation that owns input.
	// Empty when no modal operation is running.
	Modal string

	// Tools names tool and gizmo keymaps active in the region, most
	// specific first.
	Tools []string

	// Modes names mode keymaps, such as "Mesh" or "Object Mode", most
	// specific first.
	Modes []string

	// Regions names generic region keymaps the region installs, such as
	// "View2D" or "Header".
	Regions []string
}

// Resolve returns the keymaps eligible to match in state, most specific
// first:
//
//  1. the modal keymap named by State.Modal
//  2. tool keymaps named by State.Tools
//  3. mode keymaps named by State.Modes
//  4. editor keymaps whose scope applies to State.Editor and State.Region
//  5. region keymaps named by State.Regions
//  6. window keymaps
//
// Named keymaps are skipped when unknown, in a different layer, or scoped
// to another editor or region. Each keymap appears at most once.
func (t *Table) Resolve(state State) []*Keymap {
	if t == nil {
		return nil
	}

	out := make([]*Keymap, 0, 8)
	seen := make(map[*Keymap]bool, 8)
	add := func(km *Keymap) {
		if !seen[km] {
			seen[km] = true
			out = append(out, km)
		}
	}
	named := func(names []string, layer Layer) {
		for _, name := range names {
			km := t.byName[name]
			if km == nil || km.Layer != layer {
				continue
			}
			if !km.Scope.Applies(state.Editor, state.Region) {
				continue
			}
			add(km)
		}
	}

	if state.Modal != "" {
		if km := t.byName[state.Modal]; km != nil && km.Layer == LayerModal {
			add(km)
		}
	}
	named(state.Tools, LayerTool)
	named(state.Modes, LayerMode)
	for _, km := range t.editor {
		if km.Scope.Applies(state.Editor, state.Region) {
			add(km)
		}
	}
	named(state.Regions, LayerRegion)
	for _, km := range t.window {
		if km.Scope.Applies(state.Editor, state.Region) {
			add(km)
		}
	}

	return out
}
