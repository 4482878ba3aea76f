package expand

import (
	"fmt"

	"github.com/dshills/bindery/internal/input/keymap"
)

// Source is the Keymap.Source of every expanded keymap.
const Source = "default"

// Editor and region types used by the default keymaps.
const (
	EditorView3D = "VIEW_3D"
	EditorText   = "TEXT_EDITOR"
	EditorNode   = "NODE_EDITOR"

	RegionWindow = "WINDOW"
)

// builder describes one default keymap.
type builder struct {
	name   string
	layer  keymap.Layer
	editor string
	region string
	rules  func(Params) []Rule
}

// builders lists the default keymaps in table order.
var builders = []builder{
	// Window, screen, areas, regions.
	{name: "Window", layer: keymap.LayerWindow, rules: windowRules},
	{name: "Screen", layer: keymap.LayerWindow, rules: screenRules},
	{name: "Screen Editing", layer: keymap.LayerWindow, rules: screenEditingRules},
	{name: "Header", layer: keymap.LayerRegion, rules: headerRules},
	{name: "View2D", layer: keymap.LayerRegion, rules: view2DRules},
	{name: "View2D Buttons List", layer: keymap.LayerRegion, rules: view2DButtonsListRules},
	{name: "User Interface", layer: keymap.LayerRegion, rules: userInterfaceRules},
	{name: "Frames", layer: keymap.LayerRegion, rules: framesRules},

	// Editors.
	{name: "3D View Generic", layer: keymap.LayerEditor, editor: EditorView3D, region: RegionWindow, rules: view3DGenericRules},
	{name: "3D View", layer: keymap.LayerEditor, editor: EditorView3D, region: RegionWindow, rules: view3DRules},
	{name: "Text Generic", layer: keymap.LayerEditor, editor: EditorText, region: RegionWindow, rules: textGenericRules},
	{name: "Text", layer: keymap.LayerEditor, editor: EditorText, region: RegionWindow, rules: textRules},

	// Modes.
	{name: "Object Mode", layer: keymap.LayerMode, rules: objectModeRules},
	{name: "Mesh", layer: keymap.LayerMode, rules: meshRules},

	// Modal maps.
	{name: "Transform Modal Map", layer: keymap.LayerModal, rules: transformModalRules},
	{name: "Standard Modal Map", layer: keymap.LayerModal, rules: standardModalRules},
	{name: "View3D Fly Modal", layer: keymap.LayerModal, rules: flyModalRules},
	{name: "View3D Rotate Modal", layer: keymap.LayerModal, rules: rotateModalRules},
	{name: "Paint Stroke Modal", layer: keymap.LayerModal, rules: paintStrokeModalRules},

	// Tools and gizmos.
	{name: "Gizmos", layer: keymap.LayerTool, rules: gizmosRules},
	{name: "View3D Navigate", layer: keymap.LayerTool, editor: EditorView3D, region: RegionWindow, rules: gizmoTweakValueRules},
	{name: "View3D Navigate Tweak Modal Map", layer: keymap.LayerModal, rules: gizmoTweakModalRules},
	{name: "Backdrop Transform Widget", layer: keymap.LayerTool, editor: EditorNode, region: RegionWindow, rules: gizmoTweakValueRules},
	{name: "Backdrop Transform Widget Tweak Modal Map", layer: keymap.LayerModal, rules: gizmoTweakModalRules},
	{name: "Backdrop Crop Widget", layer: keymap.LayerTool, editor: EditorNode, region: RegionWindow, rules: gizmoTweakValueRules},
	{name: "Backdrop Crop Widget Tweak Modal Map", layer: keymap.LayerModal, rules: gizmoTweakModalRules},
}

// Names returns the default keymap names in table order.
func Names() []string {
	names := make([]string, len(builders))
	for i, b := range builders {
		names[i] = b.name
	}
	return names
}

// Expand builds the default keymaps for p. The result depends only on p:
// two calls with equal params return equal keymaps in the same order.
func Expand(p Params) ([]*keymap.Keymap, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	keymaps := make([]*keymap.Keymap, 0, len(builders))
	for _, b := range builders {
		km := keymap.NewKeymap(b.name, b.layer).
			ForEditor(b.editor).
			ForRegion(b.region).
			WithSource(Source)
		for _, binding := range Filter(b.rules(p), p) {
			km.AddBinding(binding)
		}
		if err := km.Validate(); err != nil {
			return nil, fmt.Errorf("expand %s: %w", b.name, err)
		}
		keymaps = append(keymaps, km)
	}
	return keymaps, nil
}

// ExpandTable expands p and freezes the result into a table.
func ExpandTable(p Params) (*keymap.Table, error) {
	keymaps, err := Expand(p)
	if err != nil {
		return nil, err
	}
	return keymap.NewTable(keymaps)
}

// ExpandWith expands p and appends extra keymaps, such as user files,
// after the defaults. An extra keymap whose name matches a default
// replaces it in place.
func ExpandWith(p Params, extra []*keymap.Keymap) (*keymap.Table, error) {
	keymaps, err := Expand(p)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(keymaps))
	for i, km := range keymaps {
		index[km.Name] = i
	}
	for _, km := range extra {
		if km == nil {
			continue
		}
		if i, ok := index[km.Name]; ok {
			keymaps[i] = km
			continue
		}
		index[km.Name] = len(keymaps)
		keymaps = append(keymaps, km)
	}
	return keymap.NewTable(keymaps)
}
