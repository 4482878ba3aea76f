package expand

import (
	"github.com/dshills/bindery/internal/input/key"
	"github.com/dshills/bindery/internal/input/keymap"
)

// numbersRow is the number row in physical layout order, 1 through 0.
var numbersRow = []key.Kind{
	key.KindOne, key.KindTwo, key.KindThree, key.KindFour, key.KindFive,
	key.KindSix, key.KindSeven, key.KindEight, key.KindNine, key.KindZero,
}

// opMenu opens a named menu.
func opMenu(menu string, trigger key.Trigger) Rule {
	return item("wm.call_menu", trigger, prop("name", menu))
}

// opMenuPie opens a named pie menu.
func opMenuPie(menu string, trigger key.Trigger) Rule {
	return item("wm.call_menu_pie", trigger, prop("name", menu))
}

// opPanel opens a named popup panel with extra panel arguments.
func opPanel(panel string, trigger key.Trigger, extra ...keymap.Arg) Rule {
	args := append([]keymap.Arg{prop("name", panel)}, extra...)
	return item("wm.call_panel", trigger, args...)
}

// selectActions binds the select-all family for command.
func selectActions(command string) []Rule {
	return []Rule{
		item(command, press(key.KindA, none), prop("action", "SELECT")),
		item(command, press(key.KindA, alt), prop("action", "DESELECT")),
		item(command, press(key.KindI, ctrl), prop("action", "INVERT")),
		item(command, on(key.KindA, key.ValueDoubleClick, none), prop("action", "DESELECT")),
	}
}

// subdivisionSet binds ctrl+0 through ctrl+5 to subdivision levels.
func subdivisionSet() []Rule {
	rules := make([]Rule, 0, 6)
	for level := 0; level < 6; level++ {
		rules = append(rules, item("object.subdivision_set",
			press(key.Digit(level), ctrl), prop("level", level)))
	}
	return rules
}

// gizmoTweakValue starts a gizmo tweak on left press.
func gizmoTweakValue() []Rule {
	return []Rule{
		item("gizmogroup.gizmo_tweak", anyMod(key.KindLeftMouse, key.ValuePress)),
	}
}

// gizmoTweakModal is the modal map shared by gizmo tweaks.
func gizmoTweakModal() []Rule {
	return []Rule{
		modal(keymap.CommandCancel, anyMod(key.KindEsc, key.ValuePress)),
		modal(keymap.CommandCancel, anyMod(key.KindRightMouse, key.ValuePress)),
		modal(keymap.CommandConfirm, anyMod(key.KindReturn, key.ValuePress)),
		modal(keymap.CommandConfirm, anyMod(key.KindNumpadEnter, key.ValuePress)),
		modal("PRECISION_ON", anyMod(key.KindRightShift, key.ValuePress)),
		modal("PRECISION_OFF", anyMod(key.KindRightShift, key.ValueRelease)),
		modal("PRECISION_ON", anyMod(key.KindLeftShift, key.ValuePress)),
		modal("PRECISION_OFF", anyMod(key.KindLeftShift, key.ValueRelease)),
		modal("SNAP_ON", anyMod(key.KindRightCtrl, key.ValuePress)),
		modal("SNAP_OFF", anyMod(key.KindRightCtrl, key.ValueRelease)),
		modal("SNAP_ON", anyMod(key.KindLeftCtrl, key.ValuePress)),
		modal("SNAP_OFF", anyMod(key.KindLeftCtrl, key.ValueRelease)),
	}
}

// meshSelectMode binds 1/2/3 to vertex/edge/face select mode, with ctrl
// expanding and shift extending the selection.
func meshSelectMode() []Rule {
	modes := []struct {
		kind key.Kind
		name string
	}{
		{key.KindOne, "VERT"},
		{key.KindTwo, "EDGE"},
		{key.KindThree, "FACE"},
	}

	var rules []Rule
	for _, expand := range []bool{false, true} {
		for _, extend := range []bool{false, true} {
			mods := none
			var args []keymap.Arg
			if extend {
				mods |= shift
				args = append(args, prop("use_extend", true))
			}
			if expand {
				mods |= ctrl
				args = append(args, prop("use_expand", true))
			}
			for _, m := range modes {
				modeArgs := append(append([]keymap.Arg(nil), args...), prop("type", m.name))
				rules = append(rules, item("mesh.select_mode", press(m.kind, mods), modeArgs...))
			}
		}
	}
	return rules
}

// proportionalEditing binds the proportional editing toggles. Connected
// mode adds alt+O.
func proportionalEditing(connected bool) []Rule {
	rules := []Rule{
		opMenuPie("VIEW3D_MT_proportional_editing_falloff_pie", press(key.KindO, shift)),
		item("wm.context_toggle_enum", press(key.KindO, none),
			prop("data_path", "tool_settings.proportional_edit"),
			prop("value_1", "DISABLED"),
			prop("value_2", "ENABLED")),
	}
	if connected {
		rules = append(rules, item("wm.context_toggle_enum", press(key.KindO, alt),
			prop("data_path", "tool_settings.proportional_edit"),
			prop("value_1", "DISABLED"),
			prop("value_2", "CONNECTED")))
	}
	return rules
}
