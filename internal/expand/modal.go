package expand

import (
	"github.com/dshills/bindery/internal/input/key"
	"github.com/dshills/bindery/internal/input/keymap"
)

func transformModalRules(Params) []Rule {
	return []Rule{
		modal(keymap.CommandConfirm, anyMod(key.KindLeftMouse, key.ValuePress)),
		modal(keymap.CommandConfirm, anyMod(key.KindReturn, key.ValuePress)),
		modal(keymap.CommandConfirm, anyMod(key.KindNumpadEnter, key.ValuePress)),
		modal(keymap.CommandCancel, anyMod(key.KindRightMouse, key.ValuePress)),
		modal(keymap.CommandCancel, anyMod(key.KindEsc, key.ValuePress)),
		modal("AXIS_X", press(key.KindX, none)),
		modal("AXIS_Y", press(key.KindY, none)),
		modal("AXIS_Z", press(key.KindZ, none)),
		modal("PLANE_X", press(key.KindX, shift)),
		modal("PLANE_Y", press(key.KindY, shift)),
		modal("PLANE_Z", press(key.KindZ, shift)),
		modal("CONS_OFF", press(key.KindC, none)),
		modal("TRANSLATE", press(key.KindG, none)),
		modal("ROTATE", press(key.KindR, none)),
		modal("RESIZE", press(key.KindS, none)),
		modal("SNAP_TOGGLE", press(key.KindTab, shift)),
		modal("SNAP_INV_ON", anyMod(key.KindLeftCtrl, key.ValuePress)),
		modal("SNAP_INV_OFF", anyMod(key.KindLeftCtrl, key.ValueRelease)),
		modal("SNAP_INV_ON", anyMod(key.KindRightCtrl, key.ValuePress)),
		modal("SNAP_INV_OFF", anyMod(key.KindRightCtrl, key.ValueRelease)),
		modal("ADD_SNAP", press(key.KindA, none)),
		modal("REMOVE_SNAP", press(key.KindA, alt)),
		modal("PROPORTIONAL_SIZE_UP", press(key.KindPageUp, none)),
		modal("PROPORTIONAL_SIZE_DOWN", press(key.KindPageDown, none)),
		modal("PROPORTIONAL_SIZE_UP", press(key.KindPageUp, shift)),
		modal("PROPORTIONAL_SIZE_DOWN", press(key.KindPageDown, shift)),
		modal("PROPORTIONAL_SIZE_UP", press(key.KindWheelDownMouse, none)),
		modal("PROPORTIONAL_SIZE_DOWN", press(key.KindWheelUpMouse, none)),
		modal("PROPORTIONAL_SIZE_UP", press(key.KindWheelDownMouse, shift)),
		modal("PROPORTIONAL_SIZE_DOWN", press(key.KindWheelUpMouse, shift)),
		modal("PROPORTIONAL_SIZE", on(key.KindTrackpadPan, key.ValueAny, none)),
		modal("EDGESLIDE_EDGE_NEXT", press(key.KindWheelDownMouse, alt)),
		modal("EDGESLIDE_PREV_NEXT", press(key.KindWheelUpMouse, alt)),
		modal("AUTOIK_CHAIN_LEN_UP", press(key.KindPageUp, shift)),
		modal("AUTOIK_CHAIN_LEN_DOWN", press(key.KindPageDown, shift)),
		modal("AUTOIK_CHAIN_LEN_UP", press(key.KindWheelDownMouse, shift)),
		modal("AUTOIK_CHAIN_LEN_DOWN", press(key.KindWheelUpMouse, shift)),
		modal("INSERTOFS_TOGGLE_DIR", press(key.KindT, none)),
	}
}

func standardModalRules(Params) []Rule {
	return []Rule{
		modal(keymap.CommandCancel, anyMod(key.KindEsc, key.ValuePress)),
		modal("APPLY", anyMod(key.KindLeftMouse, key.ValueAny)),
		modal("APPLY", anyMod(key.KindReturn, key.ValuePress)),
		modal("APPLY", anyMod(key.KindNumpadEnter, key.ValuePress)),
		modal("SNAP", anyMod(key.KindLeftCtrl, key.ValuePress)),
		modal("SNAP_OFF", anyMod(key.KindLeftCtrl, key.ValueRelease)),
	}
}

func flyModalRules(Params) []Rule {
	return []Rule{
		modal(keymap.CommandCancel, anyMod(key.KindRightMouse, key.ValueAny)),
		modal(keymap.CommandCancel, anyMod(key.KindEsc, key.ValuePress)),
		modal(keymap.CommandConfirm, anyMod(key.KindLeftMouse, key.ValueAny)),
		modal(keymap.CommandConfirm, anyMod(key.KindReturn, key.ValuePress)),
		modal(keymap.CommandConfirm, anyMod(key.KindSpace, key.ValuePress)),
		modal(keymap.CommandConfirm, anyMod(key.KindNumpadEnter, key.ValuePress)),
		modal("ACCELERATE", anyMod(key.KindNumpadPlus, key.ValuePress)),
		modal("DECELERATE", anyMod(key.KindNumpadMinus, key.ValuePress)),
		modal("ACCELERATE", anyMod(key.KindWheelUpMouse, key.ValuePress)),
		modal("DECELERATE", anyMod(key.KindWheelDownMouse, key.ValuePress)),
		modal(keymap.CommandConfirm, on(key.KindTrackpadPan, key.ValueAny, none)),
		modal("PAN_ENABLE", anyMod(key.KindMiddleMouse, key.ValuePress)),
		modal("PAN_DISABLE", anyMod(key.KindMiddleMouse, key.ValueRelease)),
		modal("FORWARD", press(key.KindW, none)),
		modal("BACKWARD", press(key.KindS, none)),
		modal("LEFT", press(key.KindA, none)),
		modal("RIGHT", press(key.KindD, none)),
		modal("UP", press(key.KindE, none)),
		modal("DOWN", press(key.KindQ, none)),
		modal("UP", press(key.KindR, none)),
		modal("DOWN", press(key.KindF, none)),
		modal("FORWARD", press(key.KindUpArrow, none)),
		modal("BACKWARD", press(key.KindDownArrow, none)),
		modal("LEFT", press(key.KindLeftArrow, none)),
		modal("RIGHT", press(key.KindRightArrow, none)),
		modal("AXIS_LOCK_X", press(key.KindX, none)),
		modal("AXIS_LOCK_Z", press(key.KindZ, none)),
		modal("PRECISION_ENABLE", anyMod(key.KindLeftAlt, key.ValuePress)),
		modal("PRECISION_DISABLE", anyMod(key.KindLeftAlt, key.ValueRelease)),
		modal("PRECISION_ENABLE", anyMod(key.KindLeftShift, key.ValuePress)),
		modal("PRECISION_DISABLE", anyMod(key.KindLeftShift, key.ValueRelease)),
		modal("FREELOOK_ENABLE", anyMod(key.KindLeftCtrl, key.ValuePress)),
		modal("FREELOOK_DISABLE", anyMod(key.KindLeftCtrl, key.ValueRelease)),
	}
}

func rotateModalRules(Params) []Rule {
	return []Rule{
		modal(keymap.CommandConfirm, anyMod(key.KindMiddleMouse, key.ValueRelease)),
		modal(keymap.CommandConfirm, anyMod(key.KindEsc, key.ValuePress)),
		modal("AXIS_SNAP_ENABLE", anyMod(key.KindLeftAlt, key.ValuePress)),
		modal("AXIS_SNAP_DISABLE", anyMod(key.KindLeftAlt, key.ValueRelease)),
	}
}

func paintStrokeModalRules(Params) []Rule {
	return []Rule{
		modal(keymap.CommandCancel, anyMod(key.KindEsc, key.ValuePress)),
	}
}

// Tool keymaps for gizmo groups. Each starts a tweak on left press and
// has a companion modal map driving the tweak.

func gizmosRules(Params) []Rule {
	return nil
}

func gizmoTweakValueRules(Params) []Rule {
	return gizmoTweakValue()
}

func gizmoTweakModalRules(Params) []Rule {
	return gizmoTweakModal()
}
