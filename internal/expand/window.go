package expand

import (
	"github.com/dshills/bindery/internal/input/key"
)

func windowRules(Params) []Rule {
	editorSwitch := []struct {
		kind key.Kind
		area string
	}{
		{key.KindF4, "CONSOLE"},
		{key.KindF5, "VIEW_3D"},
		{key.KindF6, "GRAPH_EDITOR"},
		{key.KindF7, "PROPERTIES"},
		{key.KindF8, "SEQUENCE_EDITOR"},
		{key.KindF9, "OUTLINER"},
		{key.KindF10, "IMAGE_EDITOR"},
		{key.KindF11, "TEXT_EDITOR"},
		{key.KindF12, "DOPESHEET_EDITOR"},
	}
	var switching []Rule
	for _, s := range editorSwitch {
		switching = append(switching, item("wm.context_set_enum", press(s.kind, shift),
			prop("data_path", "area.type"), prop("value", s.area)))
	}

	const sensitivity = "user_preferences.inputs.ndof_sensitivity"

	return Concat(
		// Cmd+F for search since F-keys are awkward on Apple keyboards.
		Only(Apple,
			item("wm.read_homefile", press(key.KindN, oskey)),
			opMenu("TOPBAR_MT_file_open_recent", press(key.KindO, shift|oskey)),
			item("wm.open_mainfile", press(key.KindO, oskey)),
			item("wm.save_mainfile", press(key.KindS, oskey)),
			item("wm.save_as_mainfile", press(key.KindS, shift|oskey)),
			item("wm.quit_blender", press(key.KindQ, oskey)),
			item("wm.search_menu", press(key.KindF, oskey)),
		),
		[]Rule{
			item("wm.read_homefile", press(key.KindN, ctrl)),
			opMenu("TOPBAR_MT_file_open_recent", press(key.KindO, shift|ctrl)),
			item("wm.open_mainfile", press(key.KindO, ctrl)),
			item("wm.save_mainfile", press(key.KindS, ctrl)),
			item("wm.save_as_mainfile", press(key.KindS, shift|ctrl)),
			item("wm.quit_blender", press(key.KindQ, ctrl)),

			opMenu("SCREEN_MT_user_menu", press(key.KindQ, none)),
			item("wm.toolbar", press(key.KindSpace, none)),
		},
		switching,
		[]Rule{
			opMenu("USERPREF_MT_ndof_settings", press(key.KindNDOFButtonMenu, none)),
			item("wm.context_scale_float", press(key.KindNDOFButtonPlus, none),
				prop("data_path", sensitivity), prop("value", 1.1)),
			item("wm.context_scale_float", press(key.KindNDOFButtonMinus, none),
				prop("data_path", sensitivity), prop("value", 1.0/1.1)),
			item("wm.context_scale_float", press(key.KindNDOFButtonPlus, shift),
				prop("data_path", sensitivity), prop("value", 1.5)),
			item("wm.context_scale_float", press(key.KindNDOFButtonMinus, shift),
				prop("data_path", sensitivity), prop("value", 2.0/3.0)),
			item("info.reports_display_update", anyMod(key.KindTimerReport, key.ValueAny)),
		},
		Only(Modern,
			item("wm.doc_view_manual_ui_context", press(key.KindF1, none)),
			opMenu("TOPBAR_MT_file_specials", press(key.KindF2, none)),
			item("wm.search_menu", press(key.KindF3, none)),
			opMenu("TOPBAR_MT_window_specials", press(key.KindF4, none)),
		),
		Only(Legacy,
			item("wm.window_new", press(key.KindW, ctrl|alt)),
			item("wm.save_homefile", press(key.KindU, ctrl)),
			item("wm.open_mainfile", press(key.KindF1, none)),
			item("wm.link", press(key.KindO, ctrl|alt)),
			item("wm.append", press(key.KindF1, shift)),
			item("wm.save_mainfile", press(key.KindW, ctrl)),
			item("wm.save_as_mainfile", press(key.KindF2, none)),
			item("wm.save_as_mainfile", press(key.KindS, ctrl|alt), prop("copy", true)),
			item("wm.window_fullscreen_toggle", press(key.KindF11, alt)),
			item("wm.doc_view_manual_ui_context", press(key.KindF1, alt)),
			item("wm.redraw_timer", press(key.KindT, ctrl|alt)),
			item("wm.debug_menu", press(key.KindD, ctrl|alt)),
		),
	)
}

func screenRules(Params) []Rule {
	return Concat(
		[]Rule{
			item("screen.animation_step", anyMod(key.KindTimer0, key.ValueAny)),
			item("screen.region_blend", anyMod(key.KindTimerRegion, key.ValueAny)),

			item("screen.screen_full_area", press(key.KindSpace, ctrl)),
			item("screen.screen_full_area", press(key.KindSpace, ctrl|alt), prop("use_hide_panels", true)),
			item("screen.space_context_cycle", press(key.KindTab, ctrl), prop("direction", "NEXT")),
			item("screen.space_context_cycle", press(key.KindTab, shift|ctrl), prop("direction", "PREV")),
			item("screen.workspace_cycle", press(key.KindPageDown, ctrl), prop("direction", "NEXT")),
			item("screen.workspace_cycle", press(key.KindPageUp, ctrl), prop("direction", "PREV")),
			item("screen.region_quadview", press(key.KindQ, ctrl|alt)),
			item("screen.repeat_last", press(key.KindR, shift)),

			item("file.execute", press(key.KindReturn, none)),
			item("file.execute", press(key.KindNumpadEnter, none)),
			item("file.cancel", press(key.KindEsc, none)),

			item("ed.undo", press(key.KindZ, ctrl)),
			item("ed.redo", press(key.KindZ, shift|ctrl)),

			item("render.render", press(key.KindF12, none), prop("use_viewport", true)),
			item("render.render", press(key.KindF12, ctrl), prop("animation", true), prop("use_viewport", true)),
			item("render.view_cancel", press(key.KindEsc, none)),
			item("render.view_show", press(key.KindF11, none)),
			item("render.play_rendered_anim", press(key.KindF11, ctrl)),
		},
		Only(Legacy,
			item("ed.undo_history", press(key.KindZ, ctrl|alt)),
			item("screen.screen_set", press(key.KindRightArrow, ctrl), prop("delta", 1)),
			item("screen.screen_set", press(key.KindLeftArrow, ctrl), prop("delta", -1)),
			item("screen.screenshot", press(key.KindF3, ctrl)),
			item("screen.repeat_history", press(key.KindR, ctrl|alt)),
			item("screen.region_flip", press(key.KindF5, none)),
			item("screen.redo_last", press(key.KindF6, none)),
			item("script.reload", press(key.KindF8, none)),
			item("screen.userpref_show", press(key.KindU, ctrl|alt)),
		),
		Only(Apple,
			item("ed.undo", press(key.KindZ, oskey)),
			item("ed.redo", press(key.KindZ, shift|oskey)),
			item("ed.undo_history", press(key.KindZ, alt|oskey)),
			item("screen.userpref_show", press(key.KindComma, oskey)),
		),
	)
}

func screenEditingRules(Params) []Rule {
	return Concat(
		[]Rule{
			item("screen.actionzone", press(key.KindLeftMouse, none), prop("modifier", 0)),
			item("screen.actionzone", press(key.KindLeftMouse, shift), prop("modifier", 1)),
			item("screen.actionzone", press(key.KindLeftMouse, ctrl), prop("modifier", 2)),

			item("screen.area_split", on(key.KindActionZoneArea, key.ValueAny, none)),
			item("screen.area_join", on(key.KindActionZoneArea, key.ValueAny, none)),
			item("screen.area_dupli", on(key.KindActionZoneArea, key.ValueAny, shift)),
			item("screen.area_swap", on(key.KindActionZoneArea, key.ValueAny, ctrl)),
			item("screen.region_scale", on(key.KindActionZoneRegion, key.ValueAny, none)),
			item("screen.screen_full_area", on(key.KindActionZoneFullscreen, key.ValueAny, none),
				prop("use_hide_panels", true)),

			// Area move must come after the action zones.
			item("screen.area_move", press(key.KindLeftMouse, none)),
			item("screen.area_options", press(key.KindRightMouse, none)),
		},
		Only(Legacy,
			item("screen.header", press(key.KindF9, alt)),
		),
	)
}

func headerRules(Params) []Rule {
	return []Rule{
		item("screen.header_context_menu", press(key.KindRightMouse, none)),
	}
}

func view2DRules(Params) []Rule {
	return []Rule{
		item("view2d.scroller_activate", press(key.KindLeftMouse, none)),
		item("view2d.scroller_activate", press(key.KindMiddleMouse, none)),

		item("view2d.pan", press(key.KindMiddleMouse, none)),
		item("view2d.pan", press(key.KindMiddleMouse, shift)),
		item("view2d.pan", on(key.KindTrackpadPan, key.ValueAny, none)),
		item("view2d.scroll_right", press(key.KindWheelDownMouse, ctrl)),
		item("view2d.scroll_left", press(key.KindWheelUpMouse, ctrl)),
		item("view2d.scroll_down", press(key.KindWheelDownMouse, shift)),
		item("view2d.scroll_up", press(key.KindWheelUpMouse, shift)),
		item("view2d.ndof", on(key.KindNDOFMotion, key.ValueAny, none)),

		item("view2d.zoom_out", press(key.KindWheelOutMouse, none)),
		item("view2d.zoom_in", press(key.KindWheelInMouse, none)),
		item("view2d.zoom_out", press(key.KindNumpadMinus, none)),
		item("view2d.zoom_in", press(key.KindNumpadPlus, none)),
		item("view2d.zoom", on(key.KindTrackpadPan, key.ValueAny, ctrl)),
		item("view2d.smoothview", anyMod(key.KindTimer1, key.ValueAny)),

		// Wheel scrolling only reaches these when zoom is unavailable.
		item("view2d.scroll_down", press(key.KindWheelDownMouse, none)),
		item("view2d.scroll_up", press(key.KindWheelUpMouse, none)),
		item("view2d.scroll_right", press(key.KindWheelDownMouse, none)),
		item("view2d.scroll_left", press(key.KindWheelUpMouse, none)),

		item("view2d.zoom", press(key.KindMiddleMouse, ctrl)),
		item("view2d.zoom", on(key.KindTrackpadZoom, key.ValueAny, none)),
		item("view2d.zoom_border", press(key.KindB, shift)),
	}
}

func view2DButtonsListRules(Params) []Rule {
	return []Rule{
		item("view2d.scroller_activate", press(key.KindLeftMouse, none)),
		item("view2d.scroller_activate", press(key.KindMiddleMouse, none)),

		item("view2d.pan", press(key.KindMiddleMouse, none)),
		item("view2d.pan", on(key.KindTrackpadPan, key.ValueAny, none)),
		item("view2d.scroll_down", press(key.KindWheelDownMouse, none)),
		item("view2d.scroll_up", press(key.KindWheelUpMouse, none)),
		item("view2d.scroll_down", press(key.KindPageDown, none), prop("page", true)),
		item("view2d.scroll_up", press(key.KindPageUp, none), prop("page", true)),

		item("view2d.zoom", press(key.KindMiddleMouse, ctrl)),
		item("view2d.zoom", on(key.KindTrackpadZoom, key.ValueAny, none)),
		item("view2d.zoom", on(key.KindTrackpadPan, key.ValueAny, ctrl)),
		item("view2d.zoom_out", press(key.KindNumpadMinus, none)),
		item("view2d.zoom_in", press(key.KindNumpadPlus, none)),
		item("view2d.reset", press(key.KindHome, none)),
	}
}

func userInterfaceRules(Params) []Rule {
	return []Rule{
		// Eyedroppers share one event and pass it on until one accepts it.
		item("ui.eyedropper_color", press(key.KindE, none)),
		item("ui.eyedropper_colorband", press(key.KindE, none)),
		item("ui.eyedropper_colorband_point", press(key.KindE, alt)),
		item("ui.eyedropper_id", press(key.KindE, none)),
		item("ui.eyedropper_depth", press(key.KindE, none)),

		item("ui.copy_data_path_button", press(key.KindC, shift|ctrl)),
		item("ui.copy_data_path_button", press(key.KindC, shift|ctrl|alt), prop("full_path", true)),

		item("anim.keyframe_insert_button", press(key.KindI, none)),
		item("anim.keyframe_delete_button", press(key.KindI, alt)),
		item("anim.keyframe_clear_button", press(key.KindI, shift|alt)),
		item("anim.driver_button_add", press(key.KindD, ctrl)),
		item("anim.driver_button_remove", press(key.KindD, ctrl|alt)),
		item("anim.keyingset_button_add", press(key.KindK, none)),
		item("anim.keyingset_button_remove", press(key.KindK, alt)),
	}
}

func framesRules(Params) []Rule {
	return Concat(
		[]Rule{
			item("screen.frame_offset", press(key.KindLeftArrow, none), prop("delta", -1)),
			item("screen.frame_offset", press(key.KindRightArrow, none), prop("delta", 1)),
			item("screen.frame_jump", press(key.KindRightArrow, shift), prop("end", true)),
			item("screen.frame_jump", press(key.KindLeftArrow, shift), prop("end", false)),
			item("screen.keyframe_jump", press(key.KindUpArrow, none), prop("next", true)),
			item("screen.keyframe_jump", press(key.KindDownArrow, none), prop("next", false)),
			item("screen.keyframe_jump", press(key.KindMediaLast, none), prop("next", true)),
			item("screen.keyframe_jump", press(key.KindMediaFirst, none), prop("next", false)),
		},
		Only(Modern,
			item("screen.animation_play", press(key.KindSpace, shift)),
			item("screen.animation_play", press(key.KindSpace, shift|ctrl), prop("reverse", true)),
		),
		Only(Legacy,
			item("screen.frame_offset", press(key.KindUpArrow, shift), prop("delta", 10)),
			item("screen.frame_offset", press(key.KindDownArrow, shift), prop("delta", -10)),
			item("screen.frame_offset", press(key.KindWheelDownMouse, alt), prop("delta", 1)),
			item("screen.frame_offset", press(key.KindWheelUpMouse, alt), prop("delta", -1)),
			item("screen.frame_jump", press(key.KindUpArrow, shift|ctrl), prop("end", true)),
			item("screen.frame_jump", press(key.KindDownArrow, shift|ctrl), prop("end", false)),
			item("screen.animation_play", press(key.KindA, alt)),
			item("screen.animation_play", press(key.KindA, shift|alt), prop("reverse", true)),
		),
		[]Rule{
			item("screen.animation_cancel", press(key.KindEsc, none)),
			item("screen.animation_play", press(key.KindMediaPlay, none)),
			item("screen.animation_cancel", press(key.KindMediaStop, none)),
		},
	)
}
