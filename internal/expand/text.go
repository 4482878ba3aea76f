package expand

import (
	"github.com/dshills/bindery/internal/input/key"
)

func textGenericRules(Params) []Rule {
	return Concat(
		[]Rule{
			item("text.start_find", press(key.KindF, ctrl)),
			item("text.jump", press(key.KindJ, ctrl)),
			item("text.find", press(key.KindG, ctrl)),
			item("text.replace", press(key.KindH, ctrl)),
			item("text.properties", press(key.KindT, ctrl)),
		},
		Only(Apple,
			item("text.start_find", press(key.KindF, oskey)),
		),
	)
}

// textMove binds text.move (or text.move_select) with a motion type.
func textMove(command string, trigger key.Trigger, motion string) Rule {
	return item(command, trigger, prop("type", motion))
}

func textRules(Params) []Rule {
	const fontSize = "space_data.font_size"

	return Concat(
		Only(Apple,
			textMove("text.move", press(key.KindLeftArrow, oskey), "LINE_BEGIN"),
			textMove("text.move", press(key.KindRightArrow, oskey), "LINE_END"),
			textMove("text.move", press(key.KindUpArrow, oskey), "FILE_TOP"),
			textMove("text.move", press(key.KindDownArrow, oskey), "FILE_BOTTOM"),
			textMove("text.move_select", press(key.KindLeftArrow, shift|oskey), "LINE_BEGIN"),
			textMove("text.move_select", press(key.KindRightArrow, shift|oskey), "LINE_END"),
			textMove("text.move_select", press(key.KindLeftArrow, shift|alt), "PREVIOUS_WORD"),
			textMove("text.move_select", press(key.KindRightArrow, shift|alt), "NEXT_WORD"),
			textMove("text.move_select", press(key.KindUpArrow, shift|oskey), "FILE_TOP"),
			textMove("text.move_select", press(key.KindDownArrow, shift|oskey), "FILE_BOTTOM"),
			textMove("text.delete", press(key.KindBackSpace, alt), "PREVIOUS_WORD"),
			item("text.save", press(key.KindS, alt|oskey)),
			item("text.save_as", press(key.KindS, shift|alt|oskey)),
			item("text.cut", press(key.KindX, oskey)),
			item("text.copy", press(key.KindC, oskey)),
			item("text.paste", press(key.KindV, oskey)),
			item("text.find_set_selected", press(key.KindE, oskey)),
			item("text.select_all", press(key.KindA, oskey)),
			item("text.select_line", press(key.KindA, shift|oskey)),
		),
		[]Rule{
			textMove("text.move", press(key.KindLeftArrow, alt), "PREVIOUS_WORD"),
			textMove("text.move", press(key.KindRightArrow, alt), "NEXT_WORD"),
			item("wm.context_cycle_int", press(key.KindWheelUpMouse, ctrl),
				prop("data_path", fontSize), prop("reverse", false)),
			item("wm.context_cycle_int", press(key.KindWheelDownMouse, ctrl),
				prop("data_path", fontSize), prop("reverse", true)),
			item("wm.context_cycle_int", press(key.KindNumpadPlus, ctrl),
				prop("data_path", fontSize), prop("reverse", false)),
			item("wm.context_cycle_int", press(key.KindNumpadMinus, ctrl),
				prop("data_path", fontSize), prop("reverse", true)),
		},
		Only(Modern, item("text.new", press(key.KindN, alt))),
		Only(Legacy, item("text.new", press(key.KindN, ctrl))),
		[]Rule{
			item("text.open", press(key.KindO, alt)),
			item("text.reload", press(key.KindR, alt)),
			item("text.save", press(key.KindS, alt)),
			item("text.save_as", press(key.KindS, shift|ctrl|alt)),
			item("text.run_script", press(key.KindP, alt)),
			item("text.cut", press(key.KindX, ctrl)),
			item("text.copy", press(key.KindC, ctrl)),
			item("text.paste", press(key.KindV, ctrl)),
			item("text.cut", press(key.KindDel, shift)),
			item("text.copy", press(key.KindInsert, ctrl)),
			item("text.paste", press(key.KindInsert, shift)),
			item("text.duplicate_line", press(key.KindD, ctrl)),
			item("text.select_all", press(key.KindA, ctrl)),
			item("text.select_line", press(key.KindA, shift|ctrl)),
			item("text.select_word", on(key.KindLeftMouse, key.ValueDoubleClick, none)),
			item("text.move_lines", press(key.KindUpArrow, shift|ctrl), prop("direction", "UP")),
			item("text.move_lines", press(key.KindDownArrow, shift|ctrl), prop("direction", "DOWN")),
			item("text.indent", press(key.KindTab, none)),
			item("text.unindent", press(key.KindTab, shift)),
			item("text.uncomment", press(key.KindD, shift|ctrl)),

			textMove("text.move", press(key.KindHome, none), "LINE_BEGIN"),
			textMove("text.move", press(key.KindEnd, none), "LINE_END"),
			textMove("text.move", press(key.KindE, ctrl), "LINE_END"),
			textMove("text.move", press(key.KindE, shift|ctrl), "LINE_END"),
			textMove("text.move", press(key.KindLeftArrow, none), "PREVIOUS_CHARACTER"),
			textMove("text.move", press(key.KindRightArrow, none), "NEXT_CHARACTER"),
			textMove("text.move", press(key.KindLeftArrow, ctrl), "PREVIOUS_WORD"),
			textMove("text.move", press(key.KindRightArrow, ctrl), "NEXT_WORD"),
			textMove("text.move", press(key.KindUpArrow, none), "PREVIOUS_LINE"),
			textMove("text.move", press(key.KindDownArrow, none), "NEXT_LINE"),
			textMove("text.move", press(key.KindPageUp, none), "PREVIOUS_PAGE"),
			textMove("text.move", press(key.KindPageDown, none), "NEXT_PAGE"),
			textMove("text.move", press(key.KindHome, ctrl), "FILE_TOP"),
			textMove("text.move", press(key.KindEnd, ctrl), "FILE_BOTTOM"),

			textMove("text.move_select", press(key.KindHome, shift), "LINE_BEGIN"),
			textMove("text.move_select", press(key.KindEnd, shift), "LINE_END"),
			textMove("text.move_select", press(key.KindLeftArrow, shift), "PREVIOUS_CHARACTER"),
			textMove("text.move_select", press(key.KindRightArrow, shift), "NEXT_CHARACTER"),
			textMove("text.move_select", press(key.KindLeftArrow, shift|ctrl), "PREVIOUS_WORD"),
			textMove("text.move_select", press(key.KindRightArrow, shift|ctrl), "NEXT_WORD"),
			textMove("text.move_select", press(key.KindUpArrow, shift), "PREVIOUS_LINE"),
			textMove("text.move_select", press(key.KindDownArrow, shift), "NEXT_LINE"),
			textMove("text.move_select", press(key.KindPageUp, shift), "PREVIOUS_PAGE"),
			textMove("text.move_select", press(key.KindPageDown, shift), "NEXT_PAGE"),
			textMove("text.move_select", press(key.KindHome, shift|ctrl), "FILE_TOP"),
			textMove("text.move_select", press(key.KindEnd, shift|ctrl), "FILE_BOTTOM"),

			textMove("text.delete", press(key.KindDel, none), "NEXT_CHARACTER"),
			textMove("text.delete", press(key.KindBackSpace, none), "PREVIOUS_CHARACTER"),
			textMove("text.delete", press(key.KindBackSpace, shift), "PREVIOUS_CHARACTER"),
			textMove("text.delete", press(key.KindDel, ctrl), "NEXT_WORD"),
			textMove("text.delete", press(key.KindBackSpace, ctrl), "PREVIOUS_WORD"),

			item("text.overwrite_toggle", press(key.KindInsert, none)),
			item("text.scroll_bar", press(key.KindLeftMouse, none)),
			item("text.scroll_bar", press(key.KindMiddleMouse, none)),
			item("text.scroll", press(key.KindMiddleMouse, none)),
			item("text.scroll", on(key.KindTrackpadPan, key.ValueAny, none)),
			item("text.selection_set", on(key.KindTweakL, key.ValueAny, none)),
			item("text.cursor_set", press(key.KindLeftMouse, none)),
			item("text.selection_set", press(key.KindLeftMouse, shift), prop("select", true)),
			item("text.scroll", press(key.KindWheelUpMouse, none), prop("lines", -1)),
			item("text.scroll", press(key.KindWheelDownMouse, none), prop("lines", 1)),
			item("text.line_break", press(key.KindReturn, none)),
			item("text.line_break", press(key.KindNumpadEnter, none)),
			opMenu("TEXT_MT_toolbox", anyMod(key.KindRightMouse, key.ValuePress)),
			item("text.autocomplete", press(key.KindSpace, ctrl)),
			item("text.line_number", anyMod(key.KindTextInput, key.ValueAny)),
			item("text.insert", anyMod(key.KindTextInput, key.ValueAny)),
		},
	)
}
