package expand

import (
	"github.com/dshills/bindery/internal/input/key"
	"github.com/dshills/bindery/internal/input/keymap"
)

func view3DGenericRules(Params) []Rule {
	return []Rule{
		item("view3d.properties", press(key.KindN, none)),
		item("view3d.toolshelf", press(key.KindT, none)),
	}
}

// selectArgs are the view3d.select flags in their canonical order.
func selectArgs(extend, deselect, toggle, center, enumerate, object bool) []keymap.Arg {
	return []keymap.Arg{
		prop("extend", extend),
		prop("deselect", deselect),
		prop("toggle", toggle),
		prop("center", center),
		prop("enumerate", enumerate),
		prop("object", object),
	}
}

func view3DRules(p Params) []Rule {
	sel := p.SelectMouse

	return Concat(
		[]Rule{
			item("view3d.cursor3d", on(p.ActionMouse, key.ValueClick, none)),

			// Navigation.
			item("view3d.rotate", press(key.KindMiddleMouse, none)),
			item("view3d.move", press(key.KindMiddleMouse, shift)),
			item("view3d.zoom", press(key.KindMiddleMouse, ctrl)),
			item("view3d.dolly", press(key.KindMiddleMouse, shift|ctrl)),
			item("view3d.view_selected", press(key.KindNumpadPeriod, ctrl), prop("use_all_regions", true)),
			item("view3d.view_selected", press(key.KindNumpadPeriod, none), prop("use_all_regions", false)),
			item("view3d.smoothview", anyMod(key.KindTimer1, key.ValueAny)),
			item("view3d.rotate", on(key.KindTrackpadPan, key.ValueAny, none)),
			item("view3d.rotate", on(key.KindMouseRotate, key.ValueAny, none)),
			item("view3d.move", on(key.KindTrackpadPan, key.ValueAny, shift)),
			item("view3d.zoom", on(key.KindTrackpadZoom, key.ValueAny, none)),
			item("view3d.zoom", on(key.KindTrackpadPan, key.ValueAny, ctrl)),
			item("view3d.zoom", press(key.KindNumpadPlus, none), prop("delta", 1)),
			item("view3d.zoom", press(key.KindNumpadMinus, none), prop("delta", -1)),
			item("view3d.zoom", press(key.KindEqual, ctrl), prop("delta", 1)),
			item("view3d.zoom", press(key.KindMinus, ctrl), prop("delta", -1)),
			item("view3d.zoom", press(key.KindWheelInMouse, none), prop("delta", 1)),
			item("view3d.zoom", press(key.KindWheelOutMouse, none), prop("delta", -1)),
			item("view3d.dolly", press(key.KindNumpadPlus, shift), prop("delta", 1)),
			item("view3d.dolly", press(key.KindNumpadMinus, shift), prop("delta", -1)),
			item("view3d.dolly", press(key.KindEqual, shift|ctrl), prop("delta", 1)),
			item("view3d.dolly", press(key.KindMinus, shift|ctrl), prop("delta", -1)),
			item("view3d.view_center_camera", press(key.KindHome, none)),
			item("view3d.view_center_lock", press(key.KindHome, none)),
			item("view3d.view_all", press(key.KindHome, none), prop("center", false)),
			item("view3d.view_all", press(key.KindHome, ctrl), prop("use_all_regions", true), prop("center", false)),
			opMenuPie("VIEW3D_MT_view_pie", press(key.KindAccentGrave, none)),
			item("view3d.navigate", press(key.KindAccentGrave, shift)),

			// Numpad views.
			item("view3d.view_camera", press(key.KindNumpad0, none)),
			item("view3d.view_axis", press(key.KindNumpad1, none), prop("type", "FRONT")),
			item("view3d.view_orbit", press(key.KindNumpad2, none), prop("type", "ORBITDOWN")),
			item("view3d.view_axis", press(key.KindNumpad3, none), prop("type", "RIGHT")),
			item("view3d.view_orbit", press(key.KindNumpad4, none), prop("type", "ORBITLEFT")),
			item("view3d.view_persportho", press(key.KindNumpad5, none)),
			item("view3d.view_orbit", press(key.KindNumpad6, none), prop("type", "ORBITRIGHT")),
			item("view3d.view_axis", press(key.KindNumpad7, none), prop("type", "TOP")),
			item("view3d.view_orbit", press(key.KindNumpad8, none), prop("type", "ORBITUP")),
			item("view3d.view_axis", press(key.KindNumpad1, ctrl), prop("type", "BACK")),
			item("view3d.view_axis", press(key.KindNumpad3, ctrl), prop("type", "LEFT")),
			item("view3d.view_axis", press(key.KindNumpad7, ctrl), prop("type", "BOTTOM")),
			item("view3d.view_pan", press(key.KindNumpad2, ctrl), prop("type", "PANDOWN")),
			item("view3d.view_pan", press(key.KindNumpad4, ctrl), prop("type", "PANLEFT")),
			item("view3d.view_pan", press(key.KindNumpad6, ctrl), prop("type", "PANRIGHT")),
			item("view3d.view_pan", press(key.KindNumpad8, ctrl), prop("type", "PANUP")),
			item("view3d.view_roll", press(key.KindNumpad4, shift), prop("type", "LEFT")),
			item("view3d.view_roll", press(key.KindNumpad6, shift), prop("type", "RIGHT")),
			item("view3d.view_orbit", press(key.KindNumpad9, none), prop("angle", 3.1415927), prop("type", "ORBITRIGHT")),
			item("view3d.view_axis", press(key.KindNumpad1, shift), prop("type", "FRONT"), prop("align_active", true)),
			item("view3d.view_axis", press(key.KindNumpad3, shift), prop("type", "RIGHT"), prop("align_active", true)),
			item("view3d.view_axis", press(key.KindNumpad7, shift), prop("type", "TOP"), prop("align_active", true)),
			item("view3d.view_axis", press(key.KindNumpad1, shift|ctrl), prop("type", "BACK"), prop("align_active", true)),
			item("view3d.view_axis", press(key.KindNumpad3, shift|ctrl), prop("type", "LEFT"), prop("align_active", true)),
			item("view3d.view_axis", press(key.KindNumpad7, shift|ctrl), prop("type", "BOTTOM"), prop("align_active", true)),

			// NDOF.
			item("view3d.ndof_orbit_zoom", on(key.KindNDOFMotion, key.ValueAny, none)),
			item("view3d.ndof_orbit", on(key.KindNDOFMotion, key.ValueAny, ctrl)),
			item("view3d.ndof_pan", on(key.KindNDOFMotion, key.ValueAny, shift)),
			item("view3d.ndof_all", on(key.KindNDOFMotion, key.ValueAny, shift|ctrl)),
			item("view3d.view_selected", press(key.KindNDOFButtonFit, none), prop("use_all_regions", false)),
			item("view3d.view_roll", press(key.KindNDOFButtonRollCCW, none), prop("type", "LEFT")),
			item("view3d.view_roll", press(key.KindNDOFButtonRollCW, none), prop("type", "RIGHT")),
			item("view3d.view_axis", press(key.KindNDOFButtonFront, none), prop("type", "FRONT")),
			item("view3d.view_axis", press(key.KindNDOFButtonBack, none), prop("type", "BACK")),
			item("view3d.view_axis", press(key.KindNDOFButtonLeft, none), prop("type", "LEFT")),
			item("view3d.view_axis", press(key.KindNDOFButtonRight, none), prop("type", "RIGHT")),
			item("view3d.view_axis", press(key.KindNDOFButtonTop, none), prop("type", "TOP")),
			item("view3d.view_axis", press(key.KindNDOFButtonBottom, none), prop("type", "BOTTOM")),
			item("view3d.view_axis", press(key.KindNDOFButtonFront, shift), prop("type", "FRONT"), prop("align_active", true)),
			item("view3d.view_axis", press(key.KindNDOFButtonRight, shift), prop("type", "RIGHT"), prop("align_active", true)),
			item("view3d.view_axis", press(key.KindNDOFButtonTop, shift), prop("type", "TOP"), prop("align_active", true)),

			// Selection.
			item("view3d.select", press(sel, none), selectArgs(false, false, false, false, false, false)...),
			item("view3d.select", press(sel, shift), selectArgs(false, false, true, false, false, false)...),
			item("view3d.select", press(sel, ctrl), selectArgs(false, false, false, true, false, true)...),
			item("view3d.select", press(sel, alt), selectArgs(false, false, false, false, true, false)...),
			item("view3d.select", press(sel, shift|ctrl), selectArgs(true, false, true, true, false, false)...),
			item("view3d.select", press(sel, ctrl|alt), selectArgs(false, false, false, true, true, false)...),
			item("view3d.select", press(sel, shift|alt), selectArgs(false, false, true, false, true, false)...),
			item("view3d.select", press(sel, shift|ctrl|alt), selectArgs(false, false, true, true, true, false)...),
			item("view3d.select_box", press(key.KindB, none)),
			item("view3d.select_lasso", on(key.KindTweakA, key.ValueAny, ctrl), prop("mode", "ADD")),
			item("view3d.select_lasso", on(key.KindTweakA, key.ValueAny, shift|ctrl), prop("mode", "SUB")),
			item("view3d.select_circle", press(key.KindC, none)),

			// Borders.
			item("view3d.clip_border", press(key.KindB, alt)),
			item("view3d.zoom_border", press(key.KindB, shift)),
			item("view3d.render_border", press(key.KindB, ctrl)),
			item("view3d.clear_render_border", press(key.KindB, ctrl|alt)),

			// Cameras.
			item("view3d.camera_to_view", press(key.KindNumpad0, ctrl|alt)),
			item("view3d.object_as_camera", press(key.KindNumpad0, ctrl)),

			item("view3d.copybuffer", press(key.KindC, ctrl)),
			item("view3d.pastebuffer", press(key.KindV, ctrl)),

			// Menus.
			opMenuPie("VIEW3D_MT_snap_pie", press(key.KindS, shift)),
			opMenuPie("VIEW3D_MT_pivot_pie", press(key.KindPeriod, none)),
			opMenuPie("VIEW3D_MT_orientations_pie", press(key.KindComma, none)),

			// Transform.
			item("transform.translate", press(key.KindG, none)),
			item("transform.translate", on(key.KindTweakS, key.ValueAny, none)),
			item("transform.rotate", press(key.KindR, none)),
			item("transform.resize", press(key.KindS, none)),
			item("transform.bend", press(key.KindW, shift)),
			item("transform.tosphere", press(key.KindS, shift|alt)),
			item("transform.shear", press(key.KindS, shift|ctrl|alt)),
			item("transform.mirror", press(key.KindM, ctrl)),
			item("wm.context_toggle", press(key.KindTab, shift), prop("data_path", "tool_settings.use_snap")),
			opPanel("VIEW3D_PT_snapping", press(key.KindTab, shift|ctrl), prop("keep_open", false)),
			item("object.transform_axis_target", press(key.KindT, shift)),
			item("transform.skin_resize", press(key.KindA, ctrl)),
		},
		Only(Apple,
			item("view3d.copybuffer", press(key.KindC, oskey)),
			item("view3d.pastebuffer", press(key.KindV, oskey)),
		),
		Only(Modern,
			item("wm.context_toggle", press(key.KindAccentGrave, ctrl), prop("data_path", "space_data.show_gizmo_tool")),
			opMenuPie("VIEW3D_MT_pivot_pie", press(key.KindPeriod, none)),
			opMenuPie("VIEW3D_MT_orientations_pie", press(key.KindComma, none)),
			opMenuPie("VIEW3D_MT_shading_pie", press(key.KindZ, none)),
			item("view3d.toggle_shading", press(key.KindZ, alt), prop("type", "MATERIAL")),
			item("view3d.toggle_shading", press(key.KindZ, shift), prop("type", "RENDERED")),
		),
		Only(Legacy, view3DLegacyRules()...),
	)
}

func view3DLegacyRules() []Rule {
	const pivot = "space_data.pivot_point"
	const shading = "space_data.shading.type"

	return []Rule{
		// Navigation.
		item("view3d.view_lock_to_active", press(key.KindNumpadPeriod, shift)),
		item("view3d.view_lock_clear", press(key.KindNumpadPeriod, alt)),
		item("view3d.navigate", press(key.KindF, shift)),
		item("view3d.zoom_camera_1_to_1", press(key.KindNumpadEnter, shift)),
		item("view3d.view_center_cursor", press(key.KindHome, alt)),
		item("view3d.view_center_pick", press(key.KindF, alt)),
		item("view3d.view_all", press(key.KindC, shift), prop("center", true)),
		item("view3d.view_pan", press(key.KindWheelUpMouse, ctrl), prop("type", "PANRIGHT")),
		item("view3d.view_pan", press(key.KindWheelDownMouse, ctrl), prop("type", "PANLEFT")),
		item("view3d.view_pan", press(key.KindWheelUpMouse, shift), prop("type", "PANUP")),
		item("view3d.view_pan", press(key.KindWheelDownMouse, shift), prop("type", "PANDOWN")),
		item("view3d.view_orbit", press(key.KindWheelUpMouse, ctrl|alt), prop("type", "ORBITLEFT")),
		item("view3d.view_orbit", press(key.KindWheelDownMouse, ctrl|alt), prop("type", "ORBITRIGHT")),
		item("view3d.view_orbit", press(key.KindWheelUpMouse, shift|alt), prop("type", "ORBITUP")),
		item("view3d.view_orbit", press(key.KindWheelDownMouse, shift|alt), prop("type", "ORBITDOWN")),
		item("view3d.view_roll", press(key.KindWheelUpMouse, shift|ctrl), prop("type", "LEFT")),
		item("view3d.view_roll", press(key.KindWheelDownMouse, shift|ctrl), prop("type", "RIGHT")),
		item("transform.create_orientation", press(key.KindSpace, ctrl|alt), prop("use", true)),
		item("transform.translate", press(key.KindT, shift), prop("texture_space", true)),
		item("transform.resize", press(key.KindT, shift|alt), prop("texture_space", true)),

		// Pivot.
		item("wm.context_set_enum", press(key.KindComma, none),
			prop("data_path", pivot), prop("value", "BOUNDING_BOX_CENTER")),
		item("wm.context_set_enum", press(key.KindComma, ctrl),
			prop("data_path", pivot), prop("value", "MEDIAN_POINT")),
		item("wm.context_toggle", press(key.KindComma, alt),
			prop("data_path", "tool_settings.use_transform_pivot_point_align")),
		item("wm.context_toggle", press(key.KindSpace, ctrl),
			prop("data_path", "space_data.show_gizmo_tool")),
		item("wm.context_set_enum", press(key.KindPeriod, none),
			prop("data_path", pivot), prop("value", "CURSOR")),
		item("wm.context_set_enum", press(key.KindPeriod, ctrl),
			prop("data_path", pivot), prop("value", "INDIVIDUAL_ORIGINS")),
		item("wm.context_set_enum", press(key.KindPeriod, alt),
			prop("data_path", pivot), prop("value", "ACTIVE_ELEMENT")),

		// Shading.
		item("wm.context_toggle_enum", press(key.KindZ, none),
			prop("data_path", shading), prop("value_1", "WIREFRAME"), prop("value_2", "SOLID")),
		item("wm.context_toggle_enum", press(key.KindZ, shift),
			prop("data_path", shading), prop("value_1", "RENDERED"), prop("value_2", "SOLID")),
		item("wm.context_toggle_enum", press(key.KindZ, alt),
			prop("data_path", shading), prop("value_1", "MATERIAL"), prop("value_2", "SOLID")),
	}
}

func objectModeRules(Params) []Rule {
	var hideCollection []Rule
	for i, k := range numbersRow {
		hideCollection = append(hideCollection, item("object.hide_collection",
			anyMod(k, key.ValuePress), prop("collection_index", i+1)))
	}

	return Concat(
		[]Rule{
			opMenuPie("VIEW3D_MT_proportional_editing_falloff_pie", press(key.KindO, shift)),
			item("wm.context_toggle", press(key.KindO, none),
				prop("data_path", "tool_settings.use_proportional_edit_objects")),
		},
		selectActions("object.select_all"),
		[]Rule{
			item("object.select_more", press(key.KindNumpadPlus, ctrl)),
			item("object.select_less", press(key.KindNumpadMinus, ctrl)),
			item("object.select_linked", press(key.KindL, shift)),
			item("object.select_grouped", press(key.KindG, shift)),
			item("object.select_hierarchy", press(key.KindLeftBracket, none),
				prop("direction", "PARENT"), prop("extend", false)),
			item("object.select_hierarchy", press(key.KindLeftBracket, shift),
				prop("direction", "PARENT"), prop("extend", true)),
			item("object.select_hierarchy", press(key.KindRightBracket, none),
				prop("direction", "CHILD"), prop("extend", false)),
			item("object.select_hierarchy", press(key.KindRightBracket, shift),
				prop("direction", "CHILD"), prop("extend", true)),
			item("object.parent_set", press(key.KindP, ctrl)),
			item("object.parent_clear", press(key.KindP, alt)),
			item("object.location_clear", press(key.KindG, alt), prop("clear_delta", false)),
			item("object.rotation_clear", press(key.KindR, alt), prop("clear_delta", false)),
			item("object.scale_clear", press(key.KindS, alt), prop("clear_delta", false)),
			item("object.delete", press(key.KindX, none), prop("use_global", false)),
			item("object.delete", press(key.KindX, shift), prop("use_global", true)),
			item("object.delete", press(key.KindDel, none), prop("use_global", false)),
			item("object.delete", press(key.KindDel, shift), prop("use_global", true)),
			opMenu("VIEW3D_MT_add", press(key.KindA, shift)),
			opMenu("VIEW3D_MT_object_apply", press(key.KindA, ctrl)),
			opMenu("VIEW3D_MT_make_links", press(key.KindL, ctrl)),
			item("object.duplicate_move", press(key.KindD, shift)),
			item("object.duplicate_move_linked", press(key.KindD, alt)),
			item("object.join", press(key.KindJ, ctrl)),
			item("anim.keyframe_insert_menu", press(key.KindI, none)),
			item("anim.keyframe_delete_v3d", press(key.KindI, alt)),
			item("anim.keying_set_active_set", press(key.KindI, shift|ctrl|alt)),
			item("collection.create", press(key.KindG, ctrl)),
			item("collection.objects_remove", press(key.KindG, ctrl|alt)),
			item("collection.objects_remove_all", press(key.KindG, shift|ctrl|alt)),
			item("collection.objects_add_active", press(key.KindG, shift|ctrl)),
			item("collection.objects_remove_active", press(key.KindG, shift|alt)),
			opMenu("VIEW3D_MT_object_specials", press(key.KindW, none)),
		},
		subdivisionSet(),
		[]Rule{
			item("object.move_to_collection", press(key.KindM, none)),
			item("object.link_to_collection", press(key.KindM, shift)),
			item("object.hide_view_clear", press(key.KindH, alt)),
			item("object.hide_view_set", press(key.KindH, none), prop("unselected", false)),
			item("object.hide_view_set", press(key.KindH, shift), prop("unselected", true)),
			item("object.hide_collection", press(key.KindH, ctrl)),
		},
		hideCollection,
		Only(Legacy,
			item("object.select_mirror", press(key.KindM, shift|ctrl)),
			item("object.parent_no_inverse_set", press(key.KindP, shift|ctrl)),
			item("object.track_set", press(key.KindT, ctrl)),
			item("object.track_clear", press(key.KindT, alt)),
			item("object.constraint_add_with_targets", press(key.KindC, shift|ctrl)),
			item("object.constraints_clear", press(key.KindC, ctrl|alt)),
			item("object.origin_clear", press(key.KindO, alt)),
			item("object.duplicates_make_real", press(key.KindA, shift|ctrl)),
			opMenu("VIEW3D_MT_make_single_user", press(key.KindU, none)),
			item("object.convert", press(key.KindC, alt)),
			item("object.proxy_make", press(key.KindP, ctrl|alt)),
			item("object.make_local", press(key.KindL, none)),
			item("object.data_transfer", press(key.KindT, shift|ctrl)),
		),
	)
}

func meshRules(p Params) []Rule {
	sel := p.SelectMouse
	act := p.ActionMouse

	return Concat(
		[]Rule{
			item("mesh.loopcut_slide", press(key.KindR, ctrl),
				prop("TRANSFORM_OT_edge_slide", props(prop("release_confirm", false)))),
			item("mesh.offset_edge_loops_slide", press(key.KindR, shift|ctrl),
				prop("TRANSFORM_OT_edge_slide", props(prop("release_confirm", false)))),
			item("mesh.inset", press(key.KindI, none)),
			item("mesh.bevel", press(key.KindB, ctrl), prop("vertex_only", false)),
			item("mesh.bevel", press(key.KindB, shift|ctrl), prop("vertex_only", true)),
		},
		meshSelectMode(),
		[]Rule{
			item("mesh.loop_select", press(sel, alt),
				prop("extend", false), prop("deselect", false), prop("toggle", false)),
			item("mesh.loop_select", press(sel, shift|alt),
				prop("extend", false), prop("deselect", false), prop("toggle", true)),
			item("mesh.edgering_select", press(sel, ctrl|alt),
				prop("extend", false), prop("deselect", false), prop("toggle", false)),
			item("mesh.edgering_select", press(sel, shift|ctrl|alt),
				prop("extend", false), prop("deselect", false), prop("toggle", true)),
			item("mesh.shortest_path_pick", press(sel, ctrl), prop("use_fill", false)),
			item("mesh.shortest_path_pick", press(sel, shift|ctrl), prop("use_fill", true)),
		},
		selectActions("mesh.select_all"),
		[]Rule{
			item("mesh.select_more", press(key.KindNumpadPlus, ctrl)),
			item("mesh.select_less", press(key.KindNumpadMinus, ctrl)),
			item("mesh.select_next_item", press(key.KindNumpadPlus, shift|ctrl)),
			item("mesh.select_prev_item", press(key.KindNumpadMinus, shift|ctrl)),
			item("mesh.select_linked", press(key.KindL, ctrl)),
			item("mesh.select_linked_pick", press(key.KindL, none), prop("deselect", false)),
			item("mesh.select_linked_pick", press(key.KindL, shift), prop("deselect", true)),
			item("mesh.select_mirror", press(key.KindM, shift|ctrl)),
			opMenu("VIEW3D_MT_edit_mesh_select_similar", press(key.KindG, shift)),

			item("mesh.hide", press(key.KindH, none), prop("unselected", false)),
			item("mesh.hide", press(key.KindH, shift), prop("unselected", true)),
			item("mesh.reveal", press(key.KindH, alt)),
		},
		// The legacy scheme recalculates normals with ctrl+N, the modern
		// one with shift+N.
		Only(Legacy, item("mesh.normals_make_consistent", press(key.KindN, ctrl), prop("inside", false))),
		Only(Modern, item("mesh.normals_make_consistent", press(key.KindN, shift), prop("inside", false))),
		[]Rule{
			item("mesh.normals_make_consistent", press(key.KindN, shift|ctrl), prop("inside", true)),
			item("view3d.edit_mesh_extrude_move_normal", press(key.KindE, none)),
			opMenu("VIEW3D_MT_edit_mesh_extrude", press(key.KindE, alt)),
			item("transform.edge_crease", press(key.KindE, shift)),
			item("mesh.fill", press(key.KindF, alt)),
			item("mesh.quads_convert_to_tris", press(key.KindT, ctrl),
				prop("quad_method", "BEAUTY"), prop("ngon_method", "BEAUTY")),
			item("mesh.quads_convert_to_tris", press(key.KindT, shift|ctrl),
				prop("quad_method", "FIXED"), prop("ngon_method", "CLIP")),
			item("mesh.tris_convert_to_quads", press(key.KindJ, alt)),
			item("mesh.rip_move", press(key.KindV, none),
				prop("MESH_OT_rip", props(prop("use_fill", false)))),
			item("mesh.rip_move", press(key.KindV, alt),
				prop("MESH_OT_rip", props(prop("use_fill", true)))),
			item("mesh.rip_edge_move", press(key.KindD, alt)),
			item("mesh.merge", press(key.KindM, alt)),
			item("transform.shrink_fatten", press(key.KindS, alt)),
			item("mesh.edge_face_add", press(key.KindF, none)),
			item("mesh.duplicate_move", press(key.KindD, shift)),
			opMenu("VIEW3D_MT_mesh_add", press(key.KindA, shift)),
			item("mesh.separate", press(key.KindP, none)),
			item("mesh.split", press(key.KindY, none)),
			item("mesh.vert_connect_path", press(key.KindJ, none)),
			item("mesh.point_normals", press(key.KindL, alt)),
			item("transform.vert_slide", press(key.KindV, shift)),
			item("mesh.dupli_extrude_cursor", on(act, key.ValueClick, ctrl), prop("rotate_source", true)),
			item("mesh.dupli_extrude_cursor", on(act, key.ValueClick, shift|ctrl), prop("rotate_source", false)),
			opMenu("VIEW3D_MT_edit_mesh_delete", press(key.KindX, none)),
			opMenu("VIEW3D_MT_edit_mesh_delete", press(key.KindDel, none)),
			item("mesh.dissolve_mode", press(key.KindX, ctrl)),
			item("mesh.dissolve_mode", press(key.KindDel, ctrl)),
			item("mesh.knife_tool", press(key.KindK, none),
				prop("use_occlude_geometry", true), prop("only_selected", false)),
			item("object.vertex_parent_set", press(key.KindP, ctrl)),

			// Menus.
			opMenu("VIEW3D_MT_edit_mesh_specials", press(key.KindW, none)),
			opMenu("VIEW3D_MT_edit_mesh_faces", press(key.KindF, ctrl)),
			opMenu("VIEW3D_MT_edit_mesh_edges", press(key.KindE, ctrl)),
			opMenu("VIEW3D_MT_edit_mesh_vertices", press(key.KindV, ctrl)),
			opMenu("VIEW3D_MT_hook", press(key.KindH, ctrl)),
			opMenu("VIEW3D_MT_uv_map", press(key.KindU, none)),
			opMenu("VIEW3D_MT_vertex_group", press(key.KindG, ctrl)),
			item("object.vertex_group_remove_from", press(key.KindG, ctrl|alt)),
		},
		proportionalEditing(true),
		Only(Legacy, Concat(
			[]Rule{
				item("mesh.poke", press(key.KindP, alt)),
				item("mesh.select_non_manifold", press(key.KindM, shift|ctrl|alt)),
				item("mesh.faces_select_linked_flat", press(key.KindF, shift|ctrl|alt)),
				item("mesh.spin", press(key.KindR, alt)),
				item("mesh.beautify_fill", press(key.KindF, shift|alt)),
				item("mesh.knife_tool", press(key.KindK, shift),
					prop("use_occlude_geometry", false), prop("only_selected", true)),
			},
			subdivisionSet(),
		)...),
	)
}
