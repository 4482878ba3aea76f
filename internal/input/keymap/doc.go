// Package keymap provides binding tables, keymap resolution and matching.
//
// # Key Concepts
//
// Binding: Maps a trigger to a command with ordered, typed arguments.
//
// Keymap: A named, scoped, ordered list of bindings assigned to a layer.
//
// Table: An immutable set of keymaps. Tables are rebuilt, never edited.
//
// # Layers
//
// The resolver orders the active keymaps most specific first:
//  1. Modal (only while a modal operation owns input)
//  2. Tool
//  3. Mode
//  4. Editor
//  5. Region
//  6. Window
//
// Within the resulting list the first binding whose trigger accepts the
// event wins. Nothing below it is consulted, so an editor keymap shadows
// the window keymap for the same trigger.
//
// # Files
//
// Keymaps can be stored as JSON or YAML. Argument order survives a round
// trip in both formats:
//
//	keymaps:
//	  - name: Window
//	    layer: window
//	    bindings:
//	      - trigger: ctrl+S:PRESS
//	        command: wm.save_mainfile
//
// # Usage
//
//	table, err := keymap.NewTable(keymaps)
//	if err != nil {
//	    return err
//	}
//
//	res := table.Lookup(ev, keymap.State{Editor: "VIEW_3D", Region: "WINDOW"})
//	if res.Handled() {
//	    // Execute res.Command() with res.Args()
//	}
package keymap
