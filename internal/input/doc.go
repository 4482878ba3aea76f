// Package input resolves raw input events against the keymap table and
// dispatches the commands they are bound to.
//
// An Engine owns one Snapshot at a time: the table expanded from the
// current parameters plus any user keymap files, and the click detector
// configured for the same mouse roles. Load builds a new snapshot and swaps
// it in atomically; lookups already in flight finish on the old one, and a
// failed load leaves the old one serving.
//
// # Event flow
//
// For each event Handle:
//
//  1. runs PreEvent hooks, which may rewrite or consume the event
//  2. fills State.Modal from the dispatcher's running modal operator
//  3. expands the event into candidates (DOUBLE_CLICK before PRESS,
//     RELEASE before CLICK, each followed by its SELECTMOUSE or
//     ACTIONMOUSE alias)
//  4. matches candidates in order against the resolved keymaps; the first
//     hit wins
//  5. runs PostEvent hooks and dispatches the matched command
//
// # Usage
//
//	d := dispatcher.NewWithDefaults(dispatcher.WithLogger(log))
//	d.RegisterNamespace("view3d", view3dOps)
//
//	e := input.NewEngine(d, input.WithLogger(log))
//	if _, err := e.Load(cfg); err != nil {
//		return err
//	}
//	res, err := e.Handle(ctx, ev, keymap.State{Editor: "VIEW_3D", Region: "WINDOW"})
//
// Watch keeps the engine in sync with the configuration file and keymap
// directories.
package input
