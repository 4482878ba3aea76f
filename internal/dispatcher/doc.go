// Package dispatcher runs the commands that keymap lookups resolve to.
//
// Handlers are registered by exact command name, or for a whole namespace
// ("view3d" handles "view3d.*" commands without an exact handler):
//
//	d := dispatcher.NewWithDefaults(dispatcher.WithLogger(log))
//	d.Register("wm.save_mainfile", save)
//	d.RegisterNamespace("view3d", view3d)
//
// # Dispatch
//
// When an invocation is dispatched:
//
//  1. Pre-dispatch hooks run and may rewrite or drop it
//  2. The handler is chosen: the active modal handler, then the exact
//     handler, then the namespace handler
//  3. The handler runs with optional timeout and panic recovery
//  4. Modal state is updated
//  5. Post-dispatch hooks run and metrics are recorded
//
// A command with no handler is reported to the Notifier and returned as
// ErrUnknownCommand; callers usually treat it as non-fatal.
//
// # Modal operators
//
// A handler enters a modal operator by returning StartModal with the name
// of a modal keymap and the handler that receives its pseudo-commands:
//
//	d.Register("transform.translate", func(ctx context.Context, inv dispatcher.Invocation) error {
//		return dispatcher.StartModal("Transform Modal Map", translateModal)
//	})
//
// ActiveModal reports the keymap name for keymap.State.Modal. The modal
// ends after its handler sees CANCEL or CONFIRM, or returns ErrEndModal.
package dispatcher
