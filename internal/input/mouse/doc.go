// Package mouse derives click, double-click and drag events from raw
// pointer input.
//
// Hosts deliver only PRESS and RELEASE for mouse buttons plus MOUSEMOVE
// for motion. Bindings may also ask for CLICK, DOUBLE_CLICK and the
// EVT_TWEAK drag kinds, so the ClickDetector turns each raw event into a
// short list of candidates, most specific first:
//
//	det := mouse.NewClickDetector(mouse.DefaultConfig())
//	for _, group := range det.Expand(raw) {
//	    if res, ev := keymap.MatchAny(group, keymaps); res.Handled() {
//	        // dispatch res with ev
//	        break
//	    }
//	}
//
// # Roles
//
// Keymaps written against the abstract SELECTMOUSE and ACTIONMOUSE kinds
// match through Roles, which maps them to physical buttons. Expand groups
// the role form of each candidate with its physical form.
//
// # Thread Safety
//
// ClickDetector is safe for concurrent use.
package mouse
