// Package expand builds the default keymaps from a small parameter set.
//
// Four parameters shape the output: Apple adds Cmd duplicates of the
// primary shortcuts, Legacy swaps in the older scheme where the two
// differ, and SelectMouse/ActionMouse pick the buttons for selection and
// actions. Defaults come from an explicit Platform:
//
//	p := expand.DefaultParams(expand.HostPlatform())
//	p.Legacy = true
//	table, err := expand.ExpandTable(p)
//
// # Rules
//
// Keymap builders do not branch on parameters. Each returns a flat list of
// Rules, a binding paired with the Predicate that enables it, and Expand
// keeps the enabled ones in declaration order:
//
//	Only(Legacy, item("text.new", press(key.KindN, ctrl)))
//	Only(Modern, item("text.new", press(key.KindN, alt)))
//
// Expansion is deterministic. Invalid parameters, such as the same button
// for both roles, fail with a *ConfigError before any keymap is built.
package expand
