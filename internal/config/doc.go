// Package config loads bindery settings.
//
// Settings come from three sources, each overriding the one before:
//
//  1. Built-in defaults (Default)
//  2. A TOML file, ~/.config/bindery/bindery.toml unless a path is given
//  3. BINDERY_* environment variables
//
// A typical file:
//
//	include = ["shared.toml"]
//
//	[keymap]
//	platform = "darwin"
//	legacy = true
//	select_mouse = "RIGHTMOUSE"
//	action_mouse = "LEFTMOUSE"
//	paths = ["~/.config/bindery/keymaps"]
//
//	[logging]
//	level = "debug"
//
//	[click]
//	double_click_ms = 300
//	max_distance = 4
//
// Unknown keys and mistyped values are rejected with a *ParseError.
// Config.Params turns the [keymap] table into validated expansion
// parameters.
//
// # Sub-packages
//
//   - loader: TOML and environment sources merged as generic maps
//   - watcher: fsnotify-based change notification for live reload
package config
