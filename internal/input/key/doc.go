// Package key provides input event types and trigger parsing.
//
// This package defines the fundamental types for representing physical input:
//
//   - Kind: Identifies a key, mouse button, wheel, trackpad, NDOF, timer or action-zone signal
//   - Value: The event phase (PRESS, RELEASE, CLICK, DOUBLE_CLICK, ANY)
//   - Modifier: A set of held modifier keys (Shift, Ctrl, Alt, OSKey)
//   - Event: A single physical event with position and timestamp
//   - Trigger: The predicate a binding places on events
//
// # Trigger Specifications
//
// Triggers can be written in multiple formats:
//
//   - Identifiers: "S", "ESC", "LEFTMOUSE", "NUMPAD_ENTER"
//   - With phase: "LEFTMOUSE:CLICK", "TIMER0:ANY"
//   - With modifiers: "ctrl+S", "shift+ctrl+Z", "any+ESC"
//   - Vim-style: "<C-s>", "<C-S-z>", "<D-q>"
//
// # Matching
//
// A trigger matches an event when the kinds are equal, the phases agree
// (or the trigger phase is ANY) and the modifier sets are equal. Setting
// AnyModifier on a trigger ignores modifiers.
package key
