package expand

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/dshills/bindery/internal/input/key"
	"github.com/dshills/bindery/internal/input/mouse"
)

// Platform identifies the host operating system family that selects
// parameter defaults.
type Platform string

// Supported platforms.
const (
	PlatformDarwin  Platform = "darwin"
	PlatformLinux   Platform = "linux"
	PlatformWindows Platform = "windows"
)

// ParsePlatform returns the platform for a GOOS-style name. BSDs and other
// unix systems map to PlatformLinux.
func ParsePlatform(name string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "darwin", "macos", "mac":
		return PlatformDarwin, nil
	case "windows", "win":
		return PlatformWindows, nil
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly", "solaris", "illumos", "unix":
		return PlatformLinux, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, name)
	}
}

// HostPlatform returns the platform the process runs on.
func HostPlatform() Platform {
	p, err := ParsePlatform(runtime.GOOS)
	if err != nil {
		return PlatformLinux
	}
	return p
}

// Params are the inputs to expansion.
type Params struct {
	// Apple adds Cmd-based duplicates of the primary shortcuts.
	Apple bool `toml:"apple" json:"apple" yaml:"apple"`

	// Legacy selects the older binding scheme where the two differ.
	Legacy bool `toml:"legacy" json:"legacy" yaml:"legacy"`

	// SelectMouse is the button kind bound for selection.
	SelectMouse key.Kind `toml:"select_mouse" json:"select_mouse" yaml:"select_mouse"`

	// ActionMouse is the button kind bound for actions such as placing
	// the cursor.
	ActionMouse key.Kind `toml:"action_mouse" json:"action_mouse" yaml:"action_mouse"`
}

// DefaultParams returns the defaults for platform: Apple only on Darwin,
// modern bindings, and the abstract SELECTMOUSE/ACTIONMOUSE roles.
func DefaultParams(platform Platform) Params {
	return Params{
		Apple:       platform == PlatformDarwin,
		Legacy:      false,
		SelectMouse: key.KindSelectMouse,
		ActionMouse: key.KindActionMouse,
	}
}

// Validate rejects parameter combinations that would produce ambiguous
// bindings. Both roles must be mouse buttons, must differ, and must be
// either both abstract roles or both physical buttons.
func (p Params) Validate() error {
	if err := validButton("select_mouse", p.SelectMouse); err != nil {
		return err
	}
	if err := validButton("action_mouse", p.ActionMouse); err != nil {
		return err
	}
	if p.SelectMouse == p.ActionMouse {
		return &ConfigError{
			Param:   "action_mouse",
			Value:   p.ActionMouse,
			Message: "must differ from select_mouse",
			Err:     ErrInvalidParams,
		}
	}
	if p.SelectMouse.IsMouseRole() != p.ActionMouse.IsMouseRole() {
		return &ConfigError{
			Param:   "action_mouse",
			Value:   p.ActionMouse,
			Message: fmt.Sprintf("cannot mix a physical button with role %s", p.SelectMouse),
			Err:     ErrInvalidParams,
		}
	}
	if p.SelectMouse.IsMouseRole() && p.SelectMouse != key.KindSelectMouse {
		return &ConfigError{
			Param:   "select_mouse",
			Value:   p.SelectMouse,
			Message: "role must be SELECTMOUSE",
			Err:     ErrInvalidParams,
		}
	}
	return nil
}

func validButton(param string, k key.Kind) error {
	if !k.IsMouseButton() {
		return &ConfigError{
			Param:   param,
			Value:   k,
			Message: "not a mouse button",
			Err:     ErrInvalidParams,
		}
	}
	return nil
}

// Roles returns the physical button mapping implied by the params. Abstract
// roles fall back to left-click select.
func (p Params) Roles() mouse.Roles {
	if p.SelectMouse.IsMouseRole() {
		return mouse.DefaultRoles()
	}
	return mouse.Roles{Select: p.SelectMouse, Action: p.ActionMouse}
}

// SwapMouse returns p with the select and action buttons exchanged. Abstract
// roles are swapped through their physical mapping, since SELECTMOUSE may
// only ever stand for selection.
func (p Params) SwapMouse() Params {
	r := p.Roles()
	p.SelectMouse, p.ActionMouse = r.Action, r.Select
	return p
}

// String returns a compact representation for logs.
func (p Params) String() string {
	return fmt.Sprintf("apple=%t legacy=%t select_mouse=%s action_mouse=%s",
		p.Apple, p.Legacy, p.SelectMouse, p.ActionMouse)
}
