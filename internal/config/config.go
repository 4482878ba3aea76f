package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dshills/bindery/internal/expand"
	"github.com/dshills/bindery/internal/input/key"
	"github.com/dshills/bindery/internal/input/mouse"
	"github.com/dshills/bindery/internal/logging"
)

// AppName names the configuration directory and file.
const AppName = "bindery"

// Config is the decoded configuration.
type Config struct {
	Keymap  KeymapConfig  `toml:"keymap"`
	Logging LoggingConfig `toml:"logging"`
	Click   ClickConfig   `toml:"click"`

	// Source is the file the configuration was read from, empty when no
	// file was found.
	Source string `toml:"-"`
}

// KeymapConfig holds the expansion parameters and user keymap locations.
// Unset fields fall back to the platform defaults.
type KeymapConfig struct {
	Platform    string   `toml:"platform,omitempty"`
	Apple       *bool    `toml:"apple,omitempty"`
	Legacy      *bool    `toml:"legacy,omitempty"`
	SelectMouse string   `toml:"select_mouse,omitempty"`
	ActionMouse string   `toml:"action_mouse,omitempty"`
	Paths       []string `toml:"paths,omitempty"`
}

// LoggingConfig configures the process logger.
type LoggingConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

// ClickConfig tunes click and double-click synthesis.
type ClickConfig struct {
	DoubleClickMS int `toml:"double_click_ms"`
	MaxDistance   int `toml:"max_distance"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	mc := mouse.DefaultConfig()
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Click: ClickConfig{
			DoubleClickMS: int(mc.DoubleClickTime / time.Millisecond),
			MaxDistance:   mc.MaxDistance,
		},
	}
}

// DefaultDir returns the user configuration directory.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", AppName)
}

// DefaultPath returns the user configuration file path.
func DefaultPath() string {
	dir := DefaultDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, AppName+".toml")
}

// Platform returns the configured platform, or the host platform when unset.
func (c Config) Platform() (expand.Platform, error) {
	if c.Keymap.Platform == "" {
		return expand.HostPlatform(), nil
	}
	p, err := expand.ParsePlatform(c.Keymap.Platform)
	if err != nil {
		return "", &expand.ConfigError{
			Param:   "platform",
			Value:   c.Keymap.Platform,
			Message: "unknown platform",
			Err:     err,
		}
	}
	return p, nil
}

// Params builds and validates the expansion parameters.
func (c Config) Params() (expand.Params, error) {
	platform, err := c.Platform()
	if err != nil {
		return expand.Params{}, err
	}

	p := expand.DefaultParams(platform)
	if c.Keymap.Apple != nil {
		p.Apple = *c.Keymap.Apple
	}
	if c.Keymap.Legacy != nil {
		p.Legacy = *c.Keymap.Legacy
	}
	if p.SelectMouse, err = parseButton("select_mouse", c.Keymap.SelectMouse, p.SelectMouse); err != nil {
		return expand.Params{}, err
	}
	if p.ActionMouse, err = parseButton("action_mouse", c.Keymap.ActionMouse, p.ActionMouse); err != nil {
		return expand.Params{}, err
	}

	if err := p.Validate(); err != nil {
		return expand.Params{}, err
	}
	return p, nil
}

// parseButton accepts a kind name or the shorthands LEFT, RIGHT, MIDDLE.
func parseButton(param, name string, fallback key.Kind) (key.Kind, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback, nil
	}
	switch strings.ToUpper(name) {
	case "LEFT":
		return key.KindLeftMouse, nil
	case "RIGHT":
		return key.KindRightMouse, nil
	case "MIDDLE":
		return key.KindMiddleMouse, nil
	}
	k := key.KindFromName(name)
	if k == key.KindNone {
		return key.KindNone, &expand.ConfigError{
			Param:   param,
			Value:   name,
			Message: "unknown key kind",
			Err:     expand.ErrInvalidParams,
		}
	}
	return k, nil
}

// MouseConfig returns the click synthesis settings for params.
func (c Config) MouseConfig(p expand.Params) mouse.Config {
	mc := mouse.DefaultConfig()
	if c.Click.DoubleClickMS > 0 {
		mc.DoubleClickTime = time.Duration(c.Click.DoubleClickMS) * time.Millisecond
	}
	if c.Click.MaxDistance >= 0 {
		mc.MaxDistance = c.Click.MaxDistance
	}
	mc.Roles = p.Roles()
	return mc
}

// KeymapPaths returns the user keymap search paths with a leading "~"
// expanded. Relative paths resolve against the configuration file.
func (c Config) KeymapPaths() []string {
	home, _ := os.UserHomeDir()
	base := ""
	if c.Source != "" {
		base = filepath.Dir(c.Source)
	}

	paths := make([]string, 0, len(c.Keymap.Paths))
	for _, p := range c.Keymap.Paths {
		switch {
		case p == "~" && home != "":
			p = home
		case strings.HasPrefix(p, "~/") && home != "":
			p = filepath.Join(home, p[2:])
		case !filepath.IsAbs(p) && base != "":
			p = filepath.Join(base, p)
		}
		paths = append(paths, p)
	}
	return paths
}

// Validate checks settings that decoding cannot.
func (c Config) Validate() error {
	if _, err := c.Params(); err != nil {
		return err
	}
	if c.Click.DoubleClickMS < 0 {
		return fmt.Errorf("%w: click.double_click_ms must not be negative", ErrInvalidValue)
	}
	if c.Click.MaxDistance < 0 {
		return fmt.Errorf("%w: click.max_distance must not be negative", ErrInvalidValue)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %w", ErrInvalidValue, err)
	}
	return nil
}
