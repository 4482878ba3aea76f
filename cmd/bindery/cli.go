package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/dshills/bindery/internal/app"
)

// CLI is the command-line interface.
type CLI struct {
	Version  kong.VersionFlag `help:"Show version information."`
	Config   string           `help:"Configuration file." short:"c" type:"path" env:"BINDERY_CONFIG"`
	LogLevel string           `help:"Log level: debug, info, warn or error."`
	Debug    bool             `help:"Enable debug logging." short:"d"`

	Expand   ExpandCmd   `cmd:"" help:"Write the expanded keymaps."`
	Diff     DiffCmd     `cmd:"" help:"Show bindings that change between two parameter sets."`
	Match    MatchCmd    `cmd:"" help:"Resolve an event in a UI state."`
	Find     FindCmd     `cmd:"" help:"Search commands and show their bindings."`
	Validate ValidateCmd `cmd:"" help:"Check the configuration and keymap files."`
	Watch    WatchCmd    `cmd:"" help:"Reload keymaps as files change."`
	Show     ShowCmd     `cmd:"" help:"Print the merged configuration."`

	app *app.Application `kong:"-"`
	out io.Writer        `kong:"-"`
}

// App builds the application on first use.
func (c *CLI) App() (*app.Application, error) {
	if c.app != nil {
		return c.app, nil
	}
	a, err := app.New(app.Options{
		ConfigPath: c.Config,
		LogLevel:   c.LogLevel,
		Debug:      c.Debug,
	})
	if err != nil {
		return nil, err
	}
	c.app = a
	return a, nil
}

// Stdout is where commands write results.
func (c *CLI) Stdout() io.Writer {
	if c.out != nil {
		return c.out
	}
	return os.Stdout
}

// Close releases the application.
func (c *CLI) Close() {
	if c.app != nil {
		c.app.Close()
	}
}

func (c *CLI) printf(format string, args ...any) {
	fmt.Fprintf(c.Stdout(), format, args...)
}
