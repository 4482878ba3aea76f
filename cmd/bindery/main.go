// Package main is the entry point for the bindery keymap tool.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const description = "Expand, inspect and test parameterized keymaps."

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("bindery"),
		kong.Description(description),
		kong.Vars{
			"version": fmt.Sprintf("bindery %s (commit: %s, built: %s)", version, commit, date),
		},
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	defer cli.Close()

	if err := ctx.Run(&cli); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
