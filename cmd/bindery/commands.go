package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/dshills/bindery/internal/config"
	"github.com/dshills/bindery/internal/config/watcher"
	"github.com/dshills/bindery/internal/expand"
	"github.com/dshills/bindery/internal/input/fuzzy"
	"github.com/dshills/bindery/internal/input/key"
	"github.com/dshills/bindery/internal/input/keymap"
)

// ExpandCmd writes the expanded keymaps.
type ExpandCmd struct {
	Format  string   `help:"Output format: json or yaml." enum:"json,yaml" default:"yaml" short:"f"`
	Output  string   `help:"Write to a file instead of stdout; the extension picks the format." short:"o" type:"path"`
	Keymaps []string `help:"Only these keymaps." short:"k" sep:","`
}

// Run executes the expand command.
func (e *ExpandCmd) Run(cli *CLI) error {
	a, err := cli.App()
	if err != nil {
		return err
	}

	keymaps := a.Engine().Table().Keymaps()
	if len(e.Keymaps) > 0 {
		keymaps, err = selectKeymaps(keymaps, e.Keymaps)
		if err != nil {
			return err
		}
	}

	if e.Output != "" {
		return keymap.SaveFile(e.Output, keymaps)
	}
	return keymap.Encode(cli.Stdout(), keymap.Format(e.Format), keymaps)
}

func selectKeymaps(all []*keymap.Keymap, names []string) ([]*keymap.Keymap, error) {
	byName := make(map[string]*keymap.Keymap, len(all))
	for _, km := range all {
		byName[km.Name] = km
	}
	out := make([]*keymap.Keymap, 0, len(names))
	for _, name := range names {
		km, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", keymap.ErrKeymapNotFound, name)
		}
		out = append(out, km)
	}
	return out, nil
}

// DiffCmd compares the configured parameters against a variant.
type DiffCmd struct {
	Apple  bool `help:"Toggle the apple parameter."`
	Legacy bool `help:"Toggle the legacy parameter."`
	Swap   bool `help:"Swap the select and action mouse buttons."`
}

// Run executes the diff command.
func (d *DiffCmd) Run(cli *CLI) error {
	a, err := cli.App()
	if err != nil {
		return err
	}

	base := a.Engine().Snapshot()
	p := base.Params
	if d.Apple {
		p.Apple = !p.Apple
	}
	if d.Legacy {
		p.Legacy = !p.Legacy
	}
	if d.Swap {
		p = p.SwapMouse()
	}

	other, err := expand.ExpandTable(p)
	if err != nil {
		return err
	}
	defaults, err := expand.ExpandTable(base.Params)
	if err != nil {
		return err
	}

	cli.printf("--- %s\n+++ %s\n", base.Params, p)
	for _, c := range keymap.Diff(defaults, other) {
		cli.printf("%s\n", c)
	}
	return nil
}

// MatchCmd resolves one event.
type MatchCmd struct {
	Event   string   `arg:"" help:"Event such as ctrl+S, LEFTMOUSE:DOUBLE_CLICK or <C-S-z>."`
	Editor  string   `help:"Editor type." default:"VIEW_3D"`
	Region  string   `help:"Region type." default:"WINDOW"`
	Modes   []string `help:"Mode keymaps, most specific first." name:"mode" sep:","`
	Tools   []string `help:"Tool keymaps, most specific first." name:"tool" sep:","`
	Regions []string `help:"Generic region keymaps." name:"region-keymap" sep:","`
	Modal   string   `help:"Running modal keymap."`
	Chain   bool     `help:"Also list the keymaps consulted, in order."`
}

// Run executes the match command.
func (m *MatchCmd) Run(cli *CLI) error {
	a, err := cli.App()
	if err != nil {
		return err
	}

	ev, err := key.ParseEvent(m.Event)
	if err != nil {
		return err
	}
	state := keymap.State{
		Editor:  m.Editor,
		Region:  m.Region,
		Modal:   m.Modal,
		Tools:   m.Tools,
		Modes:   m.Modes,
		Regions: m.Regions,
	}

	if m.Chain {
		for i, km := range a.Engine().Table().Resolve(state) {
			cli.printf("%2d. %-28s %s\n", i+1, km.Name, km.Layer)
		}
		cli.printf("\n")
	}

	res, matched := a.Engine().Lookup(ev, state)
	if !res.Handled() {
		cli.printf("%s: unhandled\n", ev)
		return nil
	}
	cli.printf("%s -> %s\n", matched, res)
	return nil
}

// FindCmd searches operator ids.
type FindCmd struct {
	Query string `arg:"" optional:"" help:"Fuzzy query such as vsel."`
	Limit int    `help:"Maximum results." default:"10" short:"n"`
}

// Run executes the find command.
func (f *FindCmd) Run(cli *CLI) error {
	a, err := cli.App()
	if err != nil {
		return err
	}
	table := a.Engine().Table()

	seen := make(map[string]bool)
	var commands []string
	for _, km := range table.Keymaps() {
		for _, b := range km.Bindings {
			if !b.IsPseudo() && !seen[b.Command] {
				seen[b.Command] = true
				commands = append(commands, b.Command)
			}
		}
	}
	sort.Strings(commands)

	w := tabwriter.NewWriter(cli.Stdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COMMAND\tKEYMAP\tTRIGGERS")
	results := fuzzy.NewMatcher(fuzzy.DefaultWeights()).Match(f.Query, fuzzy.Strings(commands), f.Limit)
	for _, r := range results {
		keys := table.KeysFor(r.Item.Text)
		names := make([]string, 0, len(keys))
		for name := range keys {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			triggers := make([]string, len(keys[name]))
			for i, t := range keys[name] {
				triggers[i] = t.String()
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.Item.Text, name, strings.Join(triggers, ", "))
		}
	}
	return w.Flush()
}

// ValidateCmd checks configuration and keymap files.
type ValidateCmd struct{}

// Run executes the validate command.
func (v *ValidateCmd) Run(cli *CLI) error {
	a, err := cli.App()
	if err != nil {
		return err
	}
	snap := a.Engine().Snapshot()
	source := a.Config().Source
	if source == "" {
		source = "defaults"
	}
	cli.printf("config:   %s\nparams:   %s\nkeymaps:  %d\nbindings: %d\n",
		source, snap.Params, snap.Table.Len(), snap.Table.BindingCount())
	for _, p := range snap.Paths {
		cli.printf("user dir: %s\n", p)
	}
	return nil
}

// WatchCmd reloads keymaps until interrupted.
type WatchCmd struct {
	Debounce time.Duration `help:"Quiet period before a reload." default:"100ms"`
}

// Run executes the watch command.
func (w *WatchCmd) Run(cli *CLI) error {
	a, err := cli.App()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.Logger().Infow("watching", "config", a.Config().Source, "keymap_paths", a.Config().KeymapPaths())
	return a.Watch(ctx, watcher.WithDebounce(w.Debounce))
}

// ShowCmd prints the merged configuration.
type ShowCmd struct{}

// Run executes the show command.
func (s *ShowCmd) Run(cli *CLI) error {
	a, err := cli.App()
	if err != nil {
		return err
	}
	data, err := config.Marshal(a.Config())
	if err != nil {
		return err
	}
	_, err = cli.Stdout().Write(data)
	return err
}
