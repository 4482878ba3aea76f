package input

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dshills/bindery/internal/config"
	"github.com/dshills/bindery/internal/dispatcher"
	"github.com/dshills/bindery/internal/expand"
	"github.com/dshills/bindery/internal/input/key"
	"github.com/dshills/bindery/internal/input/keymap"
	"github.com/dshills/bindery/internal/input/mouse"
)

// ErrNotLoaded is returned when events arrive before the first Load.
var ErrNotLoaded = errors.New("keymaps not loaded")

// Snapshot is one immutable generation of resolved keymaps. Lookups hold
// on to the snapshot they started with while a reload swaps in the next.
type Snapshot struct {
	// Generation uniquely identifies the load.
	Generation string

	// Params are the parameters the defaults were expanded with.
	Params expand.Params

	// Table holds the default and user keymaps.
	Table *keymap.Table

	// Paths are the user keymap directories that were searched.
	Paths []string

	// LoadedAt is when the table was built.
	LoadedAt time.Time

	clicks *mouse.ClickDetector
}

// Engine turns raw input events into dispatched commands. It owns the
// current keymap table and the click detector derived from the same
// parameters, and swaps both atomically on reload.
type Engine struct {
	dispatcher *dispatcher.Dispatcher
	log        *zap.SugaredLogger
	metrics    *Metrics
	hooks      *HookManager

	reloadMu sync.Mutex
	current  atomic.Pointer[Snapshot]
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards output.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithMetrics shares a metrics tracker.
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) {
		if m != nil {
			e.metrics = m
		}
	}
}

// WithHooks shares a hook manager.
func WithHooks(h *HookManager) Option {
	return func(e *Engine) {
		if h != nil {
			e.hooks = h
		}
	}
}

// NewEngine creates an engine that dispatches through d. A nil d gets a
// dispatcher with default settings. Call Load before Handle.
func NewEngine(d *dispatcher.Dispatcher, opts ...Option) *Engine {
	e := &Engine{
		dispatcher: d,
		log:        zap.NewNop().Sugar(),
		metrics:    NewMetrics(),
		hooks:      NewHookManager(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.dispatcher == nil {
		e.dispatcher = dispatcher.NewWithDefaults(dispatcher.WithLogger(e.log))
	}
	return e
}

// Dispatcher returns the dispatcher commands are sent to.
func (e *Engine) Dispatcher() *dispatcher.Dispatcher { return e.dispatcher }

// Metrics returns the metrics tracker.
func (e *Engine) Metrics() *Metrics { return e.metrics }

// Hooks returns the hook manager.
func (e *Engine) Hooks() *HookManager { return e.hooks }

// Snapshot returns the current generation, or nil before the first Load.
func (e *Engine) Snapshot() *Snapshot { return e.current.Load() }

// Table returns the current keymap table, or nil before the first Load.
func (e *Engine) Table() *keymap.Table {
	if s := e.current.Load(); s != nil {
		return s.Table
	}
	return nil
}

// Load expands the default keymaps for cfg, merges the user keymap files
// it names and installs the result. On error the previous generation
// stays in place.
func (e *Engine) Load(cfg config.Config) (*Snapshot, error) {
	e.reloadMu.Lock()
	defer e.reloadMu.Unlock()

	prev := e.current.Load()
	next, err := build(cfg, prev)
	e.metrics.RecordReload(err)
	if err != nil {
		fields := []any{"error", err}
		if prev != nil {
			fields = append(fields, "keeping", prev.Generation)
		}
		e.log.Errorw("keymap load failed", fields...)
		return nil, err
	}

	fields := []any{
		"generation", next.Generation,
		"params", next.Params.String(),
		"keymaps", next.Table.Len(),
		"bindings", next.Table.BindingCount(),
	}
	if prev != nil {
		fields = append(fields, "previous", prev.Generation, "changes", len(keymap.Diff(prev.Table, next.Table)))
		if next.clicks != prev.clicks && prev.clicks.IsHeld() {
			e.log.Infow("mouse settings changed, dropping held buttons", "generation", next.Generation)
		}
	}
	e.current.Store(next)
	e.log.Infow("keymaps loaded", fields...)
	return next, nil
}

// build creates the next generation. The click detector of prev carries
// over while the mouse settings are unchanged, so a press before a reload
// still pairs with its release after it.
func build(cfg config.Config, prev *Snapshot) (*Snapshot, error) {
	p, err := cfg.Params()
	if err != nil {
		return nil, err
	}

	paths := cfg.KeymapPaths()
	extra, err := keymap.NewLoader(paths...).LoadAll()
	if err != nil {
		return nil, fmt.Errorf("user keymaps: %w", err)
	}

	table, err := expand.ExpandWith(p, extra)
	if err != nil {
		return nil, err
	}

	mc := cfg.MouseConfig(p)
	var clicks *mouse.ClickDetector
	if prev != nil && prev.clicks.Config() == mc {
		clicks = prev.clicks
	} else {
		clicks = mouse.NewClickDetector(mc)
	}

	return &Snapshot{
		Generation: uuid.NewString(),
		Params:     p,
		Table:      table,
		Paths:      paths,
		LoadedAt:   time.Now(),
		clicks:     clicks,
	}, nil
}

// Lookup resolves ev against the current table without dispatching. The
// event is expanded into click candidates, tried in order. Each candidate
// and its role alias are matched together keymap by keymap, so layering
// decides between a physical and a role binding. The event the binding
// accepted is returned with the result. An
// empty state.Modal is filled from the dispatcher's running modal.
func (e *Engine) Lookup(ev key.Event, state keymap.State) (keymap.Result, key.Event) {
	snap := e.current.Load()
	if snap == nil {
		return keymap.Unhandled, ev
	}
	return e.lookup(snap, ev, state)
}

func (e *Engine) lookup(snap *Snapshot, ev key.Event, state keymap.State) (keymap.Result, key.Event) {
	if state.Modal == "" {
		state.Modal = e.dispatcher.ActiveModal()
	}

	keymaps := snap.Table.Resolve(state)
	for _, group := range snap.clicks.Expand(ev) {
		if res, matched := keymap.MatchAny(group, keymaps); res.Handled() {
			return res, matched
		}
	}
	return keymap.Unhandled, ev
}

// Handle resolves ev and dispatches the matched command. Unhandled events
// return an unhandled result and no error. Hooks may consume the event
// before lookup.
func (e *Engine) Handle(ctx context.Context, ev key.Event, state keymap.State) (keymap.Result, error) {
	snap := e.current.Load()
	if snap == nil {
		return keymap.Unhandled, ErrNotLoaded
	}

	if e.hooks.RunPreEvent(&ev, &state) {
		e.metrics.RecordHookConsumption()
		return keymap.Unhandled, nil
	}

	start := time.Now()
	res, matched := e.lookup(snap, ev, state)
	e.metrics.RecordEvent(ev.Kind.IsMouse(), res.Handled(), time.Since(start))
	e.hooks.RunPostEvent(matched, res)

	if !res.Handled() {
		return res, nil
	}
	if err := e.dispatcher.Dispatch(ctx, dispatcher.FromResult(res, matched)); err != nil {
		e.metrics.RecordDispatchError()
		return res, err
	}
	return res, nil
}

// ResetClicks clears pending click and drag state, for example when the
// window loses focus.
func (e *Engine) ResetClicks() {
	if s := e.current.Load(); s != nil {
		s.clicks.Reset()
	}
}
