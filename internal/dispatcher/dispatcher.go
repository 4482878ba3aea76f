package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dshills/bindery/internal/input/keymap"
)

// Dispatcher runs resolved commands and tracks the active modal operator.
type Dispatcher struct {
	mu sync.RWMutex

	registry *Registry
	router   *Router
	config   Config
	metrics  *Metrics
	notifier Notifier
	log      *zap.SugaredLogger

	modal *ModalRequest

	preHooks  []PreDispatchHook
	postHooks []PostDispatchHook
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger. The default discards output.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(d *Dispatcher) {
		if log != nil {
			d.log = log
		}
	}
}

// WithNotifier sets where unknown commands are reported. The default
// logs them as warnings.
func WithNotifier(n Notifier) Option {
	return func(d *Dispatcher) {
		d.notifier = n
	}
}

// WithRegistry shares an existing handler registry.
func WithRegistry(r *Registry) Option {
	return func(d *Dispatcher) {
		if r != nil {
			d.registry = r
		}
	}
}

// New creates a dispatcher.
func New(config Config, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: NewRegistry(),
		router:   NewRouter(),
		config:   config,
		log:      zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.notifier == nil {
		d.notifier = LogNotifier{Log: d.log}
	}
	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}
	return d
}

// NewWithDefaults creates a dispatcher with DefaultConfig.
func NewWithDefaults(opts ...Option) *Dispatcher {
	return New(DefaultConfig(), opts...)
}

// Register sets the handler for a command.
func (d *Dispatcher) Register(command string, h HandlerFunc) {
	d.registry.Register(command, h)
}

// Unregister removes the handler for a command.
func (d *Dispatcher) Unregister(command string) {
	d.registry.Unregister(command)
}

// RegisterNamespace routes every command in namespace without an exact
// handler to h.
func (d *Dispatcher) RegisterNamespace(namespace string, h HandlerFunc) {
	d.router.RegisterNamespace(namespace, h)
}

// Router returns the namespace router.
func (d *Dispatcher) Router() *Router {
	return d.router
}

// Registry returns the handler registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Metrics returns the collector, or nil when metrics are disabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// ActiveModal returns the modal keymap driving the running modal operator,
// or "" when none is running. It feeds keymap.State.Modal.
func (d *Dispatcher) ActiveModal() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.modal == nil {
		return ""
	}
	return d.modal.Keymap
}

// CancelModal sends CANCEL to the running modal operator and ends it.
func (d *Dispatcher) CancelModal(ctx context.Context) error {
	name := d.ActiveModal()
	if name == "" {
		return nil
	}
	return d.Dispatch(ctx, Invocation{Command: keymap.CommandCancel, Keymap: name})
}

// Dispatch runs the handler for inv. While a modal operator is active,
// invocations from its keymap go to the modal handler, and CANCEL or
// CONFIRM end it. Unknown commands are reported to the Notifier and
// returned as ErrUnknownCommand.
func (d *Dispatcher) Dispatch(ctx context.Context, inv Invocation) error {
	if inv.Command == "" {
		return ErrInvalidInvocation
	}
	if !d.runPreHooks(ctx, &inv) {
		return nil
	}

	h, inModal := d.route(inv)
	if h == nil {
		err := fmt.Errorf("%w: %s", ErrUnknownCommand, inv.Command)
		if d.metrics != nil {
			d.metrics.RecordUnknown(inv.Command)
		}
		d.notifier.Notify(ctx, Notification{
			Command: inv.Command,
			Keymap:  inv.Keymap,
			Message: "no handler for command",
			Err:     err,
		})
		d.runPostHooks(ctx, inv, err)
		return err
	}

	start := time.Now()
	err := d.run(ctx, h, inv)

	var req *ModalRequest
	switch {
	case inModal:
		if errors.Is(err, ErrEndModal) {
			err = nil
			d.endModal("end")
		} else if inv.Command == keymap.CommandCancel || inv.Command == keymap.CommandConfirm {
			d.endModal(inv.Command)
		}
	case errors.As(err, &req):
		err = d.beginModal(req, inv)
	}

	if d.metrics != nil {
		d.metrics.RecordDispatch(inv.Command, time.Since(start), err)
	}
	d.runPostHooks(ctx, inv, err)
	return err
}

// route picks the modal handler for invocations from the active modal
// keymap, then an exact handler, then a namespace handler.
func (d *Dispatcher) route(inv Invocation) (HandlerFunc, bool) {
	d.mu.RLock()
	m := d.modal
	d.mu.RUnlock()

	if m != nil && inv.Keymap == m.Keymap {
		return m.Handler, true
	}
	if h := d.registry.Get(inv.Command); h != nil {
		return h, false
	}
	return d.router.Route(inv.Command), false
}

func (d *Dispatcher) beginModal(req *ModalRequest, inv Invocation) error {
	if req.Keymap == "" || req.Handler == nil {
		return fmt.Errorf("%w: %s returned an empty modal request", ErrInvalidInvocation, inv.Command)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.modal != nil {
		return fmt.Errorf("%w: %s", ErrModalActive, d.modal.Keymap)
	}
	d.modal = req
	d.log.Debugw("modal started", "keymap", req.Keymap, "command", inv.Command)
	return nil
}

func (d *Dispatcher) endModal(reason string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.modal != nil {
		d.log.Debugw("modal ended", "keymap", d.modal.Keymap, "reason", reason)
	}
	d.modal = nil
}

// run calls h with the configured timeout and panic recovery.
func (d *Dispatcher) run(ctx context.Context, h HandlerFunc, inv Invocation) (err error) {
	if d.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.config.Timeout)
		defer cancel()
	}

	if d.config.RecoverFromPanic {
		defer func() {
			if r := recover(); r != nil {
				stack := make([]byte, 4096)
				n := runtime.Stack(stack, false)
				d.log.Errorw("handler panic", "command", inv.Command, "panic", r, "stack", string(stack[:n]))
				if d.metrics != nil {
					d.metrics.RecordPanic(inv.Command)
				}
				err = fmt.Errorf("%w: %s: %v", ErrPanic, inv.Command, r)
			}
		}()
	}

	err = h(ctx, inv)
	if d.config.Timeout > 0 && errors.Is(err, context.DeadlineExceeded) {
		err = fmt.Errorf("%w: %s: %w", ErrTimeout, inv.Command, err)
	}
	return err
}
