package dispatcher

import "context"

// PreDispatchHook is called before a handler runs. It may rewrite the
// invocation. Returning false drops it.
type PreDispatchHook interface {
	PreDispatch(ctx context.Context, inv *Invocation) bool
}

// PostDispatchHook is called after a handler returns, with its error.
type PostDispatchHook interface {
	PostDispatch(ctx context.Context, inv Invocation, err error)
}

// PreDispatchFunc is a function adapter for PreDispatchHook.
type PreDispatchFunc func(ctx context.Context, inv *Invocation) bool

// PreDispatch implements PreDispatchHook.
func (f PreDispatchFunc) PreDispatch(ctx context.Context, inv *Invocation) bool {
	return f(ctx, inv)
}

// PostDispatchFunc is a function adapter for PostDispatchHook.
type PostDispatchFunc func(ctx context.Context, inv Invocation, err error)

// PostDispatch implements PostDispatchHook.
func (f PostDispatchFunc) PostDispatch(ctx context.Context, inv Invocation, err error) {
	f(ctx, inv, err)
}

// RegisterPreHook adds a pre-dispatch hook.
func (d *Dispatcher) RegisterPreHook(h PreDispatchHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.preHooks = append(d.preHooks, h)
}

// RegisterPostHook adds a post-dispatch hook.
func (d *Dispatcher) RegisterPostHook(h PostDispatchHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.postHooks = append(d.postHooks, h)
}

func (d *Dispatcher) runPreHooks(ctx context.Context, inv *Invocation) bool {
	d.mu.RLock()
	hooks := append([]PreDispatchHook(nil), d.preHooks...)
	d.mu.RUnlock()

	for _, h := range hooks {
		if !h.PreDispatch(ctx, inv) {
			return false
		}
	}
	return true
}

func (d *Dispatcher) runPostHooks(ctx context.Context, inv Invocation, err error) {
	d.mu.RLock()
	hooks := append([]PostDispatchHook(nil), d.postHooks...)
	d.mu.RUnlock()

	for _, h := range hooks {
		h.PostDispatch(ctx, inv, err)
	}
}
