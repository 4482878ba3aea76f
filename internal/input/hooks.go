package input

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/dshills/bindery/internal/input/key"
	"github.com/dshills/bindery/internal/input/keymap"
)

// Hook intercepts events on their way through the engine.
type Hook interface {
	// PreEvent runs before candidates are derived. It may rewrite the
	// event or the state. Returning true consumes the event.
	PreEvent(ev *key.Event, state *keymap.State) bool

	// PostEvent runs after lookup with the matched candidate and result.
	PostEvent(ev key.Event, res keymap.Result)
}

// HookPriority orders hooks. Lower values run first.
type HookPriority int

const (
	// HookPriorityHigh runs early in the chain.
	HookPriorityHigh HookPriority = -100
	// HookPriorityNormal is the default priority.
	HookPriorityNormal HookPriority = 0
	// HookPriorityLow runs late in the chain.
	HookPriorityLow HookPriority = 100
)

// HookID identifies a registered hook.
type HookID uint64

// HookRegistration describes a registered hook.
type HookRegistration struct {
	ID       HookID
	Name     string
	Priority HookPriority
	Hook     Hook
}

// HookManager runs hooks in priority order, registration order within a
// priority.
type HookManager struct {
	mu      sync.RWMutex
	hooks   []HookRegistration
	nextID  HookID
	enabled bool
}

// NewHookManager creates an empty, enabled manager.
func NewHookManager() *HookManager {
	return &HookManager{enabled: true}
}

// Register adds a hook. Name may be empty; a non-empty name replaces any
// hook registered under it.
func (m *HookManager) Register(hook Hook, name string, priority HookPriority) HookID {
	m.mu.Lock()
	defer m.mu.Unlock()

	if name != "" {
		m.removeLocked(func(r HookRegistration) bool { return r.Name == name })
	}

	m.nextID++
	m.hooks = append(m.hooks, HookRegistration{
		ID:       m.nextID,
		Name:     name,
		Priority: priority,
		Hook:     hook,
	})
	sort.SliceStable(m.hooks, func(i, j int) bool {
		return m.hooks[i].Priority < m.hooks[j].Priority
	})
	return m.nextID
}

// Unregister removes a hook by ID.
func (m *HookManager) Unregister(id HookID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.removeLocked(func(r HookRegistration) bool { return r.ID == id })
}

// UnregisterByName removes a hook by name.
func (m *HookManager) UnregisterByName(name string) bool {
	if name == "" {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.removeLocked(func(r HookRegistration) bool { return r.Name == name })
}

func (m *HookManager) removeLocked(match func(HookRegistration) bool) bool {
	for i, r := range m.hooks {
		if match(r) {
			m.hooks = append(m.hooks[:i], m.hooks[i+1:]...)
			return true
		}
	}
	return false
}

// SetEnabled turns all hooks on or off.
func (m *HookManager) SetEnabled(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enabled = enabled
}

// List returns the registrations in run order.
func (m *HookManager) List() []HookRegistration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]HookRegistration(nil), m.hooks...)
}

func (m *HookManager) snapshot() []Hook {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.enabled {
		return nil
	}
	hooks := make([]Hook, len(m.hooks))
	for i, r := range m.hooks {
		hooks[i] = r.Hook
	}
	return hooks
}

// RunPreEvent runs PreEvent hooks until one consumes the event.
func (m *HookManager) RunPreEvent(ev *key.Event, state *keymap.State) bool {
	for _, h := range m.snapshot() {
		if h.PreEvent(ev, state) {
			return true
		}
	}
	return false
}

// RunPostEvent runs every PostEvent hook.
func (m *HookManager) RunPostEvent(ev key.Event, res keymap.Result) {
	for _, h := range m.snapshot() {
		h.PostEvent(ev, res)
	}
}

// FuncHook adapts functions to Hook. Nil functions are no-ops.
type FuncHook struct {
	Pre  func(ev *key.Event, state *keymap.State) bool
	Post func(ev key.Event, res keymap.Result)
}

// PreEvent implements Hook.
func (h FuncHook) PreEvent(ev *key.Event, state *keymap.State) bool {
	if h.Pre == nil {
		return false
	}
	return h.Pre(ev, state)
}

// PostEvent implements Hook.
func (h FuncHook) PostEvent(ev key.Event, res keymap.Result) {
	if h.Post != nil {
		h.Post(ev, res)
	}
}

// LoggingHook logs every event and its resolution at debug level.
type LoggingHook struct {
	Log *zap.SugaredLogger
}

// PreEvent implements Hook.
func (h LoggingHook) PreEvent(ev *key.Event, state *keymap.State) bool {
	h.Log.Debugw("input event", "event", ev.String(), "editor", state.Editor, "region", state.Region, "modal", state.Modal)
	return false
}

// PostEvent implements Hook.
func (h LoggingHook) PostEvent(ev key.Event, res keymap.Result) {
	h.Log.Debugw("input resolved", "event", ev.String(), "result", res.String())
}
