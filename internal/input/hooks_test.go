package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/dshills/bindery/internal/input/key"
	"github.com/dshills/bindery/internal/input/keymap"
)

func TestHookManagerOrder(t *testing.T) {
	m := NewHookManager()

	var order []string
	add := func(name string, p HookPriority) HookID {
		return m.Register(FuncHook{Pre: func(*key.Event, *keymap.State) bool {
			order = append(order, name)
			return false
		}}, name, p)
	}
	add("low", HookPriorityLow)
	add("normal-1", HookPriorityNormal)
	add("high", HookPriorityHigh)
	add("normal-2", HookPriorityNormal)

	ev := key.Press(key.KindA, key.ModNone)
	state := keymap.State{}
	assert.False(t, m.RunPreEvent(&ev, &state))
	assert.Equal(t, []string{"high", "normal-1", "normal-2", "low"}, order)
}

func TestHookManagerConsumeAndRewrite(t *testing.T) {
	m := NewHookManager()
	m.Register(FuncHook{Pre: func(ev *key.Event, state *keymap.State) bool {
		ev.Modifiers = key.ModCtrl
		state.Editor = "TEXT_EDITOR"
		return false
	}}, "rewrite", HookPriorityHigh)

	reached := false
	m.Register(FuncHook{Pre: func(ev *key.Event, _ *keymap.State) bool {
		return ev.Kind == key.KindEsc
	}}, "swallow-esc", HookPriorityNormal)
	m.Register(FuncHook{Pre: func(*key.Event, *keymap.State) bool {
		reached = true
		return false
	}}, "last", HookPriorityLow)

	ev := key.Press(key.KindEsc, key.ModNone)
	state := keymap.State{}
	assert.True(t, m.RunPreEvent(&ev, &state))
	assert.False(t, reached)
	assert.Equal(t, key.ModCtrl, ev.Modifiers)
	assert.Equal(t, "TEXT_EDITOR", state.Editor)
}

func TestHookManagerRegistration(t *testing.T) {
	m := NewHookManager()
	id := m.Register(FuncHook{}, "a", HookPriorityNormal)
	m.Register(FuncHook{}, "b", HookPriorityNormal)
	m.Register(FuncHook{}, "a", HookPriorityLow)

	list := m.List()
	require.Len(t, list, 2, "registering a name again replaces it")
	assert.Equal(t, "b", list[0].Name)
	assert.Equal(t, HookPriorityLow, list[1].Priority)

	assert.False(t, m.Unregister(id), "replaced hook is gone")
	assert.True(t, m.UnregisterByName("b"))
	assert.False(t, m.UnregisterByName(""))
	assert.Len(t, m.List(), 1)
}

func TestHookManagerDisabled(t *testing.T) {
	m := NewHookManager()
	m.Register(FuncHook{Pre: func(*key.Event, *keymap.State) bool { return true }}, "", HookPriorityNormal)
	m.SetEnabled(false)

	ev := key.Press(key.KindA, key.ModNone)
	state := keymap.State{}
	assert.False(t, m.RunPreEvent(&ev, &state))
}

func TestLoggingHook(t *testing.T) {
	h := LoggingHook{Log: zaptest.NewLogger(t).Sugar()}
	ev := key.Press(key.KindA, key.ModNone)
	state := keymap.State{Editor: "VIEW_3D"}
	assert.False(t, h.PreEvent(&ev, &state))
	h.PostEvent(ev, keymap.Unhandled)
}
