package dispatcher_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/dshills/bindery/internal/dispatcher"
	"github.com/dshills/bindery/internal/input/key"
	"github.com/dshills/bindery/internal/input/keymap"
)

const transformModal = "Transform Modal Map"

func newDispatcher(t *testing.T, config dispatcher.Config, opts ...dispatcher.Option) *dispatcher.Dispatcher {
	t.Helper()
	opts = append([]dispatcher.Option{dispatcher.WithLogger(zaptest.NewLogger(t).Sugar())}, opts...)
	return dispatcher.New(config, opts...)
}

func TestNewWithDefaults(t *testing.T) {
	d := dispatcher.NewWithDefaults()
	require.NotNil(t, d.Registry())
	require.NotNil(t, d.Router())
	assert.Nil(t, d.Metrics(), "metrics are off by default")
	assert.Empty(t, d.ActiveModal())
}

func TestDispatchRegistered(t *testing.T) {
	d := newDispatcher(t, dispatcher.DefaultConfig())

	var got dispatcher.Invocation
	d.Register("wm.save_mainfile", func(_ context.Context, inv dispatcher.Invocation) error {
		got = inv
		return nil
	})

	inv := dispatcher.Invocation{
		Command: "wm.save_mainfile",
		Args:    keymap.NewArgs(keymap.A("check_existing", true)),
		Keymap:  "Window",
		Event:   key.Press(key.KindS, key.ModCtrl),
	}
	require.NoError(t, d.Dispatch(context.Background(), inv))
	assert.Equal(t, "Window", got.Keymap)
	v, ok := got.Args.Get("check_existing")
	assert.True(t, ok)
	assert.Equal(t, true, v)
}

func TestDispatchInvalid(t *testing.T) {
	d := dispatcher.NewWithDefaults()
	assert.ErrorIs(t, d.Dispatch(context.Background(), dispatcher.Invocation{}), dispatcher.ErrInvalidInvocation)
}

func TestDispatchUnknownNotifies(t *testing.T) {
	var notes []dispatcher.Notification
	d := newDispatcher(t, dispatcher.DefaultConfig().WithMetrics(),
		dispatcher.WithNotifier(dispatcher.NotifierFunc(func(_ context.Context, n dispatcher.Notification) {
			notes = append(notes, n)
		})))

	err := d.Dispatch(context.Background(), dispatcher.Invocation{Command: "mesh.bevel", Keymap: "Mesh"})
	require.ErrorIs(t, err, dispatcher.ErrUnknownCommand)
	assert.Contains(t, err.Error(), "mesh.bevel")

	require.Len(t, notes, 1)
	assert.Equal(t, "mesh.bevel", notes[0].Command)
	assert.Equal(t, "Mesh", notes[0].Keymap)
	assert.ErrorIs(t, notes[0].Err, dispatcher.ErrUnknownCommand)

	assert.Equal(t, uint64(1), d.Metrics().TotalUnknown())
	assert.Equal(t, uint64(0), d.Metrics().TotalDispatches())
}

func TestDispatchNamespaceFallback(t *testing.T) {
	d := newDispatcher(t, dispatcher.DefaultConfig())

	var exact, namespaced []string
	d.Register("view3d.select", func(_ context.Context, inv dispatcher.Invocation) error {
		exact = append(exact, inv.Command)
		return nil
	})
	d.RegisterNamespace("view3d", func(_ context.Context, inv dispatcher.Invocation) error {
		namespaced = append(namespaced, inv.Command)
		return nil
	})

	ctx := context.Background()
	require.NoError(t, d.Dispatch(ctx, dispatcher.Invocation{Command: "view3d.select"}))
	require.NoError(t, d.Dispatch(ctx, dispatcher.Invocation{Command: "view3d.cursor3d"}))
	assert.ErrorIs(t, d.Dispatch(ctx, dispatcher.Invocation{Command: "mesh.bevel"}), dispatcher.ErrUnknownCommand)

	assert.Equal(t, []string{"view3d.select"}, exact)
	assert.Equal(t, []string{"view3d.cursor3d"}, namespaced)
}

func TestModalLifecycle(t *testing.T) {
	tests := []struct {
		name string
		exit string
	}{
		{"cancel", keymap.CommandCancel},
		{"confirm", keymap.CommandConfirm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDispatcher(t, dispatcher.DefaultConfig())
			ctx := context.Background()

			var seen []string
			modal := func(_ context.Context, inv dispatcher.Invocation) error {
				seen = append(seen, inv.Command)
				return nil
			}
			d.Register("transform.translate", func(context.Context, dispatcher.Invocation) error {
				return dispatcher.StartModal(transformModal, modal)
			})

			require.NoError(t, d.Dispatch(ctx, dispatcher.Invocation{Command: "transform.translate", Keymap: "3D View"}))
			assert.Equal(t, transformModal, d.ActiveModal())

			require.NoError(t, d.Dispatch(ctx, dispatcher.Invocation{Command: "AXIS_X", Keymap: transformModal}))
			assert.Equal(t, transformModal, d.ActiveModal())

			require.NoError(t, d.Dispatch(ctx, dispatcher.Invocation{Command: tt.exit, Keymap: transformModal}))
			assert.Empty(t, d.ActiveModal())
			assert.Equal(t, []string{"AXIS_X", tt.exit}, seen)

			err := d.Dispatch(ctx, dispatcher.Invocation{Command: "AXIS_Y", Keymap: transformModal})
			assert.ErrorIs(t, err, dispatcher.ErrUnknownCommand, "pseudo-commands need an active modal")
		})
	}
}

func TestModalPassThrough(t *testing.T) {
	d := newDispatcher(t, dispatcher.DefaultConfig())
	ctx := context.Background()

	saved := 0
	d.Register("wm.save_mainfile", func(context.Context, dispatcher.Invocation) error {
		saved++
		return nil
	})
	d.Register("transform.translate", func(context.Context, dispatcher.Invocation) error {
		return dispatcher.StartModal(transformModal, func(context.Context, dispatcher.Invocation) error {
			return nil
		})
	})

	require.NoError(t, d.Dispatch(ctx, dispatcher.Invocation{Command: "transform.translate"}))
	require.NoError(t, d.Dispatch(ctx, dispatcher.Invocation{Command: "wm.save_mainfile", Keymap: "Window"}))
	assert.Equal(t, 1, saved)
	assert.Equal(t, transformModal, d.ActiveModal(), "non-modal keymaps leave the modal running")
}

func TestModalEndAndCancel(t *testing.T) {
	d := newDispatcher(t, dispatcher.DefaultConfig())
	ctx := context.Background()

	var last string
	modal := func(_ context.Context, inv dispatcher.Invocation) error {
		last = inv.Command
		if inv.Command == "FINISH" {
			return dispatcher.ErrEndModal
		}
		return nil
	}
	d.Register("view3d.fly", func(context.Context, dispatcher.Invocation) error {
		return dispatcher.StartModal("View3D Fly Modal", modal)
	})

	require.NoError(t, d.Dispatch(ctx, dispatcher.Invocation{Command: "view3d.fly"}))
	require.NoError(t, d.Dispatch(ctx, dispatcher.Invocation{Command: "FINISH", Keymap: "View3D Fly Modal"}))
	assert.Empty(t, d.ActiveModal())

	require.NoError(t, d.Dispatch(ctx, dispatcher.Invocation{Command: "view3d.fly"}))
	require.NoError(t, d.CancelModal(ctx))
	assert.Equal(t, keymap.CommandCancel, last)
	assert.Empty(t, d.ActiveModal())

	assert.NoError(t, d.CancelModal(ctx), "no modal is a no-op")
}

func TestModalNested(t *testing.T) {
	d := newDispatcher(t, dispatcher.DefaultConfig())
	ctx := context.Background()

	start := func(context.Context, dispatcher.Invocation) error {
		return dispatcher.StartModal(transformModal, func(context.Context, dispatcher.Invocation) error { return nil })
	}
	d.Register("transform.translate", start)

	require.NoError(t, d.Dispatch(ctx, dispatcher.Invocation{Command: "transform.translate"}))
	err := d.Dispatch(ctx, dispatcher.Invocation{Command: "transform.translate"})
	assert.ErrorIs(t, err, dispatcher.ErrModalActive)

	d.Register("broken.modal", func(context.Context, dispatcher.Invocation) error {
		return dispatcher.StartModal("", nil)
	})
	require.NoError(t, d.CancelModal(ctx))
	assert.ErrorIs(t, d.Dispatch(ctx, dispatcher.Invocation{Command: "broken.modal"}), dispatcher.ErrInvalidInvocation)
}

func TestPanicRecovery(t *testing.T) {
	d := newDispatcher(t, dispatcher.DefaultConfig().WithMetrics())
	d.Register("boom", func(context.Context, dispatcher.Invocation) error {
		panic("kaboom")
	})

	err := d.Dispatch(context.Background(), dispatcher.Invocation{Command: "boom"})
	require.ErrorIs(t, err, dispatcher.ErrPanic)
	assert.Contains(t, err.Error(), "kaboom")
	assert.Equal(t, uint64(1), d.Metrics().TotalPanics())
	assert.Equal(t, uint64(1), d.Metrics().TotalErrors())
}

func TestTimeout(t *testing.T) {
	d := newDispatcher(t, dispatcher.DefaultConfig().WithTimeout(10*time.Millisecond))
	d.Register("slow", func(ctx context.Context, _ dispatcher.Invocation) error {
		<-ctx.Done()
		return ctx.Err()
	})

	err := d.Dispatch(context.Background(), dispatcher.Invocation{Command: "slow"})
	assert.ErrorIs(t, err, dispatcher.ErrTimeout)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHooks(t *testing.T) {
	d := newDispatcher(t, dispatcher.DefaultConfig())
	ctx := context.Background()

	var ran []string
	d.Register("text.new", func(_ context.Context, inv dispatcher.Invocation) error {
		ran = append(ran, inv.Command)
		return nil
	})
	d.Register("text.open", func(_ context.Context, inv dispatcher.Invocation) error {
		ran = append(ran, inv.Command)
		return errors.New("no file")
	})

	d.RegisterPreHook(dispatcher.PreDispatchFunc(func(_ context.Context, inv *dispatcher.Invocation) bool {
		if inv.Command == "text.delete" {
			return false
		}
		if inv.Command == "text.create" {
			inv.Command = "text.new"
		}
		return true
	}))

	var post []string
	d.RegisterPostHook(dispatcher.PostDispatchFunc(func(_ context.Context, inv dispatcher.Invocation, err error) {
		post = append(post, inv.Command+":"+errString(err))
	}))

	require.NoError(t, d.Dispatch(ctx, dispatcher.Invocation{Command: "text.create"}))
	require.NoError(t, d.Dispatch(ctx, dispatcher.Invocation{Command: "text.delete"}))
	require.Error(t, d.Dispatch(ctx, dispatcher.Invocation{Command: "text.open"}))

	assert.Equal(t, []string{"text.new", "text.open"}, ran)
	assert.Equal(t, []string{"text.new:", "text.open:no file"}, post)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func TestFromResult(t *testing.T) {
	km := keymap.NewKeymap("Text", keymap.LayerEditor)
	km.Add(key.OnPress(key.KindN, key.ModAlt), "text.new")
	table := keymap.MustNewTable([]*keymap.Keymap{km})

	ev := key.Press(key.KindN, key.ModAlt)
	inv := dispatcher.FromResult(table.Lookup(ev, keymap.State{Editor: "TEXT_EDITOR"}), ev)
	assert.Equal(t, "text.new", inv.Command)
	assert.Equal(t, "Text", inv.Keymap)
	assert.Equal(t, ev, inv.Event)
	assert.Equal(t, "text.new (Text)", inv.String())
}

func TestMetrics(t *testing.T) {
	d := newDispatcher(t, dispatcher.DefaultConfig().WithMetrics())
	ctx := context.Background()
	d.Register("a.one", func(context.Context, dispatcher.Invocation) error { return nil })
	d.Register("b.two", func(context.Context, dispatcher.Invocation) error { return nil })

	for i := 0; i < 3; i++ {
		require.NoError(t, d.Dispatch(ctx, dispatcher.Invocation{Command: "b.two"}))
	}
	require.NoError(t, d.Dispatch(ctx, dispatcher.Invocation{Command: "a.one"}))

	m := d.Metrics()
	assert.Equal(t, uint64(4), m.TotalDispatches())
	assert.Equal(t, uint64(4), m.Latency().Count)
	top := m.TopCommands(1)
	require.Len(t, top, 1)
	assert.Equal(t, "b.two", top[0].Name)
	assert.Equal(t, uint64(3), m.CommandStats("b.two").DispatchCount)
	assert.Nil(t, m.CommandStats("c.three"))

	m.Reset()
	assert.Equal(t, uint64(0), m.TotalDispatches())
	assert.Empty(t, m.TopCommands(5))
}
