package expand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/bindery/internal/input/key"
	"github.com/dshills/bindery/internal/input/mouse"
)

func TestDefaultParams(t *testing.T) {
	tests := []struct {
		platform Platform
		apple    bool
	}{
		{PlatformDarwin, true},
		{PlatformLinux, false},
		{PlatformWindows, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.platform), func(t *testing.T) {
			p := DefaultParams(tt.platform)
			assert.Equal(t, tt.apple, p.Apple)
			assert.False(t, p.Legacy)
			assert.Equal(t, key.KindSelectMouse, p.SelectMouse)
			assert.Equal(t, key.KindActionMouse, p.ActionMouse)
			assert.NoError(t, p.Validate())
		})
	}
}

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		in   string
		want Platform
	}{
		{"darwin", PlatformDarwin},
		{"macOS", PlatformDarwin},
		{"linux", PlatformLinux},
		{"freebsd", PlatformLinux},
		{"windows", PlatformWindows},
	}
	for _, tt := range tests {
		got, err := ParsePlatform(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParsePlatform("plan9")
	assert.ErrorIs(t, err, ErrUnknownPlatform)

	assert.NotEmpty(t, HostPlatform())
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		sel    key.Kind
		act    key.Kind
		param  string
		wantOK bool
	}{
		{"abstract roles", key.KindSelectMouse, key.KindActionMouse, "", true},
		{"left select", key.KindLeftMouse, key.KindRightMouse, "", true},
		{"right select", key.KindRightMouse, key.KindLeftMouse, "", true},
		{"middle action", key.KindLeftMouse, key.KindMiddleMouse, "", true},
		{"same physical", key.KindLeftMouse, key.KindLeftMouse, "action_mouse", false},
		{"same role", key.KindSelectMouse, key.KindSelectMouse, "action_mouse", false},
		{"swapped roles", key.KindActionMouse, key.KindSelectMouse, "select_mouse", false},
		{"mixed", key.KindSelectMouse, key.KindRightMouse, "action_mouse", false},
		{"keyboard select", key.KindA, key.KindRightMouse, "select_mouse", false},
		{"wheel action", key.KindLeftMouse, key.KindWheelUpMouse, "action_mouse", false},
		{"unset", key.KindNone, key.KindNone, "select_mouse", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Params{SelectMouse: tt.sel, ActionMouse: tt.act}
			err := p.Validate()
			if tt.wantOK {
				assert.NoError(t, err)
				return
			}
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.ErrorIs(t, err, ErrInvalidParams)
			assert.Equal(t, tt.param, cfgErr.Param)
		})
	}
}

func TestParamsRoles(t *testing.T) {
	assert.Equal(t, mouse.DefaultRoles(), DefaultParams(PlatformLinux).Roles())

	p := Params{SelectMouse: key.KindRightMouse, ActionMouse: key.KindLeftMouse}
	assert.Equal(t, mouse.Roles{Select: key.KindRightMouse, Action: key.KindLeftMouse}, p.Roles())
}

func TestParamsSwapMouse(t *testing.T) {
	swapped := DefaultParams(PlatformLinux).SwapMouse()
	assert.Equal(t, key.KindRightMouse, swapped.SelectMouse)
	assert.Equal(t, key.KindLeftMouse, swapped.ActionMouse)
	require.NoError(t, swapped.Validate())

	back := swapped.SwapMouse()
	assert.Equal(t, key.KindLeftMouse, back.SelectMouse)
	assert.Equal(t, key.KindRightMouse, back.ActionMouse)

	_, err := ExpandTable(swapped)
	require.NoError(t, err)
}

func TestPredicates(t *testing.T) {
	modern := Params{}
	legacyApple := Params{Legacy: true, Apple: true}

	assert.True(t, Always(modern))
	assert.True(t, Modern(modern))
	assert.False(t, Legacy(modern))
	assert.True(t, Legacy(legacyApple))
	assert.True(t, Apple(legacyApple))
	assert.True(t, Not(Apple)(modern))
	assert.True(t, And(Legacy, Apple)(legacyApple))
	assert.False(t, And(Legacy, Not(Apple))(legacyApple))
	assert.True(t, And()(modern))
}

func TestFilterKeepsOrder(t *testing.T) {
	rules := Concat(
		[]Rule{item("a.first", press(key.KindA, none))},
		Only(Legacy, item("b.legacy", press(key.KindB, none))),
		Only(Modern, item("c.modern", press(key.KindC, none))),
		Only(Apple, Only(Legacy, item("d.both", press(key.KindD, none)))...),
		[]Rule{item("e.last", press(key.KindE, none))},
	)

	commands := func(p Params) []string {
		var out []string
		for _, b := range Filter(rules, p) {
			out = append(out, b.Command)
		}
		return out
	}

	assert.Equal(t, []string{"a.first", "c.modern", "e.last"}, commands(Params{}))
	assert.Equal(t, []string{"a.first", "b.legacy", "e.last"}, commands(Params{Legacy: true}))
	assert.Equal(t, []string{"a.first", "b.legacy", "d.both", "e.last"}, commands(Params{Legacy: true, Apple: true}))
	assert.Equal(t, []string{"a.first", "c.modern", "e.last"}, commands(Params{Apple: true}))
}

func TestTemplates(t *testing.T) {
	t.Run("mesh select mode", func(t *testing.T) {
		rules := meshSelectMode()
		require.Len(t, rules, 12)

		last := rules[11].Binding
		assert.Equal(t, press(key.KindThree, shift|ctrl), last.Trigger)
		assert.Equal(t, []string{"use_extend", "use_expand", "type"}, last.Args.Names())

		first := rules[0].Binding
		assert.Equal(t, press(key.KindOne, none), first.Trigger)
		assert.Equal(t, []string{"type"}, first.Args.Names())
	})

	t.Run("subdivision set", func(t *testing.T) {
		rules := subdivisionSet()
		require.Len(t, rules, 6)
		for i, r := range rules {
			assert.Equal(t, press(key.Digit(i), ctrl), r.Binding.Trigger)
			level, _ := r.Binding.Args.Get("level")
			assert.Equal(t, i, level)
		}
	})

	t.Run("select actions", func(t *testing.T) {
		rules := selectActions("mesh.select_all")
		require.Len(t, rules, 4)
		assert.Equal(t, key.ValueDoubleClick, rules[3].Binding.Trigger.Value)
	})

	t.Run("proportional editing", func(t *testing.T) {
		assert.Len(t, proportionalEditing(false), 2)
		assert.Len(t, proportionalEditing(true), 3)
	})

	t.Run("gizmo tweak modal", func(t *testing.T) {
		rules := gizmoTweakModal()
		require.Len(t, rules, 12)
		for _, r := range rules {
			assert.True(t, r.Binding.IsPseudo(), r.Binding.Command)
			assert.True(t, r.Binding.Trigger.AnyModifier)
		}
	})

	t.Run("op panel", func(t *testing.T) {
		r := opPanel("VIEW3D_PT_snapping", press(key.KindTab, shift|ctrl), prop("keep_open", false))
		assert.Equal(t, "wm.call_panel", r.Binding.Command)
		assert.Equal(t, []string{"name", "keep_open"}, r.Binding.Args.Names())
	})
}
