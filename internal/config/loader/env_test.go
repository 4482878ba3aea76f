package loader

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(vars map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func TestEnvLoaderLoad(t *testing.T) {
	l := NewEnvLoaderWithLookup(envMap(map[string]string{
		"BINDERY_APPLE":           "yes",
		"BINDERY_LEGACY":          "false",
		"BINDERY_SELECT_MOUSE":    "RIGHTMOUSE",
		"BINDERY_LOG_LEVEL":       "debug",
		"BINDERY_DOUBLE_CLICK_MS": "250",
		"BINDERY_UNRELATED":       "ignored",
	}))

	config, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"keymap": map[string]any{
			"apple":        true,
			"legacy":       false,
			"select_mouse": "RIGHTMOUSE",
		},
		"logging": map[string]any{"level": "debug"},
		"click":   map[string]any{"double_click_ms": int64(250)},
	}, config)
}

func TestEnvLoaderKeymapPaths(t *testing.T) {
	sep := string(os.PathListSeparator)
	l := NewEnvLoaderWithLookup(envMap(map[string]string{
		"BINDERY_KEYMAP_PATH": strings.Join([]string{"/etc/bindery", "", " ~/.bindery "}, sep),
	}))

	config, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, []any{"/etc/bindery", "~/.bindery"}, config["keymap"].(map[string]any)["paths"])
}

func TestEnvLoaderAddMapping(t *testing.T) {
	l := NewEnvLoaderWithLookup(envMap(map[string]string{"BINDERY_EXTRA": "1"}))
	l.AddMapping("BINDERY_EXTRA", "click.max_distance")

	config, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, int64(1), config["click"].(map[string]any)["max_distance"])
}

func TestEnvLoaderEmpty(t *testing.T) {
	config, err := NewEnvLoaderWithLookup(envMap(nil)).Load()
	require.NoError(t, err)
	assert.Empty(t, config)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"true", true},
		{"ON", true},
		{"no", false},
		{"0", int64(0)},
		{"42", int64(42)},
		{"LEFTMOUSE", "LEFTMOUSE"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseValue(tt.in), tt.in)
	}
}
