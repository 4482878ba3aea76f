package loader

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memFS is an in-memory file system for testing.
type memFS struct {
	files map[string][]byte
}

func newMemFS(files map[string]string) *memFS {
	m := &memFS{files: make(map[string][]byte)}
	for path, content := range files {
		m.files[path] = []byte(content)
	}
	return m
}

func (m *memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (m *memFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m.files[path]; ok {
		return memFileInfo{name: path}, nil
	}
	return nil, fs.ErrNotExist
}

type memFileInfo struct {
	name string
}

func (f memFileInfo) Name() string       { return f.name }
func (f memFileInfo) Size() int64        { return 0 }
func (f memFileInfo) Mode() fs.FileMode  { return 0o644 }
func (f memFileInfo) ModTime() time.Time { return time.Time{} }
func (f memFileInfo) IsDir() bool        { return false }
func (f memFileInfo) Sys() any           { return nil }

func TestTOMLLoaderLoad(t *testing.T) {
	mem := newMemFS(map[string]string{
		"/bindery.toml": `
[keymap]
apple = true
select_mouse = "RIGHTMOUSE"

[logging]
level = "debug"
`,
	})

	config, err := NewTOMLLoaderWithFS(mem, "/bindery.toml").Load()
	require.NoError(t, err)

	keymap := config["keymap"].(map[string]any)
	assert.Equal(t, true, keymap["apple"])
	assert.Equal(t, "RIGHTMOUSE", keymap["select_mouse"])
	assert.Equal(t, "debug", config["logging"].(map[string]any)["level"])
}

func TestTOMLLoaderMissingFile(t *testing.T) {
	config, err := NewTOMLLoaderWithFS(newMemFS(nil), "/missing.toml").Load()
	assert.NoError(t, err)
	assert.Nil(t, config)
}

func TestTOMLLoaderParseError(t *testing.T) {
	mem := newMemFS(map[string]string{
		"/bad.toml": "[keymap]\napple = \n",
	})

	_, err := NewTOMLLoaderWithFS(mem, "/bad.toml").Load()
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "/bad.toml", pe.Path)
	assert.Equal(t, 2, pe.Line)
	assert.Contains(t, pe.Error(), "line 2")
}

func TestTOMLLoaderFromReader(t *testing.T) {
	config, err := NewTOMLLoader("").LoadFromReader(strings.NewReader("[click]\nmax_distance = 5\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), config["click"].(map[string]any)["max_distance"])
}

func TestLoadWithIncludes(t *testing.T) {
	mem := newMemFS(map[string]string{
		"/etc/bindery/bindery.toml": `
include = ["base.toml", "/shared/mouse.toml"]

[keymap]
legacy = true
`,
		"/etc/bindery/base.toml": `
[keymap]
legacy = false
apple = true

[logging]
level = "warn"
`,
		"/shared/mouse.toml": `
[keymap]
select_mouse = "RIGHTMOUSE"
action_mouse = "LEFTMOUSE"
`,
	})

	config, err := NewTOMLLoaderWithFS(mem, "").LoadWithIncludes("/etc/bindery/bindery.toml", 4)
	require.NoError(t, err)

	assert.NotContains(t, config, IncludeKey)
	keymap := config["keymap"].(map[string]any)
	assert.Equal(t, true, keymap["legacy"], "including file wins")
	assert.Equal(t, true, keymap["apple"])
	assert.Equal(t, "RIGHTMOUSE", keymap["select_mouse"])
	assert.Equal(t, "warn", config["logging"].(map[string]any)["level"])
}

func TestLoadWithIncludesCycle(t *testing.T) {
	mem := newMemFS(map[string]string{
		"/a.toml": `include = "b.toml"`,
		"/b.toml": `include = "a.toml"`,
	})

	_, err := NewTOMLLoaderWithFS(mem, "").LoadWithIncludes("/a.toml", 3)
	assert.ErrorIs(t, err, ErrIncludeDepthExceeded)
}

func TestLoadWithIncludesBadType(t *testing.T) {
	mem := newMemFS(map[string]string{
		"/a.toml": `include = 3`,
	})

	_, err := NewTOMLLoaderWithFS(mem, "").LoadWithIncludes("/a.toml", 3)
	var pe *ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"keymap":  map[string]any{"apple": false, "legacy": false},
		"logging": map[string]any{"level": "info"},
	}
	src := map[string]any{
		"keymap":  map[string]any{"apple": true},
		"logging": "off",
		"click":   map[string]any{"max_distance": int64(4)},
	}

	got := DeepMerge(dst, src)
	assert.Equal(t, map[string]any{
		"keymap":  map[string]any{"apple": true, "legacy": false},
		"logging": "off",
		"click":   map[string]any{"max_distance": int64(4)},
	}, got)

	assert.Equal(t, map[string]any{"a": 1}, DeepMerge(nil, map[string]any{"a": 1}))
}
