package keymap

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dshills/bindery/internal/input/key"
)

func sampleKeymaps() []*Keymap {
	window := NewKeymap("Window", LayerWindow).WithSource("default")
	window.Add(key.OnPress(key.KindS, key.ModCtrl), "wm.save_mainfile")
	window.AddBinding(NewBinding(key.OnPress(key.KindF3, key.ModNone), "wm.search_menu").
		WithDescription("Operator search"))

	mesh := NewKeymap("Mesh", LayerMode).ForEditor("VIEW_3D")
	mesh.Add(key.OnPress(key.KindB, key.ModCtrl), "mesh.bevel",
		A("offset_type", "OFFSET"),
		A("segments", 1),
		A("profile", 0.5),
		A("release_confirm", false),
		A("affect", "EDGES"))
	mesh.Add(key.OnPress(key.KindE, key.ModNone), "view3d.edit_mesh_extrude_move_normal",
		A("MESH_OT_extrude_region", NewArgs(A("use_normal_flip", false), A("mirror", false))),
		A("TRANSFORM_OT_translate", NewArgs(A("value", []any{0.0, 0.0, 1.0}), A("orient_type", "NORMAL"))))
	mesh.Add(key.On(key.KindLeftMouse, key.ValueClick, key.ModShift), "view3d.select",
		A("toggle", true), A("scale", 2.0))

	modal := NewKeymap("Transform Modal Map", LayerModal)
	modal.Add(key.OnAny(key.KindEsc, key.ValuePress), CommandCancel)
	modal.Add(key.On(key.KindRightMouse, key.ValueAny, key.ModNone), CommandCancel)

	return []*Keymap{window, mesh, modal}
}

var keymapCmp = cmp.Options{
	cmpopts.IgnoreUnexported(Keymap{}),
	cmpopts.EquateEmpty(),
}

func TestCodecRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			in := sampleKeymaps()

			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, format, in))

			out, err := Decode(&buf, format)
			require.NoError(t, err)

			if diff := cmp.Diff(in, out, keymapCmp); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}

			_, err = NewTable(out)
			assert.NoError(t, err)
		})
	}
}

func TestArgsJSONPreservesOrder(t *testing.T) {
	args := NewArgs(A("z", 1), A("a", "x"), A("m", 2.0), A("b", true))

	data, err := json.Marshal(args)
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":"x","m":2.0,"b":true}`, string(data))

	var back Args
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, []string{"z", "a", "m", "b"}, back.Names())

	v, _ := back.Get("m")
	assert.IsType(t, float64(0), v)
	v, _ = back.Get("z")
	assert.IsType(t, 0, v)
}

func TestArgsJSONEscapedNames(t *testing.T) {
	args := NewArgs(A("a.b", 1), A("c*", 2))

	data, err := json.Marshal(args)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a.b":1,"c*":2}`, string(data))
}

func TestArgsJSONRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"array", `[1,2]`},
		{"null value", `{"a":null}`},
		{"nested list", `{"a":[[1]]}`},
		{"malformed", `{"a":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Args
			err := json.Unmarshal([]byte(tt.data), &a)
			assert.Error(t, err)
		})
	}
}

func TestArgsYAMLPreservesOrder(t *testing.T) {
	args := NewArgs(A("z", 1), A("a", "true"), A("m", 3.0), A("list", []any{1, "two"}))

	data, err := yaml.Marshal(args)
	require.NoError(t, err)
	assert.Equal(t, "z: 1\na: \"true\"\nm: 3.0\nlist: [1, two]\n", string(data))

	var back Args
	require.NoError(t, yaml.Unmarshal(data, &back))
	if diff := cmp.Diff(args, back); diff != "" {
		t.Errorf("yaml round trip (-want +got):\n%s", diff)
	}
}

func TestArgsNonFinite(t *testing.T) {
	_, err := json.Marshal(NewArgs(A("x", posInf())))
	assert.Error(t, err)
}

func posInf() float64 {
	zero := 0.0
	return 1 / zero
}

func TestDecodeUnknownField(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"keymaps":[{"name":"W","layer":"window","bogus":1}]}`), FormatJSON)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader("keymaps:\n  - name: W\n    layer: window\n    bogus: 1\n"), FormatYAML)
	assert.Error(t, err)
}

func TestDecodeBadTrigger(t *testing.T) {
	doc := "keymaps:\n  - name: W\n    layer: window\n    bindings:\n      - trigger: ctrl+NOPE\n        command: x.y\n"
	_, err := Decode(strings.NewReader(doc), FormatYAML)
	assert.ErrorIs(t, err, key.ErrInvalidSpec)
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("a/b.YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = FormatFromPath("keymap.toml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	maps := sampleKeymaps()

	require.NoError(t, SaveFile(filepath.Join(dir, "b.yaml"), maps[1:2]))
	require.NoError(t, SaveFile(filepath.Join(dir, "a.json"), maps[:1]))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	loader := NewLoader(dir, filepath.Join(dir, "missing"))
	loaded, err := loader.LoadAll()
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, "Window", loaded[0].Name)
	assert.Equal(t, "default", loaded[0].Source)
	assert.Equal(t, "Mesh", loaded[1].Name)
	assert.Equal(t, "file:b.yaml", loaded[1].Source)
}

func TestKeymapJSON(t *testing.T) {
	km := sampleKeymaps()[2]
	data, err := json.Marshal(km)
	require.NoError(t, err)

	var back Keymap
	require.NoError(t, json.Unmarshal(data, &back))
	if diff := cmp.Diff(km, &back, keymapCmp); diff != "" {
		t.Errorf("keymap JSON (-want +got):\n%s", diff)
	}
}
