package fuzzy

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var commands = []string{
	"view3d.select",
	"view3d.select_box",
	"view3d.cursor3d",
	"mesh.select_all",
	"wm.save_mainfile",
	"wm.save_as_mainfile",
	"text.new",
}

func texts(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Item.Text
	}
	return out
}

func TestMatchInOrder(t *testing.T) {
	m := NewMatcher(DefaultWeights())

	results := m.Match("wmsave", Strings(commands), 0)
	assert.Equal(t, []string{"wm.save_mainfile", "wm.save_as_mainfile"}, texts(results))
	assert.Equal(t, []int{0, 1, 3, 4, 5, 6}, results[0].Matches)

	assert.Empty(t, m.Match("zzz", Strings(commands), 0))
	assert.Empty(t, m.Match("tcelesdweiv", Strings(commands), 0), "order matters")
}

func TestMatchPrefersWordStarts(t *testing.T) {
	m := NewMatcher(DefaultWeights())
	results := m.Match("vsel", Strings(commands), 2)
	require.Len(t, results, 2)
	assert.Equal(t, "view3d.select", results[0].Item.Text)
	assert.Equal(t, "view3d.select_box", results[1].Item.Text)
}

func TestMatchIgnoresCase(t *testing.T) {
	m := NewMatcher(DefaultWeights())
	results := m.Match("VIEW3D Fly", Strings([]string{"View3D Fly Modal", "View3D Walk Modal"}), 0)
	assert.Equal(t, []string{"View3D Fly Modal"}, texts(results))
}

func TestMatchEmptyQuery(t *testing.T) {
	m := NewMatcher(DefaultWeights())
	results := m.Match("  ", Strings(commands), 3)
	assert.Equal(t, commands[:3], texts(results))
	assert.Zero(t, results[0].Score)
	assert.Zero(t, m.CacheLen())
}

func TestMatchKeepsData(t *testing.T) {
	m := NewMatcher(DefaultWeights())
	results := m.Match("new", []Item{{Text: "text.new", Data: 7}}, 1)
	require.Len(t, results, 1)
	assert.Equal(t, 7, results[0].Item.Data)
}

func TestCache(t *testing.T) {
	m := NewMatcher(DefaultWeights())
	items := Strings(commands)

	first := m.Match("sel", items, 0)
	assert.Equal(t, 1, m.CacheLen())
	assert.Equal(t, first, m.Match("SEL", items, 0), "normalized query hits the cache")

	for i := 0; i < DefaultCacheSize+5; i++ {
		m.Match(fmt.Sprintf("q%d", i), items, 0)
	}
	assert.Equal(t, DefaultCacheSize, m.CacheLen())

	m.Reset()
	assert.Zero(t, m.CacheLen())
}

func TestWordStart(t *testing.T) {
	runes := []rune("view3d.select_box CamelCase")
	for _, idx := range []int{0, 4, 7, 14, 18, 23} {
		assert.True(t, wordStart(runes, idx), "index %d", idx)
	}
	for _, idx := range []int{1, 5, 8, 15, 19} {
		assert.False(t, wordStart(runes, idx), "index %d", idx)
	}
}
