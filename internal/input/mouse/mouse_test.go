package mouse

import (
	"testing"
	"time"

	"github.com/dshills/bindery/internal/input/key"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(kind key.Kind, value key.Value, x, y int, offset time.Duration) key.Event {
	return key.Event{Kind: kind, Value: value, X: x, Y: y, Timestamp: epoch.Add(offset)}
}

func values(events []key.Event) []key.Value {
	out := make([]key.Value, len(events))
	for i, e := range events {
		out[i] = e.Value
	}
	return out
}

func equalValues(a, b []key.Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPositionDistance(t *testing.T) {
	tests := []struct {
		a, b Position
		want int
	}{
		{Position{0, 0}, Position{0, 0}, 0},
		{Position{0, 0}, Position{3, 4}, 7},
		{Position{5, 5}, Position{2, 1}, 7},
		{Position{-1, -1}, Position{1, 1}, 4},
	}

	for _, tt := range tests {
		if got := tt.a.Distance(tt.b); got != tt.want {
			t.Errorf("Distance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestClickSequence(t *testing.T) {
	d := NewClickDetector(DefaultConfig())
	lm := key.KindLeftMouse

	steps := []struct {
		name  string
		event key.Event
		want  []key.Value
	}{
		{"first press", at(lm, key.ValuePress, 10, 10, 0), []key.Value{key.ValuePress}},
		{"release clicks", at(lm, key.ValueRelease, 10, 10, 50*time.Millisecond), []key.Value{key.ValueRelease, key.ValueClick}},
		{"second press doubles", at(lm, key.ValuePress, 11, 10, 150*time.Millisecond), []key.Value{key.ValueDoubleClick, key.ValuePress}},
		{"release after double", at(lm, key.ValueRelease, 11, 10, 200*time.Millisecond), []key.Value{key.ValueRelease, key.ValueClick}},
		{"third press starts over", at(lm, key.ValuePress, 11, 10, 250*time.Millisecond), []key.Value{key.ValuePress}},
	}

	for _, s := range steps {
		got := values(d.Translate(s.event))
		if !equalValues(got, s.want) {
			t.Errorf("%s: Translate() = %v, want %v", s.name, got, s.want)
		}
	}
}

func TestNoDoubleClick(t *testing.T) {
	lm := key.KindLeftMouse
	rm := key.KindRightMouse

	tests := []struct {
		name   string
		first  key.Event
		second key.Event
	}{
		{"too slow", at(lm, key.ValuePress, 0, 0, 0), at(lm, key.ValuePress, 0, 0, time.Second)},
		{"too far", at(lm, key.ValuePress, 0, 0, 0), at(lm, key.ValuePress, 20, 0, 10*time.Millisecond)},
		{"other button", at(lm, key.ValuePress, 0, 0, 0), at(rm, key.ValuePress, 0, 0, 10*time.Millisecond)},
		{"clock skew", at(lm, key.ValuePress, 0, 0, time.Second), at(lm, key.ValuePress, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewClickDetector(DefaultConfig())
			d.Translate(tt.first)
			got := values(d.Translate(tt.second))
			if !equalValues(got, []key.Value{key.ValuePress}) {
				t.Errorf("Translate() = %v, want [PRESS]", got)
			}
		})
	}
}

func TestDragSuppressesClick(t *testing.T) {
	d := NewClickDetector(DefaultConfig())
	lm := key.KindLeftMouse

	d.Translate(at(lm, key.ValuePress, 0, 0, 0))

	got := d.Translate(at(key.KindMouseMove, key.ValueAny, 10, 0, 10*time.Millisecond))
	if len(got) != 2 || got[0].Kind != key.KindTweakL || got[1].Kind != key.KindMouseMove {
		t.Fatalf("Translate(move) = %v, want [EVT_TWEAK_L, MOUSEMOVE]", got)
	}
	if got[0].X != 0 || got[0].Y != 0 {
		t.Errorf("tweak position = %d,%d, want press position", got[0].X, got[0].Y)
	}
	if !d.IsHeld() {
		t.Error("IsHeld() = false during drag")
	}

	got = d.Translate(at(key.KindMouseMove, key.ValueAny, 20, 0, 20*time.Millisecond))
	if len(got) != 1 {
		t.Errorf("second move = %v, want one candidate", got)
	}

	// Returning to the press position does not restore the click.
	rel := values(d.Translate(at(lm, key.ValueRelease, 0, 0, 30*time.Millisecond)))
	if !equalValues(rel, []key.Value{key.ValueRelease}) {
		t.Errorf("Translate(release) = %v, want [RELEASE]", rel)
	}
	if d.IsHeld() {
		t.Error("IsHeld() = true after release")
	}
}

func TestReleaseWithoutPress(t *testing.T) {
	d := NewClickDetector(DefaultConfig())
	got := values(d.Translate(at(key.KindLeftMouse, key.ValueRelease, 0, 0, 0)))
	if !equalValues(got, []key.Value{key.ValueRelease}) {
		t.Errorf("Translate() = %v, want [RELEASE]", got)
	}
}

func TestNonMousePassesThrough(t *testing.T) {
	d := NewClickDetector(DefaultConfig())
	for _, e := range []key.Event{
		key.Press(key.KindA, key.ModCtrl),
		key.Tick(key.KindTimer0),
		key.Press(key.KindWheelUpMouse, key.ModNone),
		key.Press(key.KindSelectMouse, key.ModNone),
	} {
		got := d.Translate(e)
		if len(got) != 1 || !got[0].Equals(e) {
			t.Errorf("Translate(%s) = %v, want unchanged", e, got)
		}
	}
}

func TestExpandAddsRoles(t *testing.T) {
	d := NewClickDetector(DefaultConfig())
	lm := key.KindLeftMouse

	d.Translate(at(lm, key.ValuePress, 0, 0, 0))
	got := d.Expand(at(lm, key.ValueRelease, 0, 0, 10*time.Millisecond))

	want := [][]string{
		{"LEFTMOUSE:RELEASE", "SELECTMOUSE:RELEASE"},
		{"LEFTMOUSE:CLICK", "SELECTMOUSE:CLICK"},
	}
	if len(got) != len(want) {
		t.Fatalf("Expand() = %v, want %d groups", got, len(want))
	}
	for i, w := range want {
		if len(got[i]) != len(w) {
			t.Fatalf("group %d = %v, want %v", i, got[i], w)
		}
		for j := range w {
			if s := got[i][j].Kind.String() + ":" + got[i][j].Value.String(); s != w[j] {
				t.Errorf("group %d candidate %d = %s, want %s", i, j, s, w[j])
			}
		}
	}

	got = d.Expand(at(key.KindMiddleMouse, key.ValuePress, 0, 0, time.Second))
	if len(got) != 1 || len(got[0]) != 1 {
		t.Errorf("Expand(MIDDLEMOUSE) = %v, want one unaliased candidate", got)
	}
}

func TestRolesAlias(t *testing.T) {
	right := Roles{Select: key.KindRightMouse, Action: key.KindLeftMouse}

	tests := []struct {
		roles Roles
		in    key.Kind
		want  key.Kind
		ok    bool
	}{
		{DefaultRoles(), key.KindLeftMouse, key.KindSelectMouse, true},
		{DefaultRoles(), key.KindRightMouse, key.KindActionMouse, true},
		{DefaultRoles(), key.KindTweakL, key.KindTweakS, true},
		{DefaultRoles(), key.KindTweakR, key.KindTweakA, true},
		{DefaultRoles(), key.KindMiddleMouse, key.KindMiddleMouse, false},
		{right, key.KindRightMouse, key.KindSelectMouse, true},
		{right, key.KindTweakL, key.KindTweakA, true},
		{DefaultRoles(), key.KindA, key.KindA, false},
	}

	for _, tt := range tests {
		got, ok := tt.roles.Alias(key.Press(tt.in, key.ModNone))
		if ok != tt.ok || got.Kind != tt.want {
			t.Errorf("Alias(%s) = %s, %v; want %s, %v", tt.in, got.Kind, ok, tt.want, tt.ok)
		}
	}
}

func TestReset(t *testing.T) {
	d := NewClickDetector(DefaultConfig())
	lm := key.KindLeftMouse

	d.Translate(at(lm, key.ValuePress, 0, 0, 0))
	d.Reset()

	if d.IsHeld() {
		t.Error("IsHeld() = true after Reset")
	}
	got := values(d.Translate(at(lm, key.ValuePress, 0, 0, 10*time.Millisecond)))
	if !equalValues(got, []key.Value{key.ValuePress}) {
		t.Errorf("Translate() after Reset = %v, want [PRESS]", got)
	}
}
