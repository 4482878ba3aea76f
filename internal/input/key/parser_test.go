package key

import (
	"errors"
	"testing"
)

func TestParseTrigger(t *testing.T) {
	tests := []struct {
		spec string
		want Trigger
	}{
		{"S", OnPress(KindS, ModNone)},
		{"s", OnPress(KindS, ModNone)},
		{"ESC", OnPress(KindEsc, ModNone)},
		{"escape", OnPress(KindEsc, ModNone)},
		{"ctrl+S", OnPress(KindS, ModCtrl)},
		{"Ctrl+Shift+s", OnPress(KindS, ModCtrl|ModShift)},
		{"shift+ctrl+Z:PRESS", OnPress(KindZ, ModCtrl|ModShift)},
		{"oskey+Q", OnPress(KindQ, ModOSKey)},
		{"cmd+Q", OnPress(KindQ, ModOSKey)},
		{"any+ESC", OnAny(KindEsc, ValuePress)},
		{"any+RIGHTMOUSE:ANY", OnAny(KindRightMouse, ValueAny)},
		{"LEFTMOUSE:CLICK", On(KindLeftMouse, ValueClick, ModNone)},
		{"A:DOUBLE_CLICK", On(KindA, ValueDoubleClick, ModNone)},
		{"LEFT_SHIFT:release", On(KindLeftShift, ValueRelease, ModNone)},
		{"1", OnPress(KindOne, ModNone)},
		{"NUMPAD_ENTER", OnPress(KindNumpadEnter, ModNone)},
		{"<C-s>", OnPress(KindS, ModCtrl)},
		{"<C-S-z>", OnPress(KindZ, ModCtrl|ModShift)},
		{"<D-q>:RELEASE", On(KindQ, ValueRelease, ModOSKey)},
		{"<Esc>", OnPress(KindEsc, ModNone)},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseTrigger(tt.spec)
			if err != nil {
				t.Fatalf("ParseTrigger(%q) error = %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("ParseTrigger(%q) = %s, want %s", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseTriggerErrors(t *testing.T) {
	tests := []struct {
		spec    string
		wantErr error
	}{
		{"", ErrEmptySpec},
		{"   ", ErrEmptySpec},
		{"NOPE", ErrInvalidSpec},
		{"hyper+S", ErrInvalidSpec},
		{"ctrl+", ErrInvalidSpec},
		{"S:SOMETIMES", ErrInvalidSpec},
		{":PRESS", ErrInvalidSpec},
		{"<C-s", ErrUnmatchedBracket},
		{"<X-s>", ErrInvalidSpec},
		{"any+ctrl+S", ErrInvalidTrigger},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			_, err := ParseTrigger(tt.spec)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseTrigger(%q) error = %v, want %v", tt.spec, err, tt.wantErr)
			}
		})
	}
}

func TestParseTriggerRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		for _, tr := range []Trigger{
			OnPress(k, ModNone),
			On(k, ValueRelease, ModCtrl|ModAlt),
			OnAny(k, ValueAny),
		} {
			got, err := ParseTrigger(tr.String())
			if err != nil {
				t.Fatalf("ParseTrigger(%q) error = %v", tr.String(), err)
			}
			if got != tr {
				t.Errorf("ParseTrigger(%q) = %s, want %s", tr.String(), got, tr)
			}
		}
	}
}

func TestParseEvent(t *testing.T) {
	ev, err := ParseEvent("ctrl+shift+S")
	if err != nil {
		t.Fatalf("ParseEvent() error = %v", err)
	}
	if ev.Kind != KindS || ev.Value != ValuePress || ev.Modifiers != ModCtrl|ModShift {
		t.Errorf("ParseEvent() = %#v", ev)
	}

	if _, err := ParseEvent("any+S"); !errors.Is(err, ErrInvalidSpec) {
		t.Errorf("ParseEvent(any+S) error = %v, want ErrInvalidSpec", err)
	}
}

func TestNormalizeSpec(t *testing.T) {
	got, err := NormalizeSpec("<C-S-s>")
	if err != nil {
		t.Fatalf("NormalizeSpec() error = %v", err)
	}
	if got != "ctrl+shift+S:PRESS" {
		t.Errorf("NormalizeSpec() = %q, want %q", got, "ctrl+shift+S:PRESS")
	}
}

func TestMustParseTriggerPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseTrigger should panic on invalid spec")
		}
	}()
	MustParseTrigger("ctrl+")
}
