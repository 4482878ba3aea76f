package key

import (
	"testing"
)

func TestModifierBits(t *testing.T) {
	mods := []Modifier{ModShift, ModCtrl, ModAlt, ModOSKey}
	var all Modifier
	for _, m := range mods {
		if m == ModNone {
			t.Fatal("modifier constant is zero")
		}
		if all&m != 0 {
			t.Fatalf("modifier %d overlaps another", m)
		}
		all |= m
	}
	if !all.IsValid() {
		t.Error("combined modifiers should be valid")
	}
}

func TestModifierHas(t *testing.T) {
	tests := []struct {
		mod    Modifier
		check  Modifier
		expect bool
	}{
		{ModNone, ModCtrl, false},
		{ModCtrl, ModCtrl, true},
		{ModCtrl | ModAlt, ModCtrl, true},
		{ModCtrl | ModAlt, ModAlt, true},
		{ModCtrl | ModAlt, ModShift, false},
		{ModCtrl | ModAlt | ModShift | ModOSKey, ModOSKey, true},
	}

	for _, tt := range tests {
		if got := tt.mod.Has(tt.check); got != tt.expect {
			t.Errorf("Modifier(%d).Has(%d) = %v, want %v", tt.mod, tt.check, got, tt.expect)
		}
	}
}

func TestModifierWithWithout(t *testing.T) {
	mod := ModNone.With(ModCtrl).With(ModAlt)
	if !mod.HasCtrl() || !mod.HasAlt() {
		t.Error("With should add modifiers")
	}
	mod = mod.Without(ModAlt)
	if mod.HasAlt() || !mod.HasCtrl() {
		t.Error("Without should remove only the given modifier")
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModNone, ""},
		{ModCtrl, "ctrl"},
		{ModShift | ModCtrl, "ctrl+shift"},
		{ModOSKey | ModAlt, "alt+oskey"},
		{ModShift | ModCtrl | ModAlt | ModOSKey, "ctrl+alt+shift+oskey"},
	}

	for _, tt := range tests {
		if got := tt.mod.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseModifiers(t *testing.T) {
	tests := []struct {
		input string
		want  Modifier
	}{
		{"ctrl", ModCtrl},
		{"Ctrl+Alt", ModCtrl | ModAlt},
		{"C-S", ModCtrl | ModShift},
		{"cmd+shift", ModOSKey | ModShift},
		{"super", ModOSKey},
		{"bogus", ModNone},
	}

	for _, tt := range tests {
		if got := ParseModifiers(tt.input); got != tt.want {
			t.Errorf("ParseModifiers(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
