package key

import (
	"fmt"
	"strings"
)

// Kind identifies the physical signal an event carries: a keyboard key,
// a mouse button or motion, a wheel step, a trackpad gesture, an NDOF
// device signal, a timer tick, or an action-zone event synthesized by the
// host window manager.
type Kind uint16

const (
	// KindNone represents no input.
	KindNone Kind = iota

	// Letters
	KindA
	KindB
	KindC
	KindD
	KindE
	KindF
	KindG
	KindH
	KindI
	KindJ
	KindK
	KindL
	KindM
	KindN
	KindO
	KindP
	KindQ
	KindR
	KindS
	KindT
	KindU
	KindV
	KindW
	KindX
	KindY
	KindZ

	// Number row
	KindZero
	KindOne
	KindTwo
	KindThree
	KindFour
	KindFive
	KindSix
	KindSeven
	KindEight
	KindNine

	// Function keys
	KindF1
	KindF2
	KindF3
	KindF4
	KindF5
	KindF6
	KindF7
	KindF8
	KindF9
	KindF10
	KindF11
	KindF12

	// Editing and navigation
	KindEsc
	KindReturn
	KindTab
	KindBackSpace
	KindDel
	KindInsert
	KindHome
	KindEnd
	KindPageUp
	KindPageDown
	KindUpArrow
	KindDownArrow
	KindLeftArrow
	KindRightArrow
	KindSpace

	// Media keys
	KindMediaPlay
	KindMediaStop
	KindMediaFirst
	KindMediaLast

	// Punctuation
	KindComma
	KindPeriod
	KindMinus
	KindEqual
	KindSlash
	KindBackSlash
	KindSemiColon
	KindQuote
	KindAccentGrave
	KindLeftBracket
	KindRightBracket

	// Numpad
	KindNumpad0
	KindNumpad1
	KindNumpad2
	KindNumpad3
	KindNumpad4
	KindNumpad5
	KindNumpad6
	KindNumpad7
	KindNumpad8
	KindNumpad9
	KindNumpadPeriod
	KindNumpadEnter
	KindNumpadPlus
	KindNumpadMinus
	KindNumpadAsterix
	KindNumpadSlash

	// Modifier keys as primary triggers
	KindLeftShift
	KindRightShift
	KindLeftCtrl
	KindRightCtrl
	KindLeftAlt
	KindRightAlt
	KindOSKey

	// KindTextInput matches any key that produces text.
	KindTextInput

	// Mouse buttons. SelectMouse and ActionMouse are role placeholders
	// that the host maps onto physical buttons.
	KindLeftMouse
	KindMiddleMouse
	KindRightMouse
	KindButton4Mouse
	KindButton5Mouse
	KindSelectMouse
	KindActionMouse

	// Mouse motion and drags
	KindMouseMove
	KindTweakL
	KindTweakM
	KindTweakR
	KindTweakA
	KindTweakS

	// Wheel
	KindWheelUpMouse
	KindWheelDownMouse
	KindWheelInMouse
	KindWheelOutMouse

	// Trackpad
	KindTrackpadPan
	KindTrackpadZoom
	KindMouseRotate

	// NDOF devices
	KindNDOFMotion
	KindNDOFButtonMenu
	KindNDOFButtonFit
	KindNDOFButtonPlus
	KindNDOFButtonMinus
	KindNDOFButtonFront
	KindNDOFButtonBack
	KindNDOFButtonLeft
	KindNDOFButtonRight
	KindNDOFButtonTop
	KindNDOFButtonBottom
	KindNDOFButtonRollCW
	KindNDOFButtonRollCCW

	// Timers
	KindTimer
	KindTimer0
	KindTimer1
	KindTimer2
	KindTimerJobs
	KindTimerAutosave
	KindTimerReport
	KindTimerRegion

	// Action zones
	KindActionZoneArea
	KindActionZoneRegion
	KindActionZoneFullscreen

	kindCount
)

// kindNames holds the canonical identifier for each kind. The names follow
// the event identifiers used by keymap data files.
var kindNames = [kindCount]string{
	KindNone: "NONE",

	KindA: "A", KindB: "B", KindC: "C", KindD: "D", KindE: "E", KindF: "F",
	KindG: "G", KindH: "H", KindI: "I", KindJ: "J", KindK: "K", KindL: "L",
	KindM: "M", KindN: "N", KindO: "O", KindP: "P", KindQ: "Q", KindR: "R",
	KindS: "S", KindT: "T", KindU: "U", KindV: "V", KindW: "W", KindX: "X",
	KindY: "Y", KindZ: "Z",

	KindZero: "ZERO", KindOne: "ONE", KindTwo: "TWO", KindThree: "THREE",
	KindFour: "FOUR", KindFive: "FIVE", KindSix: "SIX", KindSeven: "SEVEN",
	KindEight: "EIGHT", KindNine: "NINE",

	KindF1: "F1", KindF2: "F2", KindF3: "F3", KindF4: "F4", KindF5: "F5",
	KindF6: "F6", KindF7: "F7", KindF8: "F8", KindF9: "F9", KindF10: "F10",
	KindF11: "F11", KindF12: "F12",

	KindEsc:        "ESC",
	KindReturn:     "RET",
	KindTab:        "TAB",
	KindBackSpace:  "BACK_SPACE",
	KindDel:        "DEL",
	KindInsert:     "INSERT",
	KindHome:       "HOME",
	KindEnd:        "END",
	KindPageUp:     "PAGE_UP",
	KindPageDown:   "PAGE_DOWN",
	KindUpArrow:    "UP_ARROW",
	KindDownArrow:  "DOWN_ARROW",
	KindLeftArrow:  "LEFT_ARROW",
	KindRightArrow: "RIGHT_ARROW",
	KindSpace:      "SPACE",

	KindMediaPlay:  "MEDIA_PLAY",
	KindMediaStop:  "MEDIA_STOP",
	KindMediaFirst: "MEDIA_FIRST",
	KindMediaLast:  "MEDIA_LAST",

	KindComma:        "COMMA",
	KindPeriod:       "PERIOD",
	KindMinus:        "MINUS",
	KindEqual:        "EQUAL",
	KindSlash:        "SLASH",
	KindBackSlash:    "BACK_SLASH",
	KindSemiColon:    "SEMI_COLON",
	KindQuote:        "QUOTE",
	KindAccentGrave:  "ACCENT_GRAVE",
	KindLeftBracket:  "LEFT_BRACKET",
	KindRightBracket: "RIGHT_BRACKET",

	KindNumpad0: "NUMPAD_0", KindNumpad1: "NUMPAD_1", KindNumpad2: "NUMPAD_2",
	KindNumpad3: "NUMPAD_3", KindNumpad4: "NUMPAD_4", KindNumpad5: "NUMPAD_5",
	KindNumpad6: "NUMPAD_6", KindNumpad7: "NUMPAD_7", KindNumpad8: "NUMPAD_8",
	KindNumpad9:       "NUMPAD_9",
	KindNumpadPeriod:  "NUMPAD_PERIOD",
	KindNumpadEnter:   "NUMPAD_ENTER",
	KindNumpadPlus:    "NUMPAD_PLUS",
	KindNumpadMinus:   "NUMPAD_MINUS",
	KindNumpadAsterix: "NUMPAD_ASTERIX",
	KindNumpadSlash:   "NUMPAD_SLASH",

	KindLeftShift:  "LEFT_SHIFT",
	KindRightShift: "RIGHT_SHIFT",
	KindLeftCtrl:   "LEFT_CTRL",
	KindRightCtrl:  "RIGHT_CTRL",
	KindLeftAlt:    "LEFT_ALT",
	KindRightAlt:   "RIGHT_ALT",
	KindOSKey:      "OSKEY",

	KindTextInput: "TEXTINPUT",

	KindLeftMouse:    "LEFTMOUSE",
	KindMiddleMouse:  "MIDDLEMOUSE",
	KindRightMouse:   "RIGHTMOUSE",
	KindButton4Mouse: "BUTTON4MOUSE",
	KindButton5Mouse: "BUTTON5MOUSE",
	KindSelectMouse:  "SELECTMOUSE",
	KindActionMouse:  "ACTIONMOUSE",

	KindMouseMove: "MOUSEMOVE",
	KindTweakL:    "EVT_TWEAK_L",
	KindTweakM:    "EVT_TWEAK_M",
	KindTweakR:    "EVT_TWEAK_R",
	KindTweakA:    "EVT_TWEAK_A",
	KindTweakS:    "EVT_TWEAK_S",

	KindWheelUpMouse:   "WHEELUPMOUSE",
	KindWheelDownMouse: "WHEELDOWNMOUSE",
	KindWheelInMouse:   "WHEELINMOUSE",
	KindWheelOutMouse:  "WHEELOUTMOUSE",

	KindTrackpadPan:  "TRACKPADPAN",
	KindTrackpadZoom: "TRACKPADZOOM",
	KindMouseRotate:  "MOUSEROTATE",

	KindNDOFMotion:        "NDOF_MOTION",
	KindNDOFButtonMenu:    "NDOF_BUTTON_MENU",
	KindNDOFButtonFit:     "NDOF_BUTTON_FIT",
	KindNDOFButtonPlus:    "NDOF_BUTTON_PLUS",
	KindNDOFButtonMinus:   "NDOF_BUTTON_MINUS",
	KindNDOFButtonFront:   "NDOF_BUTTON_FRONT",
	KindNDOFButtonBack:    "NDOF_BUTTON_BACK",
	KindNDOFButtonLeft:    "NDOF_BUTTON_LEFT",
	KindNDOFButtonRight:   "NDOF_BUTTON_RIGHT",
	KindNDOFButtonTop:     "NDOF_BUTTON_TOP",
	KindNDOFButtonBottom:  "NDOF_BUTTON_BOTTOM",
	KindNDOFButtonRollCW:  "NDOF_BUTTON_ROLL_CW",
	KindNDOFButtonRollCCW: "NDOF_BUTTON_ROLL_CCW",

	KindTimer:         "TIMER",
	KindTimer0:        "TIMER0",
	KindTimer1:        "TIMER1",
	KindTimer2:        "TIMER2",
	KindTimerJobs:     "TIMER_JOBS",
	KindTimerAutosave: "TIMER_AUTOSAVE",
	KindTimerReport:   "TIMER_REPORT",
	KindTimerRegion:   "TIMERREGION",

	KindActionZoneArea:       "ACTIONZONE_AREA",
	KindActionZoneRegion:     "ACTIONZONE_REGION",
	KindActionZoneFullscreen: "ACTIONZONE_FULLSCREEN",
}

// kindByName maps identifiers (upper case) and a few readable aliases to kinds.
var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, int(kindCount)+16)
	for k := KindNone; k < kindCount; k++ {
		m[kindNames[k]] = k
	}
	aliases := map[string]Kind{
		"ESCAPE":    KindEsc,
		"ENTER":     KindReturn,
		"RETURN":    KindReturn,
		"BACKSPACE": KindBackSpace,
		"DELETE":    KindDel,
		"PAGEUP":    KindPageUp,
		"PAGEDOWN":  KindPageDown,
		"UP":        KindUpArrow,
		"DOWN":      KindDownArrow,
		"LEFT":      KindLeftArrow,
		"RIGHT":     KindRightArrow,
		"0":         KindZero,
		"1":         KindOne,
		"2":         KindTwo,
		"3":         KindThree,
		"4":         KindFour,
		"5":         KindFive,
		"6":         KindSix,
		"7":         KindSeven,
		"8":         KindEight,
		"9":         KindNine,
	}
	for name, k := range aliases {
		m[name] = k
	}
	return m
}()

// String returns the canonical identifier for the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// KindFromName returns the Kind for a name (case-insensitive).
// Returns KindNone if the name is not recognized.
func KindFromName(name string) Kind {
	name = strings.ToUpper(strings.TrimSpace(name))
	if k, ok := kindByName[name]; ok {
		return k
	}
	return KindNone
}

// Kinds returns every defined kind except KindNone, in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindA; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// IsValid returns true if k is a defined kind other than KindNone.
func (k Kind) IsValid() bool {
	return k > KindNone && k < kindCount
}

// IsKeyboard returns true for keys on a keyboard, including modifier keys.
func (k Kind) IsKeyboard() bool {
	return k >= KindA && k <= KindTextInput
}

// IsModifierKey returns true for the physical modifier keys.
func (k Kind) IsModifierKey() bool {
	return k >= KindLeftShift && k <= KindOSKey
}

// IsMouseButton returns true for physical and role mouse buttons.
func (k Kind) IsMouseButton() bool {
	return k >= KindLeftMouse && k <= KindActionMouse
}

// IsMouseRole returns true for the select/action role placeholders.
func (k Kind) IsMouseRole() bool {
	return k == KindSelectMouse || k == KindActionMouse
}

// IsMouse returns true for any pointer-originated kind: buttons, motion,
// drags, wheel and trackpad.
func (k Kind) IsMouse() bool {
	return k >= KindLeftMouse && k <= KindMouseRotate
}

// IsWheel returns true for wheel steps.
func (k Kind) IsWheel() bool {
	return k >= KindWheelUpMouse && k <= KindWheelOutMouse
}

// IsNDOF returns true for NDOF device signals.
func (k Kind) IsNDOF() bool {
	return k >= KindNDOFMotion && k <= KindNDOFButtonRollCCW
}

// IsTimer returns true for timer ticks.
func (k Kind) IsTimer() bool {
	return k >= KindTimer && k <= KindTimerRegion
}

// IsActionZone returns true for window-manager action zone events.
func (k Kind) IsActionZone() bool {
	return k >= KindActionZoneArea && k <= KindActionZoneFullscreen
}

// IsContinuous returns true for kinds that carry no discrete phase:
// timers, NDOF motion, mouse motion and trackpad gestures. Events of these
// kinds are delivered with ValueAny.
func (k Kind) IsContinuous() bool {
	return k.IsTimer() || k == KindNDOFMotion || k == KindMouseMove ||
		(k >= KindTrackpadPan && k <= KindMouseRotate)
}

// ModifierFor returns the modifier bit a modifier key controls.
// Returns ModNone for every other kind.
func (k Kind) ModifierFor() Modifier {
	switch k {
	case KindLeftShift, KindRightShift:
		return ModShift
	case KindLeftCtrl, KindRightCtrl:
		return ModCtrl
	case KindLeftAlt, KindRightAlt:
		return ModAlt
	case KindOSKey:
		return ModOSKey
	default:
		return ModNone
	}
}

// Letter returns the kind for an ASCII letter (either case).
// Returns KindNone for anything else.
func Letter(r rune) Kind {
	switch {
	case r >= 'a' && r <= 'z':
		return KindA + Kind(r-'a')
	case r >= 'A' && r <= 'Z':
		return KindA + Kind(r-'A')
	default:
		return KindNone
	}
}

// Digit returns the number-row kind for 0-9.
func Digit(n int) Kind {
	if n < 0 || n > 9 {
		return KindNone
	}
	return KindZero + Kind(n)
}

// NumpadDigit returns the numpad kind for 0-9.
func NumpadDigit(n int) Kind {
	if n < 0 || n > 9 {
		return KindNone
	}
	return KindNumpad0 + Kind(n)
}

// FunctionKey returns the kind for F1-F12.
func FunctionKey(n int) Kind {
	if n < 1 || n > 12 {
		return KindNone
	}
	return KindF1 + Kind(n-1)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("%w: kind %d", ErrInvalidSpec, uint16(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed := KindFromName(string(text))
	if parsed == KindNone {
		return fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, text)
	}
	*k = parsed
	return nil
}
