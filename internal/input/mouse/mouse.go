package mouse

import (
	"sync"
	"time"

	"github.com/dshills/bindery/internal/input/key"
)

// Position represents a window coordinate.
type Position struct {
	X int
	Y int
}

// Distance returns the Manhattan distance (|dx| + |dy|) between two positions.
func (p Position) Distance(other Position) int {
	dx := p.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

func positionOf(e key.Event) Position {
	return Position{X: e.X, Y: e.Y}
}

// Roles maps the abstract select and action buttons to physical buttons.
type Roles struct {
	// Select is the physical button used for selection.
	Select key.Kind

	// Action is the physical button used for actions and context menus.
	Action key.Kind
}

// DefaultRoles returns left-click select.
func DefaultRoles() Roles {
	return Roles{Select: key.KindLeftMouse, Action: key.KindRightMouse}
}

// Alias returns the event rewritten to its role kind: SELECTMOUSE or
// ACTIONMOUSE for buttons, EVT_TWEAK_S or EVT_TWEAK_A for drags.
func (r Roles) Alias(e key.Event) (key.Event, bool) {
	switch e.Kind {
	case r.Select:
		e.Kind = key.KindSelectMouse
	case r.Action:
		e.Kind = key.KindActionMouse
	case tweakKind(r.Select):
		e.Kind = key.KindTweakS
	case tweakKind(r.Action):
		e.Kind = key.KindTweakA
	default:
		return e, false
	}
	return e, true
}

// tweakKind returns the drag kind for a physical button.
func tweakKind(button key.Kind) key.Kind {
	switch button {
	case key.KindLeftMouse:
		return key.KindTweakL
	case key.KindMiddleMouse:
		return key.KindTweakM
	case key.KindRightMouse:
		return key.KindTweakR
	default:
		return key.KindNone
	}
}

// Config configures click synthesis.
type Config struct {
	// DoubleClickTime is the maximum time between presses for a double-click.
	DoubleClickTime time.Duration

	// MaxDistance is the maximum pointer travel, in pixels, for a press to
	// still count as a click or the second half of a double-click. Moving
	// further while a button is held starts a drag.
	MaxDistance int

	// Roles maps SELECTMOUSE and ACTIONMOUSE to physical buttons.
	Roles Roles
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		DoubleClickTime: 350 * time.Millisecond,
		MaxDistance:     3,
		Roles:           DefaultRoles(),
	}
}

// ClickDetector derives CLICK, DOUBLE_CLICK and drag events from raw
// button presses, releases and pointer motion.
type ClickDetector struct {
	mu     sync.Mutex
	config Config

	click *clickTracker
	drag  *dragTracker
}

// NewClickDetector creates a new click detector with the given configuration.
func NewClickDetector(config Config) *ClickDetector {
	return &ClickDetector{
		config: config,
		click:  newClickTracker(config.DoubleClickTime, config.MaxDistance),
		drag:   newDragTracker(config.MaxDistance),
	}
}

// Config returns the detector configuration.
func (d *ClickDetector) Config() Config {
	return d.config
}

// Translate returns the candidate events for a raw event in priority
// order. The caller tries each in turn and stops at the first one a
// binding handles.
//
//   - second press within DoubleClickTime and MaxDistance: [DOUBLE_CLICK, PRESS]
//   - release of a press that did not drag: [RELEASE, CLICK]
//   - pointer motion that starts a drag: [EVT_TWEAK_*, MOUSEMOVE]
//
// Everything else is returned unchanged as a single candidate.
func (d *ClickDetector) Translate(ev key.Event) []key.Event {
	d.mu.Lock()
	defer d.mu.Unlock()

	pos := positionOf(ev)

	if ev.Kind == key.KindMouseMove {
		started := d.drag.update(pos)
		if len(started) == 0 {
			return []key.Event{ev}
		}
		out := make([]key.Event, 0, len(started)+1)
		for _, s := range started {
			kind := tweakKind(s.kind)
			if kind == key.KindNone {
				continue
			}
			out = append(out, key.Event{
				Kind:      kind,
				Value:     key.ValuePress,
				Modifiers: s.mods,
				X:         s.pos.X,
				Y:         s.pos.Y,
				Timestamp: ev.Timestamp,
			})
		}
		return append(out, ev)
	}

	if !ev.Kind.IsMouseButton() || ev.Kind.IsMouseRole() {
		return []key.Event{ev}
	}

	switch ev.Value {
	case key.ValuePress:
		d.drag.start(ev.Kind, pos, ev.Modifiers)
		if d.click.recordPress(ev.Kind, pos, ev.Timestamp) == 2 {
			return []key.Event{ev.WithValue(key.ValueDoubleClick), ev}
		}
	case key.ValueRelease:
		if d.drag.end(ev.Kind, pos) {
			return []key.Event{ev, ev.WithValue(key.ValueClick)}
		}
	}
	return []key.Event{ev}
}

// Expand is Translate with role aliasing. Each group holds one candidate
// followed by its SELECTMOUSE/ACTIONMOUSE form when it has one; members of
// a group are equivalent and must be tried together against each keymap.
// Groups are in priority order.
func (d *ClickDetector) Expand(ev key.Event) [][]key.Event {
	candidates := d.Translate(ev)
	out := make([][]key.Event, 0, len(candidates))
	for _, c := range candidates {
		group := []key.Event{c}
		if alias, ok := d.config.Roles.Alias(c); ok {
			group = append(group, alias)
		}
		out = append(out, group)
	}
	return out
}

// Reset clears all detector state.
func (d *ClickDetector) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.click.reset()
	d.drag.reset()
}

// IsHeld returns true if any mouse button is held.
func (d *ClickDetector) IsHeld() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.drag.isActive()
}
