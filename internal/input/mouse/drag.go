package mouse

import "github.com/dshills/bindery/internal/input/key"

// press is the state of one held button.
type press struct {
	pos     Position
	mods    key.Modifier
	dragged bool
}

// dragTracker tracks held buttons and whether they moved past the drag
// threshold.
type dragTracker struct {
	threshold int
	held      map[key.Kind]*press
	order     []key.Kind
}

// newDragTracker creates a new drag tracker.
func newDragTracker(threshold int) *dragTracker {
	return &dragTracker{
		threshold: threshold,
		held:      make(map[key.Kind]*press),
	}
}

// start records a button press.
func (t *dragTracker) start(kind key.Kind, pos Position, mods key.Modifier) {
	if _, ok := t.held[kind]; !ok {
		t.order = append(t.order, kind)
	}
	t.held[kind] = &press{pos: pos, mods: mods}
}

// update moves the pointer and returns the buttons whose drag started with
// this move, in press order, with their press position and modifiers.
func (t *dragTracker) update(pos Position) []dragStart {
	var started []dragStart
	for _, kind := range t.order {
		p := t.held[kind]
		if p.dragged || pos.Distance(p.pos) <= t.threshold {
			continue
		}
		p.dragged = true
		started = append(started, dragStart{kind: kind, pos: p.pos, mods: p.mods})
	}
	return started
}

// end releases a button and reports whether it counts as a click: it was
// held and never dragged, and the release is within the threshold.
func (t *dragTracker) end(kind key.Kind, pos Position) bool {
	p, ok := t.held[kind]
	if !ok {
		return false
	}
	delete(t.held, kind)
	for i, k := range t.order {
		if k == kind {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return !p.dragged && pos.Distance(p.pos) <= t.threshold
}

// isActive returns true if any button is held.
func (t *dragTracker) isActive() bool {
	return len(t.held) > 0
}

// reset forgets all held buttons.
func (t *dragTracker) reset() {
	t.held = make(map[key.Kind]*press)
	t.order = nil
}

// dragStart describes a drag that just crossed the threshold.
type dragStart struct {
	kind key.Kind
	pos  Position
	mods key.Modifier
}
