package mouse

import (
	"time"

	"github.com/dshills/bindery/internal/input/key"
)

// clickTracker tracks press timing for double-click detection.
type clickTracker struct {
	// Configuration
	maxTime     time.Duration
	maxDistance int

	// Last press state
	lastKind  key.Kind
	lastPos   Position
	lastTime  time.Time
	lastCount int
}

// newClickTracker creates a new click tracker.
func newClickTracker(maxTime time.Duration, maxDistance int) *clickTracker {
	return &clickTracker{
		maxTime:     maxTime,
		maxDistance: maxDistance,
	}
}

// recordPress records a button press and returns the click count (1 or 2).
// The count wraps back to 1 after a double click, so a third press starts
// a new sequence. If timestamp is zero, uses time.Now() as fallback.
func (t *clickTracker) recordPress(kind key.Kind, pos Position, timestamp time.Time) int {
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	if t.isPartOfSequence(kind, pos, timestamp) {
		t.lastCount++
		if t.lastCount > 2 {
			t.lastCount = 1
		}
	} else {
		t.lastCount = 1
	}

	t.lastKind = kind
	t.lastPos = pos
	t.lastTime = timestamp

	return t.lastCount
}

// isPartOfSequence checks if a press continues the current sequence.
func (t *clickTracker) isPartOfSequence(kind key.Kind, pos Position, timestamp time.Time) bool {
	if t.lastCount == 0 || t.lastTime.IsZero() || kind != t.lastKind {
		return false
	}

	// Negative elapsed time means clock skew; start over.
	elapsed := timestamp.Sub(t.lastTime)
	if elapsed < 0 || elapsed > t.maxTime {
		return false
	}

	return pos.Distance(t.lastPos) <= t.maxDistance
}

// reset clears the click tracking state.
func (t *clickTracker) reset() {
	t.lastKind = key.KindNone
	t.lastCount = 0
	t.lastTime = time.Time{}
	t.lastPos = Position{}
}
