package dispatcher_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/bindery/internal/dispatcher"
)

func TestLatencyTrackerEmpty(t *testing.T) {
	lt := dispatcher.NewLatencyTracker()
	assert.Equal(t, dispatcher.LatencyStats{}, lt.Stats())
}

func TestLatencyTrackerStats(t *testing.T) {
	lt := dispatcher.NewLatencyTracker()
	for i := 0; i < 97; i++ {
		lt.Record(2 * time.Microsecond)
	}
	lt.Record(3 * time.Millisecond)
	lt.Record(3 * time.Millisecond)
	lt.Record(-time.Second)

	s := lt.Stats()
	assert.Equal(t, uint64(100), s.Count)
	assert.Equal(t, time.Duration(0), s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 5*time.Microsecond, s.P50)
	assert.Equal(t, 5*time.Microsecond, s.P95)
	assert.Equal(t, 3*time.Millisecond, s.P99)
	assert.Greater(t, s.StdDev, time.Duration(0))
	assert.InDelta(t, float64(61940*time.Nanosecond), float64(s.Mean), float64(time.Microsecond))
}

func TestLatencyTrackerReset(t *testing.T) {
	lt := dispatcher.NewLatencyTracker()
	lt.Record(time.Millisecond)
	lt.Reset()
	assert.Equal(t, uint64(0), lt.Stats().Count)

	lt.Record(7 * time.Microsecond)
	assert.Equal(t, 7*time.Microsecond, lt.Stats().Min)
}
