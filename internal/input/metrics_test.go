package input

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRecord(t *testing.T) {
	m := NewMetrics()
	m.RecordEvent(false, true, 2*time.Microsecond)
	m.RecordEvent(true, false, 3*time.Microsecond)
	m.RecordDispatchError()
	m.RecordHookConsumption()
	m.RecordReload(nil)

	s := m.Snapshot()
	assert.Equal(t, uint64(2), s.EventsTotal)
	assert.Equal(t, uint64(1), s.MouseEventsTotal)
	assert.Equal(t, uint64(1), s.HandledTotal)
	assert.Equal(t, uint64(1), s.UnhandledTotal)
	assert.Equal(t, uint64(1), s.DispatchErrors)
	assert.Equal(t, uint64(1), s.HookConsumptions)
	assert.Equal(t, uint64(1), s.ReloadsTotal)
	assert.Equal(t, uint64(2), s.Lookup.Count)
	assert.Equal(t, 3*time.Microsecond, s.Lookup.Max)
	assert.Greater(t, s.Uptime, time.Duration(0))

	m.Reset()
	s = m.Snapshot()
	assert.Zero(t, s.EventsTotal)
	assert.Zero(t, s.ReloadsTotal)
	assert.Zero(t, s.Lookup.Count)
}

func TestMetricsHealthCheck(t *testing.T) {
	m := NewMetrics()
	assert.True(t, m.HealthCheck(time.Millisecond).Healthy)

	m.RecordReload(errors.New("bad keymap"))
	status := m.HealthCheck(time.Millisecond)
	assert.False(t, status.Healthy)
	assert.Equal(t, "last keymap reload failed", status.Message)

	m.RecordReload(nil)
	m.RecordEvent(false, true, 50*time.Millisecond)
	status = m.HealthCheck(time.Millisecond)
	assert.False(t, status.Healthy)
	assert.Equal(t, "latency threshold exceeded", status.Message)
	assert.True(t, m.HealthCheck(time.Second).Healthy)
}
