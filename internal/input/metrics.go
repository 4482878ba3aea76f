package input

import (
	"sync/atomic"
	"time"

	"github.com/dshills/bindery/internal/dispatcher"
)

// Metrics tracks event resolution and keymap reloads.
type Metrics struct {
	eventsTotal      atomic.Uint64
	mouseEventsTotal atomic.Uint64
	handledTotal     atomic.Uint64
	unhandledTotal   atomic.Uint64
	dispatchErrors   atomic.Uint64
	hookConsumptions atomic.Uint64
	reloadsTotal     atomic.Uint64
	reloadFailures   atomic.Uint64
	lastReloadFailed atomic.Bool

	lookup *dispatcher.LatencyTracker

	startTime atomic.Int64
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{lookup: dispatcher.NewLatencyTracker()}
	m.startTime.Store(time.Now().UnixNano())
	return m
}

// RecordEvent records one resolved event and how long the lookup took.
func (m *Metrics) RecordEvent(mouse, handled bool, latency time.Duration) {
	m.eventsTotal.Add(1)
	if mouse {
		m.mouseEventsTotal.Add(1)
	}
	if handled {
		m.handledTotal.Add(1)
	} else {
		m.unhandledTotal.Add(1)
	}
	m.lookup.Record(latency)
}

// RecordDispatchError records a handler or routing failure.
func (m *Metrics) RecordDispatchError() {
	m.dispatchErrors.Add(1)
}

// RecordHookConsumption records an event consumed by a hook.
func (m *Metrics) RecordHookConsumption() {
	m.hookConsumptions.Add(1)
}

// RecordReload records a table rebuild.
func (m *Metrics) RecordReload(err error) {
	m.reloadsTotal.Add(1)
	if err != nil {
		m.reloadFailures.Add(1)
	}
	m.lastReloadFailed.Store(err != nil)
}

// MetricsSnapshot is a point-in-time view of Metrics.
type MetricsSnapshot struct {
	EventsTotal      uint64
	MouseEventsTotal uint64
	HandledTotal     uint64
	UnhandledTotal   uint64
	DispatchErrors   uint64
	HookConsumptions uint64
	ReloadsTotal     uint64
	ReloadFailures   uint64

	Lookup dispatcher.LatencyStats

	EventsPerSecond float64
	Uptime          time.Duration
}

// Snapshot returns the current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	uptime := time.Since(time.Unix(0, m.startTime.Load()))
	snap := MetricsSnapshot{
		EventsTotal:      m.eventsTotal.Load(),
		MouseEventsTotal: m.mouseEventsTotal.Load(),
		HandledTotal:     m.handledTotal.Load(),
		UnhandledTotal:   m.unhandledTotal.Load(),
		DispatchErrors:   m.dispatchErrors.Load(),
		HookConsumptions: m.hookConsumptions.Load(),
		ReloadsTotal:     m.reloadsTotal.Load(),
		ReloadFailures:   m.reloadFailures.Load(),
		Lookup:           m.lookup.Stats(),
		Uptime:           uptime,
	}
	if uptime > 0 {
		snap.EventsPerSecond = float64(snap.EventsTotal) / uptime.Seconds()
	}
	return snap
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.eventsTotal.Store(0)
	m.mouseEventsTotal.Store(0)
	m.handledTotal.Store(0)
	m.unhandledTotal.Store(0)
	m.dispatchErrors.Store(0)
	m.hookConsumptions.Store(0)
	m.reloadsTotal.Store(0)
	m.reloadFailures.Store(0)
	m.lastReloadFailed.Store(false)
	m.lookup.Reset()
	m.startTime.Store(time.Now().UnixNano())
}

// HealthStatus reports whether input resolution is keeping up.
type HealthStatus struct {
	Healthy          bool
	P99Latency       time.Duration
	LatencyThreshold time.Duration
	Message          string
}

// HealthCheck reports unhealthy when the last reload failed or the p99
// lookup latency exceeds threshold.
func (m *Metrics) HealthCheck(threshold time.Duration) HealthStatus {
	status := HealthStatus{
		Healthy:          true,
		P99Latency:       m.lookup.Stats().P99,
		LatencyThreshold: threshold,
		Message:          "healthy",
	}

	switch {
	case m.lastReloadFailed.Load():
		status.Healthy = false
		status.Message = "last keymap reload failed"
	case status.P99Latency > threshold:
		status.Healthy = false
		status.Message = "latency threshold exceeded"
	}
	return status
}
