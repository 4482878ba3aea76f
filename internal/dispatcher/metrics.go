package dispatcher

import (
	"sort"
	"sync"
	"time"
)

// Metrics collects dispatch statistics.
type Metrics struct {
	mu sync.RWMutex

	commands map[string]*CommandMetrics

	totalDispatches uint64
	totalErrors     uint64
	totalPanics     uint64
	totalUnknown    uint64
	totalDuration   time.Duration

	latency *LatencyTracker
}

// CommandMetrics holds statistics for one command.
type CommandMetrics struct {
	Name          string
	DispatchCount uint64
	ErrorCount    uint64
	TotalDuration time.Duration
	MinDuration   time.Duration
	MaxDuration   time.Duration
	LastDispatch  time.Time
}

// NewMetrics creates an empty collector.
func NewMetrics() *Metrics {
	return &Metrics{
		commands: make(map[string]*CommandMetrics),
		latency:  NewLatencyTracker(),
	}
}

// RecordDispatch records one handler run.
func (m *Metrics) RecordDispatch(command string, duration time.Duration, err error) {
	m.latency.Record(duration)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalDispatches++
	m.totalDuration += duration
	if err != nil {
		m.totalErrors++
	}

	cm := m.commands[command]
	if cm == nil {
		cm = &CommandMetrics{
			Name:        command,
			MinDuration: duration,
			MaxDuration: duration,
		}
		m.commands[command] = cm
	}

	cm.DispatchCount++
	cm.TotalDuration += duration
	cm.LastDispatch = time.Now()
	cm.MinDuration = min(cm.MinDuration, duration)
	cm.MaxDuration = max(cm.MaxDuration, duration)
	if err != nil {
		cm.ErrorCount++
	}
}

// RecordPanic records a recovered panic.
func (m *Metrics) RecordPanic(string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalPanics++
}

// RecordUnknown records a command without a handler.
func (m *Metrics) RecordUnknown(string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalUnknown++
}

// TotalDispatches returns the number of handler runs.
func (m *Metrics) TotalDispatches() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalDispatches
}

// TotalErrors returns the number of handler runs that returned an error.
func (m *Metrics) TotalErrors() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalErrors
}

// TotalPanics returns the number of recovered panics.
func (m *Metrics) TotalPanics() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalPanics
}

// TotalUnknown returns the number of unknown commands.
func (m *Metrics) TotalUnknown() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalUnknown
}

// AverageDuration returns the mean handler duration.
func (m *Metrics) AverageDuration() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.totalDispatches == 0 {
		return 0
	}
	return m.totalDuration / time.Duration(m.totalDispatches)
}

// Latency returns the handler latency distribution.
func (m *Metrics) Latency() LatencyStats {
	return m.latency.Stats()
}

// CommandStats returns a copy of the statistics for a command, or nil.
func (m *Metrics) CommandStats(command string) *CommandMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cm := m.commands[command]
	if cm == nil {
		return nil
	}
	c := *cm
	return &c
}

// TopCommands returns the n most dispatched commands, ties by name.
func (m *Metrics) TopCommands(n int) []CommandMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]CommandMetrics, 0, len(m.commands))
	for _, cm := range m.commands {
		out = append(out, *cm)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DispatchCount != out[j].DispatchCount {
			return out[i].DispatchCount > out[j].DispatchCount
		}
		return out[i].Name < out[j].Name
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// Reset clears all statistics.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.commands = make(map[string]*CommandMetrics)
	m.totalDispatches = 0
	m.totalErrors = 0
	m.totalPanics = 0
	m.totalUnknown = 0
	m.totalDuration = 0
	m.latency.Reset()
}
