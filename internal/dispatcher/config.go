package dispatcher

import "time"

// Config holds dispatcher options.
type Config struct {
	// EnableMetrics enables dispatch timing and counters.
	EnableMetrics bool

	// RecoverFromPanic turns handler panics into ErrPanic errors.
	RecoverFromPanic bool

	// Timeout bounds each handler through its context. Zero means no
	// timeout.
	Timeout time.Duration
}

// DefaultConfig returns the default options: panic recovery on, metrics
// off, no timeout.
func DefaultConfig() Config {
	return Config{
		RecoverFromPanic: true,
	}
}

// WithMetrics returns a copy of the config with metrics enabled.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}

// WithPanicRecovery returns a copy of the config with panic recovery set.
func (c Config) WithPanicRecovery(recover bool) Config {
	c.RecoverFromPanic = recover
	return c
}

// WithTimeout returns a copy of the config with the handler timeout set.
func (c Config) WithTimeout(timeout time.Duration) Config {
	c.Timeout = timeout
	return c
}
