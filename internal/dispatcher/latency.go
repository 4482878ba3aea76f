package dispatcher

import (
	"math"
	"sort"
	"sync"
	"time"
)

// latencyBounds are the histogram bucket upper bounds. The last bucket
// holds everything at or above the final bound.
var latencyBounds = []time.Duration{
	time.Microsecond,
	5 * time.Microsecond,
	10 * time.Microsecond,
	50 * time.Microsecond,
	100 * time.Microsecond,
	500 * time.Microsecond,
	time.Millisecond,
	10 * time.Millisecond,
	100 * time.Millisecond,
}

// LatencyTracker accumulates a latency distribution with Welford's online
// mean and variance and a coarse histogram for percentiles.
type LatencyTracker struct {
	mu sync.Mutex

	count uint64
	min   time.Duration
	max   time.Duration
	mean  float64
	m2    float64

	buckets [10]uint64
}

// LatencyStats is a snapshot of a LatencyTracker.
type LatencyStats struct {
	Count  uint64
	Min    time.Duration
	Max    time.Duration
	Mean   time.Duration
	StdDev time.Duration
	P50    time.Duration
	P95    time.Duration
	P99    time.Duration
}

// NewLatencyTracker creates an empty tracker.
func NewLatencyTracker() *LatencyTracker {
	return &LatencyTracker{}
}

// Record adds one measurement. Negative durations count as zero.
func (lt *LatencyTracker) Record(d time.Duration) {
	d = max(d, 0)

	lt.mu.Lock()
	defer lt.mu.Unlock()

	lt.count++
	if lt.count == 1 || d < lt.min {
		lt.min = d
	}
	lt.max = max(lt.max, d)

	x := float64(d)
	delta := x - lt.mean
	lt.mean += delta / float64(lt.count)
	lt.m2 += delta * (x - lt.mean)

	i := sort.Search(len(latencyBounds), func(i int) bool { return d < latencyBounds[i] })
	lt.buckets[i]++
}

// Stats returns the current statistics.
func (lt *LatencyTracker) Stats() LatencyStats {
	lt.mu.Lock()
	defer lt.mu.Unlock()

	s := LatencyStats{Count: lt.count}
	if lt.count == 0 {
		return s
	}
	s.Min = lt.min
	s.Max = lt.max
	s.Mean = time.Duration(lt.mean)
	if lt.count > 1 {
		s.StdDev = time.Duration(math.Sqrt(lt.m2 / float64(lt.count-1)))
	}
	s.P50 = lt.percentileLocked(50)
	s.P95 = lt.percentileLocked(95)
	s.P99 = lt.percentileLocked(99)
	return s
}

// percentileLocked returns the upper bound of the bucket holding the p-th
// percentile, clamped to the observed maximum.
func (lt *LatencyTracker) percentileLocked(p uint64) time.Duration {
	target := max((p*lt.count+99)/100, 1)
	var seen uint64
	for i, n := range lt.buckets {
		seen += n
		if seen >= target {
			if i < len(latencyBounds) {
				return min(latencyBounds[i], lt.max)
			}
			return lt.max
		}
	}
	return lt.max
}

// Reset clears the tracker.
func (lt *LatencyTracker) Reset() {
	lt.mu.Lock()
	defer lt.mu.Unlock()
	lt.count, lt.min, lt.max = 0, 0, 0
	lt.mean, lt.m2 = 0, 0
	lt.buckets = [10]uint64{}
}
