// Package stats aggregates worker throughput into global totals and estimates
// the time to a 50% chance of success.
package stats

import (
	"math"
	"sync"
	"time"

	"github.com/Amr-9/RippleHunter/pkg/generator"
)

// DefaultBatchSize is how many iterations a worker runs between flushes.
const DefaultBatchSize = 10000

// Tracker holds the global attempt counter. Workers count locally and call
// Flush once per batch, so the lock is taken rarely.
type Tracker struct {
	mu       sync.Mutex
	start    time.Time
	now      func() time.Time
	target   float64
	attempts uint64
	last     string
}

// New creates a tracker for a search whose easiest pattern needs length
// characters to be hit. The clock starts immediately.
func New(length int) *Tracker {
	return newWithClock(length, time.Now)
}

func newWithClock(length int, now func() time.Time) *Tracker {
	return &Tracker{
		start:  now(),
		now:    now,
		target: ETA50(length),
	}
}

// Flush adds delta attempts to the global total and records the last account
// ID the worker saw.
func (t *Tracker) Flush(delta uint64, lastAccount string) {
	if delta == 0 && lastAccount == "" {
		return
	}
	t.mu.Lock()
	t.attempts += delta
	if lastAccount != "" {
		t.last = lastAccount
	}
	t.mu.Unlock()
}

// Attempts returns the flushed attempt total.
func (t *Tracker) Attempts() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.attempts
}

// Snapshot computes the current statistics. The totals only ever grow, so
// successive snapshots are monotonic.
func (t *Tracker) Snapshot() generator.Stats {
	t.mu.Lock()
	attempts, last := t.attempts, t.last
	t.mu.Unlock()

	elapsed := t.now().Sub(t.start).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}

	var rate float64
	switch {
	case attempts == 0:
		rate = 0
	case elapsed == 0:
		rate = math.Inf(1)
	default:
		rate = float64(attempts) / elapsed
	}

	var eta float64
	switch {
	case t.target == 0:
		eta = 0
	case rate == 0:
		eta = math.Inf(1)
	default:
		eta = t.target / rate
	}
	value, unit := Humanize(eta)

	return generator.Stats{
		Attempts:    attempts,
		HashRate:    rate,
		ElapsedSecs: elapsed,
		ETA:         value,
		ETAUnit:     unit,
		LastAccount: last,
	}
}
