package cpu

import (
	"sync"
	"sync/atomic"

	"github.com/Amr-9/RippleHunter/pkg/generator"
)

// searchState is the only mutable state shared by the workers of one search.
// The found flag moves from false to true at most once, under mu; found is
// mirrored in an atomic so workers can poll it every iteration without locking.
type searchState struct {
	mu     sync.Mutex
	found  atomic.Bool
	winner generator.Result
}

// Found reports whether a worker has already won. A stale false only delays
// shutdown by one iteration.
func (s *searchState) Found() bool {
	return s.found.Load()
}

// TryFinish records r as the winner if nobody has won yet. Exactly one caller
// per search gets true.
func (s *searchState) TryFinish(r generator.Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.found.Load() {
		return false
	}
	s.winner = r
	s.found.Store(true)
	return true
}

// Winner returns the authoritative result, if any.
func (s *searchState) Winner() (generator.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.winner, s.found.Load()
}
