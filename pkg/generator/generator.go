// Package generator defines the interface for Ripple vanity seed generation.
// Backends receive derivation and result persistence through Deriver and Sink.
package generator

import (
	"context"

	"github.com/Amr-9/RippleHunter/pkg/generator/seed"
)

// Mode selects how a search terminates.
type Mode int

const (
	RunForever Mode = iota // Report every hit, stop only on cancellation
	FirstMatch             // Stop all workers on the first hit
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case RunForever:
		return "forever"
	case FirstMatch:
		return "first"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name into a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "forever", "all", "":
		return RunForever, true
	case "first", "once":
		return FirstMatch, true
	default:
		return RunForever, false
	}
}

// TimeUnit is the unit an ETA is expressed in.
type TimeUnit int

const (
	Seconds TimeUnit = iota
	Minutes
	Hours
	Days
)

// String returns the unit name.
func (u TimeUnit) String() string {
	switch u {
	case Minutes:
		return "minutes"
	case Hours:
		return "hours"
	case Days:
		return "days"
	default:
		return "seconds"
	}
}

// Config holds the configuration for a vanity seed search.
type Config struct {
	Patterns       []string // Validated account ID prefixes, each starting with 'r'
	Anchor         []byte   // Bytes forced into the high end of every seed
	Workers        int      // Number of concurrent workers
	Mode           Mode     // Termination mode
	BatchSize      int      // Iterations between statistics flushes
	OncePerPattern bool     // RunForever only: report each pattern once
}

// Candidate is one derived seed under test.
type Candidate struct {
	Seed         seed.Seed
	SeedEncoding string // Family seed (s...)
	SeedHex      string // Upper-case hex of the seed
	AccountID    string // Account identifier (r...)
}

// Result contains a matching account ID together with the seed that produced it.
type Result struct {
	Candidate
	Pattern string // The pattern the account ID matched
	Worker  int    // Index of the worker that found it
}

// Stats holds real-time performance statistics.
type Stats struct {
	Attempts    uint64   // Total number of seeds derived
	HashRate    float64  // Seeds per second since start
	ElapsedSecs float64  // Time elapsed since start
	ETA         float64  // Time to a 50% chance of a hit, in ETAUnit
	ETAUnit     TimeUnit // Unit of ETA
	LastAccount string   // Last account ID seen at a flush
}

// Deriver turns a seed into its encodings and account identifier.
// Implementations must be deterministic and safe for concurrent use.
type Deriver interface {
	Derive(s seed.Seed) (Candidate, error)
}

// Sink receives confirmed matches. Report must be safe for concurrent use.
type Sink interface {
	Report(r Result) error
}

// Generator defines the contract for search backends.
type Generator interface {
	// Start begins the vanity search with the given configuration.
	// It returns a channel that receives results and is closed once every
	// worker has stopped. The search can be cancelled via the context.
	Start(ctx context.Context, config *Config) (<-chan Result, error)

	// Stats returns the current performance statistics.
	// This method is safe to call concurrently from any goroutine.
	Stats() Stats

	// Name returns the implementation name.
	Name() string
}
