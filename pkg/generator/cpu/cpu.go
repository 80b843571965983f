package cpu

import (
	"context"
	"crypto/rand"
	"io"
	"runtime"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"
	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/sync/errgroup"

	"github.com/Amr-9/RippleHunter/pkg/generator"
	"github.com/Amr-9/RippleHunter/pkg/generator/ripple"
	"github.com/Amr-9/RippleHunter/pkg/generator/seed"
	"github.com/Amr-9/RippleHunter/pkg/generator/sink"
	"github.com/Amr-9/RippleHunter/pkg/generator/stats"
)

// CPUGenerator implements the Generator interface using CPU-based goroutines.
// Every worker walks its own seed stream, so no two workers test the same seed.
type CPUGenerator struct {
	workers int                           // Number of concurrent workers
	deriver generator.Deriver             // Seed to account derivation
	sink    generator.Sink                // Where matches are persisted
	entropy io.Reader                     // Source of worker start seeds
	tracker atomic.Pointer[stats.Tracker] // Statistics of the current search
}

// Option configures a CPUGenerator.
type Option func(*CPUGenerator)

// WithDeriver sets the derivation used for every candidate.
func WithDeriver(d generator.Deriver) Option {
	return func(g *CPUGenerator) { g.deriver = d }
}

// WithSink sets the sink matches are reported to.
func WithSink(s generator.Sink) Option {
	return func(g *CPUGenerator) { g.sink = s }
}

// WithEntropy sets the source worker start seeds are read from.
func WithEntropy(r io.Reader) Option {
	return func(g *CPUGenerator) { g.entropy = r }
}

// NewCPUGenerator creates a new CPU-based generator.
// If workers is 0, it defaults to the number of CPU cores. Without options it
// derives secp256k1 Ripple accounts, reads crypto/rand and discards results.
func NewCPUGenerator(workers int, opts ...Option) *CPUGenerator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	g := &CPUGenerator{
		workers: workers,
		deriver: ripple.NewDeriver(ripple.Secp256k1),
		sink:    sink.Discard,
		entropy: rand.Reader,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Name returns the implementation name.
func (g *CPUGenerator) Name() string {
	return "CPU"
}

// Stats returns the current performance statistics.
func (g *CPUGenerator) Stats() generator.Stats {
	t := g.tracker.Load()
	if t == nil {
		return generator.Stats{}
	}
	return t.Snapshot()
}

// search is everything the workers of one Start call share. All fields are
// read-only except state, tracker and seen, which synchronise themselves.
type search struct {
	config  *generator.Config
	matcher *ripple.Matcher
	deriver generator.Deriver
	sink    generator.Sink
	tracker *stats.Tracker
	state   *searchState
	seen    *xsync.MapOf[string, struct{}]
	batch   uint64
	results chan generator.Result
}

// Start begins the vanity seed search with the given configuration.
//
// Worker seed streams are created before any worker starts, so an entropy
// failure is returned here and nothing runs. The returned channel is closed
// after every worker has stopped and must be drained until then; in FirstMatch
// mode it carries exactly one result, sent after all workers have joined.
func (g *CPUGenerator) Start(ctx context.Context, config *generator.Config) (<-chan generator.Result, error) {
	if len(config.Patterns) == 0 {
		return nil, generator.ErrNoPatterns
	}

	workers := g.workers
	if config.Workers > 0 {
		workers = config.Workers
	}
	batch := config.BatchSize
	if batch <= 0 {
		batch = stats.DefaultBatchSize
	}

	streams := make([]*seed.Stream, workers)
	for i := range streams {
		st, err := seed.NewStream(g.entropy, config.Anchor)
		if err != nil {
			return nil, errors.Wrapf(err, "worker %d", i)
		}
		streams[i] = st
	}

	s := &search{
		config:  config,
		matcher: ripple.NewMatcher(config.Patterns),
		deriver: g.deriver,
		sink:    g.sink,
		tracker: stats.New(ripple.ShortestSearchLength(config.Patterns)),
		state:   &searchState{},
		seen:    xsync.NewMapOf[string, struct{}](),
		batch:   uint64(batch),
		results: make(chan generator.Result, workers),
	}
	g.tracker.Store(s.tracker)

	log.Info("Search started", "engine", g.Name(), "workers", workers,
		"patterns", len(config.Patterns), "mode", config.Mode, "anchor", len(config.Anchor))

	var eg errgroup.Group
	for i, st := range streams {
		id, stream := i, st
		eg.Go(func() error {
			return s.worker(ctx, id, stream)
		})
	}

	go func() {
		if err := eg.Wait(); err != nil {
			log.Warn("Search lost workers", "err", err)
		}
		if config.Mode == generator.FirstMatch {
			if r, ok := s.state.Winner(); ok {
				s.results <- r
			}
		}
		close(s.results)
		log.Debug("Search stopped", "attempts", s.tracker.Attempts())
	}()

	return s.results, nil
}

// worker derives and tests candidates until the search is cancelled, won, or
// the derivation fails. A derivation failure only ends this worker.
func (s *search) worker(ctx context.Context, id int, stream *seed.Stream) error {
	var (
		hits  = make([]int, 0, len(s.matcher.Patterns()))
		local uint64
		last  string
	)
	defer func() {
		s.tracker.Flush(local, last)
	}()

	log.Debug("Worker started", "worker", id)
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		if s.config.Mode == generator.FirstMatch && s.state.Found() {
			return nil
		}

		candidate, err := s.deriver.Derive(stream.Next())
		if err != nil {
			log.Warn("Worker stopped", "worker", id, "err", err)
			return errors.Wrapf(err, "worker %d", id)
		}
		local++
		last = candidate.AccountID

		hits = s.matcher.Match(candidate.AccountID, hits[:0])
		for _, i := range hits {
			r := generator.Result{
				Candidate: candidate,
				Pattern:   s.matcher.Pattern(i),
				Worker:    id,
			}
			if s.config.Mode == generator.FirstMatch {
				s.finish(r)
				return nil
			}
			s.report(r)
		}

		if local >= s.batch {
			s.tracker.Flush(local, last)
			local = 0
		}
	}
}

// finish lets the first matching worker record the authoritative result.
// Workers that lose the race drop their candidate.
func (s *search) finish(r generator.Result) {
	if !s.state.TryFinish(r) {
		log.Debug("Discarding late match", "worker", r.Worker, "account", r.AccountID)
		return
	}
	log.Info("Match found", "worker", r.Worker, "account", r.AccountID, "pattern", r.Pattern)
	if err := s.sink.Report(r); err != nil {
		log.Error("Failed to persist result", "account", r.AccountID, "err", err)
	}
}

// report persists a RunForever hit and hands it to the caller.
func (s *search) report(r generator.Result) {
	if s.config.OncePerPattern {
		if _, loaded := s.seen.LoadOrStore(r.Pattern, struct{}{}); loaded {
			return
		}
	}
	log.Info("Match found", "worker", r.Worker, "account", r.AccountID, "pattern", r.Pattern)
	if err := s.sink.Report(r); err != nil {
		log.Error("Failed to persist result", "account", r.AccountID, "err", err)
	}
	s.results <- r
}
