// Package sink persists confirmed matches.
package sink

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/Amr-9/RippleHunter/pkg/generator"
)

// DefaultFileName is the per-worker result file layout.
const DefaultFileName = "result_%d.dat"

// FileSink appends one line per match to a result file and echoes the match
// to an interactive writer.
//
// Each record is written with a single Write on a file opened in append mode,
// so concurrent runs sharing a file never interleave partial lines.
type FileSink struct {
	mu      sync.Mutex
	pattern string
	echo    io.Writer
	records int
}

// NewFileSink creates a sink writing to name. If name contains %d it is
// replaced by the worker index, giving one file per worker. echo may be nil.
func NewFileSink(name string, echo io.Writer) *FileSink {
	if name == "" {
		name = DefaultFileName
	}
	return &FileSink{pattern: name, echo: echo}
}

// FileName returns the file a worker's matches are written to.
func (s *FileSink) FileName(worker int) string {
	return strings.Replace(s.pattern, "%d", strconv.Itoa(worker), 1)
}

// Records returns the number of records written so far.
func (s *FileSink) Records() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records
}

// Report implements generator.Sink.
func (s *FileSink) Report(r generator.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.echo != nil {
		fmt.Fprintf(s.echo, "\nsecret: %s\t public: %s\t (pattern: %s)\n\n",
			r.SeedEncoding, r.AccountID, r.Pattern)
	}

	name := s.FileName(r.Worker)
	f, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return errors.Wrapf(err, "open %s", name)
	}
	_, err = f.Write([]byte(FormatRecord(r)))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return errors.Wrapf(err, "write %s", name)
	}
	s.records++
	return nil
}

// FormatRecord renders the persisted form of a match:
// account;seed;pattern followed by a newline.
func FormatRecord(r generator.Result) string {
	return r.AccountID + ";" + r.SeedEncoding + ";" + r.Pattern + "\n"
}

// Memory keeps results in memory. It is used by tests and dry runs.
type Memory struct {
	mu      sync.Mutex
	results []generator.Result
}

// Report implements generator.Sink.
func (m *Memory) Report(r generator.Result) error {
	m.mu.Lock()
	m.results = append(m.results, r)
	m.mu.Unlock()
	return nil
}

// Results returns a copy of everything reported so far.
func (m *Memory) Results() []generator.Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]generator.Result(nil), m.results...)
}

// Discard drops every result.
var Discard generator.Sink = discard{}

type discard struct{}

func (discard) Report(generator.Result) error { return nil }
