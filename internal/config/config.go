// Package config assembles the search configuration from the environment and
// the command line. Environment variables set the defaults, flags override them.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"go-simpler.org/env"

	"github.com/Amr-9/RippleHunter/pkg/generator"
	"github.com/Amr-9/RippleHunter/pkg/generator/ripple"
	"github.com/Amr-9/RippleHunter/pkg/generator/sink"
	"github.com/Amr-9/RippleHunter/pkg/generator/stats"
)

// AppName is the program name used in help output.
const AppName = "ripplehunter"

// Version is the release version.
const Version = "0.4"

// C is the configuration of a ripplehunter run.
type C struct {
	Threads  int      `env:"RIPPLEHUNTER_THREADS" default:"0" usage:"number of worker threads, 0 uses every logical CPU" arg:"-t,--threads" help:"number of worker threads (default: all logical CPUs)"`
	Input    string   `env:"RIPPLEHUNTER_INPUT" usage:"file with one prefix pattern per line" arg:"-i,--input" help:"file with one prefix pattern per line"`
	Patterns []string `env:"RIPPLEHUNTER_PATTERNS" usage:"comma separated prefix patterns" arg:"positional" help:"prefix patterns, each starting with 'r'"`
	Anchor   string   `env:"RIPPLEHUNTER_ANCHOR" usage:"hex bytes or a family seed forced into the start of every seed" arg:"--anchor" help:"hex bytes or a family seed forced into the start of every seed"`
	Output   string   `env:"RIPPLEHUNTER_OUTPUT" default:"result_%d.dat" usage:"result file, %d is replaced by the worker index" arg:"-o,--output" help:"result file, %d is replaced by the worker index"`
	Mode     string   `env:"RIPPLEHUNTER_MODE" default:"forever" usage:"forever reports every match, first stops at the first one" arg:"-m,--mode" help:"forever: report every match; first: stop at the first match"`
	KeyType  string   `env:"RIPPLEHUNTER_KEY_TYPE" default:"secp256k1" usage:"secp256k1 or ed25519" arg:"-k,--key-type" help:"secp256k1 or ed25519"`
	Batch    int      `env:"RIPPLEHUNTER_BATCH" default:"10000" usage:"iterations between statistics updates" arg:"--batch" help:"iterations between statistics updates"`
	Once     bool     `env:"RIPPLEHUNTER_ONCE" default:"false" usage:"report each pattern only once" arg:"--once" help:"report each pattern only once (forever mode)"`
	LogLevel string   `env:"RIPPLEHUNTER_LOG_LEVEL" default:"info" usage:"trace, debug, info, warn, error or crit" arg:"--log-level" help:"trace, debug, info, warn, error or crit"`
}

// Version implements go-arg's version hook.
func (C) Version() string {
	return AppName + " " + Version
}

// Description implements go-arg's description hook.
func (C) Description() string {
	return "Searches for Ripple seeds whose account ID starts with one of the given patterns.\n" +
		"Available letters: " + ripple.Alphabet + "\n" +
		"Patterns whose second letter is not one of " + ripple.CommonSecondChars + " take about 50 times longer."
}

// New loads the configuration for the running process. It prints help,
// version or environment usage and exits when asked to.
func New() (c *C) {
	if len(os.Args) == 2 && os.Args[1] == "help-env" {
		PrintEnvUsage(os.Stdout)
		os.Exit(0)
	}
	c, p, err := Parse(os.Args[1:])
	switch {
	case errors.Is(err, arg.ErrHelp):
		p.WriteHelp(os.Stdout)
		fmt.Printf("\nRun '%s help-env' to list the environment variables.\n", AppName)
		os.Exit(0)
	case errors.Is(err, arg.ErrVersion):
		fmt.Println(c.Version())
		os.Exit(0)
	case err != nil:
		if p != nil {
			p.Fail(err.Error())
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return c
}

// PrintEnvUsage lists the environment variables with their defaults.
func PrintEnvUsage(w io.Writer) {
	fmt.Fprintf(w, "\nenvironment variables that configure %s\n\n", AppName)
	env.Usage(&C{}, w, &env.Options{SliceSep: ","})
}

// Parse loads environment defaults and applies the command line on top.
func Parse(args []string) (*C, *arg.Parser, error) {
	c := &C{}
	if err := env.Load(c, &env.Options{SliceSep: ","}); err != nil {
		return nil, nil, errors.Wrap(err, "load environment")
	}
	p, err := arg.NewParser(arg.Config{Program: AppName, IgnoreDefault: true}, c)
	if err != nil {
		return nil, nil, errors.Wrap(err, "build parser")
	}
	if err = p.Parse(args); err != nil {
		return c, p, err
	}
	return c, p, c.Validate()
}

// Validate checks values the parsers cannot.
func (c *C) Validate() error {
	if c.Threads < 0 {
		return errors.Errorf("threads must not be negative, got %d", c.Threads)
	}
	if c.Batch <= 0 {
		return errors.Errorf("batch must be positive, got %d", c.Batch)
	}
	if _, ok := generator.ParseMode(c.Mode); !ok {
		return errors.Errorf("unknown mode %q", c.Mode)
	}
	if _, err := ripple.ParseKeyType(c.KeyType); err != nil {
		return err
	}
	if _, err := ripple.ParseAnchor(c.Anchor); err != nil {
		return err
	}
	return nil
}

// Workers returns the worker count, defaulting to every logical CPU.
func (c *C) Workers() int {
	if c.Threads > 0 {
		return c.Threads
	}
	return runtime.NumCPU()
}

// SearchMode returns the parsed termination mode.
func (c *C) SearchMode() generator.Mode {
	m, _ := generator.ParseMode(c.Mode)
	return m
}

// Keys returns the parsed key type.
func (c *C) Keys() ripple.KeyType {
	kt, _ := ripple.ParseKeyType(c.KeyType)
	return kt
}

// OutputFile returns the result file name pattern.
func (c *C) OutputFile() string {
	if c.Output == "" {
		return sink.DefaultFileName
	}
	return c.Output
}

// HasPatterns reports whether patterns were given by flag, environment or file.
func (c *C) HasPatterns() bool {
	return len(c.Patterns) > 0 || c.Input != ""
}

// LoadPatterns collects patterns from the command line and the input file.
// Invalid ones are returned in rejected; if none are valid the error wraps
// generator.ErrNoPatterns.
func (c *C) LoadPatterns() (valid []string, rejected []error, err error) {
	readers := []io.Reader{strings.NewReader(strings.Join(c.Patterns, "\n"))}
	if c.Input != "" {
		f, err := os.Open(c.Input)
		if err != nil {
			return nil, nil, errors.Wrap(err, "open pattern file")
		}
		defer f.Close()
		readers = append(readers, strings.NewReader("\n"), f)
	}
	return ripple.LoadPatterns(io.MultiReader(readers...))
}

// SearchConfig builds the engine configuration for the given patterns.
func (c *C) SearchConfig(patterns []string) (*generator.Config, error) {
	anchor, err := ripple.ParseAnchor(c.Anchor)
	if err != nil {
		return nil, err
	}
	batch := c.Batch
	if batch <= 0 {
		batch = stats.DefaultBatchSize
	}
	return &generator.Config{
		Patterns:       patterns,
		Anchor:         anchor,
		Workers:        c.Workers(),
		Mode:           c.SearchMode(),
		BatchSize:      batch,
		OncePerPattern: c.Once,
	}, nil
}
