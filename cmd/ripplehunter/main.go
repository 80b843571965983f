package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"

	"github.com/Amr-9/RippleHunter/internal/config"
	"github.com/Amr-9/RippleHunter/internal/ui"
	"github.com/Amr-9/RippleHunter/pkg/generator"
	"github.com/Amr-9/RippleHunter/pkg/generator/cpu"
	"github.com/Amr-9/RippleHunter/pkg/generator/ripple"
	"github.com/Amr-9/RippleHunter/pkg/generator/sink"
	"github.com/Amr-9/RippleHunter/pkg/generator/stats"
)

const updateRate = 100 * time.Millisecond

func main() {
	c := config.New()
	if err := config.SetupLogging(c.LogLevel, os.Stderr); err != nil {
		ui.PrintError(err)
		os.Exit(2)
	}

	ui.PrintWelcomeBanner(config.Version)

	interactive := !c.HasPatterns()
	prompt := ui.NewPrompt(os.Stdin)

	for {
		patterns, err := collectPatterns(c, prompt, interactive)
		if err != nil {
			ui.PrintError(err)
			os.Exit(1)
		}
		if err = run(c, patterns); err != nil {
			ui.PrintError(err)
			os.Exit(1)
		}
		if !interactive || !prompt.AskToContinue() {
			return
		}
	}
}

// collectPatterns returns the validated patterns from flags, environment and
// pattern file, or asks for them when none were given.
func collectPatterns(c *config.C, prompt *ui.Prompt, interactive bool) ([]string, error) {
	var patterns []string
	if interactive {
		patterns = prompt.GetPatternsFromUser()
		if len(patterns) == 0 {
			return nil, generator.ErrNoPatterns
		}
	} else {
		var (
			rejected []error
			err      error
		)
		patterns, rejected, err = c.LoadPatterns()
		for _, r := range rejected {
			log.Warn("Skipping pattern", "err", r)
			ui.PrintWarning("Skipping " + r.Error())
		}
		if err != nil {
			return nil, err
		}
	}

	for _, p := range patterns {
		if ripple.SlowPattern(p) {
			log.Warn("Pattern only matches short account IDs", "pattern", p)
			ui.PrintWarning(p + " only matches short account IDs, expect a long search")
		}
	}
	return patterns, nil
}

// run executes one search until it finishes or the user interrupts it.
func run(c *config.C, patterns []string) error {
	cfg, err := c.SearchConfig(patterns)
	if err != nil {
		return err
	}
	if c.Threads == 0 {
		log.Info("Worker count not set, using every logical CPU", "workers", cfg.Workers)
	}

	out := sink.NewFileSink(c.OutputFile(), nil)
	deriver := ripple.NewDeriver(c.Keys())
	gen := cpu.NewCPUGenerator(cfg.Workers,
		cpu.WithDeriver(deriver),
		cpu.WithSink(out),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ui.PrintSearchInfo(cfg, deriver.KeyType().String(), stats.ETA50(ripple.ShortestSearchLength(patterns)))

	results, err := gen.Start(ctx, cfg)
	if err != nil {
		if errors.Is(err, generator.ErrEntropyUnavailable) {
			return errors.Wrap(err, "cannot seed workers")
		}
		return err
	}

	startTime := time.Now()
	ticker := time.NewTicker(updateRate)
	defer ticker.Stop()

	var (
		frame int
		found int
		last  generator.Result
	)
	for {
		select {
		case r, ok := <-results:
			if !ok {
				elapsed := time.Since(startTime)
				attempts := gen.Stats().Attempts
				if cfg.Mode == generator.FirstMatch && found > 0 {
					ui.ClearLine()
					ui.PrintSuccess(last, elapsed, attempts, out.FileName(last.Worker))
				} else {
					ui.PrintCancelled(attempts, elapsed, found)
				}
				return nil
			}
			found++
			last = r
			if cfg.Mode == generator.RunForever {
				ui.PrintMatch(r)
			}

		case <-ticker.C:
			ui.PrintProgress(gen.Stats(), frame)
			frame++
		}
	}
}
