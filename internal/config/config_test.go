package config

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amr-9/RippleHunter/pkg/generator"
	"github.com/Amr-9/RippleHunter/pkg/generator/ripple"
)

func TestParseDefaults(t *testing.T) {
	c, _, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, 0, c.Threads)
	assert.Equal(t, runtime.NumCPU(), c.Workers())
	assert.Equal(t, "result_%d.dat", c.OutputFile())
	assert.Equal(t, generator.RunForever, c.SearchMode())
	assert.Equal(t, ripple.Secp256k1, c.Keys())
	assert.Equal(t, 10000, c.Batch)
	assert.False(t, c.Once)
	assert.False(t, c.HasPatterns())
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("RIPPLEHUNTER_THREADS", "3")
	t.Setenv("RIPPLEHUNTER_MODE", "first")
	t.Setenv("RIPPLEHUNTER_PATTERNS", "rAsk,rHunter")

	c, _, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Workers())
	assert.Equal(t, generator.FirstMatch, c.SearchMode())
	assert.Equal(t, []string{"rAsk", "rHunter"}, c.Patterns)

	c, _, err = Parse([]string{"--threads=5", "--key-type", "ed25519", "rXRP"})
	require.NoError(t, err)
	assert.Equal(t, 5, c.Workers())
	assert.Equal(t, ripple.Ed25519, c.Keys())
	assert.Equal(t, generator.FirstMatch, c.SearchMode())
	assert.Equal(t, []string{"rXRP"}, c.Patterns)
}

func TestValidateRejects(t *testing.T) {
	for _, args := range [][]string{
		{"--threads=-1"},
		{"--batch=0"},
		{"--mode=sometimes"},
		{"--key-type=rsa"},
		{"--anchor=zz"},
	} {
		_, _, err := Parse(args)
		assert.Error(t, err, "%v", args)
	}
}

func TestLoadPatternsMergesFileAndArgs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.txt")
	require.NoError(t, os.WriteFile(path, []byte("# wanted\nrHunter\nrBad0\nrAsk\n"), 0o600))

	c, _, err := Parse([]string{"--input", path, "rXRP", "rAsk"})
	require.NoError(t, err)
	require.True(t, c.HasPatterns())

	valid, rejected, err := c.LoadPatterns()
	require.NoError(t, err)
	assert.Equal(t, []string{"rXRP", "rAsk", "rHunter"}, valid)
	assert.Len(t, rejected, 1)
}

func TestLoadPatternsMissingFile(t *testing.T) {
	c := &C{Input: filepath.Join(t.TempDir(), "absent.txt")}
	_, _, err := c.LoadPatterns()
	assert.Error(t, err)
}

func TestLoadPatternsNoneValid(t *testing.T) {
	c := &C{Patterns: []string{"xyz"}}
	_, rejected, err := c.LoadPatterns()
	assert.ErrorIs(t, err, generator.ErrNoPatterns)
	assert.Len(t, rejected, 1)
}

func TestSearchConfig(t *testing.T) {
	c, _, err := Parse([]string{"--threads=2", "--anchor=0xBEEF", "--once", "--batch=7", "rAsk"})
	require.NoError(t, err)

	cfg, err := c.SearchConfig([]string{"rAsk"})
	require.NoError(t, err)
	assert.Equal(t, []string{"rAsk"}, cfg.Patterns)
	assert.Equal(t, []byte{0xBE, 0xEF}, cfg.Anchor)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 7, cfg.BatchSize)
	assert.True(t, cfg.OncePerPattern)
	assert.Equal(t, generator.RunForever, cfg.Mode)
}

func TestPrintEnvUsage(t *testing.T) {
	var buf bytes.Buffer
	PrintEnvUsage(&buf)
	for _, name := range []string{"RIPPLEHUNTER_THREADS", "RIPPLEHUNTER_PATTERNS", "RIPPLEHUNTER_LOG_LEVEL"} {
		assert.Contains(t, buf.String(), name)
	}
}

func TestDescriptionMentionsSecondLetters(t *testing.T) {
	assert.Contains(t, C{}.Description(), ripple.CommonSecondChars)
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, log.LevelDebug, lvl)

	lvl, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, log.LevelInfo, lvl)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
	assert.Error(t, SetupLogging("loud", os.Stderr))
}
