package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amr-9/RippleHunter/internal/config"
	"github.com/Amr-9/RippleHunter/internal/ui"
	"github.com/Amr-9/RippleHunter/pkg/generator"
)

func captureUI(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := ui.Output
	ui.Output = &buf
	t.Cleanup(func() { ui.Output = prev })
	return &buf
}

func TestCollectPatternsWarnsOnConsole(t *testing.T) {
	out := captureUI(t)
	c := &config.C{Patterns: []string{"rBad0", "rHunter", "rXRP"}}

	patterns, err := collectPatterns(c, nil, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"rHunter", "rXRP"}, patterns)
	assert.Contains(t, out.String(), "rBad0")
	assert.Contains(t, out.String(), "rXRP only matches short account IDs")
	assert.NotContains(t, out.String(), "rHunter only")
}

func TestCollectPatternsNoneValid(t *testing.T) {
	captureUI(t)
	_, err := collectPatterns(&config.C{Patterns: []string{"nope"}}, nil, false)
	assert.ErrorIs(t, err, generator.ErrNoPatterns)
}

func TestCollectPatternsInteractive(t *testing.T) {
	captureUI(t)
	prompt := ui.NewPrompt(strings.NewReader("rAsk\n\n"))
	patterns, err := collectPatterns(&config.C{}, prompt, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"rAsk"}, patterns)

	_, err = collectPatterns(&config.C{}, ui.NewPrompt(strings.NewReader("")), true)
	assert.ErrorIs(t, err, generator.ErrNoPatterns)
}

func TestRunFirstMatchKeepsSecretsOffTheEchoLine(t *testing.T) {
	out := captureUI(t)
	output := filepath.Join(t.TempDir(), "hit_%d.dat")
	c, _, err := config.Parse([]string{"--threads=2", "--mode=first", "--output", output, "r"})
	require.NoError(t, err)

	require.NoError(t, run(c, []string{"r"}))

	s := out.String()
	assert.Contains(t, s, "ACCOUNT FOUND")
	assert.NotContains(t, s, "secret: ")

	files, err := filepath.Glob(filepath.Join(filepath.Dir(output), "hit_*.dat"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "\n"))
}
