package ui

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Amr-9/RippleHunter/pkg/generator"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Output
	Output = &buf
	t.Cleanup(func() { Output = prev })
	return &buf
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "999", FormatNumber(999))
	assert.Equal(t, "1,000", FormatNumber(1000))
	assert.Equal(t, "135,241", FormatNumber(135241))
	assert.Equal(t, "7,843,997", FormatNumber(7843997))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "250ms", FormatDuration(250*time.Millisecond))
	assert.Equal(t, "1.5s", FormatDuration(1500*time.Millisecond))
	assert.Equal(t, "2m 5s", FormatDuration(125*time.Second))
	assert.Equal(t, "3h 10m", FormatDuration(3*time.Hour+10*time.Minute))
}

func TestFormatHashRate(t *testing.T) {
	assert.Equal(t, "12/s", FormatHashRate(12))
	assert.Equal(t, "4.5K/s", FormatHashRate(4500))
	assert.Equal(t, "2.0M/s", FormatHashRate(2e6))
	assert.Equal(t, "-/s", FormatHashRate(math.Inf(1)))
}

func TestFormatETA(t *testing.T) {
	assert.Equal(t, "23.32 seconds", FormatETA(23.32, generator.Seconds))
	assert.Equal(t, "∞", FormatETA(math.Inf(1), generator.Days))
}

func TestFormatAttempts(t *testing.T) {
	assert.Equal(t, "2,332", FormatAttempts(2332))
	assert.Equal(t, "1e+21", FormatAttempts(1.0045264667414493e21))
	assert.Equal(t, "∞", FormatAttempts(math.Inf(1)))
}

func TestGetPatternsFromUser(t *testing.T) {
	out := capture(t)
	p := NewPrompt(strings.NewReader("\nrBad0\nrHunter\nrHunter\nrAsk\n\nleftover\n"))

	assert.Equal(t, []string{"rHunter", "rAsk"}, p.GetPatternsFromUser())
	assert.Contains(t, out.String(), "0")

	assert.True(t, p.AskToContinue())
}

func TestGetPatternsFromUserEOF(t *testing.T) {
	capture(t)
	assert.Empty(t, NewPrompt(strings.NewReader("xNope")).GetPatternsFromUser())
	assert.Equal(t, []string{"rXRP"}, NewPrompt(strings.NewReader("rXRP")).GetPatternsFromUser())
}

func TestAskToContinue(t *testing.T) {
	capture(t)
	assert.False(t, NewPrompt(strings.NewReader("q\n")).AskToContinue())
	assert.False(t, NewPrompt(strings.NewReader("")).AskToContinue())
	assert.True(t, NewPrompt(strings.NewReader("\n")).AskToContinue())
}

func TestPrintersWriteToOutput(t *testing.T) {
	out := capture(t)
	r := generator.Result{
		Candidate: generator.Candidate{SeedEncoding: "snoPBrXtMeMyMHUVTgbuqAfg1SUTb", AccountID: "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"},
		Pattern:   "rHb",
	}
	PrintSuccess(r, time.Second, 10, "result_0.dat")
	PrintMatch(r)
	PrintProgress(generator.Stats{Attempts: 1234, LastAccount: r.AccountID}, 3)
	PrintError(errors.New("boom"))
	PrintWarning("careful")

	s := out.String()
	assert.Contains(t, s, r.AccountID)
	assert.Contains(t, s, r.SeedEncoding)
	assert.Contains(t, s, "1,234")
	assert.Contains(t, s, "boom")
	assert.Contains(t, s, "careful")
	assert.Contains(t, s, "pattern")
}
