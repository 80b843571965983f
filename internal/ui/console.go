package ui

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/Amr-9/RippleHunter/pkg/generator"
)

var (
	cyan   = color.New(color.FgCyan).SprintFunc()
	green  = color.New(color.FgGreen, color.Bold).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed, color.Bold).SprintFunc()
	purple = color.New(color.FgMagenta, color.Bold).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
)

// Output is where the console writes. color.Output handles Windows terminals.
var Output io.Writer = color.Output

// PrintWelcomeBanner shows the welcome screen
func PrintWelcomeBanner(version string) {
	frame := color.New(color.FgCyan, color.Bold).SprintFunc()
	fmt.Fprintln(Output)
	fmt.Fprintln(Output, frame("  ╔══════════════════════════════════════════════════════════╗"))
	fmt.Fprintln(Output, frame("  ║   ┳━┓o┏━┓┏━┓┃  ┏━┛   ┃ ┃┃ ┃┏━┓━┏┛┏━┛┏━┓                    ║"))
	fmt.Fprintln(Output, frame("  ║   ┃┳┛┃┃━┛┃━┛┃  ┏━┛   ┃━┫┃ ┃┃ ┃ ┃ ┏━┛┃┳┛                    ║"))
	fmt.Fprintln(Output, frame("  ║   ┇┗┛┇┇  ┇  ━━┛━━┛   ┇ ┇━━┛┇ ┇ ┇ ━━┛┇┗┛                    ║"))
	fmt.Fprintln(Output, frame("  ╠══════════════════════════════════════════════════════════╣"))
	fmt.Fprintf(Output, "  %s   %s %s\n", frame("║"), yellow("Ripple Vanity Seed Hunter"), dim("• v"+version))
	fmt.Fprintln(Output, frame("  ╚══════════════════════════════════════════════════════════╝"))
	fmt.Fprintln(Output)
}

// PrintSearchInfo displays search configuration
func PrintSearchInfo(config *generator.Config, keyType string, eta50 float64) {
	fmt.Fprintf(Output, "\n    %s", green("🚀 SEARCHING"))
	for i, p := range config.Patterns {
		if i == 8 {
			fmt.Fprintf(Output, " %s", dim(fmt.Sprintf("(+%d more)", len(config.Patterns)-i)))
			break
		}
		fmt.Fprintf(Output, " %s%s", bold(cyan(p)), dim("..."))
	}
	fmt.Fprintln(Output)
	fmt.Fprintf(Output, "    %s %d  %s %s  %s %s  %s %s\n\n",
		dim("workers"), config.Workers,
		dim("keys"), keyType,
		dim("mode"), config.Mode,
		dim("50% chance after"), FormatAttempts(eta50))
}

// PrintProgress shows the animated progress line
func PrintProgress(stats generator.Stats, frame int) {
	spinners := []string{"◐", "◓", "◑", "◒"}
	spinner := spinners[frame%len(spinners)]

	fmt.Fprintf(Output, "\r    %s %s │ %s │ %s │ %s │ %s",
		cyan(spinner),
		green(FormatHashRate(stats.HashRate)),
		yellow(FormatNumber(stats.Attempts)),
		FormatDuration(time.Duration(stats.ElapsedSecs*float64(time.Second))),
		purple("50% "+FormatETA(stats.ETA, stats.ETAUnit)),
		dim(stats.LastAccount))
}

// PrintMatch shows a match found while the search keeps running
func PrintMatch(result generator.Result) {
	ClearLine()
	fmt.Fprintf(Output, "    %s %s %s %s\n",
		green("✓"), bold(result.AccountID), dim("pattern"), cyan(result.Pattern))
}

// PrintSuccess shows the found account
func PrintSuccess(result generator.Result, elapsed time.Duration, attempts uint64, outputFile string) {
	box := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintf(Output, "\n    %s\n", box("╔══════════════════════════════════════════════════════════╗"))
	fmt.Fprintf(Output, "    %s\n", box("║               ✨ ACCOUNT FOUND! ✨                       ║"))
	fmt.Fprintf(Output, "    %s\n\n", box("╚══════════════════════════════════════════════════════════╝"))

	fmt.Fprintf(Output, "    %s\n\n", bold(cyan("✕ RIPPLE ACCOUNT")))
	fmt.Fprintf(Output, "       %s\n\n", green(result.AccountID))

	fmt.Fprintf(Output, "    %s\n", purple("🔑 SECRET"))
	fmt.Fprintf(Output, "       %s\n", yellow(result.SeedEncoding))
	fmt.Fprintf(Output, "       %s\n\n", dim(result.SeedHex))

	fmt.Fprintf(Output, "    %s  %s   %s   %s  %s   %s   %s  %s\n\n",
		cyan("⏱"), bold(FormatDuration(elapsed)),
		dim("│"),
		purple("📊"), bold(FormatNumber(attempts)),
		dim("│"),
		yellow("💾"), bold(outputFile))
	fmt.Fprintf(Output, "    %s\n", red("⚠  KEEP YOUR SECRET SAFE!"))
}

// PrintCancelled summarises an interrupted search
func PrintCancelled(attempts uint64, elapsed time.Duration, found int) {
	ClearLine()
	fmt.Fprintf(Output, "\n    %s │ %s attempts │ %s │ %d found\n",
		color.New(color.FgYellow, color.Bold).Sprint("⚠ Stopped"),
		FormatNumber(attempts), FormatDuration(elapsed), found)
}

// PrintError reports a fatal problem
func PrintError(err error) {
	fmt.Fprintf(Output, "\n    %s\n", red(fmt.Sprintf("✗ Error: %v", err)))
}

// PrintWarning reports a recoverable problem
func PrintWarning(msg string) {
	fmt.Fprintf(Output, "    %s\n", yellow("⚠ "+msg))
}

// ClearLine clears the current line
func ClearLine() {
	fmt.Fprint(Output, "\r"+strings.Repeat(" ", 110)+"\r")
}

// FormatHashRate formats hash rate nicely
func FormatHashRate(rate float64) string {
	switch {
	case math.IsInf(rate, 0) || math.IsNaN(rate):
		return "-/s"
	case rate >= 1000000:
		return fmt.Sprintf("%.1fM/s", rate/1000000)
	case rate >= 1000:
		return fmt.Sprintf("%.1fK/s", rate/1000)
	}
	return fmt.Sprintf("%.0f/s", rate)
}

// FormatETA formats a humanized estimate with its unit
func FormatETA(value float64, unit generator.TimeUnit) string {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return "∞"
	}
	return fmt.Sprintf("%.2f %s", value, unit)
}

// FormatAttempts formats an expected attempt count that may exceed uint64
func FormatAttempts(n float64) string {
	switch {
	case math.IsInf(n, 0) || math.IsNaN(n):
		return "∞"
	case n < 1e15:
		return FormatNumber(uint64(n))
	}
	return fmt.Sprintf("%.3g", n)
}

// FormatNumber adds commas to large numbers
func FormatNumber(n uint64) string {
	s := fmt.Sprintf("%d", n)
	if n < 1000 {
		return s
	}
	result := make([]byte, 0, len(s)+(len(s)-1)/3)
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return string(result)
}

// FormatDuration formats duration in a human-readable way
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", h, m)
}
