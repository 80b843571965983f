package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Amr-9/RippleHunter/pkg/generator/ripple"
)

// Prompt reads interactive answers from a terminal.
type Prompt struct {
	reader *bufio.Reader
}

// NewPrompt creates a prompt reading from in.
func NewPrompt(in io.Reader) *Prompt {
	return &Prompt{reader: bufio.NewReader(in)}
}

// GetPatternsFromUser asks for prefix patterns one per line until an empty
// line. Invalid patterns are reported and skipped. The result is empty when
// input ends before any valid pattern was entered.
func (p *Prompt) GetPatternsFromUser() []string {
	fmt.Fprintf(Output, "    %s\n", purple("🎯 TARGET PATTERNS"))
	fmt.Fprintf(Output, "    %s\n", dim("One per line, starting with 'r'. Empty line to start."))
	fmt.Fprintf(Output, "    %s\n", dim("Letters: "+ripple.Alphabet))
	fmt.Fprintf(Output, "    %s\n", dim("Fastest second letters: "+ripple.CommonSecondChars))

	var patterns []string
	seen := make(map[string]bool)
	for {
		fmt.Fprintf(Output, "    %s ", green("→"))
		line, err := p.reader.ReadString('\n')
		line = strings.TrimSpace(line)

		if line != "" {
			if verr := ripple.ValidatePattern(line); verr != nil {
				fmt.Fprintf(Output, "    %s\n", red("⚠ "+verr.Error()))
				if bad := ripple.InvalidChars(line); len(bad) > 0 {
					fmt.Fprintf(Output, "    %s\n", dim("  (Not allowed: "+string(bad)+")"))
				}
			} else if !seen[line] {
				seen[line] = true
				patterns = append(patterns, line)
			}
		}

		if err != nil || (line == "" && len(patterns) > 0) {
			break
		}
	}
	fmt.Fprintln(Output)
	return patterns
}

// AskToContinue prompts user to continue or exit
func (p *Prompt) AskToContinue() bool {
	fmt.Fprintf(Output, "\n    %s Search again  │  %s Exit\n", green("[Enter]"), red("[Q]"))
	fmt.Fprintf(Output, "    %s ", cyan("→"))
	input, err := p.reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	if err != nil && input == "" {
		return false
	}
	return input != "q" && input != "quit" && input != "exit"
}
