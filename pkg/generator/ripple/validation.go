package ripple

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/Amr-9/RippleHunter/pkg/generator"
)

// AccountMarker is the first character of every Ripple account ID.
const AccountMarker = 'r'

// ExcludedChars are the glyphs Base58 leaves out because they are easily
// confused with others.
const ExcludedChars = "0OIl"

// CommonSecondChars are the symbols that can follow the marker in a full
// length account ID. The 25-byte payload is below 2^192, so a 34-character
// account ID starts with one of these; any other second symbol only occurs in
// the shorter IDs, roughly one account in 23.
const CommonSecondChars = "pshnaf39wBUDNEGHJKLM4PQ"

// SlowPattern reports whether a valid pattern's second symbol only occurs in
// short account IDs, making it far harder to hit than its length suggests.
func SlowPattern(pattern string) bool {
	if len(pattern) < 2 {
		return false
	}
	return !strings.ContainsRune(CommonSecondChars, rune(pattern[1]))
}

// ValidatePattern checks that a pattern can ever match an account ID.
// The returned error wraps generator.ErrInvalidPattern.
func ValidatePattern(pattern string) error {
	if pattern == "" {
		return errors.Wrap(generator.ErrInvalidPattern, "empty pattern")
	}
	if pattern[0] != AccountMarker {
		return errors.Wrapf(generator.ErrInvalidPattern,
			"%q: pattern must begin with an '%c'", pattern, AccountMarker)
	}
	if i := strings.IndexAny(pattern, ExcludedChars); i >= 0 {
		return errors.Wrapf(generator.ErrInvalidPattern,
			"%q: must not contain any of '0', 'l', 'I', 'O' (found %q)", pattern, pattern[i])
	}
	if bad := InvalidChars(pattern); len(bad) > 0 {
		return errors.Wrapf(generator.ErrInvalidPattern,
			"%q: invalid character(s) %q, available letters: %s", pattern, string(bad), Alphabet)
	}
	return nil
}

// IsValidPattern reports whether ValidatePattern accepts the pattern.
func IsValidPattern(pattern string) bool {
	return ValidatePattern(pattern) == nil
}

// InvalidChars returns the characters of s outside the Ripple alphabet.
func InvalidChars(s string) []rune {
	var invalid []rune
	for _, c := range s {
		if !strings.ContainsRune(Alphabet, c) {
			invalid = append(invalid, c)
		}
	}
	return invalid
}

// LoadPatterns reads whitespace-separated patterns from r. Lines starting
// with '#' are comments. Invalid patterns are dropped and returned in
// rejected; duplicates are dropped silently. If nothing valid remains the
// error wraps generator.ErrNoPatterns.
func LoadPatterns(r io.Reader) (valid []string, rejected []error, err error) {
	seen := make(map[string]bool)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, p := range strings.Fields(line) {
			if verr := ValidatePattern(p); verr != nil {
				rejected = append(rejected, verr)
				continue
			}
			if seen[p] {
				continue
			}
			seen[p] = true
			valid = append(valid, p)
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, rejected, errors.Wrap(err, "read patterns")
	}
	if len(valid) == 0 {
		return nil, rejected, generator.ErrNoPatterns
	}
	return valid, rejected, nil
}

// SearchLength is the number of characters of a pattern the search actually
// has to hit. The leading marker is shared by every account ID.
func SearchLength(pattern string) int {
	if strings.HasPrefix(pattern, string(AccountMarker)) {
		return len(pattern) - 1
	}
	return len(pattern)
}

// ShortestSearchLength returns the smallest SearchLength among patterns.
func ShortestSearchLength(patterns []string) int {
	shortest := -1
	for _, p := range patterns {
		if n := SearchLength(p); shortest < 0 || n < shortest {
			shortest = n
		}
	}
	if shortest < 0 {
		return 0
	}
	return shortest
}
