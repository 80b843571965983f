package ripple

// Matcher tests account IDs against a fixed set of prefix patterns.
// Matching is byte-exact and case-sensitive, as Base58 is.
// The pattern set is read-only after construction and may be shared by any
// number of workers.
type Matcher struct {
	patterns []string
}

// NewMatcher creates a matcher for the given patterns. The caller is expected
// to have validated them.
func NewMatcher(patterns []string) *Matcher {
	return &Matcher{patterns: append([]string(nil), patterns...)}
}

// Patterns returns the pattern set.
func (m *Matcher) Patterns() []string {
	return m.patterns
}

// Pattern returns the pattern at index i.
func (m *Matcher) Pattern(i int) string {
	return m.patterns[i]
}

// Match appends the index of every pattern accountID starts with to dst and
// returns the extended slice. It does not allocate when dst has room, which
// keeps the common no-match path free of garbage.
func (m *Matcher) Match(accountID string, dst []int) []int {
	for i, p := range m.patterns {
		if hasPrefix(accountID, p) {
			dst = append(dst, i)
		}
	}
	return dst
}

// Matches returns every pattern accountID starts with. It is the convenience
// form of Match for callers outside the hot loop.
func (m *Matcher) Matches(accountID string) []string {
	var out []string
	for _, i := range m.Match(accountID, nil) {
		out = append(out, m.patterns[i])
	}
	return out
}

func hasPrefix(s, prefix string) bool {
	if len(prefix) == 0 || len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if s[i] != prefix[i] {
			return false
		}
	}
	return true
}
