// Package seed provides the 128-bit seed type and the per-worker key stream
// that walks the seed space without repeats.
package seed

import (
	"encoding/binary"
	"encoding/hex"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Size is the width of a seed in bytes.
const Size = 16

// ErrEntropyUnavailable is returned when the entropy source cannot supply a
// full seed. Seeds are never built from partial entropy.
var ErrEntropyUnavailable = errors.New("entropy unavailable")

// Seed is a 128-bit big-endian value.
type Seed [Size]byte

// Increment adds one to the seed, carrying from the least significant byte
// upwards. The maximum value wraps to zero.
func (s *Seed) Increment() {
	for i := Size - 1; i >= 0; i-- {
		s[i]++
		if s[i] != 0 {
			return
		}
	}
}

// Add adds n to the seed with the same carry and wrap rules as Increment.
func (s *Seed) Add(n uint64) {
	lo := binary.BigEndian.Uint64(s[8:])
	hi := binary.BigEndian.Uint64(s[:8])
	sum := lo + n
	if sum < lo {
		hi++
	}
	binary.BigEndian.PutUint64(s[:8], hi)
	binary.BigEndian.PutUint64(s[8:], sum)
}

// Hex returns the upper-case hex form of the seed.
func (s Seed) Hex() string {
	return strings.ToUpper(hex.EncodeToString(s[:]))
}

// FromEntropy reads a full seed from r.
func FromEntropy(r io.Reader) (Seed, error) {
	var s Seed
	if _, err := io.ReadFull(r, s[:]); err != nil {
		return Seed{}, errors.Wrap(ErrEntropyUnavailable, err.Error())
	}
	return s, nil
}
