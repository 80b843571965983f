package seed

import (
	"io"
)

// Stream hands out consecutive seeds for one worker. The variable part of the
// seed starts at a random point and is incremented linearly, so a worker never
// repeats a candidate during its run.
//
// A Stream is not safe for concurrent use; each worker owns its own.
type Stream struct {
	current Seed
	anchor  []byte
}

// NewStream creates a stream starting at a random seed read from entropy.
// Anchor bytes, if any, are forced into the high-order bytes of every seed.
// Anchors longer than Size are truncated.
func NewStream(entropy io.Reader, anchor []byte) (*Stream, error) {
	start, err := FromEntropy(entropy)
	if err != nil {
		return nil, err
	}
	return NewStreamAt(start, anchor), nil
}

// NewStreamAt creates a stream starting at the given seed.
func NewStreamAt(start Seed, anchor []byte) *Stream {
	if len(anchor) > Size {
		anchor = anchor[:Size]
	}
	s := &Stream{
		current: start,
		anchor:  append([]byte(nil), anchor...),
	}
	return s
}

// Anchor returns the anchor bytes applied to every seed.
func (s *Stream) Anchor() []byte {
	return s.anchor
}

// Next returns the current seed and advances the stream by one.
func (s *Stream) Next() Seed {
	copy(s.current[:], s.anchor)
	out := s.current
	s.current.Increment()
	return out
}
