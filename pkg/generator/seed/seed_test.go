package seed

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncrementCarry(t *testing.T) {
	s := Seed{15: 0xfe}
	s.Increment()
	assert.Equal(t, Seed{15: 0xff}, s)
	s.Increment()
	assert.Equal(t, Seed{14: 0x01}, s)
}

func TestIncrementTwiceEqualsAddTwo(t *testing.T) {
	starts := []Seed{
		{},
		{15: 0xff},
		{8: 0xff, 9: 0xff, 10: 0xff, 11: 0xff, 12: 0xff, 13: 0xff, 14: 0xff, 15: 0xfe},
		{0: 0x12, 7: 0xff, 15: 0xff},
	}
	for _, start := range starts {
		inc := start
		inc.Increment()
		inc.Increment()
		add := start
		add.Add(2)
		assert.Equal(t, add, inc, "start %s", start.Hex())
	}
}

func TestIncrementWrapsAtMaximum(t *testing.T) {
	var s Seed
	for i := range s {
		s[i] = 0xff
	}
	s.Increment()
	assert.Equal(t, Seed{}, s)

	for i := range s {
		s[i] = 0xff
	}
	s.Add(1)
	assert.Equal(t, Seed{}, s)
}

func TestHex(t *testing.T) {
	s := Seed{0: 0xde, 1: 0xad, 15: 0x0f}
	assert.Equal(t, "DEAD"+strings.Repeat("0", 26)+"0F", s.Hex())
}

func TestStreamAnchorAlwaysApplied(t *testing.T) {
	anchor := []byte{0xaa, 0xbb, 0xcc}
	start := Seed{0: 0x00, 1: 0x00, 2: 0x00, 15: 0xfd}
	for i := 3; i < 15; i++ {
		start[i] = 0xff
	}
	st := NewStreamAt(start, anchor)
	for i := 0; i < 10; i++ {
		s := st.Next()
		require.True(t, bytes.HasPrefix(s[:], anchor), "iteration %d: %s", i, s.Hex())
	}
}

func TestStreamIsSequential(t *testing.T) {
	st := NewStreamAt(Seed{15: 0x10}, nil)
	prev := st.Next()
	for i := 0; i < 100; i++ {
		next := st.Next()
		want := prev
		want.Increment()
		require.Equal(t, want, next)
		prev = next
	}
}

func TestStreamTruncatesLongAnchor(t *testing.T) {
	anchor := bytes.Repeat([]byte{0x42}, Size+4)
	st := NewStreamAt(Seed{}, anchor)
	assert.Len(t, st.Anchor(), Size)
	s := st.Next()
	assert.Equal(t, anchor[:Size], s[:])
	// a full-width anchor pins the stream to one seed
	assert.Equal(t, s, st.Next())
}

func TestNewStreamReadsEntropyOnce(t *testing.T) {
	src := bytes.NewReader(append(bytes.Repeat([]byte{0x01}, Size), 0x02))
	st, err := NewStream(src, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, src.Len())
	first := st.Next()
	assert.Equal(t, Seed{0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
		0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01}, first)
}

func TestNewStreamEntropyFailure(t *testing.T) {
	_, err := NewStream(bytes.NewReader([]byte{1, 2, 3}), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEntropyUnavailable))

	_, err = NewStream(iotest.ErrReader(io.ErrClosedPipe), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEntropyUnavailable))
}
