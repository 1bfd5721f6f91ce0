package predictive

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrequencySketch_MonotonicWithoutDecay(t *testing.T) {
	t.Parallel()

	s := newFrequencySketch(64, 4)
	h := uint64(12345)

	prev := s.estimate(h)
	require.Equal(t, uint32(0), prev)

	for i := 0; i < 10; i++ {
		s.add(h)
		cur := s.estimate(h)
		require.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
	require.Equal(t, uint32(10), prev)
}

func TestFrequencySketch_Saturates(t *testing.T) {
	t.Parallel()

	s := newFrequencySketch(16, 2)
	h := uint64(7)

	for i := 0; i < 1000; i++ {
		s.add(h)
	}
	// Not actually reaching MaxUint32 in a reasonable test, but repeated
	// increments must never wrap around to a smaller value.
	require.Equal(t, uint32(1000), s.estimate(h))

	// Force a synthetic saturation to exercise the ceiling directly.
	col := s.index(h, 0)
	s.rows[0][col] = ^uint32(0)
	s.add(h)
	require.Equal(t, ^uint32(0), s.rows[0][col])
}

func TestFrequencySketch_DecayHalvesExactly(t *testing.T) {
	t.Parallel()

	s := newFrequencySketch(64, 4)
	h := uint64(999)
	for i := 0; i < 9; i++ {
		s.add(h)
	}
	before := s.estimate(h)
	require.Equal(t, uint32(9), before)

	s.decayHalf()
	require.Equal(t, before>>1, s.estimate(h))
}

func TestFrequencySketch_IndexIsPure(t *testing.T) {
	t.Parallel()

	s := newFrequencySketch(64, 4)
	h := uint64(42)
	for row := 0; row < 4; row++ {
		require.Equal(t, s.index(h, row), s.index(h, row))
	}
}

func TestFrequencySketch_WidthRoundsToPowerOfTwo(t *testing.T) {
	t.Parallel()

	s := newFrequencySketch(100, 3)
	require.Equal(t, uint64(128), s.width)
	require.Len(t, s.rows, 3)
	for _, row := range s.rows {
		require.Len(t, row, 128)
	}
}
