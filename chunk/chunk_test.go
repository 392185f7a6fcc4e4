package chunk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestTrySplitExactFit and friends are grounded on split.rs's
// test_try_split_array_ref: split-with-remainder, insufficient-elements
// (returns ok=false with the original slice untouched), exact-fit, and
// empty-slice cases.

func TestTrySplitWithRemainder(t *testing.T) {
	s := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	head, tail, ok := TrySplit(s, 4)
	require.True(t, ok)
	require.Equal(t, []byte{0, 1, 2, 3}, head)
	require.Equal(t, 9, len(tail))

	head, tail, ok = TrySplit(tail, 4)
	require.True(t, ok)
	require.Equal(t, []byte{4, 5, 6, 7}, head)
	require.Equal(t, 5, len(tail))

	head, tail, ok = TrySplit(tail, 8)
	require.False(t, ok)
	require.Nil(t, head)
	require.Equal(t, []byte{8, 9, 10, 11, 12}, tail)
}

func TestTrySplitExactFit(t *testing.T) {
	s := []byte{1, 2, 3, 4}
	head, tail, ok := TrySplit(s, 4)
	require.True(t, ok)
	require.Equal(t, s, head)
	require.Empty(t, tail)
}

func TestTrySplitEmpty(t *testing.T) {
	head, tail, ok := TrySplit([]byte{}, 4)
	require.False(t, ok)
	require.Nil(t, head)
	require.Empty(t, tail)
}

func TestTrySplitMutatesThroughHead(t *testing.T) {
	s := make([]byte, 8)
	head, _, ok := TrySplit(s, 4)
	require.True(t, ok)
	head[0] = 0xff
	require.Equal(t, byte(0xff), s[0])
}

func TestSplitFlattenRoundTrip(t *testing.T) {
	s := make([]byte, 37)
	for i := range s {
		s[i] = byte(i)
	}

	chunks := Split(s, 8)
	require.Len(t, chunks, 5)
	for _, c := range chunks[:4] {
		require.Len(t, c, 8)
	}
	require.Len(t, chunks[4], 5)

	require.Equal(t, s, Flatten(chunks))
}

func TestSplitExactMultiple(t *testing.T) {
	s := make([]byte, 24)
	chunks := Split(s, 8)
	require.Len(t, chunks, 3)
	for _, c := range chunks {
		require.Len(t, c, 8)
	}
}

func TestIterFiniteLengthAndRemainder(t *testing.T) {
	s := make([]byte, 10)
	for i := range s {
		s[i] = byte(i)
	}

	it := NewIter(s, 3)
	var windows [][]byte
	for {
		w, ok := it.Next()
		if !ok {
			break
		}
		windows = append(windows, w)
	}

	require.Len(t, windows, 3)
	require.Equal(t, []byte{9}, it.Remainder())
}

func TestIterRestartable(t *testing.T) {
	a := []byte{1, 2, 3, 4}
	b := []byte{5, 6, 7, 8, 9, 10}

	it := NewIter(a, 2)
	first, _ := it.Next()
	require.Equal(t, []byte{1, 2}, first)

	it.Reset(b)
	windowCount := 0
	for {
		_, ok := it.Next()
		if !ok {
			break
		}
		windowCount++
	}
	require.Equal(t, 3, windowCount)
	require.Empty(t, it.Remainder())
}

func TestPadLastPadsShortTrailingChunk(t *testing.T) {
	s := []byte{1, 2, 3, 4, 5}
	chunks := PadLast(s, 4, 0x1f)
	require.Len(t, chunks, 2)
	require.Equal(t, []byte{1, 2, 3, 4}, chunks[0])
	require.Equal(t, []byte{5, 0x1f, 0x1f, 0x1f}, chunks[1])
}

func TestPadLastExactFitAddsNoPadding(t *testing.T) {
	s := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	chunks := PadLast(s, 4, 0x1f)
	require.Len(t, chunks, 2)
	require.Equal(t, []byte{1, 2, 3, 4}, chunks[0])
	require.Equal(t, []byte{5, 6, 7, 8}, chunks[1])
}
