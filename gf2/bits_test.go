package gf2_test

import (
	"testing"

	"github.com/katalvlaran/raptorq/gf2"
	"github.com/stretchr/testify/require"
)

func TestGetSetClearBit(t *testing.T) {
	row := make([]uint64, gf2.WordsFor(130))
	require.False(t, gf2.GetBit(row, 70))

	gf2.SetBit(row, 70)
	require.True(t, gf2.GetBit(row, 70))
	require.False(t, gf2.GetBit(row, 69))

	gf2.FlipBit(row, 70)
	require.False(t, gf2.GetBit(row, 70))

	gf2.SetBit(row, 70)
	gf2.ClearBit(row, 70)
	require.False(t, gf2.GetBit(row, 70))
}

func TestXorSlice(t *testing.T) {
	dst := []uint64{0xFF00, 0x0F0F}
	src := []uint64{0x00FF, 0x0F0F}
	gf2.XorSlice(dst, src)
	require.Equal(t, []uint64{0xFFFF, 0}, dst)
}

func TestPopcountRangeMatchesNaive(t *testing.T) {
	cols := 200
	row := make([]uint64, gf2.WordsFor(cols))
	for _, c := range []int{0, 5, 63, 64, 65, 127, 128, 199} {
		gf2.SetBit(row, c)
	}
	for _, tc := range []struct{ start, end int }{
		{0, 200}, {0, 64}, {1, 63}, {64, 128}, {63, 65}, {100, 199},
	} {
		naive := 0
		for c := tc.start; c < tc.end; c++ {
			if gf2.GetBit(row, c) {
				naive++
			}
		}
		require.Equal(t, naive, gf2.PopcountRange(row, tc.start, tc.end), "range [%d,%d)", tc.start, tc.end)
	}
}

func TestXorSliceFromLeavesPrefixUntouched(t *testing.T) {
	dst := make([]uint64, 2)
	gf2.SetBit(dst, 10)
	src := make([]uint64, 2)
	gf2.SetBit(src, 10)
	gf2.SetBit(src, 80)

	gf2.XorSliceFrom(dst, src, 64)
	// column 10 untouched (still set from dst, src's bit 10 ignored)
	require.True(t, gf2.GetBit(dst, 10))
	require.True(t, gf2.GetBit(dst, 80))
}

func TestAndPopcountRange(t *testing.T) {
	a := make([]uint64, 2)
	b := make([]uint64, 2)
	for _, c := range []int{1, 2, 70} {
		gf2.SetBit(a, c)
	}
	for _, c := range []int{2, 70, 71} {
		gf2.SetBit(b, c)
	}
	require.Equal(t, 2, gf2.AndPopcountRange(a, b, 0, 128))
}
