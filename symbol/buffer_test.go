package symbol_test

import (
	"testing"

	"github.com/katalvlaran/raptorq/symbol"
	"github.com/stretchr/testify/require"
)

func TestSymbolBufferGetSetRoundTrip(t *testing.T) {
	buf, err := symbol.NewSymbolBuffer(4, 3)
	require.NoError(t, err)
	require.NoError(t, buf.CopyFrom(1, []byte{1, 2, 3}))
	require.Equal(t, []byte{1, 2, 3}, buf.GetConst(1))
	require.Equal(t, []byte{0, 0, 0}, buf.GetConst(0))
}

func TestSymbolBufferAddAssignIsXor(t *testing.T) {
	buf, err := symbol.NewSymbolBuffer(2, 2)
	require.NoError(t, err)
	require.NoError(t, buf.CopyFrom(0, []byte{0x0F, 0xF0}))
	require.NoError(t, buf.CopyFrom(1, []byte{0xFF, 0xFF}))
	buf.AddAssign(0, 1)
	require.Equal(t, []byte{0xF0, 0x0F}, buf.GetConst(0))
}

func TestSymbolBufferAddAssignSelfInverse(t *testing.T) {
	buf, err := symbol.NewSymbolBuffer(2, 4)
	require.NoError(t, err)
	require.NoError(t, buf.CopyFrom(0, []byte{1, 2, 3, 4}))
	require.NoError(t, buf.CopyFrom(1, []byte{9, 8, 7, 6}))
	original := append([]byte(nil), buf.GetConst(0)...)
	buf.AddAssign(0, 1)
	buf.AddAssign(0, 1) // XOR is its own inverse
	require.Equal(t, original, buf.GetConst(0))
}

func TestSymbolBufferFMA(t *testing.T) {
	buf, err := symbol.NewSymbolBuffer(2, 2)
	require.NoError(t, err)
	require.NoError(t, buf.CopyFrom(0, []byte{0, 0}))
	require.NoError(t, buf.CopyFrom(1, []byte{3, 5}))
	buf.FMA(0, 1, 0)
	require.Equal(t, []byte{0, 0}, buf.GetConst(0), "scalar 0 must be a no-op")

	buf.FMA(0, 1, 1)
	require.Equal(t, []byte{3, 5}, buf.GetConst(0), "scalar 1 must equal plain XOR")
}

func TestSymbolBufferMulAssign(t *testing.T) {
	buf, err := symbol.NewSymbolBuffer(1, 3)
	require.NoError(t, err)
	require.NoError(t, buf.CopyFrom(0, []byte{7, 8, 9}))
	buf.MulAssign(0, 0)
	require.Equal(t, []byte{0, 0, 0}, buf.GetConst(0))
}

func TestSymbolBufferSwap(t *testing.T) {
	buf, err := symbol.NewSymbolBuffer(3, 2)
	require.NoError(t, err)
	require.NoError(t, buf.CopyFrom(0, []byte{1, 1}))
	require.NoError(t, buf.CopyFrom(2, []byte{9, 9}))
	buf.Swap(0, 2)
	require.Equal(t, []byte{9, 9}, buf.GetConst(0))
	require.Equal(t, []byte{1, 1}, buf.GetConst(2))
}

func TestSymbolBufferCopyFromLengthMismatch(t *testing.T) {
	buf, err := symbol.NewSymbolBuffer(1, 4)
	require.NoError(t, err)
	require.ErrorIs(t, buf.CopyFrom(0, []byte{1, 2}), symbol.ErrLengthMismatch)
}

func TestSymbolBufferInvalidDimensions(t *testing.T) {
	_, err := symbol.NewSymbolBuffer(0, 4)
	require.ErrorIs(t, err, symbol.ErrInvalidDimensions)
}
