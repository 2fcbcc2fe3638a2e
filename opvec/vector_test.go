package opvec_test

import (
	"testing"

	"github.com/katalvlaran/raptorq/opvec"
	"github.com/katalvlaran/raptorq/symbol"
	"github.com/stretchr/testify/require"
)

func TestOperationVectorRecordAndLen(t *testing.T) {
	v := opvec.New(0)
	v.RecordAddAssign(1, 0)
	v.RecordFMA(2, 1, 3)
	v.RecordMulAssign(0, 7)
	v.RecordReorder(0, 2)
	require.Equal(t, 4, v.Len())
	require.Equal(t, opvec.AddAssign, v.Ops()[0].Kind)
	require.Equal(t, "fma", v.Ops()[1].Kind.String())
}

func TestOperationVectorReplayAgainstSymbolBuffer(t *testing.T) {
	buf, err := symbol.NewSymbolBuffer(3, 2)
	require.NoError(t, err)
	require.NoError(t, buf.CopyFrom(0, []byte{1, 1}))
	require.NoError(t, buf.CopyFrom(1, []byte{2, 2}))
	require.NoError(t, buf.CopyFrom(2, []byte{0, 0}))

	v := opvec.New(0)
	v.RecordAddAssign(2, 0) // row2 ^= row0 -> {1,1}
	v.RecordFMA(2, 1, 1)    // row2 ^= row1*1 -> {3,3}
	v.Replay(buf)

	require.Equal(t, []byte{3, 3}, buf.GetConst(2))
}

func TestOperationVectorReplayReorderSwaps(t *testing.T) {
	buf, err := symbol.NewSymbolBuffer(2, 1)
	require.NoError(t, err)
	require.NoError(t, buf.CopyFrom(0, []byte{5}))
	require.NoError(t, buf.CopyFrom(1, []byte{9}))

	v := opvec.New(0)
	v.RecordReorder(0, 1)
	v.Replay(buf)

	require.Equal(t, []byte{9}, buf.GetConst(0))
	require.Equal(t, []byte{5}, buf.GetConst(1))
}
