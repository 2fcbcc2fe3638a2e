package oti_test

import (
	"testing"

	"github.com/katalvlaran/raptorq/oti"
	"github.com/stretchr/testify/require"
)

func TestPayloadIdRoundTrip(t *testing.T) {
	p := oti.PayloadId{SBN: 7, ESI: 0xABCDEF}
	buf, err := p.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, buf, oti.PayloadIdLen)

	var got oti.PayloadId
	require.NoError(t, got.UnmarshalBinary(buf))
	require.Equal(t, p, got)
}

func TestPayloadIdShortBuffer(t *testing.T) {
	var p oti.PayloadId
	require.ErrorIs(t, p.UnmarshalBinary([]byte{1, 2}), oti.ErrShortBuffer)
}

func TestOTIRoundTrip(t *testing.T) {
	o := oti.OTI{TransferLength: 123456789012, T: 1024, Z: 3, N: 2, Al: 4}
	require.NoError(t, o.Validate())

	buf, err := o.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, buf, oti.Len)
	require.Equal(t, byte(0), buf[5], "reserved byte must be written as zero")

	var got oti.OTI
	require.NoError(t, got.UnmarshalBinary(buf))
	require.Equal(t, o, got)
}

func TestOTIValidate(t *testing.T) {
	base := oti.OTI{TransferLength: 100, T: 16, Z: 1, N: 1, Al: 4}
	require.NoError(t, base.Validate())

	bad := base
	bad.TransferLength = 0
	require.ErrorIs(t, bad.Validate(), oti.ErrInvalidConfig)

	bad = base
	bad.Z = 0
	require.ErrorIs(t, bad.Validate(), oti.ErrInvalidConfig)

	bad = base
	bad.N = 0
	require.ErrorIs(t, bad.Validate(), oti.ErrInvalidConfig)

	bad = base
	bad.T = 15 // not divisible by Al=4
	require.ErrorIs(t, bad.Validate(), oti.ErrInvalidConfig)

	bad = base
	bad.N = 5 // T/Al=4 < N=5
	require.ErrorIs(t, bad.Validate(), oti.ErrInvalidConfig)
}

func TestPartitionInvariants(t *testing.T) {
	for _, tc := range []struct{ i, j int }{
		{10, 3}, {100, 7}, {1, 1}, {56403, 56403}, {1024, 5},
	} {
		jl, il, js, is := oti.Partition(tc.i, tc.j)
		require.Equal(t, tc.i, jl*il+js*is, "i=%d j=%d", tc.i, tc.j)
		require.True(t, il-is == 0 || il-is == 1, "IL-IS must be 0 or 1")
	}
}

func TestSubBlockPartition(t *testing.T) {
	spans := oti.SubBlockPartition(16, 2, 4)
	require.Len(t, spans, 2)
	total := 0
	for _, s := range spans {
		require.Equal(t, total, s.Offset)
		total += s.Size
	}
	require.Equal(t, 16, total)
}
