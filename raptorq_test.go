package raptorq_test

import (
	"testing"

	"github.com/katalvlaran/raptorq"
	"github.com/katalvlaran/raptorq/oti"
	"github.com/katalvlaran/raptorq/prng"
	"github.com/katalvlaran/raptorq/systab"
	"github.com/stretchr/testify/require"
)

// transmitAll encodes every source symbol of every block, plus the K′−K
// repair symbols that bring each block up to the decoder's K′ threshold,
// and feeds the resulting packets straight into dec, used by tests that
// don't need to simulate loss.
func transmitAll(t *testing.T, enc *raptorq.Encoder, dec *raptorq.Decoder, z int) {
	t.Helper()
	for sbn := 0; sbn < z; sbn++ {
		k, err := enc.SourceBlockK(uint8(sbn))
		require.NoError(t, err)
		p, err := systab.Lookup(k)
		require.NoError(t, err)
		for esi := 0; esi < p.Kp; esi++ {
			packet, err := enc.Encode(uint8(sbn), uint32(esi))
			require.NoError(t, err)
			require.NoError(t, dec.AddPacket(packet))
		}
	}
}

// TestEncodeDecodeSingleByteSourceBlock covers spec.md §8 scenario 1:
// K=1, T=4, a single 4-byte source block round trips through source and
// padding-repair symbols.
func TestEncodeDecodeSingleByteSourceBlock(t *testing.T) {
	data := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	enc, err := raptorq.NewEncoder(data, 4, 1, 1)
	require.NoError(t, err)

	dec, err := raptorq.NewDecoder(enc.OTI())
	require.NoError(t, err)

	transmitAll(t, enc, dec, int(enc.OTI().Z))

	got, err := dec.Decode()
	require.NoError(t, err)
	require.Equal(t, data, got)
}

// TestEncodeDecodeSubBlocks covers scenario 2: T=16, N=2, Al=4.
func TestEncodeDecodeSubBlocks(t *testing.T) {
	data := []byte("Sub-block test data with N equals two!")
	enc, err := raptorq.NewEncoder(data, 16, 2, 4)
	require.NoError(t, err)

	dec, err := raptorq.NewDecoder(enc.OTI())
	require.NoError(t, err)

	transmitAll(t, enc, dec, int(enc.OTI().Z))

	got, err := dec.Decode()
	require.NoError(t, err)
	require.Equal(t, data, got)
}

// TestEncodeDecodeWithRepairAfterDrop covers scenario 3: drop the first 2
// source symbols of a single block and add the K′−(K−2) repair symbols
// that bring it back up to K′.
func TestEncodeDecodeWithRepairAfterDrop(t *testing.T) {
	data := []byte("Repair symbol roundtrip test data!!")
	enc, err := raptorq.NewEncoder(data, 4, 1, 4)
	require.NoError(t, err)

	dec, err := raptorq.NewDecoder(enc.OTI())
	require.NoError(t, err)

	k, err := enc.SourceBlockK(0)
	require.NoError(t, err)

	for esi := 2; esi < k; esi++ {
		packet, err := enc.Encode(0, uint32(esi))
		require.NoError(t, err)
		require.NoError(t, dec.AddPacket(packet))
	}
	p, err := systab.Lookup(k)
	require.NoError(t, err)
	repairESI := uint32(k)
	for needed := p.Kp - (k - 2); needed > 0; needed-- {
		packet, err := enc.Encode(0, repairESI)
		require.NoError(t, err)
		require.NoError(t, dec.AddPacket(packet))
		repairESI++
	}

	got, err := dec.Decode()
	require.NoError(t, err)
	require.Equal(t, data, got)
}

// TestEncodeDecodeWithTenPercentLoss covers scenario 4: lose roughly 10%
// of source symbols, compensate with an equal number of repair symbols.
func TestEncodeDecodeWithTenPercentLoss(t *testing.T) {
	data := make([]byte, 1024)
	for i := range data {
		data[i] = byte((i*31 + 17) % 256)
	}
	enc, err := raptorq.NewEncoder(data, 64, 1, 4)
	require.NoError(t, err)

	dec, err := raptorq.NewDecoder(enc.OTI())
	require.NoError(t, err)

	for sbn := 0; sbn < int(enc.OTI().Z); sbn++ {
		k, err := enc.SourceBlockK(uint8(sbn))
		require.NoError(t, err)
		drop := k / 10
		repairESI := uint32(k)
		for esi := 0; esi < k; esi++ {
			if esi < drop {
				packet, err := enc.Encode(uint8(sbn), repairESI)
				require.NoError(t, err)
				require.NoError(t, dec.AddPacket(packet))
				repairESI++
				continue
			}
			packet, err := enc.Encode(uint8(sbn), uint32(esi))
			require.NoError(t, err)
			require.NoError(t, dec.AddPacket(packet))
		}
	}

	got, err := dec.Decode()
	require.NoError(t, err)
	require.Equal(t, data, got)
}

// TestPlanCacheReuseYieldsIdenticalOutput covers scenario 5: two objects
// of equal K′ encoded through one shared plan cache must each decode back
// to their own original bytes.
func TestPlanCacheReuseYieldsIdenticalOutput(t *testing.T) {
	data1 := []byte("eight-byte symbols, forty bytes total!!")
	data2 := []byte("ANOTHER forty-byte payload, same sizes!")
	require.Equal(t, len(data1), len(data2))

	cache := raptorq.NewEncoderPlanCache()
	enc1, err := raptorq.NewEncoder(data1, 8, 1, 4, raptorq.WithPlanCache(cache))
	require.NoError(t, err)
	enc2, err := raptorq.NewEncoder(data2, 8, 1, 4, raptorq.WithPlanCache(cache))
	require.NoError(t, err)
	require.Equal(t, enc1.OTI().Z, enc2.OTI().Z)

	k1, err := enc1.SourceBlockK(0)
	require.NoError(t, err)
	k2, err := enc2.SourceBlockK(0)
	require.NoError(t, err)
	require.Equal(t, k1, k2)

	dec1, err := raptorq.NewDecoder(enc1.OTI())
	require.NoError(t, err)
	dec2, err := raptorq.NewDecoder(enc2.OTI())
	require.NoError(t, err)
	transmitAll(t, enc1, dec1, int(enc1.OTI().Z))
	transmitAll(t, enc2, dec2, int(enc2.OTI().Z))

	got1, err := dec1.Decode()
	require.NoError(t, err)
	got2, err := dec2.Decode()
	require.NoError(t, err)
	require.Equal(t, data1, got1)
	require.Equal(t, data2, got2)
}

// TestDecodeReturnsPendingBeforeEnoughSymbols covers InsufficientSymbols:
// decode() returns ErrPending, not an error, before K′ symbols arrive.
func TestDecodeReturnsPendingBeforeEnoughSymbols(t *testing.T) {
	data := []byte("twelve bytes")
	enc, err := raptorq.NewEncoder(data, 4, 1, 4)
	require.NoError(t, err)
	dec, err := raptorq.NewDecoder(enc.OTI())
	require.NoError(t, err)

	_, err = dec.Decode()
	require.ErrorIs(t, err, raptorq.ErrPending)

	packet, err := enc.Encode(0, 0)
	require.NoError(t, err)
	require.NoError(t, dec.AddPacket(packet))

	_, err = dec.Decode()
	require.ErrorIs(t, err, raptorq.ErrPending)
}

// TestAddPacketIgnoresDuplicateESI covers idempotence: adding the same
// packet twice must not change observable state.
func TestAddPacketIgnoresDuplicateESI(t *testing.T) {
	data := []byte("dup test")
	enc, err := raptorq.NewEncoder(data, 4, 1, 4)
	require.NoError(t, err)
	dec, err := raptorq.NewDecoder(enc.OTI())
	require.NoError(t, err)

	packet, err := enc.Encode(0, 0)
	require.NoError(t, err)
	require.NoError(t, dec.AddPacket(packet))
	require.NoError(t, dec.AddPacket(packet))

	transmitAll(t, enc, dec, int(enc.OTI().Z))
	got, err := dec.Decode()
	require.NoError(t, err)
	require.Equal(t, data, got)
}

// TestSourceTupleMatchesEncodingSymbolID covers the ESI→ISI→Tuple helpers:
// the encoder's tuple for esi must be the same one the decoder's ISI lookup
// would feed into the identical PRNG call.
func TestSourceTupleMatchesEncodingSymbolID(t *testing.T) {
	data := []byte("tuple lookup roundtrip data, sixteen")
	enc, err := raptorq.NewEncoder(data, 4, 1, 4)
	require.NoError(t, err)
	dec, err := raptorq.NewDecoder(enc.OTI())
	require.NoError(t, err)

	k, err := enc.SourceBlockK(0)
	require.NoError(t, err)

	p, err := systab.Lookup(k)
	require.NoError(t, err)

	isi, err := dec.EncodingSymbolID(0, uint32(k))
	require.NoError(t, err)
	require.Equal(t, p.Kp, isi)

	tup, err := enc.SourceTuple(0, uint32(k))
	require.NoError(t, err)
	require.NotZero(t, tup.D)
	require.Equal(t, prng.Generate(p, uint32(isi)), tup)
}

func TestNewEncoderRejectsZeroLengthData(t *testing.T) {
	_, err := raptorq.NewEncoder(nil, 4, 1, 4)
	require.ErrorIs(t, err, oti.ErrInvalidConfig)
}

func TestNewEncoderRejectsUnalignedSymbolSize(t *testing.T) {
	_, err := raptorq.NewEncoder([]byte("abcd"), 5, 1, 4)
	require.ErrorIs(t, err, oti.ErrInvalidConfig)
}
