package raptorq

import (
	"fmt"

	"github.com/katalvlaran/raptorq/oti"
	"github.com/katalvlaran/raptorq/prng"
	"golang.org/x/sync/errgroup"
)

// maxKPrimeTableRows is the largest source symbol count a single source
// block may hold before the object must be split into additional blocks
// (spec.md §4.8 step 1, RFC 6330's K'max).
const maxKPrimeTableRows = 56403

// Encoder holds one object's per-source-block encoders plus the OTI that
// must travel out-of-band to a Decoder.
type Encoder struct {
	oti    oti.OTI
	blocks []*SourceBlockEncoder
	cache  *EncoderPlanCache
}

// NewEncoder partitions data into source blocks and sub-blocks per
// spec.md §4.8's Encoder.init, solving one SolverPlan per distinct K′
// (cached and reused across blocks of equal size) and applying it to every
// block's intermediate-symbol buffer.
func NewEncoder(data []byte, t uint16, n uint16, al uint8, opts ...Option) (*Encoder, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if al == 0 || t%uint16(al) != 0 {
		return nil, fmt.Errorf("raptorq: T=%d not divisible by Al=%d: %w", t, al, oti.ErrInvalidConfig)
	}
	if int(t/uint16(al)) < int(n) {
		return nil, fmt.Errorf("raptorq: T/Al < N: %w", oti.ErrInvalidConfig)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("raptorq: transfer_length is zero: %w", oti.ErrInvalidConfig)
	}

	o := oti.OTI{TransferLength: uint64(len(data)), T: t, N: n, Al: al}

	kt := (len(data) + int(t) - 1) / int(t)
	if kt == 0 {
		kt = 1
	}
	z := (kt + maxKPrimeTableRows - 1) / maxKPrimeTableRows
	if z < 1 {
		z = 1
	}
	if z > 255 {
		return nil, fmt.Errorf("raptorq: object needs %d source blocks, exceeds 255: %w", z, oti.ErrInvalidConfig)
	}
	o.Z = uint8(z)
	if err := o.Validate(); err != nil {
		return nil, err
	}

	jl, il, _, is := oti.Partition(kt, z)
	spans := oti.SubBlockPartition(int(t), int(n), int(al))

	padded := make([]byte, kt*int(t))
	copy(padded, data)

	blocks := make([]*SourceBlockEncoder, z)
	sizes := make([]int, z)
	for idx := 0; idx < z; idx++ {
		if idx < jl {
			sizes[idx] = il
		} else {
			sizes[idx] = is
		}
	}

	// Block boundaries are deterministic (first jl blocks of size il,
	// remaining blocks of size is); build each block, optionally fanning
	// out across cfg.concurrency goroutines (spec.md §5: callers may
	// parallelise at source-block granularity).
	offset := 0
	starts := make([]int, z)
	for idx := 0; idx < z; idx++ {
		starts[idx] = offset
		offset += sizes[idx]
	}

	var g errgroup.Group
	g.SetLimit(cfg.concurrency)
	for idx := 0; idx < z; idx++ {
		idx := idx
		g.Go(func() error {
			k := sizes[idx]
			start := starts[idx] * int(t)
			end := start + k*int(t)
			blk, err := newSourceBlockEncoder(uint8(idx), padded[start:end], k, int(t), spans, cfg.planCache)
			if err != nil {
				return err
			}
			blocks[idx] = blk
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Encoder{oti: o, blocks: blocks, cache: cfg.planCache}, nil
}

// Encode returns the PayloadId-prefixed wire packet for (sbn, esi):
// PayloadId (4 bytes) followed by the T-byte encoding symbol.
func (e *Encoder) Encode(sbn uint8, esi uint32) ([]byte, error) {
	if int(sbn) >= len(e.blocks) {
		return nil, ErrUnknownSourceBlock
	}
	symBytes, err := e.blocks[sbn].Encode(esi)
	if err != nil {
		return nil, err
	}
	pid := oti.PayloadId{SBN: sbn, ESI: esi}
	header, _ := pid.MarshalBinary()
	return append(header, symBytes...), nil
}

// SourceBlockK returns the source symbol count K of block sbn.
func (e *Encoder) SourceBlockK(sbn uint8) (int, error) {
	if int(sbn) >= len(e.blocks) {
		return 0, ErrUnknownSourceBlock
	}
	return e.blocks[sbn].K(), nil
}

// OTI returns the object transmission information a Decoder needs.
func (e *Encoder) OTI() oti.OTI { return e.oti }

// SourceTuple returns the LT/PI combination tuple for (sbn, esi), exposing
// the ESI→ISI→Tuple mapping named in the data model but not otherwise
// surfaced by Encode.
func (e *Encoder) SourceTuple(sbn uint8, esi uint32) (prng.Tuple, error) {
	if int(sbn) >= len(e.blocks) {
		return prng.Tuple{}, ErrUnknownSourceBlock
	}
	return e.blocks[sbn].SourceTuple(esi), nil
}

