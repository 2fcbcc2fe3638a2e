package raptorq

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/raptorq/constraint"
	"github.com/katalvlaran/raptorq/oti"
	"github.com/katalvlaran/raptorq/prng"
	"github.com/katalvlaran/raptorq/solver"
	"github.com/katalvlaran/raptorq/symbol"
	"github.com/katalvlaran/raptorq/systab"
)

// subBuffer is one sub-block column's intermediate-symbol storage: an
// L×span.Size buffer, solved against a plan shared by every sub-block of
// the enclosing source block (spec.md §4.8 step 3: "each sub-encoder owns
// its own D buffer but shares the plan").
type subBuffer struct {
	span oti.SubBlockSpan
	buf  *symbol.SymbolBuffer
}

// SourceBlockEncoder holds one source block's solved intermediate symbols
// (sliced across N sub-blocks when N>1) and the original source symbols,
// for systematic echo-back on ESI<K.
type SourceBlockEncoder struct {
	params  systab.Params
	k       int
	t       int
	sbn     uint8
	sources [][]byte
	subs    []subBuffer
}

// newSourceBlockEncoder builds and solves one source block: data must hold
// exactly k*t bytes, one T-byte source symbol per row.
func newSourceBlockEncoder(sbn uint8, data []byte, k, t int, spans []oti.SubBlockSpan, cache *EncoderPlanCache) (*SourceBlockEncoder, error) {
	p, err := systab.Lookup(k)
	if err != nil {
		return nil, err
	}
	plan, err := cache.Get(p)
	if err != nil {
		return nil, err
	}

	sources := make([][]byte, k)
	for j := 0; j < k; j++ {
		sources[j] = data[j*t : (j+1)*t]
	}

	subs := make([]subBuffer, len(spans))
	for si, span := range spans {
		buf, err := symbol.NewSymbolBuffer(p.L, span.Size)
		if err != nil {
			return nil, fmt.Errorf("raptorq: sbn %d sub-block %d: %w", sbn, si, ErrAllocationFailure)
		}
		for j := 0; j < k; j++ {
			row := sources[j][span.Offset : span.Offset+span.Size]
			if err := buf.CopyFrom(p.S+j, row); err != nil {
				return nil, err
			}
		}
		if err := plan.Apply(buf); err != nil {
			return nil, err
		}
		subs[si] = subBuffer{span: span, buf: buf}
	}

	return &SourceBlockEncoder{params: p, k: k, t: t, sbn: sbn, sources: sources, subs: subs}, nil
}

// Encode returns the T-byte symbol for esi: a direct copy of the source
// row for esi<K (the systematic property), or the LT combination of the
// intermediate symbols at ISI = K′+(esi-K) otherwise.
func (e *SourceBlockEncoder) Encode(esi uint32) ([]byte, error) {
	if int(esi) < e.k {
		row := make([]byte, e.t)
		copy(row, e.sources[esi])
		return row, nil
	}

	isi := e.params.Kp + (int(esi) - e.k)
	out := make([]byte, 0, e.t)
	for _, sub := range e.subs {
		out = append(out, ltEncode(e.params, sub.buf, isi)...)
	}
	return out, nil
}

// K returns this block's source symbol count.
func (e *SourceBlockEncoder) K() int { return e.k }

// SourceTuple returns the LT/PI combination tuple esi's encoding symbol is
// built from, surfacing the ESI→ISI→Tuple mapping for callers that need it
// directly (e.g. a transport layer reasoning about which intermediate
// symbols a given packet touches) without re-deriving ISI themselves.
func (e *SourceBlockEncoder) SourceTuple(esi uint32) prng.Tuple {
	isi := int(esi)
	if isi >= e.k {
		isi = e.params.Kp + (isi - e.k)
	}
	return prng.Generate(e.params, uint32(isi))
}

// SourceBlockDecoder accumulates received symbols for one SBN, triggering
// a solve only once at least K′ distinct ESIs have arrived.
type SourceBlockDecoder struct {
	k        int
	t        int
	sbn      uint8
	spans    []oti.SubBlockSpan
	received map[uint32][]byte
}

func newSourceBlockDecoder(sbn uint8, k, t int, spans []oti.SubBlockSpan) *SourceBlockDecoder {
	return &SourceBlockDecoder{k: k, t: t, sbn: sbn, spans: spans, received: make(map[uint32][]byte)}
}

// AddPacket records esi's symbol bytes, ignoring duplicates (spec.md §7:
// "add_packet never fails on duplicate ESIs; it simply ignores them").
func (d *SourceBlockDecoder) AddPacket(esi uint32, data []byte) error {
	if len(data) != d.t {
		return fmt.Errorf("raptorq: sbn %d esi %d: expected %d symbol bytes, got %d: %w", d.sbn, esi, d.t, len(data), ErrMalformedPacket)
	}
	if _, ok := d.received[esi]; ok {
		return nil
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	d.received[esi] = cp
	return nil
}

// ready reports whether K′ or more distinct ESIs have been received, per
// systab.Lookup(d.k)'s K′.
func (d *SourceBlockDecoder) ready(kp int) bool {
	return len(d.received) >= kp
}

// decode solves this block's constraint matrices from its received ESIs
// and reconstructs the K original source symbols.
func (d *SourceBlockDecoder) decode() ([][]byte, error) {
	p, err := systab.Lookup(d.k)
	if err != nil {
		return nil, err
	}
	if !d.ready(p.Kp) {
		return nil, ErrPending
	}

	esis := make([]int, 0, len(d.received))
	for esi := range d.received {
		esis = append(esis, int(esi))
	}
	sort.Ints(esis)

	realCount := p.Kp
	if len(esis) < realCount {
		realCount = len(esis)
	}

	isis := make([]int, 0, p.Kp)
	for _, esi := range esis[:realCount] {
		isis = append(isis, constraint.ISIForESI(esi, d.k, p))
	}
	for isi := d.k; isi < p.Kp && len(isis) < p.Kp; isi++ {
		isis = append(isis, isi)
	}

	cm, err := constraint.Build(p, isis)
	if err != nil {
		return nil, err
	}
	plan, err := solver.Solve(cm)
	if err != nil {
		return nil, err
	}

	symbols := make([][]byte, d.k)
	for i := range symbols {
		symbols[i] = make([]byte, 0, d.t)
	}

	for _, span := range d.spans {
		buf, err := symbol.NewSymbolBuffer(p.L, span.Size)
		if err != nil {
			return nil, fmt.Errorf("raptorq: sbn %d decode sub-block: %w", d.sbn, ErrAllocationFailure)
		}
		for j := 0; j < realCount; j++ {
			esi := esis[j]
			row := d.received[uint32(esi)][span.Offset : span.Offset+span.Size]
			if err := buf.CopyFrom(p.S+j, row); err != nil {
				return nil, err
			}
		}
		if err := plan.Apply(buf); err != nil {
			return nil, err
		}
		for i := 0; i < d.k; i++ {
			piece := ltEncode(p, buf, i)
			symbols[i] = append(symbols[i], piece...)
		}
	}

	return symbols, nil
}
