package raptorq

import (
	"sync"

	"github.com/katalvlaran/raptorq/constraint"
	"github.com/katalvlaran/raptorq/oti"
	"github.com/katalvlaran/raptorq/systab"
)

// Decoder accumulates received packets for one object, lazily creating a
// SourceBlockDecoder per SBN on first packet (spec.md §4.8's
// Decoder.addPacket step 1). Block sizes are derived from the OTI alone,
// since Z and Kt are deterministic (spec.md §4.3's partition(Kt,Z)), so a
// Decoder never needs to see a packet to know how many source symbols a
// given SBN holds.
type Decoder struct {
	mu     sync.Mutex
	oti    oti.OTI
	sizes  []int
	spans  []oti.SubBlockSpan
	blocks map[uint8]*SourceBlockDecoder
}

// NewDecoder prepares a Decoder for an object described by o.
func NewDecoder(o oti.OTI) (*Decoder, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	kt := (int(o.TransferLength) + int(o.T) - 1) / int(o.T)
	jl, il, _, is := oti.Partition(kt, int(o.Z))

	sizes := make([]int, o.Z)
	for idx := range sizes {
		if idx < jl {
			sizes[idx] = il
		} else {
			sizes[idx] = is
		}
	}

	spans := oti.SubBlockPartition(int(o.T), int(o.N), int(o.Al))

	return &Decoder{oti: o, sizes: sizes, spans: spans, blocks: make(map[uint8]*SourceBlockDecoder)}, nil
}

// AddPacket parses a PayloadId-prefixed wire packet and stores its symbol,
// ignoring duplicate ESIs (spec.md §7).
func (d *Decoder) AddPacket(packet []byte) error {
	if len(packet) != oti.PayloadIdLen+int(d.oti.T) {
		return ErrMalformedPacket
	}

	var pid oti.PayloadId
	if err := pid.UnmarshalBinary(packet[:oti.PayloadIdLen]); err != nil {
		return err
	}
	if int(pid.SBN) >= len(d.sizes) {
		return ErrUnknownSourceBlock
	}

	d.mu.Lock()
	blk, ok := d.blocks[pid.SBN]
	if !ok {
		blk = newSourceBlockDecoder(pid.SBN, d.sizes[pid.SBN], int(d.oti.T), d.spans)
		d.blocks[pid.SBN] = blk
	}
	d.mu.Unlock()

	return blk.AddPacket(pid.ESI, packet[oti.PayloadIdLen:])
}

// EncodingSymbolID returns the ISI a given (sbn, esi) resolves to. Block
// sizes are derivable from the OTI alone, so this works even before any
// packet for sbn has arrived.
func (d *Decoder) EncodingSymbolID(sbn uint8, esi uint32) (int, error) {
	if int(sbn) >= len(d.sizes) {
		return 0, ErrUnknownSourceBlock
	}
	k := d.sizes[sbn]
	p, err := systab.Lookup(k)
	if err != nil {
		return 0, err
	}
	return constraint.ISIForESI(int(esi), k, p), nil
}

// Decode attempts to reconstruct the object. It returns ErrPending if any
// source block has not yet received K′ distinct symbols.
func (d *Decoder) Decode() ([]byte, error) {
	d.mu.Lock()
	blocks := make([]*SourceBlockDecoder, len(d.sizes))
	for sbn, blk := range d.blocks {
		blocks[sbn] = blk
	}
	d.mu.Unlock()

	out := make([]byte, 0, d.oti.TransferLength)
	for _, blk := range blocks {
		if blk == nil {
			return nil, ErrPending
		}
		symbols, err := blk.decode()
		if err != nil {
			return nil, err
		}
		for _, sym := range symbols {
			out = append(out, sym...)
		}
	}

	if uint64(len(out)) > d.oti.TransferLength {
		out = out[:d.oti.TransferLength]
	}
	return out, nil
}
