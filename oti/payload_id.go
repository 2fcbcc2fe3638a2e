package oti

import (
	"errors"
	"fmt"
)

// ErrShortBuffer indicates a (de)serialisation buffer was too small.
var ErrShortBuffer = errors.New("oti: buffer too short")

// PayloadIdLen is the wire size of a PayloadId: 1 byte SBN, 3 bytes ESI.
const PayloadIdLen = 4

// PayloadId identifies one encoding symbol within an object: which source
// block it belongs to (SBN) and its encoding symbol index within that block
// (ESI). ESI is a 24-bit quantity on the wire.
type PayloadId struct {
	SBN uint8
	ESI uint32 // only the low 24 bits are meaningful
}

// MarshalBinary writes the 4-byte wire form: SBN, then ESI big-endian/24-bit.
func (p PayloadId) MarshalBinary() ([]byte, error) {
	buf := make([]byte, PayloadIdLen)
	buf[0] = p.SBN
	buf[1] = byte(p.ESI >> 16)
	buf[2] = byte(p.ESI >> 8)
	buf[3] = byte(p.ESI)
	return buf, nil
}

// UnmarshalBinary parses a 4-byte PayloadId from buf.
func (p *PayloadId) UnmarshalBinary(buf []byte) error {
	if len(buf) < PayloadIdLen {
		return fmt.Errorf("oti: PayloadId needs %d bytes, got %d: %w", PayloadIdLen, len(buf), ErrShortBuffer)
	}
	p.SBN = buf[0]
	p.ESI = uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3])
	return nil
}
