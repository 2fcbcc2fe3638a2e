package oti

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates an OTI (or the parameters that would build one)
// violates spec.md §7's InvalidConfig conditions.
var ErrInvalidConfig = errors.New("oti: invalid configuration")

// Len is the wire size of an OTI: 12 bytes.
const Len = 12

// OTI is the object transmission information that must travel out-of-band
// from encoder to decoder (spec.md §6): the object's transfer length, the
// symbol size T, the number of source blocks Z, the number of sub-blocks N,
// and the byte alignment Al.
type OTI struct {
	TransferLength uint64 // 40-bit on the wire
	T              uint16
	Z              uint8
	N              uint16
	Al             uint8
}

// Validate checks the invariants spec.md §3/§7 require of a well-formed OTI.
func (o OTI) Validate() error {
	if o.TransferLength == 0 {
		return fmt.Errorf("oti: transfer_length is zero: %w", ErrInvalidConfig)
	}
	if o.TransferLength >= 1<<40 {
		return fmt.Errorf("oti: transfer_length exceeds 40 bits: %w", ErrInvalidConfig)
	}
	if o.Z < 1 {
		return fmt.Errorf("oti: Z must be >= 1: %w", ErrInvalidConfig)
	}
	if o.N < 1 {
		return fmt.Errorf("oti: N must be >= 1: %w", ErrInvalidConfig)
	}
	if o.Al == 0 || o.T%uint16(o.Al) != 0 {
		return fmt.Errorf("oti: T=%d not divisible by Al=%d: %w", o.T, o.Al, ErrInvalidConfig)
	}
	if int(o.T/uint16(o.Al)) < int(o.N) {
		return fmt.Errorf("oti: T/Al < N: %w", ErrInvalidConfig)
	}
	return nil
}

// MarshalBinary writes the 12-byte OTI wire form (spec.md §6): 5-byte
// big-endian transfer length, 1 reserved byte written as zero, 2-byte T,
// 1-byte Z, 2-byte N, 1-byte Al.
func (o OTI) MarshalBinary() ([]byte, error) {
	buf := make([]byte, Len)
	tl := o.TransferLength
	buf[0] = byte(tl >> 32)
	buf[1] = byte(tl >> 24)
	buf[2] = byte(tl >> 16)
	buf[3] = byte(tl >> 8)
	buf[4] = byte(tl)
	buf[5] = 0 // reserved
	buf[6] = byte(o.T >> 8)
	buf[7] = byte(o.T)
	buf[8] = o.Z
	buf[9] = byte(o.N >> 8)
	buf[10] = byte(o.N)
	buf[11] = o.Al
	return buf, nil
}

// UnmarshalBinary parses a 12-byte OTI from buf. The reserved byte at offset
// 5 is ignored on read, per spec.md §6.
func (o *OTI) UnmarshalBinary(buf []byte) error {
	if len(buf) < Len {
		return fmt.Errorf("oti: OTI needs %d bytes, got %d: %w", Len, len(buf), ErrShortBuffer)
	}
	o.TransferLength = uint64(buf[0])<<32 | uint64(buf[1])<<24 | uint64(buf[2])<<16 | uint64(buf[3])<<8 | uint64(buf[4])
	o.T = uint16(buf[6])<<8 | uint16(buf[7])
	o.Z = buf[8]
	o.N = uint16(buf[9])<<8 | uint16(buf[10])
	o.Al = buf[11]
	return nil
}

// String renders a human-readable summary, for logs and debugging (never
// parsed back — see SPEC_FULL.md's supplementary debug helpers).
func (o OTI) String() string {
	return fmt.Sprintf("OTI{len=%d T=%d Z=%d N=%d Al=%d}", o.TransferLength, o.T, o.Z, o.N, o.Al)
}
