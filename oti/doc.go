// Package oti defines the RaptorQ wire-level base types: PayloadId (the
// per-packet SBN+ESI header), ObjectTransmissionInformation (the 12-byte
// out-of-band OTI), and the partition/sub-block-partition helpers that split
// an object into source blocks and a source block into sub-blocks.
//
// Serialisation follows the teacher's style for small fixed-layout wire
// structs (see core.Edge-adjacent (de)serialisation conventions): exported
// MarshalBinary/UnmarshalBinary pairs, sentinel errors for malformed input.
//
//	go get github.com/katalvlaran/raptorq/oti
package oti
