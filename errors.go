package raptorq

import "errors"

// ErrPending indicates a Decoder does not yet have enough received symbols
// for every source block to attempt a solve (spec.md §7's
// InsufficientSymbols: "decode() returns pending, not an error").
var ErrPending = errors.New("raptorq: decode pending, insufficient symbols received")

// ErrAllocationFailure wraps an allocation failure encountered while
// building a block's constraint matrices or symbol buffers.
var ErrAllocationFailure = errors.New("raptorq: allocation failure")

// ErrMalformedPacket indicates a packet whose length is not exactly
// PayloadId length plus the OTI's symbol size T.
var ErrMalformedPacket = errors.New("raptorq: malformed packet")

// ErrUnknownSourceBlock indicates a packet's SBN does not address any of
// the object's source blocks under the current OTI.
var ErrUnknownSourceBlock = errors.New("raptorq: unknown source block number")
