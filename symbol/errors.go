package symbol

import "errors"

// ErrInvalidDimensions indicates a non-positive L or T was requested.
var ErrInvalidDimensions = errors.New("symbol: L and T must be > 0")

// ErrIndexOutOfBounds indicates a row index outside [0, L).
var ErrIndexOutOfBounds = errors.New("symbol: row index out of bounds")

// ErrLengthMismatch indicates a caller-supplied byte slice isn't exactly T bytes.
var ErrLengthMismatch = errors.New("symbol: byte slice length must equal T")
