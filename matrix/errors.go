package matrix

import "errors"

// Sentinel errors for the matrix package, in the teacher's style (see
// matrix.ErrIndexOutOfBounds / matrix.ErrInvalidDimensions in the teacher
// repo). Constructors return ErrInvalidDimensions; the index checks of
// Get, Set and Clear panic with an error wrapping ErrIndexOutOfBounds.
var (
	// ErrInvalidDimensions indicates requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates two operands have incompatible shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)
