package symbol

import (
	"fmt"

	"github.com/katalvlaran/raptorq/gf256"
)

// SymbolBuffer is a contiguous store of L rows of T bytes each, row-major,
// one backing []byte. Used as the solver's D-vector/intermediate-symbol
// storage, whose rows a SolverPlan's cycle-walk remap permutes through a
// separate one-row []byte scratch.
type SymbolBuffer struct {
	l, t int
	data []byte
}

// NewSymbolBuffer allocates a zeroed L×T SymbolBuffer.
func NewSymbolBuffer(l, t int) (*SymbolBuffer, error) {
	if l <= 0 || t <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &SymbolBuffer{l: l, t: t, data: make([]byte, l*t)}, nil
}

// L returns the number of rows (symbols).
func (b *SymbolBuffer) L() int { return b.l }

// T returns the row length in bytes (symbol size).
func (b *SymbolBuffer) T() int { return b.t }

func (b *SymbolBuffer) checkRow(i int) {
	if i < 0 || i >= b.l {
		panic(fmt.Errorf("symbol: row %d out of %d: %w", i, b.l, ErrIndexOutOfBounds))
	}
}

// Get returns a mutable view of row i.
func (b *SymbolBuffer) Get(i int) []byte {
	b.checkRow(i)
	return b.data[i*b.t : (i+1)*b.t]
}

// GetConst returns a view of row i intended for read-only use. Go has no
// read-only slice type; callers must not mutate the result.
func (b *SymbolBuffer) GetConst(i int) []byte {
	return b.Get(i)
}

// AddAssign computes row[dst] ^= row[src].
func (b *SymbolBuffer) AddAssign(dst, src int) {
	gf256.AddAssign(b.Get(dst), b.GetConst(src))
}

// FMA computes row[dst] ^= row[src] * scalar.
func (b *SymbolBuffer) FMA(dst, src int, scalar byte) {
	gf256.FMA(b.Get(dst), b.GetConst(src), scalar)
}

// MulAssign computes row[i] *= scalar in place.
func (b *SymbolBuffer) MulAssign(i int, scalar byte) {
	gf256.MulAssignScalar(b.Get(i), scalar)
}

// Swap exchanges rows a and b byte-wise.
func (b *SymbolBuffer) Swap(a, c int) {
	b.checkRow(a)
	b.checkRow(c)
	if a == c {
		return
	}
	ra, rc := b.Get(a), b.Get(c)
	for i := range ra {
		ra[i], rc[i] = rc[i], ra[i]
	}
}

// CopyFrom overwrites row i with the contents of src, which must be exactly
// T bytes.
func (b *SymbolBuffer) CopyFrom(i int, src []byte) error {
	b.checkRow(i)
	if len(src) != b.t {
		return ErrLengthMismatch
	}
	copy(b.Get(i), src)
	return nil
}
