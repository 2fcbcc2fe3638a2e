package constraint

import (
	"github.com/katalvlaran/raptorq/matrix"
	"github.com/katalvlaran/raptorq/prng"
	"github.com/katalvlaran/raptorq/systab"
)

// writeLTRow writes one LT row at logical row idx of binary, for encoding
// symbol ID x, per spec.md §4.5's LT row construction.
func writeLTRow(binary matrix.BinaryMatrix, p systab.Params, idx int, x uint32) {
	t := prng.Generate(p, x)

	// LT part, over the W-wide LDPC+LT column region.
	b := t.B
	binary.Set(idx, b)
	for k := 0; k < t.D-1; k++ {
		b = (b + t.A) % p.W
		binary.Set(idx, b)
	}

	// PI part, over the P-wide PI column region, offset by W.
	b1 := t.B1
	for b1 >= p.P {
		b1 = (b1 + t.A1) % p.P1
	}
	binary.Set(idx, p.W+b1)
	for k := 0; k < t.D1-1; k++ {
		b1 = (b1 + t.A1) % p.P1
		for b1 >= p.P {
			b1 = (b1 + t.A1) % p.P1
		}
		binary.Set(idx, p.W+b1)
	}
}
