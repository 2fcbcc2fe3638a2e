package constraint

import (
	"github.com/katalvlaran/raptorq/matrix"
	"github.com/katalvlaran/raptorq/systab"
)

// writeLDPC writes the S LDPC constraint rows (rows 0..S-1 of binary) per
// spec.md §4.5: the cyclic 3-bits-per-column block over [0,B), the identity
// block over the S-column block starting at B, and the two-PI-column tail
// shared by every LDPC row.
func writeLDPC(binary matrix.BinaryMatrix, p systab.Params) {
	b := p.W - p.S // B = W - S

	for i := 0; i < b; i++ {
		a := 1 + (i/p.S)%(p.S-1)
		bRow := i % p.S
		binary.Set(bRow, i)
		binary.Set((bRow+a)%p.S, i)
		binary.Set((bRow+2*a)%p.S, i)
	}

	for i := 0; i < p.S; i++ {
		binary.Set(i, b+i)
	}

	for i := 0; i < p.S; i++ {
		binary.Set(i, p.W+(i%p.P))
		binary.Set(i, p.W+((i+1)%p.P))
	}
}
