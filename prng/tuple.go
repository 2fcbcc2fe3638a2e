package prng

import "github.com/katalvlaran/raptorq/systab"

// Tuple bundles the six values RFC 6330 §5.3.5.4 derives per encoding symbol
// ID: the LT degree/step/offset (d,a,b) over the W region and the PI
// degree/step/offset (d1,a1,b1) over the P region.
type Tuple struct {
	D  int
	A  int
	B  int
	D1 int
	A1 int
	B1 int
}

// Generate computes Tuple(K', X) for the systematic parameters p (as looked
// up from systab for the block's K') and encoding symbol ID x. It is a pure
// function of (p, x): calling it twice with the same arguments always
// produces the same Tuple (spec.md §8's determinism property).
func Generate(p systab.Params, x uint32) Tuple {
	a := uint32(53591 + p.J*997)
	b := uint32(10267 * (p.J + 1))
	y := b + x*a // wraps mod 2^32 via uint32 arithmetic, as required.

	v := Rand(y, 0, 1<<20)
	d := systab.Deg(int(v))
	if maxD := p.W - 2; d > maxD {
		d = maxD
	}

	aVal := 1 + int(Rand(y, 1, uint32(p.W-1)))
	bVal := int(Rand(y, 2, uint32(p.W)))

	var d1 int
	if d < 4 {
		d1 = 2
	} else {
		d1 = int(Rand(y, 3, 2)) + 2
	}

	a1 := 1 + int(Rand(y, 4, uint32(p.P1-1)))
	b1 := int(Rand(y, 5, uint32(p.P1)))

	return Tuple{D: d, A: aVal, B: bVal, D1: d1, A1: a1, B1: b1}
}
