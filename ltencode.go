package raptorq

import (
	"github.com/katalvlaran/raptorq/gf256"
	"github.com/katalvlaran/raptorq/prng"
	"github.com/katalvlaran/raptorq/symbol"
	"github.com/katalvlaran/raptorq/systab"
)

// ltEncode computes one encoding symbol from a solved intermediate-symbol
// buffer, per spec.md §4.8's LT_encode: the same W/P column walk
// constraint.writeLTRow uses to build an LT row, here XOR-combining
// buffer rows instead of setting matrix bits.
func ltEncode(p systab.Params, buf *symbol.SymbolBuffer, isi int) []byte {
	t := prng.Generate(p, uint32(isi))

	out := make([]byte, buf.T())
	copy(out, buf.GetConst(t.B))

	b := t.B
	for j := 1; j < t.D; j++ {
		b = (b + t.A) % p.W
		gf256.AddAssign(out, buf.GetConst(b))
	}

	b1 := t.B1
	for b1 >= p.P {
		b1 = (b1 + t.A1) % p.P1
	}
	gf256.AddAssign(out, buf.GetConst(p.W+b1))
	for j := 1; j < t.D1; j++ {
		b1 = (b1 + t.A1) % p.P1
		for b1 >= p.P {
			b1 = (b1 + t.A1) % p.P1
		}
		gf256.AddAssign(out, buf.GetConst(p.W+b1))
	}

	return out
}
