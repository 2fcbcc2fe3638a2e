package constraint

import (
	"github.com/katalvlaran/raptorq/gf256"
	"github.com/katalvlaran/raptorq/matrix"
	"github.com/katalvlaran/raptorq/prng"
	"github.com/katalvlaran/raptorq/systab"
)

// Alpha is the GF(256) field generator, used as the base of the HDPC
// construction's alpha^i powers and its right-to-left GAMMA recurrence.
// gf256's exp table is built so expTable[1] == g^1 == 2.
const Alpha = gf256.Octet(2)

// buildHDPC constructs the H×L HDPC octet matrix for systematic parameters
// p, per spec.md §4.5: an H×KS "MT" matrix with two random ones per column
// (plus an alpha^i final column), transformed into HDPC = MT×GAMMA via the
// documented right-to-left recurrence, followed by an H×H identity block.
func buildHDPC(p systab.Params) (*matrix.OctetMatrix, error) {
	ks := p.Kp + p.S

	mt, err := matrix.NewOctetMatrix(p.H, ks)
	if err != nil {
		return nil, err
	}
	for j := 0; j < ks-1; j++ {
		y := uint32(j + 1)
		r0 := prng.Rand(y, 6, uint32(p.H))
		r1 := (r0 + prng.Rand(y, 7, uint32(p.H-1)) + 1) % uint32(p.H)
		mt.Set(int(r0), j, 1)
		mt.Set(int(r1), j, 1)
	}
	for i := 0; i < p.H; i++ {
		mt.Set(i, ks-1, gf256.Pow(i))
	}

	hdpc, err := matrix.NewOctetMatrix(p.H, p.L)
	if err != nil {
		return nil, err
	}
	// HDPC[:, KS-1] = MT[:, KS-1]; walking right-to-left, HDPC[:,c] =
	// MT[:,c] + alpha*HDPC[:,c+1].
	for i := 0; i < p.H; i++ {
		hdpc.Set(i, ks-1, mt.At(i, ks-1))
	}
	for c := ks - 2; c >= 0; c-- {
		for i := 0; i < p.H; i++ {
			v := gf256.Add(mt.At(i, c), gf256.Mul(Alpha, hdpc.At(i, c+1)))
			hdpc.Set(i, c, v)
		}
	}

	for i := 0; i < p.H; i++ {
		hdpc.Set(i, ks+i, 1)
	}

	return hdpc, nil
}
