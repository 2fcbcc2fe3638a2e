package gf256

// genPoly is the primitive polynomial for GF(256): x^8+x^4+x^3+x^2+1.
const genPoly = 0x11D

// expTable holds g^i for i in [0,509]; the table is extended to 510 entries
// (beyond the field's 255 nonzero elements) so that expTable[log[a]+log[b]]
// is always a valid index for a product lookup, avoiding a modular reduction
// on every multiply.
var expTable [510]byte

// logTable maps a nonzero octet to its discrete log base g. logTable[0] is
// unused (the discrete log of zero is undefined) and left at zero.
var logTable [256]byte

func init() {
	// Build the multiplicative group by repeated multiplication-by-g,
	// reducing modulo genPoly whenever the polynomial degree would exceed 7.
	x := 1
	for i := 0; i < 255; i++ {
		expTable[i] = byte(x)
		logTable[x] = byte(i)
		x <<= 1
		if x&0x100 != 0 {
			x ^= genPoly
		}
	}
	// Duplicate the first 255 entries so lookups at log[a]+log[b] (which can
	// reach up to 2*254) never need a conditional modular reduction.
	for i := 255; i < 510; i++ {
		expTable[i] = expTable[i-255]
	}
}
