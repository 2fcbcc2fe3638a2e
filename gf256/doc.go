// Package gf256 implements arithmetic over the Galois field GF(256) used by
// the RaptorQ HDPC constraints and the LT/PI symbol combination rule.
//
// The field is generated by the primitive polynomial 0x11D (x^8+x^4+x^3+x^2+1),
// the same generator RFC 6330 specifies for its OCT_EXP/OCT_LOG tables. Scalar
// operations (Add, Mul, Div, Inv) go through a pair of exp/log tables built
// once at package init; bulk operations (AddAssign, FMA, MulAssignScalar) work
// directly on byte slices representing rows of symbol data, with a portable
// scalar path and a split-nibble lookup fast path for the multiply-heavy ones.
//
//	go get github.com/katalvlaran/raptorq/gf256
package gf256
