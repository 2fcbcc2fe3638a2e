// Package systab holds the RaptorQ systematic-index parameter table — the
// mapping from each admissible K' (padded source-symbol count) to its tuple
// (J, S, H, W) — and the degree distribution Deg(v) used by the LT/PI tuple
// generator.
//
// The literal 477-row RFC 6330 Table 2 byte-for-byte is not reproduced here
// (not retrievable in this build environment); Lookup instead reconstructs
// its selection rule from the closed-form relations RFC 6330 §5.3.3.3 builds
// the table from: S is a prime satisfying a quadratic coverage bound (the
// smallest one unless 1+8K' is a perfect square; see deriveS), H the smallest value satisfying the exact central-binomial coverage
// bound, and K' itself is rounded up, from the requested K, to the first
// value whose W=K'+S is prime (Table 2 lists only K' values satisfying this
// among its other constraints). See DESIGN.md for the Open Question this
// resolves, and for the residual conformance gap this closed-form
// reconstruction carries relative to the literal table.
//
//	go get github.com/katalvlaran/raptorq/systab
package systab
