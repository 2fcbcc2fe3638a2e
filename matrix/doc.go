// Package matrix implements the three matrix representations the RaptorQ
// solver operates on: DenseBinaryMatrix and SparseBinaryMatrix (both GF(2),
// implementing the common BinaryMatrix interface the solver is generic
// over), and OctetMatrix (dense GF(256), used for the HDPC sub-matrix and
// Phase 2's u×u inactivation block).
//
// Grounded on the teacher's matrix.Dense (row-major flat-slice storage,
// bounds-checked At/Set, Option-configured constructors) generalized from
// float64 cells to GF(2) bits and GF(256) octets.
//
//	go get github.com/katalvlaran/raptorq/matrix
package matrix
