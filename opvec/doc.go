// Package opvec records the row-level SymbolBuffer operations the solver
// performs during Phases 1-3 (add_assign, mul_assign, fma, reorder) as an
// append-only OperationVector, addressed by the logical intermediate-symbol
// indices the rows held at recording time. A SolverPlan carries one of
// these alongside its column permutation so the same sequence can be
// replayed against any SymbolBuffer of matching L, independent of T.
//
// The tagged-variant shape (a Kind enum plus a struct wide enough to hold
// every variant's fields) follows the teacher's enum-plus-String()
// convention used for its MemoryMode/Connectivity/Algorithm types.
//
//	go get github.com/katalvlaran/raptorq/opvec
package opvec
