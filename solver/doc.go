// Package solver implements the five-phase PI (permanent inactivation)
// solver: Phase 1 elimination-with-inactivation (with an r=2 connected-
// component pivot refinement), Phase 2 dense GF(256) reduction of the
// resulting inactivation block, Phase 3 back-substitution on the
// upper-left triangular block, and the apply/remap step that replays the
// recorded row operations against a caller's symbol buffer and performs
// the final column-permutation cycle-walk.
//
// The solver is generic over the constraint package's ConstraintMatrices,
// itself generic over matrix.BinaryMatrix, so the same code runs whether
// the binary sub-matrix is a DenseBinaryMatrix or a SparseBinaryMatrix.
// GeneratePlan runs the three phases without touching any symbol data,
// producing a SolverPlan that can be cached and replayed against any
// buffer of matching length.
//
//	go get github.com/katalvlaran/raptorq/solver
package solver
