package solver

import (
	"github.com/katalvlaran/raptorq/ccgraph"
	"github.com/katalvlaran/raptorq/constraint"
	"github.com/katalvlaran/raptorq/matrix"
	"github.com/katalvlaran/raptorq/opvec"
)

// solverState is the transient bundle tying one solve to its constraint
// matrices, row/column permutation bookkeeping, and degree histogram. Its
// arrays are sized at construction (d and c to L, the per-row degrees to R,
// the histogram to L+1) and discarded once the
// three phases have produced a SolverPlan (spec.md §4.6).
type solverState struct {
	binary matrix.BinaryMatrix
	hdpc   *matrix.OctetMatrix

	r int // number of non-HDPC (binary) rows = Kp+S
	h int // number of HDPC rows
	l int // total intermediate symbols = R+H

	// d[pos] is the original stable symbol identity currently occupying
	// row position pos. Phase 1 moves only positions [0,R) (binary rows);
	// positions >= R start as the HDPC identities, and Phase 2 reorders
	// positions [i,L) to follow its row swaps.
	d []int
	// c[pos] is the original logical column currently occupying column
	// position pos.
	c []int

	i int // count of eliminated pivot columns
	u int // size of the inactivated (U) column block

	originalDegree []int // popcount over [0,W), frozen at construction
	vDegree        []int // current popcount within the active V region
	histogram      []int // histogram[d] = count of active rows with vDegree==d

	graph *ccgraph.Graph
	ops   *opvec.OperationVector
}

func newSolverState(cm *constraint.ConstraintMatrices) *solverState {
	p := cm.Params
	r := p.Kp + p.S
	l := p.L

	s := &solverState{
		binary:         cm.Binary,
		hdpc:           cm.HDPC,
		r:              r,
		h:              p.H,
		l:              l,
		d:              make([]int, l),
		c:              make([]int, l),
		originalDegree: make([]int, r),
		vDegree:        make([]int, r),
		histogram:      make([]int, l+1),
		graph:          ccgraph.New(),
		ops:            opvec.New(l * 4),
	}
	for k := 0; k < l; k++ {
		s.d[k] = k
		s.c[k] = k
	}
	for row := 0; row < r; row++ {
		s.originalDegree[row] = cm.Binary.CountOnesInRange(row, 0, p.W)
		deg := cm.Binary.CountOnesInRange(row, 0, l)
		s.vDegree[row] = deg
		s.histogram[deg]++
	}
	return s
}

func (s *solverState) decrementVDegree(row int) {
	old := s.vDegree[row]
	s.histogram[old]--
	s.vDegree[row] = old - 1
	s.histogram[old-1]++
}

func (s *solverState) swapCol(a, b int) {
	if a == b {
		return
	}
	s.binary.SwapCols(a, b)
	s.hdpc.SwapCols(a, b)
	s.c[a], s.c[b] = s.c[b], s.c[a]
}
