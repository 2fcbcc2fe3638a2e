package solver

import (
	"github.com/katalvlaran/raptorq/constraint"
	"github.com/katalvlaran/raptorq/opvec"
	"github.com/katalvlaran/raptorq/systab"
)

// Buffer is the row-oriented storage a SolverPlan replays its recorded
// operations against and finally permutes in place. It is defined locally,
// structurally matching symbol.SymbolBuffer, so this package does not need
// to import symbol directly (spec.md §4.6's deferred_ops apply to whatever
// concrete buffer a caller supplies).
type Buffer interface {
	opvec.Replayer
	Get(i int) []byte
	CopyFrom(i int, src []byte) error
	L() int
	T() int
}

// SolverPlan is the reusable output of a solve: the recorded row
// operations plus the final column permutation. The same plan can be
// replayed against any Buffer of matching length, which is what makes
// per-K′ plan caching possible (spec.md §7).
type SolverPlan struct {
	Ops  *opvec.OperationVector
	Perm []int
	L    int
}

// Apply replays the plan's operations against buf, then permutes buf's
// rows in place according to Perm via a single-scratch-buffer cycle walk.
func (p *SolverPlan) Apply(buf Buffer) error {
	if buf.L() != p.L {
		return ErrBufferLengthMismatch
	}

	p.Ops.Replay(buf)

	visited := make([]bool, p.L)
	scratch := make([]byte, buf.T())
	for start := 0; start < p.L; start++ {
		if visited[start] {
			continue
		}
		if p.Perm[start] == start {
			visited[start] = true
			continue
		}

		copy(scratch, buf.Get(start))
		j := start
		for {
			k := p.Perm[j]
			visited[j] = true
			if k == start {
				break
			}
			if err := buf.CopyFrom(j, buf.Get(k)); err != nil {
				return err
			}
			j = k
		}
		if err := buf.CopyFrom(j, scratch); err != nil {
			return err
		}
	}
	return nil
}

// GeneratePlan builds the constraint matrices for p's encoding ISIs and
// solves them, producing a SolverPlan an encoder can replay against any
// intermediate-symbol buffer for these parameters.
func GeneratePlan(p systab.Params) (*SolverPlan, error) {
	cm, err := constraint.BuildEncoding(p)
	if err != nil {
		return nil, err
	}
	return Solve(cm)
}

// Solve runs all three phases against cm and returns the resulting plan.
func Solve(cm *constraint.ConstraintMatrices) (*SolverPlan, error) {
	s := newSolverState(cm)

	if err := s.runPhase1(); err != nil {
		return nil, err
	}
	if err := s.runPhase2(); err != nil {
		return nil, err
	}
	s.runPhase3()

	return s.buildPlan(), nil
}

// buildPlan derives the final column permutation from d[] and c[]: after
// the three phases, physical row position j holds the symbol originally
// identified by d[j], and physical column position j corresponds to
// original column c[j]. perm[c[j]] = d[j] says "the final buffer slot for
// original symbol c[j] should contain the value currently carried by d[j]".
func (s *solverState) buildPlan() *SolverPlan {
	perm := make([]int, s.l)
	for j := 0; j < s.l; j++ {
		perm[s.c[j]] = s.d[j]
	}
	return &SolverPlan{Ops: s.ops, Perm: perm, L: s.l}
}
