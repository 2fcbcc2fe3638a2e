package solver

// runPhase1 performs elimination-with-inactivation until every column has
// either been eliminated (i) or inactivated (u), i.e. i+u == L.
func (s *solverState) runPhase1() error {
	for s.i+s.u < s.l {
		row, err := s.selectPivot()
		if err != nil {
			return err
		}
		s.swapRowToPivot(row)

		vEnd := s.l - s.u
		cols := s.binary.NonzeroColsInRange(s.i, s.i, vEnd)
		if len(cols) == 0 {
			return ErrSingularMatrix
		}
		s.swapCol(s.i, cols[0])
		if len(cols) >= 2 {
			// Highest column first: each one then swaps with a position at or
			// above itself, so no column still waiting here is moved.
			for k := len(cols) - 1; k >= 1; k-- {
				s.inactivateColumn(cols[k])
			}
		}

		s.eliminateCurrentPivotColumn()

		s.histogram[s.vDegree[s.i]]--
		s.i++
	}
	return nil
}

// selectPivot finds the smallest degree d* with an active row, and returns
// the row chosen for that degree (with the r=2 connected-component
// refinement when d*==2).
func (s *solverState) selectPivot() (int, error) {
	dStar := -1
	for d := 1; d < len(s.histogram); d++ {
		if s.histogram[d] > 0 {
			dStar = d
			break
		}
	}
	if dStar < 0 {
		return 0, ErrSingularMatrix
	}

	if dStar == 1 {
		for row := s.i; row < s.r; row++ {
			if s.vDegree[row] == 1 {
				return row, nil
			}
		}
		return 0, ErrSingularMatrix
	}

	if dStar == 2 {
		return s.selectPivotDegreeTwo(), nil
	}

	best := -1
	for row := s.i; row < s.r; row++ {
		if s.vDegree[row] != dStar {
			continue
		}
		if best == -1 || s.originalDegree[row] < s.originalDegree[best] {
			best = row
		}
	}
	if best == -1 {
		return 0, ErrSingularMatrix
	}
	return best, nil
}

// selectPivotDegreeTwo refines the d*=2 choice via the connected-component
// graph: every v_degree=2 row contributes an edge between its two V-column
// positions, and the row returned is the first one whose mask covers a
// column in the largest resulting component.
func (s *solverState) selectPivotDegreeTwo() int {
	vStart, vEnd := s.i, s.l-s.u
	s.graph.Reset(vEnd - vStart)

	var candidates []int
	for row := s.i; row < s.r; row++ {
		if s.vDegree[row] != 2 {
			continue
		}
		candidates = append(candidates, row)
		cols := s.binary.NonzeroColsInRange(row, vStart, vEnd)
		if len(cols) == 2 {
			s.graph.AddEdge(cols[0]-vStart, cols[1]-vStart)
		}
	}

	if node, ok := s.graph.LargestComponentNode(); ok {
		targetCol := vStart + node
		for _, row := range candidates {
			if s.binary.Get(row, targetCol) {
				return row
			}
		}
	}
	return candidates[0]
}

func (s *solverState) swapRowToPivot(row int) {
	if row == s.i {
		return
	}
	s.binary.SwapRows(s.i, row)
	s.d[s.i], s.d[row] = s.d[row], s.d[s.i]
	s.vDegree[s.i], s.vDegree[row] = s.vDegree[row], s.vDegree[s.i]
	s.originalDegree[s.i], s.originalDegree[row] = s.originalDegree[row], s.originalDegree[s.i]
}

// inactivateColumn moves col out of the active V window into the U block,
// per spec.md §4.5's 3a: v_degree bookkeeping first, then the dense-freeze
// hint, then the swap itself.
func (s *solverState) inactivateColumn(col int) {
	rows := s.binary.RowsWithBitInColumn(col, s.i+1, s.r)
	for _, row := range rows {
		s.decrementVDegree(row)
	}
	s.binary.HintColumnDenseAndFrozen(col)
	target := s.l - s.u - 1
	s.swapCol(col, target)
	s.u++
}

// eliminateCurrentPivotColumn clears column i from every other active
// binary row and folds the pivot row's influence into every HDPC row with
// a nonzero factor at column i.
func (s *solverState) eliminateCurrentPivotColumn() {
	vEnd := s.l - s.u
	rows := s.binary.RowsWithBitInColumn(s.i, s.i+1, s.r)
	for _, row := range rows {
		s.binary.Clear(row, s.i)
		s.binary.XorRowRange(row, s.i, vEnd)
		s.decrementVDegree(row)
		s.ops.RecordAddAssign(s.d[row], s.d[s.i])
	}

	pivotCols := s.binary.NonzeroColsInRange(s.i, 0, s.l)
	for hRow := 0; hRow < s.h; hRow++ {
		factor := s.hdpc.At(hRow, s.i)
		if factor == 0 {
			continue
		}
		for _, col := range pivotCols {
			s.hdpc.Set(hRow, col, s.hdpc.At(hRow, col)^factor)
		}
		s.ops.RecordFMA(s.r+hRow, s.d[s.i], factor)
	}
}
