package solver

// runPhase3 back-substitutes into rows [0,i). Phase 2 leaves positions
// [i,L) as identity rows, so every bit a row in [0,i) still has in the
// inactivated columns [i,L) is cleared by adding the identity row of that
// column. Then, for each column from i-1 down to 1, it clears that column
// from every row above it that still has a bit set there.
func (s *solverState) runPhase3() {
	for row := 0; row < s.i; row++ {
		for _, col := range s.binary.NonzeroColsInRange(row, s.i, s.l) {
			s.binary.Clear(row, col)
			s.ops.RecordAddAssign(s.d[row], s.d[col])
		}
	}
	for col := s.i - 1; col >= 1; col-- {
		rows := s.binary.RowsWithBitInColumn(col, 0, col)
		for _, row := range rows {
			s.binary.Clear(row, col)
			s.binary.XorRowRange(row, col, s.i)
			s.ops.RecordAddAssign(s.d[row], s.d[col])
		}
	}
}
