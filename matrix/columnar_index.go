package matrix

// ColumnarIndex is a CSC-style snapshot over a SparseBinaryMatrix's current
// sparse-section rows (spec.md §4.7, §9), built by EnableColumnAcceleration
// and used to bound RowsWithBitInColumn's row scan; the solver does not
// enable it. It may contain stale entries if bits are
// cleared after the snapshot is built; callers must re-verify the current
// matrix state before acting on what it returns (documented in the
// interface's EnableColumnAcceleration comment).
type ColumnarIndex struct {
	offsets []int // length numPhysCols+1
	values  []int // physical row indices, grouped by physical column
	numCols int
}

// buildColumnarIndex does the two-pass CSC assembly spec.md §4.7 describes:
// count each physical column's occurrences across all physical rows' sparse
// lists, then fill.
func buildColumnarIndex(m *SparseBinaryMatrix) *ColumnarIndex {
	counts := make([]int, m.cols)
	for pr := range m.data {
		for _, pc := range m.data[pr].sparse {
			counts[pc]++
		}
	}
	offsets := make([]int, m.cols+1)
	for c := 0; c < m.cols; c++ {
		offsets[c+1] = offsets[c] + counts[c]
	}
	values := make([]int, offsets[m.cols])
	cursor := append([]int(nil), offsets[:m.cols]...)
	for pr := range m.data {
		for _, pc := range m.data[pr].sparse {
			values[cursor[pc]] = pr
			cursor[pc]++
		}
	}
	return &ColumnarIndex{offsets: offsets, values: values, numCols: m.cols}
}

// rowsForPhysCol returns the physical rows recorded (at build time) to have
// a set bit in physical column physCol. ok is false if the index is nil or
// physCol is outside [0, numCols).
func (idx *ColumnarIndex) rowsForPhysCol(physCol int) (rows []int, ok bool) {
	if idx == nil || physCol < 0 || physCol >= idx.numCols {
		return nil, false
	}
	return idx.values[idx.offsets[physCol]:idx.offsets[physCol+1]], true
}
