package matrix

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/raptorq/gf2"
)

// sparseRow is one physical row's storage: a sorted list of physical column
// indices for bits living in the "sparse" section, plus a right-aligned
// bit-packed word slice for columns that have been migrated to "dense"
// (spec.md §4.7). The dense slice grows monotonically as columns are
// migrated; it is never shrunk.
type sparseRow struct {
	sparse []int // sorted, physical column indices
	dense  []uint64
}

func (r *sparseRow) denseGet(idx int) bool {
	if idx/gf2.WordBits >= len(r.dense) {
		return false
	}
	return gf2.GetBit(r.dense, idx)
}

func (r *sparseRow) denseGrow(words int) {
	for len(r.dense) < words {
		r.dense = append(r.dense, 0)
	}
}

func (r *sparseRow) sparseFind(physCol int) (idx int, found bool) {
	i := sort.SearchInts(r.sparse, physCol)
	return i, i < len(r.sparse) && r.sparse[i] == physCol
}

func (r *sparseRow) sparseSet(physCol int) {
	i, found := r.sparseFind(physCol)
	if found {
		return
	}
	r.sparse = append(r.sparse, 0)
	copy(r.sparse[i+1:], r.sparse[i:])
	r.sparse[i] = physCol
}

func (r *sparseRow) sparseClear(physCol int) {
	i, found := r.sparseFind(physCol)
	if !found {
		return
	}
	r.sparse = append(r.sparse[:i], r.sparse[i+1:]...)
}

// SparseBinaryMatrix is the hybrid GF(2) representation spec.md §4.7
// describes: per-row sorted sparse column lists plus a growing bit-packed
// dense section, with row and column indirection tables giving O(1) swaps.
// Intended for large K' (>=2000) where a fully dense L×L bit matrix would be
// wasteful to allocate and scan.
type SparseBinaryMatrix struct {
	rows, cols int

	rowPhys []int // logical row -> physical row
	rowLog  []int // physical row -> logical row

	colPhys []int // logical col -> physical col
	colLog  []int // physical col -> logical col

	isDensePhys    []bool
	physToDenseIdx []int
	numDenseCols   int

	data []sparseRow // indexed by physical row

	idx *ColumnarIndex // optional acceleration structure
}

// NewSparseBinaryMatrix allocates an all-zero rows×cols SparseBinaryMatrix
// with no columns migrated to the dense section yet.
func NewSparseBinaryMatrix(rows, cols int) (*SparseBinaryMatrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	m := &SparseBinaryMatrix{
		rows: rows, cols: cols,
		rowPhys: make([]int, rows), rowLog: make([]int, rows),
		colPhys: make([]int, cols), colLog: make([]int, cols),
		isDensePhys:    make([]bool, cols),
		physToDenseIdx: make([]int, cols),
		data:           make([]sparseRow, rows),
	}
	for i := range m.rowPhys {
		m.rowPhys[i], m.rowLog[i] = i, i
	}
	for i := range m.colPhys {
		m.colPhys[i], m.colLog[i] = i, i
		m.physToDenseIdx[i] = -1
	}
	return m, nil
}

func (m *SparseBinaryMatrix) Rows() int { return m.rows }
func (m *SparseBinaryMatrix) Cols() int { return m.cols }

func (m *SparseBinaryMatrix) checkIndex(row, col int) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Errorf("sparse_binary: (%d,%d) out of %dx%d: %w", row, col, m.rows, m.cols, ErrIndexOutOfBounds))
	}
}

func (m *SparseBinaryMatrix) getPhys(physRow, physCol int) bool {
	row := &m.data[physRow]
	if di := m.physToDenseIdx[physCol]; di >= 0 {
		return row.denseGet(di)
	}
	_, found := row.sparseFind(physCol)
	return found
}

func (m *SparseBinaryMatrix) Get(row, col int) bool {
	m.checkIndex(row, col)
	return m.getPhys(m.rowPhys[row], m.colPhys[col])
}

func (m *SparseBinaryMatrix) setPhys(physRow, physCol int, v bool) {
	row := &m.data[physRow]
	if di := m.physToDenseIdx[physCol]; di >= 0 {
		row.denseGrow(gf2.WordsFor(di + 1))
		if v {
			gf2.SetBit(row.dense, di)
		} else {
			gf2.ClearBit(row.dense, di)
		}
		return
	}
	if v {
		row.sparseSet(physCol)
	} else {
		row.sparseClear(physCol)
	}
}

func (m *SparseBinaryMatrix) Set(row, col int) {
	m.checkIndex(row, col)
	m.setPhys(m.rowPhys[row], m.colPhys[col], true)
}

func (m *SparseBinaryMatrix) Clear(row, col int) {
	m.checkIndex(row, col)
	m.setPhys(m.rowPhys[row], m.colPhys[col], false)
}

// SwapRows exchanges two logical rows via the row-indirection tables: O(1).
func (m *SparseBinaryMatrix) SwapRows(a, b int) {
	if a == b {
		return
	}
	pa, pb := m.rowPhys[a], m.rowPhys[b]
	m.rowPhys[a], m.rowPhys[b] = pb, pa
	m.rowLog[pa], m.rowLog[pb] = b, a
}

// SwapCols exchanges two logical columns via the column-indirection tables: O(1).
func (m *SparseBinaryMatrix) SwapCols(a, b int) {
	if a == b {
		return
	}
	pa, pb := m.colPhys[a], m.colPhys[b]
	m.colPhys[a], m.colPhys[b] = pb, pa
	m.colLog[pa], m.colLog[pb] = b, a
}

// XorRowRange XORs row src into row dst. The dense section is XORed word
// for word whatever startCol is. In the sparse section every src entry
// toggles the same bit of dst; when startCol > 0, entries whose logical
// column is below startCol are skipped.
func (m *SparseBinaryMatrix) XorRowRange(dst, src, startCol int) {
	pDst, pSrc := m.rowPhys[dst], m.rowPhys[src]
	rowDst, rowSrc := &m.data[pDst], &m.data[pSrc]

	// Dense section: always XOR whatever words exist on either side.
	words := len(rowDst.dense)
	if len(rowSrc.dense) > words {
		words = len(rowSrc.dense)
	}
	rowDst.denseGrow(words)
	srcDense := rowSrc.dense
	if len(srcDense) < words {
		padded := make([]uint64, words)
		copy(padded, srcDense)
		srcDense = padded
	}
	gf2.XorSlice(rowDst.dense, srcDense)

	// Sparse section: dst's set of physical columns is toggled by every
	// qualifying src entry (XOR == symmetric-difference on a set of bits).
	// Entries in src below startCol are skipped entirely, leaving dst's
	// existing bits at those columns untouched — the filtered-merge case
	// of spec.md §4.7.
	srcSparse := append([]int(nil), rowSrc.sparse...) // rowSrc may alias rowDst if dst==src
	for _, physCol := range srcSparse {
		if startCol > 0 && m.colLog[physCol] < startCol {
			continue
		}
		if _, found := rowDst.sparseFind(physCol); found {
			rowDst.sparseClear(physCol)
		} else {
			rowDst.sparseSet(physCol)
		}
	}
}

func (m *SparseBinaryMatrix) CountOnesInRange(row, start, end int) int {
	physRow := m.rowPhys[row]
	r := &m.data[physRow]
	count := 0
	for _, p := range r.sparse {
		lc := m.colLog[p]
		if lc >= start && lc < end {
			count++
		}
	}
	for lc := start; lc < end; lc++ {
		p := m.colPhys[lc]
		if di := m.physToDenseIdx[p]; di >= 0 && r.denseGet(di) {
			count++
		}
	}
	return count
}

func (m *SparseBinaryMatrix) NonzeroColsInRange(row, start, end int) []int {
	var cols []int
	for lc := start; lc < end; lc++ {
		if m.Get(row, lc) {
			cols = append(cols, lc)
		}
	}
	return cols
}

func (m *SparseBinaryMatrix) RowsWithBitInColumn(col, rowStart, rowEnd int) []int {
	physCol := m.colPhys[col]
	if m.idx != nil && !m.isDensePhys[physCol] {
		if rows, ok := m.idx.rowsForPhysCol(physCol); ok {
			var out []int
			for _, pr := range rows {
				lr := m.rowLog[pr]
				if lr >= rowStart && lr < rowEnd && m.getPhys(pr, physCol) {
					out = append(out, lr)
				}
			}
			sort.Ints(out)
			return out
		}
	}
	var out []int
	for lr := rowStart; lr < rowEnd; lr++ {
		if m.Get(lr, col) {
			out = append(out, lr)
		}
	}
	return out
}

// HintColumnDenseAndFrozen migrates logical column col out of the sparse
// section into the dense section for every physical row, per spec.md §4.7's
// hint_column_dense_and_frozen.
func (m *SparseBinaryMatrix) HintColumnDenseAndFrozen(col int) {
	physCol := m.colPhys[col]
	if m.isDensePhys[physCol] {
		return
	}
	idx := m.numDenseCols
	m.numDenseCols++
	m.isDensePhys[physCol] = true
	m.physToDenseIdx[physCol] = idx

	words := gf2.WordsFor(m.numDenseCols)
	for pr := range m.data {
		row := &m.data[pr]
		if _, found := row.sparseFind(physCol); found {
			row.sparseClear(physCol)
			row.denseGrow(words)
			gf2.SetBit(row.dense, idx)
		} else {
			row.denseGrow(words)
		}
	}
	m.idx = nil // stale: caller must rebuild if still needed.
}

// EnableColumnAcceleration builds a columnar (CSC-style) index over the
// current sparse-section contents, per spec.md §4.7/§9.
func (m *SparseBinaryMatrix) EnableColumnAcceleration() {
	m.idx = buildColumnarIndex(m)
}

// DisableColumnAcceleration releases the columnar index.
func (m *SparseBinaryMatrix) DisableColumnAcceleration() {
	m.idx = nil
}
