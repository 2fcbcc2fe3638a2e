package matrix

import (
	"fmt"

	"github.com/katalvlaran/raptorq/gf2"
)

// DenseBinaryMatrix is a row-major, bit-packed GF(2) matrix: each row is
// ceil(cols/64) 64-bit words. Row swaps exchange the backing word slices
// directly (O(words)); column swaps flip a bit in every row (O(rows)),
// since columns have no independent indirection in a row-major layout
// (spec.md §3, §9).
type DenseBinaryMatrix struct {
	rows, cols int
	words      int
	data       []uint64
}

// NewDenseBinaryMatrix allocates a zeroed rows×cols DenseBinaryMatrix.
func NewDenseBinaryMatrix(rows, cols int) (*DenseBinaryMatrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	words := gf2.WordsFor(cols)
	return &DenseBinaryMatrix{rows: rows, cols: cols, words: words, data: make([]uint64, rows*words)}, nil
}

func (m *DenseBinaryMatrix) Rows() int { return m.rows }
func (m *DenseBinaryMatrix) Cols() int { return m.cols }

func (m *DenseBinaryMatrix) row(r int) []uint64 {
	return m.data[r*m.words : (r+1)*m.words]
}

func (m *DenseBinaryMatrix) checkIndex(row, col int) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Errorf("dense_binary: (%d,%d) out of %dx%d: %w", row, col, m.rows, m.cols, ErrIndexOutOfBounds))
	}
}

func (m *DenseBinaryMatrix) Get(row, col int) bool {
	m.checkIndex(row, col)
	return gf2.GetBit(m.row(row), col)
}

func (m *DenseBinaryMatrix) Set(row, col int) {
	m.checkIndex(row, col)
	gf2.SetBit(m.row(row), col)
}

func (m *DenseBinaryMatrix) Clear(row, col int) {
	m.checkIndex(row, col)
	gf2.ClearBit(m.row(row), col)
}

// SwapRows exchanges the two rows' backing words in place.
func (m *DenseBinaryMatrix) SwapRows(a, b int) {
	if a == b {
		return
	}
	ra, rb := m.row(a), m.row(b)
	for i := range ra {
		ra[i], rb[i] = rb[i], ra[i]
	}
}

// SwapCols flips bit a and bit b in every row.
func (m *DenseBinaryMatrix) SwapCols(a, b int) {
	if a == b {
		return
	}
	for r := 0; r < m.rows; r++ {
		row := m.row(r)
		ba, bb := gf2.GetBit(row, a), gf2.GetBit(row, b)
		if ba != bb {
			gf2.FlipBit(row, a)
			gf2.FlipBit(row, b)
		}
	}
}

func (m *DenseBinaryMatrix) XorRowRange(dst, src, startCol int) {
	gf2.XorSliceFrom(m.row(dst), m.row(src), startCol)
}

func (m *DenseBinaryMatrix) CountOnesInRange(row, start, end int) int {
	return gf2.PopcountRange(m.row(row), start, end)
}

func (m *DenseBinaryMatrix) NonzeroColsInRange(row, start, end int) []int {
	var cols []int
	r := m.row(row)
	for c := start; c < end; c++ {
		if gf2.GetBit(r, c) {
			cols = append(cols, c)
		}
	}
	return cols
}

func (m *DenseBinaryMatrix) RowsWithBitInColumn(col, rowStart, rowEnd int) []int {
	var rows []int
	for r := rowStart; r < rowEnd; r++ {
		if gf2.GetBit(m.row(r), col) {
			rows = append(rows, r)
		}
	}
	return rows
}

// HintColumnDenseAndFrozen is a no-op: the whole matrix is already dense.
func (m *DenseBinaryMatrix) HintColumnDenseAndFrozen(int) {}

// EnableColumnAcceleration is a no-op: dense row scans are already O(rows)
// without an index, so a columnar snapshot buys nothing here.
func (m *DenseBinaryMatrix) EnableColumnAcceleration() {}

// DisableColumnAcceleration is a no-op (see EnableColumnAcceleration).
func (m *DenseBinaryMatrix) DisableColumnAcceleration() {}
