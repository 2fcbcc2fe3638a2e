package matrix

import (
	"fmt"

	"github.com/katalvlaran/raptorq/gf256"
)

// OctetMatrix is a dense, row-major GF(256) matrix: rows*cols bytes. Used
// for the HDPC sub-matrix and for Phase 2's temporary u×u inactivation
// block. Grounded on the teacher's matrix.Dense flat-slice layout,
// generalized from float64 to a single byte per cell.
type OctetMatrix struct {
	rows, cols int
	data       []byte
}

// NewOctetMatrix allocates a zeroed rows×cols OctetMatrix.
func NewOctetMatrix(rows, cols int) (*OctetMatrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &OctetMatrix{rows: rows, cols: cols, data: make([]byte, rows*cols)}, nil
}

func (m *OctetMatrix) Rows() int { return m.rows }
func (m *OctetMatrix) Cols() int { return m.cols }

func (m *OctetMatrix) checkIndex(row, col int) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Errorf("octet: (%d,%d) out of %dx%d: %w", row, col, m.rows, m.cols, ErrIndexOutOfBounds))
	}
}

// Row returns the backing byte slice for row r, for bulk gf256 ops.
func (m *OctetMatrix) Row(r int) []byte {
	if r < 0 || r >= m.rows {
		panic(fmt.Errorf("octet: row %d out of %d: %w", r, m.rows, ErrIndexOutOfBounds))
	}
	return m.data[r*m.cols : (r+1)*m.cols]
}

func (m *OctetMatrix) At(row, col int) byte {
	m.checkIndex(row, col)
	return m.data[row*m.cols+col]
}

func (m *OctetMatrix) Set(row, col int, v byte) {
	m.checkIndex(row, col)
	m.data[row*m.cols+col] = v
}

// SwapRows exchanges two rows elementwise.
func (m *OctetMatrix) SwapRows(a, b int) {
	if a == b {
		return
	}
	ra, rb := m.Row(a), m.Row(b)
	for i := range ra {
		ra[i], rb[i] = rb[i], ra[i]
	}
}

// SwapCols exchanges two columns elementwise across all rows.
func (m *OctetMatrix) SwapCols(a, b int) {
	if a == b {
		return
	}
	for r := 0; r < m.rows; r++ {
		row := m.Row(r)
		row[a], row[b] = row[b], row[a]
	}
}

// FMARow computes row dst ^= row src * scalar (GF(256)).
func (m *OctetMatrix) FMARow(dst, src int, scalar byte) {
	gf256.FMA(m.Row(dst), m.Row(src), scalar)
}

// MulRowScalar computes row r *= scalar (GF(256)).
func (m *OctetMatrix) MulRowScalar(r int, scalar byte) {
	gf256.MulAssignScalar(m.Row(r), scalar)
}
