package matrix

// BinaryMatrix is the contract the solver is generic over (spec.md §9):
// a small fixed set of methods that both DenseBinaryMatrix and
// SparseBinaryMatrix implement, letting the solver's hot path run against
// either representation without type-switching in the inner loops.
//
// All row/col arguments are logical indices; implementations are
// responsible for translating logical indices to physical storage via
// their own row/column indirection.
type BinaryMatrix interface {
	Rows() int
	Cols() int

	// Get reports the bit at (row,col).
	Get(row, col int) bool
	// Set sets the bit at (row,col) to 1.
	Set(row, col int)
	// Clear sets the bit at (row,col) to 0.
	Clear(row, col int)

	// SwapRows exchanges two logical rows.
	SwapRows(a, b int)
	// SwapCols exchanges two logical columns.
	SwapCols(a, b int)

	// XorRowRange computes row dst ^= row src over logical columns
	// >= startCol; startCol=0 XORs the entire row. DenseBinaryMatrix leaves
	// columns below startCol in dst untouched; SparseBinaryMatrix XORs its
	// whole dense section whatever startCol is.
	XorRowRange(dst, src, startCol int)

	// CountOnesInRange counts set bits in row over logical columns [start,end).
	CountOnesInRange(row, start, end int) int

	// NonzeroColsInRange returns the logical columns with a set bit in row,
	// restricted to [start,end), in ascending order. Used to locate pivot
	// candidates, never on rows expected to be dense over a wide range.
	NonzeroColsInRange(row, start, end int) []int

	// RowsWithBitInColumn returns the logical rows, restricted to
	// [rowStart,rowEnd), that have a set bit in logical column col. Used by
	// inactivateColumn's v_degree bookkeeping, Phase 1's pivot-column
	// elimination and Phase 3's back-substitution.
	RowsWithBitInColumn(col, rowStart, rowEnd int) []int

	// HintColumnDenseAndFrozen tells the matrix that logical column col is
	// about to be swapped into the inactivated region and will see no
	// further structural change apart from value flips; sparse
	// representations may use this to migrate the column into their dense
	// section (§4.7). Dense matrices ignore the hint.
	HintColumnDenseAndFrozen(col int)

	// EnableColumnAcceleration builds an optional columnar index (§4.7,
	// §9) to speed up the row-scans above; callers must not rely on it
	// remaining valid across mutations without rebuilding.
	EnableColumnAcceleration()
	// DisableColumnAcceleration releases the columnar index.
	DisableColumnAcceleration()
}
