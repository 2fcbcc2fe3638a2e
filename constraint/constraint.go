package constraint

import (
	"github.com/katalvlaran/raptorq/matrix"
	"github.com/katalvlaran/raptorq/systab"
)

// DenseSparseThreshold is the K' cutoff below which the binary sub-matrix is
// built as a DenseBinaryMatrix, and at or above which it is built as a
// SparseBinaryMatrix (spec.md §4.5).
const DenseSparseThreshold = 2000

// ConstraintMatrices bundles the two sub-matrices of one source block's A
// matrix: the (K'+S)×L binary matrix (LDPC rows 0..S-1, LT rows S..S+K'-1)
// and the H×L HDPC octet matrix. Binary.Rows() == Kp+S; HDPC.Rows() == H;
// both have L columns.
type ConstraintMatrices struct {
	Binary matrix.BinaryMatrix
	HDPC   *matrix.OctetMatrix
	Params systab.Params
}

// newBinary allocates the (Kp+S)×L binary sub-matrix, dense or sparse by
// DenseSparseThreshold.
func newBinary(p systab.Params) (matrix.BinaryMatrix, error) {
	rows := p.Kp + p.S
	if p.Kp < DenseSparseThreshold {
		return matrix.NewDenseBinaryMatrix(rows, p.L)
	}
	return matrix.NewSparseBinaryMatrix(rows, p.L)
}

// Build constructs the constraint matrices for systematic parameters p,
// using isis[j] as the ISI for LT row S+j. len(isis) must equal p.Kp.
func Build(p systab.Params, isis []int) (*ConstraintMatrices, error) {
	if len(isis) != p.Kp {
		return nil, ErrISICountMismatch
	}

	binary, err := newBinary(p)
	if err != nil {
		return nil, err
	}
	writeLDPC(binary, p)
	for j, isi := range isis {
		writeLTRow(binary, p, p.S+j, uint32(isi))
	}

	hdpc, err := buildHDPC(p)
	if err != nil {
		return nil, err
	}

	return &ConstraintMatrices{Binary: binary, HDPC: hdpc, Params: p}, nil
}

// BuildEncoding builds the constraint matrices for an encoder: LT rows use
// the sequential ISIs 0..K'-1 (spec.md §4.5).
func BuildEncoding(p systab.Params) (*ConstraintMatrices, error) {
	isis := make([]int, p.Kp)
	for i := range isis {
		isis[i] = i
	}
	return Build(p, isis)
}

// ISIForESI maps a received encoding symbol's ESI to its ISI: the identity
// for source symbols (ESI < k), or K'+(ESI-k) for repair symbols.
func ISIForESI(esi, k int, p systab.Params) int {
	if esi < k {
		return esi
	}
	return p.Kp + (esi - k)
}

// BuildDecoding builds the constraint matrices for a decoder from exactly
// len(esis) received symbol ESIs (which must equal p.Kp), translating each
// to its ISI via ISIForESI before building the corresponding LT row.
func BuildDecoding(p systab.Params, k int, esis []int) (*ConstraintMatrices, error) {
	isis := make([]int, len(esis))
	for i, esi := range esis {
		isis[i] = ISIForESI(esi, k, p)
	}
	return Build(p, isis)
}
