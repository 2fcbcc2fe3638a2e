package solver

import (
	"github.com/katalvlaran/raptorq/gf256"
	"github.com/katalvlaran/raptorq/matrix"
)

// runPhase2 performs full (Gauss-Jordan) GF(256) elimination over the
// square (L-i)x(L-i) block formed by binary rows [i,R) and all H HDPC
// rows, restricted to columns [i,L). On return every row of that block is
// a standard basis vector in its own diagonal column, so the corresponding
// physical rows become part of the overall identity.
func (s *solverState) runPhase2() error {
	width := s.l - s.i  // == u, the inactivated block's side length
	height := (s.r - s.i) + s.h
	if width != height {
		return ErrSingularMatrix
	}

	temp, err := matrix.NewOctetMatrix(height, width)
	if err != nil {
		return err
	}

	// dExt[p] is the original stable identity currently occupying temp row p.
	dExt := make([]int, height)
	for p := 0; p < s.r-s.i; p++ {
		dExt[p] = s.d[s.i+p]
		for col := 0; col < width; col++ {
			if s.binary.Get(s.i+p, s.i+col) {
				temp.Set(p, col, 1)
			}
		}
	}
	for h := 0; h < s.h; h++ {
		p := (s.r - s.i) + h
		dExt[p] = s.r + h
		for col := 0; col < width; col++ {
			temp.Set(p, col, s.hdpc.At(h, s.i+col))
		}
	}

	for col := 0; col < width; col++ {
		pivotRow := -1
		for row := col; row < height; row++ {
			if temp.At(row, col) != 0 {
				pivotRow = row
				break
			}
		}
		if pivotRow < 0 {
			return ErrSingularMatrix
		}
		if pivotRow != col {
			temp.SwapRows(col, pivotRow)
			dExt[col], dExt[pivotRow] = dExt[pivotRow], dExt[col]
		}

		pivotVal := temp.At(col, col)
		if pivotVal != 1 {
			inv, err := gf256.TryInv(pivotVal)
			if err != nil {
				return ErrSingularMatrix
			}
			temp.MulRowScalar(col, inv)
			s.ops.RecordMulAssign(dExt[col], inv)
		}

		for row := 0; row < height; row++ {
			if row == col {
				continue
			}
			factor := temp.At(row, col)
			if factor == 0 {
				continue
			}
			temp.FMARow(row, col, factor)
			s.ops.RecordFMA(dExt[row], dExt[col], factor)
		}
	}

	for p := 0; p < s.r-s.i; p++ {
		row := s.i + p
		for col := 0; col < width; col++ {
			if temp.At(p, col) != 0 {
				s.binary.Set(row, s.i+col)
			} else {
				s.binary.Clear(row, s.i+col)
			}
		}
	}
	for h := 0; h < s.h; h++ {
		p := (s.r - s.i) + h
		for col := 0; col < width; col++ {
			s.hdpc.Set(h, s.i+col, temp.At(p, col))
		}
	}
	for p := 0; p < height; p++ {
		s.d[s.i+p] = dExt[p]
	}

	return nil
}
