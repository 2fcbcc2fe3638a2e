// Package symbol provides SymbolBuffer, a contiguous L×T byte store holding
// one row per intermediate (or source/repair) symbol, with the row-level
// operations the solver records into an OperationVector and later replays:
// byte-wise XOR (add_assign), scaled XOR (fma), in-place scalar multiply
// (mul_assign), and row swap.
//
// Grounded on the teacher's matrix.Dense flat-slice layout (row-major,
// single backing []byte, row r at [r*T, (r+1)*T)), generalized from
// float64 cells to opaque T-byte rows and backed by gf256's bulk octet
// operations for the arithmetic row ops. All operations assume a single
// goroutine; SymbolBuffer performs no internal locking.
//
//	go get github.com/katalvlaran/raptorq/symbol
package symbol
