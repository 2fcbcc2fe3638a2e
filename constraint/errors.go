package constraint

import "errors"

// ErrISICountMismatch indicates the caller supplied a different number of
// ISIs than the systematic parameters' K' requires.
var ErrISICountMismatch = errors.New("constraint: len(isis) must equal K'")
