package solver

import "errors"

// ErrSingularMatrix indicates the solver could not find a pivot in Phase 1
// or Phase 2: the received/selected set of encoding symbol IDs does not
// admit a solution. There is no retry; a different ISI combination is
// required.
var ErrSingularMatrix = errors.New("solver: no pivot found, constraint matrix is singular")

// ErrBufferLengthMismatch indicates a SolverPlan was applied to a buffer
// whose row count does not equal the plan's L.
var ErrBufferLengthMismatch = errors.New("solver: buffer length does not match plan L")
