package opvec

// Replayer is the subset of SymbolBuffer's row operations an
// OperationVector needs to replay itself. Accepting this interface rather
// than a concrete *symbol.SymbolBuffer keeps opvec decoupled from the
// symbol package's storage layout.
type Replayer interface {
	AddAssign(dst, src int)
	FMA(dst, src int, scalar byte)
	MulAssign(i int, scalar byte)
	Swap(a, b int)
}

// OperationVector is an append-only sequence of SymbolOps recorded during
// a solve (spec.md §4.6's deferred_ops); replaying it leaves it unchanged,
// so one vector can be replayed against any number of buffers.
type OperationVector struct {
	ops []SymbolOp
}

// New returns an empty OperationVector. cap hints the expected op count so
// callers with a rough L-dependent estimate can avoid reallocation.
func New(capHint int) *OperationVector {
	return &OperationVector{ops: make([]SymbolOp, 0, capHint)}
}

// Len returns the number of recorded operations.
func (v *OperationVector) Len() int { return len(v.ops) }

// Ops returns the recorded sequence. Callers must not mutate it.
func (v *OperationVector) Ops() []SymbolOp { return v.ops }

// RecordAddAssign appends an AddAssign op.
func (v *OperationVector) RecordAddAssign(dst, src int) {
	v.ops = append(v.ops, NewAddAssign(dst, src))
}

// RecordMulAssign appends a MulAssign op.
func (v *OperationVector) RecordMulAssign(idx int, scalar byte) {
	v.ops = append(v.ops, NewMulAssign(idx, scalar))
}

// RecordFMA appends an FMA op.
func (v *OperationVector) RecordFMA(dst, src int, scalar byte) {
	v.ops = append(v.ops, NewFMA(dst, src, scalar))
}

// RecordReorder appends a Reorder op.
func (v *OperationVector) RecordReorder(dst, src int) {
	v.ops = append(v.ops, NewReorder(dst, src))
}

// Replay applies every recorded op, in order, to buf.
func (v *OperationVector) Replay(buf Replayer) {
	for _, op := range v.ops {
		switch op.Kind {
		case AddAssign:
			buf.AddAssign(op.Dst, op.Src)
		case MulAssign:
			buf.MulAssign(op.Idx, op.Scalar)
		case FMA:
			buf.FMA(op.Dst, op.Src, op.Scalar)
		case Reorder:
			buf.Swap(op.Dst, op.Src)
		}
	}
}
