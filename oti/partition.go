package oti

// Partition implements spec.md §4.3's partition(I,J) function: split I items
// into J roughly-equal groups. It returns (JL, IL, JS, IS): JL groups of
// size IL ("large") and JS groups of size IS ("small"), satisfying
// JL*IL + JS*IS == I and IL-IS in {0,1}.
func Partition(i, j int) (jl, il, js, is int) {
	il = (i + j - 1) / j // ceil(I/J)
	is = i / j           // floor(I/J)
	jl = i - is*j
	js = j - jl
	return jl, il, js, is
}

// SubBlockSpan describes one sub-symbol column within a source block: its
// size in bytes and its byte offset within a symbol.
type SubBlockSpan struct {
	Size   int
	Offset int
}

// SubBlockPartition implements spec.md §4.3's sub-block partition: given the
// symbol size T, sub-block count N, and alignment Al, it returns one
// SubBlockSpan per sub-block, in order. Requires 1 <= N <= T/Al and
// T % Al == 0 (both already enforced by OTI.Validate).
func SubBlockPartition(t, n, al int) []SubBlockSpan {
	tal := t / al
	jl, il, js, is := Partition(tal, n)

	spans := make([]SubBlockSpan, 0, jl+js)
	offset := 0
	for k := 0; k < jl; k++ {
		spans = append(spans, SubBlockSpan{Size: il * al, Offset: offset})
		offset += il * al
	}
	for k := 0; k < js; k++ {
		spans = append(spans, SubBlockSpan{Size: is * al, Offset: offset})
		offset += is * al
	}
	return spans
}
