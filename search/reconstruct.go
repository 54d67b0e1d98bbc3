package search

import (
	"github.com/katalvlaran/gridpath/grid"
)

// newPredecessors returns a came-from slice of length n with every entry -1.
func newPredecessors(n int) []int {
	prev := make([]int, n)
	for i := range prev {
		prev[i] = -1
	}
	return prev
}

// reconstruct walks prev back from endIdx and returns the chain in
// start-to-end order, both inclusive. It returns nil if the chain breaks
// before reaching startIdx.
func reconstruct(prev []int, startIdx, endIdx int) []int {
	var rev []int
	for at := endIdx; ; at = prev[at] {
		rev = append(rev, at)
		if at == startIdx {
			break
		}
		if prev[at] < 0 || len(rev) > len(prev) {
			return nil
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// trace re-tags the end cell End, then marks every interior cell of path
// as Path, walking from the cell next to end back to the cell next to start
// and emitting one Trace step per cell. The ordered route is stored in the
// result. Start is never re-tagged.
func (r *runner) trace(path []int) {
	r.g.Cell(r.end).SetState(grid.End)
	for i := len(path) - 2; i >= 1; i-- {
		p := r.g.Position(path[i])
		r.g.Cell(p).SetState(grid.Path)
		r.emit(Trace, p)
	}
	r.res.Path = positions(r.g, path)
}

func positions(g *grid.Grid, idx []int) []grid.Position {
	if len(idx) == 0 {
		return nil
	}
	out := make([]grid.Position, len(idx))
	for i, v := range idx {
		out[i] = g.Position(v)
	}
	return out
}
