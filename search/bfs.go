package search

import (
	"github.com/zyedidia/generic/mapset"
)

// bfs expands cells from a FIFO queue in non-decreasing edge distance.
// A cell may be queued more than once before it is dequeued; the visited
// check on dequeue drops the extra copies.
//
// Time:   O(rows²).
// Memory: O(rows²) for queue, visited set and predecessor slice.
func (r *runner) bfs() Outcome {
	g := r.g
	startIdx, endIdx := g.Index(r.start), g.Index(r.end)

	queue := make([]int, 0, g.Len())
	queue = append(queue, startIdx)
	visited := mapset.New[int]()
	cameFrom := newPredecessors(g.Len())

	for len(queue) > 0 {
		if r.cancelled() {
			return Cancelled
		}

		cur := queue[0]
		queue = queue[1:]
		if visited.Has(cur) {
			continue
		}
		visited.Put(cur)

		if cur == endIdx {
			r.trace(reconstruct(cameFrom, startIdx, endIdx))
			return Found
		}

		p := g.Position(cur)
		for _, n := range g.Neighbors(p) {
			ni := g.Index(n)
			if visited.Has(ni) || cameFrom[ni] >= 0 {
				continue
			}
			cameFrom[ni] = cur
			queue = append(queue, ni)
			r.open(n)
		}

		r.explore(p)
		r.close(p)
	}

	return Exhausted
}
