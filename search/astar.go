package search

import (
	"math"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// frontierItem is one A* frontier entry. seq is the insertion counter that
// breaks f ties, so equal-f cells leave in the order they arrived.
type frontierItem struct {
	idx int
	f   int
	seq int
}

func lessFrontier(a, b frontierItem) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.seq < b.seq
}

// astar expands the frontier cell with the lowest g+h. Improved cells that
// are already pending keep their first heap entry; their new score only
// takes effect through the updated gScore when they are popped.
//
// Time:   O(rows² log rows).
// Memory: O(rows²) for scores, predecessors, heap and membership set.
func (r *runner) astar() Outcome {
	g := r.g
	h := r.opts.Heuristic
	startIdx, endIdx := g.Index(r.start), g.Index(r.end)

	gScore := make([]int, g.Len())
	fScore := make([]int, g.Len())
	for i := range gScore {
		gScore[i] = math.MaxInt
		fScore[i] = math.MaxInt
	}
	gScore[startIdx] = 0
	fScore[startIdx] = h(r.start, r.end)
	cameFrom := newPredecessors(g.Len())

	count := 0
	frontier := heap.New[frontierItem](lessFrontier)
	frontier.Push(frontierItem{idx: startIdx, f: fScore[startIdx], seq: count})
	pending := mapset.New[int]()
	pending.Put(startIdx)

	for frontier.Size() > 0 {
		if r.cancelled() {
			return Cancelled
		}

		item, _ := frontier.Pop()
		cur := item.idx
		pending.Remove(cur)

		if cur == endIdx {
			r.trace(reconstruct(cameFrom, startIdx, endIdx))
			return Found
		}

		p := g.Position(cur)
		for _, n := range g.Neighbors(p) {
			ni := g.Index(n)
			tentative := gScore[cur] + 1
			if tentative >= gScore[ni] {
				continue
			}
			cameFrom[ni] = cur
			gScore[ni] = tentative
			fScore[ni] = tentative + h(n, r.end)
			if !pending.Has(ni) {
				count++
				frontier.Push(frontierItem{idx: ni, f: fScore[ni], seq: count})
				pending.Put(ni)
				r.open(n)
			}
		}

		r.explore(p)
		r.close(p)
	}

	return Exhausted
}
